package model

// ContentType classifies what kind of content a request carries
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
	ContentAudio ContentType = "audio"
	ContentURL   ContentType = "url"
)

// HasMedia reports whether the content type requires media analysis
func (c ContentType) HasMedia() bool {
	return c == ContentImage || c == ContentVideo || c == ContentAudio
}

// SubstantialTextWords is the minimum extracted word count that justifies
// a fact-check pass over media-derived text
const SubstantialTextWords = 10

// MediaAnalysisResult is the per-run output of the media analysis stage:
// forensics verdict plus any text recovered via OCR or transcription.
type MediaAnalysisResult struct {
	MediaType          ContentType `json:"media_type"`
	IsSynthetic        bool        `json:"is_synthetic"`             // Deepfake / voice clone detected
	Confidence         float64     `json:"confidence"`               // Forensics confidence in [0,1]
	Explanation        string      `json:"explanation,omitempty"`    // Free-text detector explanation
	ExtractedText      string      `json:"extracted_text,omitempty"` // OCR or transcription output
	ExtractionConf     float64     `json:"extraction_confidence"`    // OCR/transcription confidence
	TextWordCount      int         `json:"text_word_count"`
	HasSubstantialText bool        `json:"has_substantial_text"` // TextWordCount >= SubstantialTextWords
	SkipReason         string      `json:"skip_reason,omitempty"`    // Set when the fact-check stage was skipped
}
