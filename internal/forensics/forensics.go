// Package forensics holds the contracts to the media forensics and text
// extraction collaborators. The detectors themselves (deepfake and
// voice-clone classifiers, OCR, transcription) run as external services;
// this package only normalizes their outputs.
package forensics

import (
	"context"
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
)

// Report is the normalized output of a forensics pass over one media file
type Report struct {
	IsSynthetic   bool    `json:"is_synthetic"`
	Confidence    float64 `json:"confidence"` // In [0,1]
	Explanation   string  `json:"explanation,omitempty"`
	ExtractedText string  `json:"extracted_text,omitempty"` // Some detectors transcribe as a side effect
}

// MediaForensics is the uniform interface to the deepfake and voice-clone
// detectors, one per media kind
type MediaForensics interface {
	Analyze(ctx context.Context, fileReference string, kind model.ContentType) (*Report, error)
}

// Extraction is the normalized output of OCR or transcription
type Extraction struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	WordCount  int     `json:"word_count"`
}

// TextExtractor is the uniform interface to OCR (images) and
// transcription (audio) engines
type TextExtractor interface {
	Extract(ctx context.Context, fileReference string, kind model.ContentType) (*Extraction, error)
}

// WordCount counts whitespace-separated words the way the substantial-text
// threshold expects
func WordCount(text string) int {
	return len(strings.Fields(text))
}
