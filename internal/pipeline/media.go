package pipeline

import (
	"context"
	"fmt"

	"github.com/ppiankov/crosscheck/internal/forensics"
	"github.com/ppiankov/crosscheck/internal/model"
)

// analyzeMedia is stage 2: forensics plus, for image and audio, text
// extraction. Adapter failures are downgraded to neutral defaults and
// returned as warnings; the stage itself never fails.
func (p *Pipeline) analyzeMedia(ctx context.Context, fileReference string, kind model.ContentType) (*model.MediaAnalysisResult, []string) {
	result := &model.MediaAnalysisResult{MediaType: kind}
	var warnings []string

	report := &forensics.Report{} // Neutral: not synthetic, zero confidence
	if p.forensics == nil {
		warnings = append(warnings, "media forensics unavailable: no detector configured")
	} else if r, err := p.forensics.Analyze(ctx, fileReference, kind); err != nil {
		warnings = append(warnings, fmt.Sprintf("media forensics unavailable: %v", err))
	} else {
		report = r
	}
	result.IsSynthetic = report.IsSynthetic
	result.Confidence = report.Confidence
	result.Explanation = report.Explanation

	// Video gets forensics only; text extraction covers image (OCR) and
	// audio (transcription).
	if kind == model.ContentImage || kind == model.ContentAudio {
		text := report.ExtractedText
		confidence := 0.0
		if text == "" && p.extractor != nil {
			extraction, err := p.extractor.Extract(ctx, fileReference, kind)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("text extraction unavailable: %v", err))
			} else {
				text = extraction.Text
				confidence = extraction.Confidence
			}
		}

		result.ExtractedText = text
		result.ExtractionConf = confidence
		result.TextWordCount = forensics.WordCount(text)
		result.HasSubstantialText = result.TextWordCount >= model.SubstantialTextWords

		if !result.HasSubstantialText {
			result.SkipReason = fmt.Sprintf("Insufficient text content (%d words, need %d+ for meaningful analysis)",
				result.TextWordCount, model.SubstantialTextWords)
		}
	}

	return result, warnings
}
