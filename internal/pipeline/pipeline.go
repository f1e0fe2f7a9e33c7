// Package pipeline implements the verdict-synthesis orchestrator: an
// explicit state machine driving content intake, media analysis,
// fact-checking, and education, with early exits for synthetic media and
// media without enough text to check.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ppiankov/crosscheck/internal/forensics"
	"github.com/ppiankov/crosscheck/internal/gather"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/reason"
	"github.com/ppiankov/crosscheck/internal/store"
)

// Pipeline orchestrates one verification run per request. Collaborators
// are injected so test doubles can stand in for every external capability.
type Pipeline struct {
	forensics forensics.MediaForensics
	extractor forensics.TextExtractor
	web       gather.Gatherer
	news      gather.Gatherer
	social    gather.Gatherer
	reasoner  reason.Reasoner // nil disables reasoning (degrades to UNCERTAIN)
	claims    store.Store
	config    *model.Config
	verbose   bool
}

// New creates a pipeline with the given collaborators
func New(cfg *model.Config, mediaForensics forensics.MediaForensics, extractor forensics.TextExtractor, web, news, social gather.Gatherer, reasoner reason.Reasoner, claims store.Store) *Pipeline {
	return &Pipeline{
		forensics: mediaForensics,
		extractor: extractor,
		web:       web,
		news:      news,
		social:    social,
		reasoner:  reasoner,
		claims:    claims,
		config:    cfg,
		verbose:   cfg.Output.Verbose,
	}
}

// Run executes the full state machine for one piece of content. It never
// fails past this boundary for collaborator errors: adapters that fail are
// downgraded to neutral defaults and surfaced as warnings on the result.
// The only error returned is ErrInvalidInput.
func (p *Pipeline) Run(ctx context.Context, content, fileReference string, hint model.ContentType) (*model.PipelineResult, error) {
	if content == "" && fileReference == "" {
		return nil, fmt.Errorf("%w: no content or file reference supplied", model.ErrInvalidInput)
	}

	result := &model.PipelineResult{
		RunID:         uuid.NewString(),
		Input:         content,
		FileReference: fileReference,
		StartedAt:     nowFunc(),
	}

	// Stage 1: content intake
	result.Intake = p.intake(content, fileReference, hint)
	p.logf("stage 1: content type %s (fast mode: %v)", result.Intake.ContentType, result.Intake.FastMode)

	claimText := content
	var warnings []string

	// Stage 2: media analysis, only for media content
	if result.Intake.HasMedia {
		media, mediaWarnings := p.analyzeMedia(ctx, fileReference, result.Intake.ContentType)
		result.Media = media
		warnings = append(warnings, mediaWarnings...)
		p.logf("stage 2: synthetic=%v confidence=%.2f words=%d", media.IsSynthetic, media.Confidence, media.TextWordCount)

		// Insufficient-text short circuit: image/audio with too few
		// extracted words has nothing to fact-check.
		if media.SkipReason != "" {
			p.shortCircuitInsufficientText(result, media)
			result.Education = p.educate(result)
			p.finish(result)
			return result, nil
		}

		if media.HasSubstantialText {
			claimText = claimText + "\n\nExtracted from media: " + media.ExtractedText
		}
	}

	// Stage 3: fact check (includes the deepfake short circuit)
	result.FactCheck = p.factCheck(ctx, claimText, result.Media, warnings)
	p.logf("stage 3: verdict %s confidence %.2f", result.FactCheck.Verdict, result.FactCheck.Confidence)

	// Stage 4: education, then compile the final verdict
	result.FinalVerdict = result.FactCheck.Verdict
	result.Confidence = result.FactCheck.Confidence
	result.Education = p.educate(result)
	p.finish(result)
	return result, nil
}

// shortCircuitInsufficientText synthesizes the fact-check stage for media
// without enough extractable text, without ever invoking retrieval or the
// reasoner.
func (p *Pipeline) shortCircuitInsufficientText(result *model.PipelineResult, media *model.MediaAnalysisResult) {
	result.FactCheck = model.FactCheckResult{
		Verdict:     model.VerdictNoTextContent,
		Confidence:  1.0,
		Explanation: media.SkipReason,
		Skipped:     true,
	}
	if media.IsSynthetic {
		result.FinalVerdict = model.VerdictDeepfake
	} else {
		result.FinalVerdict = model.VerdictAuthenticNoText
	}
	result.Confidence = media.Confidence
}

// finish compiles the overall status and recommendations. Final verdict
// and confidence are already in place by the time this runs.
func (p *Pipeline) finish(result *model.PipelineResult) {
	isSynthetic := result.Media != nil && result.Media.IsSynthetic
	result.Overall = model.CombineStatus(isSynthetic, result.FactCheck.Verdict)
	result.Recommendations = p.recommend(result)
	result.FinishedAt = nowFunc()
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
