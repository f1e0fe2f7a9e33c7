package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ppiankov/crosscheck/internal/gather"
	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/reason"
)

const deepfakeConfidence = 0.95

const savedForRecheckNote = "This claim has been saved for periodic re-verification. You'll be notified when new information becomes available."

// factCheck is stage 3: the evidence-gather, reason, post-process sequence.
// Synthetic input media short-circuits to FALSE before any retrieval.
func (p *Pipeline) factCheck(ctx context.Context, claimText string, media *model.MediaAnalysisResult, priorWarnings []string) model.FactCheckResult {
	// Deepfake short circuit: the input media being synthetic decides the
	// verdict on its own. The claim is force-stored, bypassing the
	// confidence-threshold persistence rule.
	if media != nil && media.IsSynthetic {
		fc := model.FactCheckResult{
			Verdict:    model.VerdictFalse,
			Confidence: deepfakeConfidence,
			Explanation: fmt.Sprintf("Content identified as AI-generated or manipulated media (deepfake) with %.1f%% confidence.",
				media.Confidence*100),
			Warnings: priorWarnings,
		}
		fc.ContextCard = buildContextCard(fc.Verdict, fc.Confidence, 0, 0, 0, "", 0)

		bundle := model.EvidenceBundle{Media: media}
		if _, err := p.claims.Upsert(ctx, claimText, fc.Verdict, fc.Confidence, bundle); err != nil {
			fc.Warnings = append(fc.Warnings, fmt.Sprintf("claim store unavailable: %v", err))
		}
		return fc
	}

	// Evidence gathering: the three backends are independent and
	// read-only, so they run concurrently; Merge re-imposes a fixed order
	// afterwards so completion order never changes the evidence list.
	items, consensus, gatherWarnings := p.gatherEvidence(ctx, claimText)
	warnings := append(priorWarnings, gatherWarnings...)
	credibleCount := gather.CountCredible(items)

	contextString := p.buildReasonerContext(claimText, media, items, consensus)

	draft := p.reasonDraft(ctx, claimText, contextString, &warnings)
	reason.Finalize(draft, credibleCount)

	fc := model.FactCheckResult{
		Verdict:          draft.Verdict,
		Confidence:       draft.Confidence,
		Explanation:      draft.Explanation,
		TemporalStatus:   draft.TemporalStatus,
		TimeVerification: draft.TimeVerification,
		KeyEvidence:      draft.KeyEvidence,
		Sources:          draft.Sources,
		Warnings:         append(warnings, draft.Warnings...),
		SocialConsensus:  consensus,
		WebSourcesFound:  len(items),
		CredibleSources:  credibleCount,
	}

	if len(consensus) > 0 {
		fc.Explanation = strings.TrimSpace(fc.Explanation + "\n\nSocial media perspective: " + strings.Join(consensus, " | "))
	}

	fc.ContextCard = buildContextCard(fc.Verdict, fc.Confidence, len(items), credibleCount,
		countKind(items, model.SourceSocial), draft.MisinfoPattern, draft.PatternConfidence)

	// Persistence decision: uncertain, outdated, or low-confidence claims
	// are stored for the periodic recheck sweep.
	if fc.Verdict.ForcesPending() || fc.Confidence < p.config.Thresholds.Resolution {
		bundle := model.EvidenceBundle{
			Items:         items,
			Consensus:     consensus,
			Media:         media,
			ReasonerRaw:   draft.Raw,
			CredibleCount: credibleCount,
		}
		if _, err := p.claims.Upsert(ctx, claimText, fc.Verdict, fc.Confidence, bundle); err != nil {
			fc.Warnings = append(fc.Warnings, fmt.Sprintf("claim store unavailable: %v", err))
		} else {
			fc.StoredForRecheck = true
			fc.Explanation = strings.TrimSpace(fc.Explanation + "\n\n" + savedForRecheckNote)
		}
	} else if fc.Confidence >= 0.85 {
		fc.Explanation = strings.TrimSpace(fc.Explanation + "\n\nHigh confidence based on multiple authoritative sources.")
	}

	return fc
}

// gatherEvidence queries the news, web, and social backends concurrently
// and merges their results deterministically. A failing backend
// contributes a warning and an empty list, never an aborted run.
func (p *Pipeline) gatherEvidence(ctx context.Context, query string) ([]model.EvidenceItem, []string, []string) {
	type gatherResult struct {
		items []model.EvidenceItem
		err   error
		kind  model.SourceKind
	}

	searches := []struct {
		gatherer gather.Gatherer
		max      int
	}{
		{p.news, p.config.Search.MaxNewsResults},
		{p.web, p.config.Search.MaxWebResults},
		{p.social, p.config.Search.MaxSocialResults},
	}

	results := make([]gatherResult, len(searches))
	var wg sync.WaitGroup
	for i, search := range searches {
		if search.gatherer == nil {
			continue
		}
		wg.Add(1)
		go func(idx int, g gather.Gatherer, max int) {
			defer wg.Done()
			items, err := g.Search(ctx, query, max)
			results[idx] = gatherResult{items: items, err: err, kind: g.Kind()}
		}(i, search.gatherer, search.max)
	}
	wg.Wait()

	var (
		lists      [][]model.EvidenceItem
		socialList []model.EvidenceItem
		warnings   []string
	)
	for _, r := range results {
		if r.err != nil {
			warnings = append(warnings, fmt.Sprintf("%s search unavailable: %v", r.kind, r.err))
			continue
		}
		lists = append(lists, r.items)
		if r.kind == model.SourceSocial {
			socialList = r.items
		}
	}

	return gather.Merge(lists...), gather.Consensus(socialList), warnings
}

// buildReasonerContext assembles the free-text context handed to the
// reasoner: media-derived context, then an enumeration of the top evidence
// items, then the social consensus strings.
func (p *Pipeline) buildReasonerContext(claimText string, media *model.MediaAnalysisResult, items []model.EvidenceItem, consensus []string) string {
	var b strings.Builder

	if media != nil {
		fmt.Fprintf(&b, "Media type: %s.", media.MediaType)
		if media.ExtractedText != "" {
			fmt.Fprintf(&b, " Extracted text: %s", media.ExtractedText)
		}
		b.WriteString("\n\n")
	}

	if len(items) > 0 {
		fmt.Fprintf(&b, "SEARCH RESULTS (%d sources found):\n", len(items))
		limit := p.config.Search.ContextItems
		if limit <= 0 || limit > len(items) {
			limit = len(items)
		}
		for i := 0; i < limit; i++ {
			fmt.Fprintf(&b, "%d. [%s] %s - %s\n", i+1, items[i].Kind, items[i].Title, items[i].Snippet)
		}
		b.WriteString("\n")
	}

	if len(consensus) > 0 {
		b.WriteString("SOCIAL DISCUSSIONS:\n")
		for _, line := range consensus {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String())
}

// reasonDraft invokes the reasoner, downgrading every failure mode to a
// neutral uncertain draft so the pipeline always produces a verdict.
func (p *Pipeline) reasonDraft(ctx context.Context, claimText, contextString string, warnings *[]string) *reason.Draft {
	if p.reasoner == nil {
		return reason.NeutralDraft("no reasoner configured")
	}

	draft, err := p.reasoner.Reason(ctx, claimText, contextString)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMalformedResponse):
			*warnings = append(*warnings, fmt.Sprintf("reasoner returned unparseable output: %v", err))
		default:
			*warnings = append(*warnings, fmt.Sprintf("reasoner unavailable: %v", err))
		}
		return reason.NeutralDraft("")
	}
	return draft
}

func countKind(items []model.EvidenceItem, kind model.SourceKind) int {
	count := 0
	for _, item := range items {
		if item.Kind == kind {
			count++
		}
	}
	return count
}
