package pipeline

import (
	"fmt"

	"github.com/ppiankov/crosscheck/internal/model"
)

// buildContextCard generates the per-verdict explanation block attached to
// the fact-check stage
func buildContextCard(verdict model.Verdict, confidence float64, webSources, credibleSources, socialPosts int, pattern string, patternConfidence float64) *model.ContextCard {
	card := &model.ContextCard{
		ConfidenceLevel: fmt.Sprintf("%.0f%% confidence", confidence*100),
		Reasoning: fmt.Sprintf("Based on analysis of %d sources (%d credible) and %d social media discussions.",
			webSources, credibleSources, socialPosts),
	}

	switch verdict {
	case model.VerdictTrue:
		card.VerdictExplanation = "This claim has been verified as TRUE"
		card.WhyThisVerdict = fmt.Sprintf("Multiple credible sources confirm this claim. Found %d authoritative sources that verify the information.", credibleSources)
	case model.VerdictFalse:
		card.VerdictExplanation = "This claim has been identified as FALSE"
		card.WhyThisVerdict = "Available evidence contradicts this claim. This information is misleading or incorrect."
	case model.VerdictLikelyFalse:
		card.VerdictExplanation = "This claim is LIKELY FALSE"
		card.WhyThisVerdict = "No credible sources found to verify this claim. For significant events, the absence of coverage strongly suggests the claim is false."
		if credibleSources == 0 && webSources < 5 {
			card.WhyThisVerdict += " Major events generate widespread coverage; the complete absence of credible sources strongly indicates this is fabricated."
		}
	case model.VerdictPartiallyTrue:
		card.VerdictExplanation = "This claim is PARTIALLY TRUE"
		card.WhyThisVerdict = "Some aspects of this claim are accurate, but important context or details are missing or incorrect."
	case model.VerdictOutdatedInfo:
		card.VerdictExplanation = "This claim contains OUTDATED INFORMATION"
		card.WhyThisVerdict = "This information was accurate in the past but is no longer current. The claim may be presenting old news as recent."
	case model.VerdictUnverified:
		card.VerdictExplanation = "This claim is UNVERIFIED"
		card.WhyThisVerdict = fmt.Sprintf("Found information about the topic but not enough evidence to confirm or deny the specific claim. Only %d credible sources available.", credibleSources)
	default:
		card.VerdictExplanation = "Unable to determine if this claim is true or false"
		card.WhyThisVerdict = "Search results were either irrelevant, insufficient, or contradictory. More information is needed to make a determination."
	}

	if pattern != "" && patternConfidence > 0.5 {
		card.PatternAlert = fmt.Sprintf("This claim matches a common misinformation pattern: %s (%.0f%% confidence)", pattern, patternConfidence*100)
	}

	return card
}
