// Package reason packages a claim and its gathered evidence into a single
// reasoning request, parses the structured draft verdict, and applies the
// deterministic post-processing rules.
package reason

import (
	"context"

	"github.com/ppiankov/crosscheck/internal/model"
)

// Draft is the structured verdict draft a reasoner produces before the
// deterministic post-processing rules run
type Draft struct {
	Verdict           model.Verdict        `json:"verdict"`
	Confidence        float64              `json:"confidence"`
	RelevanceScore    float64              `json:"relevance_score"`    // How relevant the search results were
	Significance      model.Significance   `json:"claim_significance"` // Opaque reasoner judgement, MAJOR or MINOR
	MisinfoPattern    string               `json:"misinformation_pattern,omitempty"` // Empty when none detected
	PatternConfidence float64              `json:"pattern_confidence"`
	TemporalStatus    model.TemporalStatus `json:"temporal_status"`
	TimeVerification  string               `json:"time_verification,omitempty"`
	Explanation       string               `json:"explanation"`
	KeyEvidence       []string             `json:"key_evidence,omitempty"`
	Sources           []string             `json:"sources,omitempty"`
	Warnings          []string             `json:"warnings,omitempty"`
	Raw               string               `json:"-"` // Unparsed model output, kept for the evidence bundle
}

// Reasoner is the uniform interface to the underlying reasoning model
type Reasoner interface {
	// Name returns the provider name
	Name() string

	// Reason fact-checks the claim against the context string the
	// orchestrator assembled (media context, evidence enumeration,
	// social consensus) and returns a structured draft.
	Reason(ctx context.Context, claimText, contextString string) (*Draft, error)
}

// NeutralDraft is the fallback when a reasoner call fails or its output
// cannot be parsed: verdict UNCERTAIN, zero confidence, empty lists.
func NeutralDraft(warning string) *Draft {
	d := &Draft{
		Verdict:        model.VerdictUncertain,
		Confidence:     0,
		RelevanceScore: 0,
		Significance:   model.SignificanceMajor,
		TemporalStatus: model.TemporalUnclear,
		Explanation:    "Fact-check could not be completed; treating the claim as uncertain.",
	}
	if warning != "" {
		d.Warnings = []string{warning}
	}
	return d
}
