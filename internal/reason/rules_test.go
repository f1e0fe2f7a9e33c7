package reason

import (
	"strings"
	"testing"

	"github.com/ppiankov/crosscheck/internal/model"
)

func TestFinalize_IrrelevantResultsCapConfidence(t *testing.T) {
	d := &Draft{Verdict: model.VerdictTrue, Confidence: 0.9, RelevanceScore: 0.1}
	Finalize(d, 0)

	if d.Confidence != 0.2 {
		t.Errorf("Expected confidence capped at 0.2, got %f", d.Confidence)
	}
	if !hasWarningContaining(d.Warnings, "irrelevant") {
		t.Errorf("Expected irrelevance warning, got %v", d.Warnings)
	}

	// An existing irrelevance warning is not duplicated
	d2 := &Draft{Verdict: model.VerdictTrue, Confidence: 0.9, RelevanceScore: 0.1,
		Warnings: []string{"results looked irrelevant"}}
	Finalize(d2, 0)
	if len(d2.Warnings) != 1 {
		t.Errorf("Expected no duplicate warning, got %v", d2.Warnings)
	}
}

func TestFinalize_RelevanceCapLeavesLowConfidence(t *testing.T) {
	d := &Draft{Verdict: model.VerdictTrue, Confidence: 0.1, RelevanceScore: 0.0}
	Finalize(d, 0)
	if d.Confidence != 0.1 {
		t.Errorf("Expected confidence below cap untouched, got %f", d.Confidence)
	}
}

func TestFinalize_PatternBoost(t *testing.T) {
	tests := []struct {
		name       string
		verdict    model.Verdict
		confidence float64
		want       float64
	}{
		{"false boosted", model.VerdictFalse, 0.5, 0.9 * 0.8},
		{"likely false boosted", model.VerdictLikelyFalse, 0.5, 0.9 * 0.8},
		{"uncertain boosted", model.VerdictUncertain, 0.5, 0.9 * 0.8},
		{"true not boosted", model.VerdictTrue, 0.5, 0.5},
		{"never lowers", model.VerdictFalse, 0.95, 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Draft{Verdict: tt.verdict, Confidence: tt.confidence, RelevanceScore: 0.8,
				MisinfoPattern: "fake celebrity death", PatternConfidence: 0.9}
			Finalize(d, 0)
			if d.Confidence != tt.want {
				t.Errorf("Expected confidence %f, got %f", tt.want, d.Confidence)
			}
			if !hasWarningContaining(d.Warnings, "misinformation pattern") {
				t.Errorf("Expected pattern warning, got %v", d.Warnings)
			}
		})
	}
}

func TestFinalize_PatternBelowThresholdIgnored(t *testing.T) {
	d := &Draft{Verdict: model.VerdictFalse, Confidence: 0.5, RelevanceScore: 0.8,
		MisinfoPattern: "some pattern", PatternConfidence: 0.6}
	Finalize(d, 0)
	if d.Confidence != 0.5 {
		t.Errorf("Expected no boost at pattern confidence 0.6, got %f", d.Confidence)
	}
	if hasWarningContaining(d.Warnings, "misinformation pattern") {
		t.Errorf("Expected no pattern warning, got %v", d.Warnings)
	}
}

func TestFinalize_AbsenceOfCoverage(t *testing.T) {
	d := &Draft{Verdict: model.VerdictLikelyFalse, Significance: model.SignificanceMajor,
		Confidence: 0.7, RelevanceScore: 0.8, Explanation: "No outlet covers this event."}
	Finalize(d, 0)
	if !strings.Contains(d.Explanation, "absence of credible sources") {
		t.Errorf("Expected absence-of-coverage note, got %q", d.Explanation)
	}

	// Not appended twice when the reasoner already said it
	d2 := &Draft{Verdict: model.VerdictLikelyFalse, Significance: model.SignificanceMajor,
		Confidence: 0.7, RelevanceScore: 0.8,
		Explanation: "The absence of credible sources here is telling."}
	Finalize(d2, 0)
	if strings.Count(strings.ToLower(d2.Explanation), "absence of credible sources") != 1 {
		t.Errorf("Expected note not to duplicate, got %q", d2.Explanation)
	}

	// MINOR claims do not get the note
	d3 := &Draft{Verdict: model.VerdictLikelyFalse, Significance: model.SignificanceMinor,
		Confidence: 0.7, RelevanceScore: 0.8, Explanation: "Small local claim."}
	Finalize(d3, 0)
	if strings.Contains(d3.Explanation, "absence of credible sources") {
		t.Errorf("Expected no note for MINOR claims, got %q", d3.Explanation)
	}
}

func TestFinalize_CorroborationBoost(t *testing.T) {
	tests := []struct {
		name     string
		credible int
		want     float64
	}{
		{"no credible sources", 0, 0.7},
		{"one credible source", 1, 0.78},
		{"two credible sources", 2, 0.78},
		{"three credible sources", 3, 0.85},
		{"many credible sources", 7, 0.85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Draft{Verdict: model.VerdictTrue, Confidence: 0.7, RelevanceScore: 0.8}
			Finalize(d, tt.credible)
			if diff := d.Confidence - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Expected confidence %f, got %f", tt.want, d.Confidence)
			}
		})
	}
}

func TestFinalize_CorroborationCappedAtOne(t *testing.T) {
	d := &Draft{Verdict: model.VerdictTrue, Confidence: 0.95, RelevanceScore: 0.8}
	Finalize(d, 5)
	if d.Confidence != 1.0 {
		t.Errorf("Expected confidence capped at 1.0, got %f", d.Confidence)
	}
	if !strings.Contains(d.Explanation, "Verified by 5 credible sources.") {
		t.Errorf("Expected corroboration note, got %q", d.Explanation)
	}
}

func TestFinalize_TemporalOverride(t *testing.T) {
	d := &Draft{Verdict: model.VerdictTrue, Confidence: 0.9, RelevanceScore: 0.8,
		TemporalStatus: model.TemporalOutdated}
	Finalize(d, 0)
	if d.Verdict != model.VerdictOutdatedInfo {
		t.Errorf("Expected TRUE rewritten to OUTDATED_INFO, got %s", d.Verdict)
	}
	if !hasWarningContaining(d.Warnings, "outdated") {
		t.Errorf("Expected staleness warning, got %v", d.Warnings)
	}

	// Non-TRUE verdicts keep their verdict but still warn
	d2 := &Draft{Verdict: model.VerdictFalse, Confidence: 0.9, RelevanceScore: 0.8,
		TemporalStatus: model.TemporalOutdated}
	Finalize(d2, 0)
	if d2.Verdict != model.VerdictFalse {
		t.Errorf("Expected FALSE to survive temporal override, got %s", d2.Verdict)
	}
	if !hasWarningContaining(d2.Warnings, "outdated") {
		t.Errorf("Expected staleness warning, got %v", d2.Warnings)
	}
}

func TestFinalize_RuleOrderIrrelevanceBeforePattern(t *testing.T) {
	// Rule 2 runs after rule 1, so a strong pattern can raise the capped
	// confidence back up.
	d := &Draft{Verdict: model.VerdictFalse, Confidence: 0.9, RelevanceScore: 0.1,
		MisinfoPattern: "health scare hoax", PatternConfidence: 0.9}
	Finalize(d, 0)
	want := 0.9 * 0.8
	if diff := d.Confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected pattern boost after relevance cap, got %f", d.Confidence)
	}
}
