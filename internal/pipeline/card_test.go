package pipeline

import (
	"strings"
	"testing"

	"github.com/ppiankov/crosscheck/internal/model"
)

func TestBuildContextCard_PerVerdict(t *testing.T) {
	tests := []struct {
		verdict model.Verdict
		wantIn  string
	}{
		{model.VerdictTrue, "verified as TRUE"},
		{model.VerdictFalse, "identified as FALSE"},
		{model.VerdictLikelyFalse, "LIKELY FALSE"},
		{model.VerdictPartiallyTrue, "PARTIALLY TRUE"},
		{model.VerdictOutdatedInfo, "OUTDATED INFORMATION"},
		{model.VerdictUnverified, "UNVERIFIED"},
		{model.VerdictUncertain, "Unable to determine"},
	}
	for _, tt := range tests {
		t.Run(string(tt.verdict), func(t *testing.T) {
			card := buildContextCard(tt.verdict, 0.8, 10, 2, 3, "", 0)
			if !strings.Contains(card.VerdictExplanation, tt.wantIn) {
				t.Errorf("Expected explanation containing %q, got %q", tt.wantIn, card.VerdictExplanation)
			}
			if card.ConfidenceLevel != "80% confidence" {
				t.Errorf("Expected '80%% confidence', got %q", card.ConfidenceLevel)
			}
			if !strings.Contains(card.Reasoning, "10 sources (2 credible) and 3 social media discussions") {
				t.Errorf("Expected source counts in reasoning, got %q", card.Reasoning)
			}
		})
	}
}

func TestBuildContextCard_FabricationEmphasis(t *testing.T) {
	// A significant claim with no coverage at all gets the stronger wording
	card := buildContextCard(model.VerdictLikelyFalse, 0.7, 2, 0, 0, "", 0)
	if !strings.Contains(card.WhyThisVerdict, "fabricated") {
		t.Errorf("Expected fabrication emphasis for zero credible sources, got %q", card.WhyThisVerdict)
	}

	card = buildContextCard(model.VerdictLikelyFalse, 0.7, 10, 2, 0, "", 0)
	if strings.Contains(card.WhyThisVerdict, "fabricated") {
		t.Errorf("Expected no fabrication emphasis with credible coverage, got %q", card.WhyThisVerdict)
	}
}

func TestBuildContextCard_PatternAlert(t *testing.T) {
	card := buildContextCard(model.VerdictFalse, 0.9, 5, 1, 0, "celebrity death hoax", 0.8)
	if !strings.Contains(card.PatternAlert, "celebrity death hoax") || !strings.Contains(card.PatternAlert, "80%") {
		t.Errorf("Expected pattern alert with name and confidence, got %q", card.PatternAlert)
	}

	// A weak pattern match produces no alert
	card = buildContextCard(model.VerdictFalse, 0.9, 5, 1, 0, "celebrity death hoax", 0.5)
	if card.PatternAlert != "" {
		t.Errorf("Expected no alert at 0.5 pattern confidence, got %q", card.PatternAlert)
	}
}
