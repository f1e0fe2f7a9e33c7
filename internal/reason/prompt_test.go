package reason

import (
	"strings"
	"testing"
	"time"
)

func TestBuildPrompt(t *testing.T) {
	restore := promptNowFunc
	promptNowFunc = func() time.Time { return time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC) }
	defer func() { promptNowFunc = restore }()

	prompt := BuildPrompt("the sky is green", "SEARCH RESULTS (1 sources found):\n1. [web] T - S")

	if !strings.Contains(prompt, "CLAIM: the sky is green") {
		t.Error("Expected claim in prompt")
	}
	if !strings.Contains(prompt, "CONTEXT:\nSEARCH RESULTS") {
		t.Error("Expected context section")
	}
	if strings.Count(prompt, "August 20, 2025") != 2 {
		t.Error("Expected reference date in both the preamble and the temporal check")
	}
	for _, field := range []string{"VERDICT:", "CLAIM_SIGNIFICANCE:", "CONFIDENCE:", "RELEVANCE_SCORE:",
		"MISINFORMATION_PATTERN:", "PATTERN_CONFIDENCE:", "TEMPORAL_STATUS:", "TIME_VERIFICATION:",
		"EXPLANATION:", "KEY_EVIDENCE:", "SOURCES:", "WARNINGS:"} {
		if !strings.Contains(prompt, field) {
			t.Errorf("Expected response grammar to include %s", field)
		}
	}
}

func TestBuildPrompt_NoContext(t *testing.T) {
	prompt := BuildPrompt("claim", "")
	if strings.Contains(prompt, "CONTEXT:") {
		t.Error("Expected no context section for empty context")
	}
}
