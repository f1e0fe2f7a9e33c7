package reason

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
)

// ParseDraft parses a reasoner response in the line-oriented
// "FIELD: value" grammar produced by BuildPrompt. Every field except
// VERDICT has a fallback default; a missing or unknown VERDICT makes the
// whole response malformed.
//
// Grammar: one "FIELD: value" per line; KEY_EVIDENCE and SOURCES introduce
// "- item" list lines that run until the next non-list line.
func ParseDraft(text string) (*Draft, error) {
	verdict := model.Verdict(strings.ToUpper(extractField(text, "VERDICT", "")))
	if !verdict.IsKnown() {
		return nil, fmt.Errorf("%w: missing or unknown verdict %q", model.ErrMalformedResponse, verdict)
	}

	draft := &Draft{
		Verdict:           verdict,
		Confidence:        extractFloat(text, "CONFIDENCE", 0.5),
		RelevanceScore:    extractFloat(text, "RELEVANCE_SCORE", 0.5),
		Significance:      parseSignificance(extractField(text, "CLAIM_SIGNIFICANCE", "MAJOR")),
		PatternConfidence: extractFloat(text, "PATTERN_CONFIDENCE", 0),
		TemporalStatus:    parseTemporal(extractField(text, "TEMPORAL_STATUS", "UNCLEAR")),
		TimeVerification:  extractField(text, "TIME_VERIFICATION", ""),
		Explanation:       extractField(text, "EXPLANATION", ""),
		KeyEvidence:       extractList(text, "KEY_EVIDENCE"),
		Sources:           extractList(text, "SOURCES"),
		Raw:               text,
	}

	if pattern := extractField(text, "MISINFORMATION_PATTERN", "NONE"); !strings.EqualFold(pattern, "NONE") {
		draft.MisinfoPattern = pattern
	}
	if warning := extractField(text, "WARNINGS", ""); warning != "" {
		draft.Warnings = []string{warning}
	}
	draft.Warnings = append(draft.Warnings, extractList(text, "WARNINGS")...)

	draft.Confidence = clamp01(draft.Confidence)
	draft.RelevanceScore = clamp01(draft.RelevanceScore)
	draft.PatternConfidence = clamp01(draft.PatternConfidence)

	return draft, nil
}

// extractField returns the value of the first "field: value" line
func extractField(text, field, fallback string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, field+":"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return fallback
}

// extractList returns the "- item" lines following a "section:" line
func extractList(text, section string) []string {
	var items []string
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, section+":") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if item, ok := strings.CutPrefix(trimmed, "-"); ok {
			items = append(items, strings.TrimSpace(item))
		} else if trimmed != "" {
			break
		}
	}
	return items
}

func extractFloat(text, field string, fallback float64) float64 {
	raw := extractField(text, field, "")
	if raw == "" {
		return fallback
	}
	// Tolerate trailing commentary after the number
	raw = strings.Fields(raw)[0]
	value, err := strconv.ParseFloat(strings.TrimRight(raw, ".,"), 64)
	if err != nil {
		return fallback
	}
	return value
}

func parseSignificance(raw string) model.Significance {
	if strings.EqualFold(strings.TrimSpace(raw), "MINOR") {
		return model.SignificanceMinor
	}
	return model.SignificanceMajor
}

func parseTemporal(raw string) model.TemporalStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CURRENT":
		return model.TemporalCurrent
	case "OUTDATED":
		return model.TemporalOutdated
	case "TIMELESS":
		return model.TemporalTimeless
	default:
		return model.TemporalUnclear
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
