package reason

import (
	"fmt"
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
)

const absenceOfCoverageNote = "The absence of credible sources for such a significant claim strongly suggests it is false. Real events of this magnitude generate immediate, widespread, and verifiable coverage from multiple news outlets."

// Finalize applies the deterministic post-processing rules to a draft, in
// order. credibleSources is the number of allow-listed sources the
// gatherers found this run. The rules mutate the draft in place:
//
//  1. Irrelevant results cap confidence at 0.2.
//  2. A confidently detected misinformation pattern warns and, for
//     negative verdicts, raises confidence.
//  3. LIKELY_FALSE on a MAJOR claim gets the absence-of-coverage note.
//  4. Credible corroboration boosts confidence (+0.15 for 3+, +0.08 for 1+).
//  5. OUTDATED temporal status warns and rewrites TRUE to OUTDATED_INFO.
//
// Absence-of-evidence is deliberately asymmetric: for MAJOR claims no
// coverage is itself evidence of falsity, while for MINOR claims it only
// means unverified.
func Finalize(d *Draft, credibleSources int) {
	// 1. Relevance cap
	if d.RelevanceScore < 0.3 {
		if d.Confidence > 0.2 {
			d.Confidence = 0.2
		}
		if !hasWarningContaining(d.Warnings, "irrelevant") {
			d.Warnings = append([]string{"Search results were irrelevant to the claim"}, d.Warnings...)
		}
	}

	// 2. Misinformation pattern boost
	if d.MisinfoPattern != "" && d.PatternConfidence > 0.6 {
		warning := fmt.Sprintf("Matches common misinformation pattern: %s (%.0f%% confidence)", d.MisinfoPattern, d.PatternConfidence*100)
		d.Warnings = append([]string{warning}, d.Warnings...)
		switch d.Verdict {
		case model.VerdictFalse, model.VerdictLikelyFalse, model.VerdictUncertain:
			if boosted := d.PatternConfidence * 0.8; boosted > d.Confidence {
				d.Confidence = boosted
			}
		}
	}

	// 3. Absence-of-coverage reasoning for significant claims
	if d.Verdict == model.VerdictLikelyFalse && d.Significance == model.SignificanceMajor {
		if !strings.Contains(strings.ToLower(d.Explanation), "absence of credible sources") {
			d.Explanation = strings.TrimSpace(d.Explanation + "\n\n" + absenceOfCoverageNote)
		}
	}

	// 4. Corroboration boost
	switch {
	case credibleSources >= 3:
		d.Confidence = min1(d.Confidence + 0.15)
		d.Explanation = strings.TrimSpace(d.Explanation + fmt.Sprintf("\n\nVerified by %d credible sources.", credibleSources))
	case credibleSources >= 1:
		d.Confidence = min1(d.Confidence + 0.08)
	}

	// 5. Temporal override
	if d.TemporalStatus == model.TemporalOutdated {
		d.Warnings = append(d.Warnings, "This information is outdated. Old news presented as current.")
		if d.Verdict == model.VerdictTrue {
			d.Verdict = model.VerdictOutdatedInfo
		}
	}
}

func hasWarningContaining(warnings []string, needle string) bool {
	for _, w := range warnings {
		if strings.Contains(strings.ToLower(w), needle) {
			return true
		}
	}
	return false
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
