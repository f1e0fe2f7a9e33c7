package model

// Verdict is the canonical outcome of a fact-check pass
type Verdict string

const (
	VerdictTrue          Verdict = "TRUE"            // Claim substantiated by evidence
	VerdictFalse         Verdict = "FALSE"           // Claim contradicted by evidence
	VerdictLikelyFalse   Verdict = "LIKELY_FALSE"    // Major claim with no corroborating coverage
	VerdictPartiallyTrue Verdict = "PARTIALLY_TRUE"  // Mixed accuracy
	VerdictOutdatedInfo  Verdict = "OUTDATED_INFO"   // Accurate historically, stale as presented
	VerdictUnverified    Verdict = "UNVERIFIED"      // Topic found, claim-specific confirmation absent
	VerdictUncertain     Verdict = "UNCERTAIN"       // Evidence irrelevant, contradictory, or absent
	VerdictNoTextContent Verdict = "NO_TEXT_CONTENT" // Synthesized when media lacks extractable text
)

// Final-verdict-only values used by the insufficient-text short circuit;
// never returned by the reasoner and never persisted
const (
	VerdictDeepfake        Verdict = "DEEPFAKE"
	VerdictAuthenticNoText Verdict = "AUTHENTIC_NO_TEXT"
)

// KnownVerdicts lists every verdict the reasoner may legitimately return
var KnownVerdicts = []Verdict{
	VerdictTrue, VerdictFalse, VerdictLikelyFalse, VerdictPartiallyTrue,
	VerdictOutdatedInfo, VerdictUnverified, VerdictUncertain,
}

// IsKnown reports whether v is part of the canonical taxonomy
// (NO_TEXT_CONTENT is internal-only and never comes from the reasoner)
func (v Verdict) IsKnown() bool {
	for _, k := range KnownVerdicts {
		if v == k {
			return true
		}
	}
	return false
}

// ForcesPending reports whether the verdict alone keeps a stored claim
// in the pending queue regardless of confidence
func (v Verdict) ForcesPending() bool {
	return v == VerdictUncertain || v == VerdictOutdatedInfo
}

// TemporalStatus classifies a claim's relation to the present
type TemporalStatus string

const (
	TemporalCurrent  TemporalStatus = "CURRENT"
	TemporalOutdated TemporalStatus = "OUTDATED"
	TemporalTimeless TemporalStatus = "TIMELESS"
	TemporalUnclear  TemporalStatus = "UNCLEAR"
)

// Significance is the reasoner's judgement of how much coverage a real
// event of this kind would generate. It is an opaque reasoner output and
// is never derived locally.
type Significance string

const (
	SignificanceMajor Significance = "MAJOR"
	SignificanceMinor Significance = "MINOR"
)
