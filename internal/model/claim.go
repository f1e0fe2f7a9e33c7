package model

import "time"

// ClaimStatus tracks whether a stored claim still needs re-verification
type ClaimStatus string

const (
	StatusPending  ClaimStatus = "pending"
	StatusResolved ClaimStatus = "resolved"
)

// Claim is one durably stored fact-check record, keyed by the fingerprint
// of its normalized text. Claims are created on first check and mutated
// only by whole-record re-check; the core never deletes them.
type Claim struct {
	Fingerprint  string         `json:"fingerprint"` // Stable hash of normalized claim text
	Text         string         `json:"text"`        // Raw claim text as last submitted
	Verdict      Verdict        `json:"verdict"`
	Confidence   float64        `json:"confidence"` // In [0,1]
	Evidence     EvidenceBundle `json:"evidence"`
	FirstChecked time.Time      `json:"first_checked"`
	LastChecked  time.Time      `json:"last_checked"`
	CheckCount   int            `json:"check_count"` // >= 1
	Status       ClaimStatus    `json:"status"`
}

// ComputeStatus applies the pending invariant: a claim is pending iff its
// verdict forces re-verification or its confidence sits below the
// resolution threshold.
func ComputeStatus(verdict Verdict, confidence, resolutionThreshold float64) ClaimStatus {
	if verdict.ForcesPending() || confidence < resolutionThreshold {
		return StatusPending
	}
	return StatusResolved
}
