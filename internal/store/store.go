package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned by Get when no claim matches the fingerprint
var ErrNotFound = errors.New("claim not found")

// UpsertResult reports the outcome of an upsert
type UpsertResult struct {
	ClaimID string            // Fingerprint of the stored claim
	Status  model.ClaimStatus // Status after the write
}

// Store is the durable keyed storage of checked claims. Implementations
// must serialize upserts so that concurrent rechecks of the same claim
// never lose a check-count increment, and callers always receive copies,
// never live records.
type Store interface {
	// Upsert creates or fully replaces the claim identified by the
	// fingerprint of claimText. An existing record keeps its first-checked
	// timestamp and gains a check-count increment; everything else is
	// overwritten. Status and the pending queue are recomputed from the
	// new verdict and confidence.
	Upsert(ctx context.Context, claimText string, verdict model.Verdict, confidence float64, evidence model.EvidenceBundle) (UpsertResult, error)

	// Get returns the claim for the given text, or ErrNotFound.
	Get(ctx context.Context, claimText string) (*model.Claim, error)

	// ListPending returns the de-duplicated pending queue in insertion order.
	ListPending(ctx context.Context) ([]model.Claim, error)

	// Close releases any underlying resources.
	Close() error
}

// Fingerprint computes the stable identity of a claim: NFKC-folded,
// lowercased, whitespace-collapsed text hashed with SHA-256. Two claims
// whose normalized text matches collapse to one record on purpose.
func Fingerprint(claimText string) string {
	normalized := norm.NFKC.String(claimText)
	normalized = strings.ToLower(strings.TrimSpace(normalized))
	normalized = strings.Join(strings.Fields(normalized), " ")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
