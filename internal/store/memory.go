package store

import (
	"context"
	"sync"
	"time"

	"github.com/ppiankov/crosscheck/internal/model"
)

// nowFunc is the clock used for claim timestamps (injectable for tests)
var nowFunc = func() time.Time { return time.Now().UTC() }

// MemoryStore is an in-process Store backed by a map. A single mutex
// serializes every write; expected write volume is low.
type MemoryStore struct {
	mu                  sync.Mutex
	claims              map[string]model.Claim
	pending             []string // Fingerprints in insertion order
	resolutionThreshold float64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore(resolutionThreshold float64) *MemoryStore {
	return &MemoryStore{
		claims:              make(map[string]model.Claim),
		resolutionThreshold: resolutionThreshold,
	}
}

// Upsert implements Store
func (s *MemoryStore) Upsert(ctx context.Context, claimText string, verdict model.Verdict, confidence float64, evidence model.EvidenceBundle) (UpsertResult, error) {
	if err := ctx.Err(); err != nil {
		return UpsertResult{}, err
	}

	fp := Fingerprint(claimText)
	now := nowFunc()

	s.mu.Lock()
	defer s.mu.Unlock()

	record := model.Claim{
		Fingerprint:  fp,
		Text:         claimText,
		Verdict:      verdict,
		Confidence:   confidence,
		Evidence:     evidence,
		FirstChecked: now,
		LastChecked:  now,
		CheckCount:   1,
		Status:       model.ComputeStatus(verdict, confidence, s.resolutionThreshold),
	}

	if existing, ok := s.claims[fp]; ok {
		record.FirstChecked = existing.FirstChecked
		record.CheckCount = existing.CheckCount + 1
	}
	s.claims[fp] = record

	if record.Status == model.StatusPending {
		s.addPending(fp)
	} else {
		s.removePending(fp)
	}

	return UpsertResult{ClaimID: fp, Status: record.Status}, nil
}

// Get implements Store
func (s *MemoryStore) Get(ctx context.Context, claimText string) (*model.Claim, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	claim, ok := s.claims[Fingerprint(claimText)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := claim
	return &copied, nil
}

// ListPending implements Store
func (s *MemoryStore) ListPending(ctx context.Context) ([]model.Claim, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Claim, 0, len(s.pending))
	for _, fp := range s.pending {
		if claim, ok := s.claims[fp]; ok {
			out = append(out, claim)
		}
	}
	return out, nil
}

// Close implements Store
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) addPending(fp string) {
	for _, existing := range s.pending {
		if existing == fp {
			return
		}
	}
	s.pending = append(s.pending, fp)
}

func (s *MemoryStore) removePending(fp string) {
	for i, existing := range s.pending {
		if existing == fp {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
