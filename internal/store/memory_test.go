package store

import (
	"context"
	"testing"

	"github.com/ppiankov/crosscheck/internal/model"
)

func TestFingerprint_NormalizationCollapses(t *testing.T) {
	base := Fingerprint("The Eiffel Tower is in Paris")

	variants := []string{
		"the eiffel tower is in paris",
		"  The Eiffel Tower is in Paris  ",
		"The  Eiffel\tTower is in\nParis",
		"THE EIFFEL TOWER IS IN PARIS",
	}
	for _, v := range variants {
		if got := Fingerprint(v); got != base {
			t.Errorf("Expected %q to share fingerprint with base, got %s vs %s", v, got, base)
		}
	}

	if Fingerprint("The Eiffel Tower is in London") == base {
		t.Error("Expected different text to produce a different fingerprint")
	}
}

func TestFingerprint_Stable(t *testing.T) {
	a := Fingerprint("water boils at 100 degrees")
	b := Fingerprint("water boils at 100 degrees")
	if a != b {
		t.Errorf("Expected stable fingerprint, got %s and %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(a))
	}
}

func TestMemoryStore_UpsertCreatesAndUpdates(t *testing.T) {
	s := NewMemoryStore(0.65)
	ctx := context.Background()

	res, err := s.Upsert(ctx, "claim one", model.VerdictUncertain, 0.4, model.EvidenceBundle{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.Status != model.StatusPending {
		t.Errorf("Expected pending status, got %s", res.Status)
	}

	first, err := s.Get(ctx, "claim one")
	if err != nil {
		t.Fatalf("Expected claim to exist, got %v", err)
	}
	if first.CheckCount != 1 {
		t.Errorf("Expected check count 1, got %d", first.CheckCount)
	}

	// Second check of the same claim replaces the record
	res, err = s.Upsert(ctx, "Claim  ONE", model.VerdictTrue, 0.9, model.EvidenceBundle{CredibleCount: 3})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.Status != model.StatusResolved {
		t.Errorf("Expected resolved status, got %s", res.Status)
	}
	if res.ClaimID != first.Fingerprint {
		t.Errorf("Expected normalized variants to collapse to one record")
	}

	second, err := s.Get(ctx, "claim one")
	if err != nil {
		t.Fatalf("Expected claim to exist, got %v", err)
	}
	if second.CheckCount != 2 {
		t.Errorf("Expected check count 2, got %d", second.CheckCount)
	}
	if !second.FirstChecked.Equal(first.FirstChecked) {
		t.Error("Expected FirstChecked to be preserved across upserts")
	}
	if second.Verdict != model.VerdictTrue {
		t.Errorf("Expected verdict TRUE after update, got %s", second.Verdict)
	}
	if second.Evidence.CredibleCount != 3 {
		t.Errorf("Expected evidence to be replaced, got %d credible", second.Evidence.CredibleCount)
	}
}

func TestMemoryStore_PendingInvariant(t *testing.T) {
	tests := []struct {
		name       string
		verdict    model.Verdict
		confidence float64
		want       model.ClaimStatus
	}{
		{"uncertain always pending", model.VerdictUncertain, 0.99, model.StatusPending},
		{"outdated always pending", model.VerdictOutdatedInfo, 0.9, model.StatusPending},
		{"low confidence pending", model.VerdictTrue, 0.5, model.StatusPending},
		{"boundary stays pending", model.VerdictFalse, 0.6499, model.StatusPending},
		{"at threshold resolved", model.VerdictFalse, 0.65, model.StatusResolved},
		{"high confidence resolved", model.VerdictTrue, 0.9, model.StatusResolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore(0.65)
			res, err := s.Upsert(context.Background(), "some claim", tt.verdict, tt.confidence, model.EvidenceBundle{})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if res.Status != tt.want {
				t.Errorf("Expected status %s, got %s", tt.want, res.Status)
			}
		})
	}
}

func TestMemoryStore_PendingQueueOrderAndResolution(t *testing.T) {
	s := NewMemoryStore(0.65)
	ctx := context.Background()

	claims := []string{"first claim", "second claim", "third claim"}
	for _, c := range claims {
		if _, err := s.Upsert(ctx, c, model.VerdictUncertain, 0.3, model.EvidenceBundle{}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	pending, err := s.ListPending(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("Expected 3 pending claims, got %d", len(pending))
	}
	for i, c := range claims {
		if pending[i].Text != c {
			t.Errorf("Expected insertion order, position %d got %q", i, pending[i].Text)
		}
	}

	// Re-checking a pending claim does not duplicate it in the queue
	if _, err := s.Upsert(ctx, "first claim", model.VerdictUncertain, 0.35, model.EvidenceBundle{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	pending, _ = s.ListPending(ctx)
	if len(pending) != 3 {
		t.Errorf("Expected queue to stay de-duplicated, got %d entries", len(pending))
	}
	if pending[0].Text != "first claim" {
		t.Errorf("Expected re-checked claim to keep its queue position, got %q first", pending[0].Text)
	}

	// A resolving recheck removes the claim from the queue
	if _, err := s.Upsert(ctx, "second claim", model.VerdictTrue, 0.9, model.EvidenceBundle{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	pending, _ = s.ListPending(ctx)
	if len(pending) != 2 {
		t.Fatalf("Expected 2 pending claims after resolution, got %d", len(pending))
	}
	for _, c := range pending {
		if c.Text == "second claim" {
			t.Error("Expected resolved claim to leave the pending queue")
		}
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore(0.65)
	if _, err := s.Get(context.Background(), "never stored"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
