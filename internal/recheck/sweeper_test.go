package recheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/store"
)

// scriptedChecker resolves or fails claims according to a fixed script
// and upserts results the way the real pipeline recheck does.
type scriptedChecker struct {
	claims   store.Store
	resolve  map[string]bool
	failWith map[string]error
	checked  []string
}

func (c *scriptedChecker) RecheckClaim(ctx context.Context, claimText string) (model.FactCheckResult, error) {
	c.checked = append(c.checked, claimText)
	if err := c.failWith[claimText]; err != nil {
		return model.FactCheckResult{}, err
	}

	fc := model.FactCheckResult{Verdict: model.VerdictUncertain, Confidence: 0.3}
	if c.resolve[claimText] {
		fc = model.FactCheckResult{Verdict: model.VerdictTrue, Confidence: 0.9}
	}
	if _, err := c.claims.Upsert(ctx, claimText, fc.Verdict, fc.Confidence, model.EvidenceBundle{}); err != nil {
		return model.FactCheckResult{}, err
	}
	return fc, nil
}

func seedPending(t *testing.T, claims store.Store, texts ...string) {
	t.Helper()
	for _, text := range texts {
		if _, err := claims.Upsert(context.Background(), text, model.VerdictUncertain, 0.3, model.EvidenceBundle{}); err != nil {
			t.Fatalf("Failed to seed claim: %v", err)
		}
	}
}

func TestSweeper_Sweep(t *testing.T) {
	claims := store.NewMemoryStore(0.65)
	seedPending(t, claims, "claim a", "claim b", "claim c")

	checker := &scriptedChecker{
		claims:  claims,
		resolve: map[string]bool{"claim b": true},
	}
	s := NewSweeper(claims, checker, 0, 0.65, false)

	report, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.Swept != 3 {
		t.Errorf("Expected 3 swept, got %d", report.Swept)
	}
	if report.Resolved != 1 {
		t.Errorf("Expected 1 resolved, got %d", report.Resolved)
	}
	if report.Failed != 0 {
		t.Errorf("Expected 0 failed, got %d", report.Failed)
	}

	// Claims are visited in queue order
	want := []string{"claim a", "claim b", "claim c"}
	for i, text := range want {
		if checker.checked[i] != text {
			t.Errorf("Expected %q at position %d, got %q", text, i, checker.checked[i])
		}
	}

	pending, _ := claims.ListPending(context.Background())
	if len(pending) != 2 {
		t.Errorf("Expected 2 still pending, got %d", len(pending))
	}
}

func TestSweeper_PerClaimFailureTolerated(t *testing.T) {
	claims := store.NewMemoryStore(0.65)
	seedPending(t, claims, "claim a", "claim b", "claim c")

	checker := &scriptedChecker{
		claims:   claims,
		resolve:  map[string]bool{"claim c": true},
		failWith: map[string]error{"claim b": errors.New("search backends down")},
	}
	s := NewSweeper(claims, checker, 0, 0.65, false)

	report, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Expected sweep to continue past failures, got %v", err)
	}
	if report.Swept != 3 || report.Failed != 1 || report.Resolved != 1 {
		t.Errorf("Expected 3 swept / 1 failed / 1 resolved, got %+v", report)
	}
	if len(checker.checked) != 3 {
		t.Errorf("Expected all claims attempted, got %v", checker.checked)
	}
}

func TestSweeper_EmptyQueue(t *testing.T) {
	claims := store.NewMemoryStore(0.65)
	checker := &scriptedChecker{claims: claims}
	s := NewSweeper(claims, checker, 0, 0.65, false)

	report, err := s.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.Swept != 0 {
		t.Errorf("Expected nothing swept, got %d", report.Swept)
	}
}

func TestSweeper_DelayBetweenClaims(t *testing.T) {
	claims := store.NewMemoryStore(0.65)
	seedPending(t, claims, "claim a", "claim b", "claim c")

	checker := &scriptedChecker{claims: claims, resolve: map[string]bool{}}
	s := NewSweeper(claims, checker, 5*time.Second, 0.65, false)

	var slept []time.Duration
	s.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	if _, err := s.Sweep(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// No pause before the first claim, one before each subsequent claim
	if len(slept) != 2 {
		t.Fatalf("Expected 2 inter-claim delays, got %d", len(slept))
	}
	for _, d := range slept {
		if d != 5*time.Second {
			t.Errorf("Expected 5s delay, got %v", d)
		}
	}
}

func TestSweeper_ContextCancellationStopsSweep(t *testing.T) {
	claims := store.NewMemoryStore(0.65)
	seedPending(t, claims, "claim a", "claim b")

	checker := &scriptedChecker{claims: claims}
	s := NewSweeper(claims, checker, time.Millisecond, 0.65, false)

	ctx, cancel := context.WithCancel(context.Background())
	s.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}

	report, err := s.Sweep(ctx)
	if err == nil {
		t.Fatal("Expected cancellation error")
	}
	if report.Swept != 1 {
		t.Errorf("Expected sweep stopped after first claim, got %d", report.Swept)
	}
}
