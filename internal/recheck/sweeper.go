// Package recheck periodically re-verifies claims that earlier runs could
// not settle. A sweep walks the pending queue in insertion order, re-runs
// the fact-check flow for each claim, and lets the store's status rules
// decide whether the claim resolves or stays queued.
package recheck

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/crosscheck/internal/model"
	"github.com/ppiankov/crosscheck/internal/store"
)

// Checker re-runs verification for a single claim text.
type Checker interface {
	RecheckClaim(ctx context.Context, claimText string) (model.FactCheckResult, error)
}

// Report summarizes one sweep over the pending queue.
type Report struct {
	Swept    int `json:"swept"`    // Claims attempted
	Resolved int `json:"resolved"` // Claims that left the pending queue
	Failed   int `json:"failed"`   // Claims whose recheck returned an error
}

// Sweeper drains the pending queue one claim at a time. Claims are
// processed sequentially with a delay between them so a sweep never
// bursts traffic at the search backends.
type Sweeper struct {
	claims    store.Store
	checker   Checker
	delay     time.Duration
	threshold float64
	verbose   bool

	sleep func(ctx context.Context, d time.Duration) error
}

// NewSweeper builds a sweeper over the given store and checker. delay is
// the pause inserted between consecutive claims; threshold is the
// confidence above which a recheck counts as resolved.
func NewSweeper(claims store.Store, checker Checker, delay time.Duration, threshold float64, verbose bool) *Sweeper {
	return &Sweeper{
		claims:    claims,
		checker:   checker,
		delay:     delay,
		threshold: threshold,
		verbose:   verbose,
		sleep:     sleepCtx,
	}
}

// Sweep snapshots the pending queue and rechecks every claim in it.
// Individual recheck failures are counted, logged, and skipped; the sweep
// only aborts when the context is cancelled or the queue cannot be read.
func (s *Sweeper) Sweep(ctx context.Context) (Report, error) {
	pending, err := s.claims.ListPending(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list pending claims: %w", err)
	}
	s.logf("recheck: sweeping %d pending claim(s)", len(pending))

	var report Report
	for i, claim := range pending {
		if i > 0 && s.delay > 0 {
			if err := s.sleep(ctx, s.delay); err != nil {
				return report, err
			}
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		report.Swept++
		fc, err := s.checker.RecheckClaim(ctx, claim.Text)
		if err != nil {
			report.Failed++
			s.logf("recheck: claim %s failed: %v", claim.Fingerprint, err)
			continue
		}

		status := model.ComputeStatus(fc.Verdict, fc.Confidence, s.threshold)
		if status == model.StatusResolved {
			report.Resolved++
		}
		s.logf("recheck: claim %s -> %s (%.2f, %s)", claim.Fingerprint, fc.Verdict, fc.Confidence, status)
	}

	s.logf("recheck: sweep done, %d swept, %d resolved, %d failed", report.Swept, report.Resolved, report.Failed)
	return report, nil
}

func (s *Sweeper) logf(format string, args ...any) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
