package pipeline

import (
	"context"

	"github.com/ppiankov/crosscheck/internal/model"
)

// RecheckClaim re-runs the fact-check sub-flow for a previously stored
// claim. Unlike a live request, the result is always written back: a
// re-check that resolves with high confidence must still reach the store
// so the claim leaves the pending queue.
func (p *Pipeline) RecheckClaim(ctx context.Context, claimText string) (model.FactCheckResult, error) {
	if err := ctx.Err(); err != nil {
		return model.FactCheckResult{}, err
	}

	fc := p.factCheck(ctx, claimText, nil, nil)

	// The persistence rule only stores pending-worthy results; force the
	// upsert for everything else so the recheck can resolve the claim.
	if !fc.StoredForRecheck {
		bundle := model.EvidenceBundle{
			Consensus:     fc.SocialConsensus,
			CredibleCount: fc.CredibleSources,
		}
		if _, err := p.claims.Upsert(ctx, claimText, fc.Verdict, fc.Confidence, bundle); err != nil {
			return fc, err
		}
	}

	return fc, nil
}
