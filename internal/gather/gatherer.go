package gather

import (
	"context"
	"sort"

	"github.com/ppiankov/crosscheck/internal/model"
)

// Gatherer is the uniform interface to one retrieval backend. Implementations
// normalize heterogeneous results into EvidenceItem and flag credibility.
type Gatherer interface {
	// Kind identifies the backend (news, web, social)
	Kind() model.SourceKind

	// Search returns up to maxResults ranked evidence items for the query
	Search(ctx context.Context, query string, maxResults int) ([]model.EvidenceItem, error)
}

// sourceOrder fixes the merge order of backends so that concurrent
// completion never changes the merged evidence list
var sourceOrder = map[model.SourceKind]int{
	model.SourceNews:   0,
	model.SourceWeb:    1,
	model.SourceSocial: 2,
}

// Merge combines per-backend result lists into one deterministic list,
// ordered by source kind and then by each item's original rank.
func Merge(lists ...[]model.EvidenceItem) []model.EvidenceItem {
	var merged []model.EvidenceItem
	for _, list := range lists {
		merged = append(merged, list...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if sourceOrder[merged[i].Kind] != sourceOrder[merged[j].Kind] {
			return sourceOrder[merged[i].Kind] < sourceOrder[merged[j].Kind]
		}
		return merged[i].Rank < merged[j].Rank
	})
	return merged
}

// CountCredible returns how many items carry the credible flag
func CountCredible(items []model.EvidenceItem) int {
	count := 0
	for _, item := range items {
		if item.Credible {
			count++
		}
	}
	return count
}
