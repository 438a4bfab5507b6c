package services

import "github.com/dirk/quickhook/internal/domain"

// Aggregate unions result sets into one outcome.
// The union is order-insensitive: the exit status never depends on the order of
// results, and callers that need a deterministic listing use RunOutcome.Sorted.
func Aggregate(sets ...[]domain.HookResult) domain.RunOutcome {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	results := make([]domain.HookResult, 0, total)
	for _, set := range sets {
		results = append(results, set...)
	}
	return domain.RunOutcome{Results: results}
}
