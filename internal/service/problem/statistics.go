package problem

import (
	"context"
	"fmt"
)

// UpdateStatistics applies submission-counter deltas directly at the
// storage layer. Deltas may be negative (submission deletion or rejudge).
// The arithmetic runs in a single UPDATE so concurrent submissions cannot
// lose each other's increments.
func (s *Service) UpdateStatistics(ctx context.Context, problemID int64, deltaSubmissions, deltaAccepted int64) error {
	if deltaSubmissions == 0 && deltaAccepted == 0 {
		return nil
	}
	if err := s.problems.IncrementStatistics(ctx, problemID, deltaSubmissions, deltaAccepted); err != nil {
		return fmt.Errorf("update statistics: %w", err)
	}
	return nil
}
