package problem

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// SetDisplayID assigns, changes, or clears (displayID <= 0) the
// human-facing number of a problem. Unchanged values return true with no
// storage write. A uniqueness conflict — another problem already holds the
// number — returns false rather than an error: concurrent assignment is
// expected and detected by the database constraint, never by a racy
// pre-check. Every other storage error propagates.
func (s *Service) SetDisplayID(ctx context.Context, p *domain.Problem, displayID int) (bool, error) {
	var requested *int
	if displayID > 0 {
		requested = &displayID
	}

	if equalIntPtr(p.DisplayID, requested) {
		return true, nil
	}

	if err := s.problems.SetDisplayID(ctx, p.ID, requested); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}

	p.DisplayID = requested

	s.log.InfoContext(ctx, "problem display id set",
		slog.Int64("problem_id", p.ID),
		slog.Int("display_id", displayID),
	)

	return true, nil
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
