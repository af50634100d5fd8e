package problem

import (
	"context"
	"fmt"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// replaceTags validates that every requested tag exists, then swaps the
// problem's association set wholesale. Runs inside the caller's
// transaction; concurrent replacement of the same problem is resolved by
// last writer wins.
func (s *Service) replaceTags(ctx context.Context, problemID int64, tagIDs []int64) error {
	// Repeated ids collapse to one association; the map table keys on
	// (problem_id, tag_id), so the raw slice would trip its primary key.
	tagIDs = uniqueIDs(tagIDs)
	if len(tagIDs) > 0 {
		found, err := s.tags.GetByIDs(ctx, tagIDs)
		if err != nil {
			return fmt.Errorf("look up tags: %w", err)
		}
		if len(found) != len(tagIDs) {
			return domain.NewValidationError("tagIds", "unknown tag id")
		}
	}

	if err := s.tags.ReplaceProblemTags(ctx, problemID, tagIDs); err != nil {
		return fmt.Errorf("replace problem tags: %w", err)
	}
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
