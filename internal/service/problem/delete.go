package problem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Delete removes a problem and everything it owns in one transaction:
// file rows (releasing every content reference), tag associations, grants,
// localized title and content, and the problem row with its judge-info and
// sample children.
func (s *Service) Delete(ctx context.Context, p *domain.Problem) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		handles, err := s.files.DeleteAllByProblem(txCtx, p.ID)
		if err != nil {
			return fmt.Errorf("delete file rows: %w", err)
		}
		for _, handle := range handles {
			if err := s.store.Dereference(txCtx, handle); err != nil {
				return fmt.Errorf("release content: %w", err)
			}
		}

		if err := s.tags.ReplaceProblemTags(txCtx, p.ID, nil); err != nil {
			return fmt.Errorf("delete tag associations: %w", err)
		}

		if err := s.grants.ReplaceGrants(txCtx, p.ID, domain.ObjectTypeProblem, nil); err != nil {
			return fmt.Errorf("delete grants: %w", err)
		}

		if err := s.contents.DeleteAll(txCtx, p.ID, domain.LocalizedContentTypeProblemTitle); err != nil {
			return fmt.Errorf("delete titles: %w", err)
		}
		if err := s.contents.DeleteAll(txCtx, p.ID, domain.LocalizedContentTypeProblemContent); err != nil {
			return fmt.Errorf("delete contents: %w", err)
		}

		if err := s.problems.Delete(txCtx, p.ID); err != nil {
			return fmt.Errorf("delete problem row: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "problem deleted", slog.Int64("problem_id", p.ID))
	return nil
}
