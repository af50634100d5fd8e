package problem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// UpdateStatement applies a statement update in one transaction: optional
// wholesale sample replacement, locale reconciliation against the
// problem's current set, the resulting locale list on the problem row, and
// the tag associations. The problem's Locales field is updated in place on
// success. Concurrent updates to the same problem are last writer wins;
// callers needing stronger ordering serialize above this layer.
func (s *Service) UpdateStatement(ctx context.Context, p *domain.Problem, req UpdateStatementRequest, tagIDs []int64) error {
	if err := req.Validate(); err != nil {
		return err
	}

	var newLocales []string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if req.Samples != nil {
			if err := s.problems.UpsertSample(txCtx, p.ID, req.Samples); err != nil {
				return fmt.Errorf("replace sample: %w", err)
			}
		}

		var err error
		newLocales, err = s.reconcileLocales(txCtx, p.ID, p.Locales, req.Localized)
		if err != nil {
			return err
		}
		if err := s.problems.UpdateLocales(txCtx, p.ID, newLocales); err != nil {
			return fmt.Errorf("set locales: %w", err)
		}

		return s.replaceTags(txCtx, p.ID, tagIDs)
	})
	if err != nil {
		return err
	}

	p.Locales = newLocales

	s.log.InfoContext(ctx, "problem statement updated",
		slog.Int64("problem_id", p.ID),
		slog.Int("locales", len(newLocales)),
	)

	return nil
}

// ReplaceJudgeInfo swaps the evaluation configuration wholesale. The blob
// is opaque here; validation against the problem type happens in the judge
// pipeline.
func (s *Service) ReplaceJudgeInfo(ctx context.Context, p *domain.Problem, info []byte) error {
	if len(info) == 0 {
		return domain.NewValidationError("judgeInfo", "empty judge info")
	}
	if err := s.problems.UpsertJudgeInfo(ctx, p.ID, info); err != nil {
		return fmt.Errorf("replace judge info: %w", err)
	}
	return nil
}
