package problem

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Create makes a new problem in one transaction: the problem row (no
// display ID, private, owned by ownerID), judge info with the type
// default, sample data, localized title and content per locale, and the
// tag associations. Any failure aborts the whole operation and leaves no
// partial rows.
func (s *Service) Create(ctx context.Context, ownerID int64, typ domain.ProblemType, statement StatementInput, tagIDs []int64) (*domain.Problem, error) {
	if !typ.IsValid() {
		return nil, domain.NewValidationError("type", "unknown problem type")
	}
	if err := statement.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Problem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.problems.Create(txCtx, &domain.Problem{
			Type:    typ,
			OwnerID: ownerID,
		})
		if err != nil {
			return fmt.Errorf("create problem: %w", err)
		}

		if err := s.problems.UpsertJudgeInfo(txCtx, created.ID, domain.DefaultJudgeInfo(typ)); err != nil {
			return fmt.Errorf("create judge info: %w", err)
		}

		if err := s.problems.UpsertSample(txCtx, created.ID, statement.Samples); err != nil {
			return fmt.Errorf("create sample: %w", err)
		}

		// Creation has no current locales, so reconciliation is pure upsert.
		locales, err := s.reconcileLocales(txCtx, created.ID, nil, statement.Localized)
		if err != nil {
			return err
		}
		if err := s.problems.UpdateLocales(txCtx, created.ID, locales); err != nil {
			return fmt.Errorf("set locales: %w", err)
		}
		created.Locales = locales

		return s.replaceTags(txCtx, created.ID, tagIDs)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "problem created",
		slog.Int64("problem_id", created.ID),
		slog.Int64("owner_id", ownerID),
		slog.String("type", typ.String()),
		slog.Int("locales", len(created.Locales)),
	)

	return created, nil
}
