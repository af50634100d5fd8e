package problem

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

// SetPublic flips the publicness of a problem. No-op when unchanged. The
// first publication stamps PublicTime; later flips keep the original
// timestamp.
func (s *Service) SetPublic(ctx context.Context, p *domain.Problem, isPublic bool) error {
	if p.IsPublic == isPublic {
		return nil
	}

	var publicTime *time.Time
	if isPublic && p.PublicTime == nil {
		now := time.Now()
		publicTime = &now
	}

	if err := s.problems.SetPublic(ctx, p.ID, isPublic, publicTime); err != nil {
		return fmt.Errorf("set public: %w", err)
	}

	p.IsPublic = isPublic
	if publicTime != nil {
		p.PublicTime = publicTime
	}

	s.log.InfoContext(ctx, "problem publicness changed",
		slog.Int64("problem_id", p.ID),
		slog.Bool("is_public", isPublic),
	)

	return nil
}

// SetPermissions replaces the problem's ACL wholesale with the given user
// and group grants, in one transaction.
func (s *Service) SetPermissions(ctx context.Context, p *domain.Problem, grants []domain.PermissionGrant) error {
	for _, g := range grants {
		if !g.Level.IsValid() {
			return domain.NewValidationError("grants", "invalid permission level")
		}
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.grants.ReplaceGrants(txCtx, p.ID, domain.ObjectTypeProblem, grants)
	})
	if err != nil {
		return fmt.Errorf("replace grants: %w", err)
	}

	s.log.InfoContext(ctx, "problem permissions replaced",
		slog.Int64("problem_id", p.ID),
		slog.Int("grants", len(grants)),
	)

	return nil
}

// GetPermissions returns the problem's stored ACL entries.
func (s *Service) GetPermissions(ctx context.Context, p *domain.Problem) ([]domain.PermissionGrant, error) {
	return s.grants.ListGrants(ctx, p.ID, domain.ObjectTypeProblem)
}
