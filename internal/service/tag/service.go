// Package tag manages problem tags: color, localized names, and lifecycle
// independent of any single problem. Tag names live in the localized
// content store under the tag-name kind.
package tag

import (
	"context"
	"log/slog"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

type tagRepo interface {
	Create(ctx context.Context, t *domain.ProblemTag) (*domain.ProblemTag, error)
	GetByID(ctx context.Context, id int64) (*domain.ProblemTag, error)
	List(ctx context.Context) ([]*domain.ProblemTag, error)
	Update(ctx context.Context, t *domain.ProblemTag) error
	Delete(ctx context.Context, id int64) error
	DeleteMapByTag(ctx context.Context, tagID int64) error
	CountByTag(ctx context.Context, tagID int64) (int64, error)
}

type contentStore interface {
	Get(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) (string, error)
	GetAll(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) (map[string]string, error)
	Upsert(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale, data string) error
	Delete(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) error
	DeleteAll(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides tag management operations.
type Service struct {
	tags     tagRepo
	contents contentStore
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new tag service.
func NewService(log *slog.Logger, tags tagRepo, contents contentStore, tx txManager) *Service {
	return &Service{
		tags:     tags,
		contents: contents,
		tx:       tx,
		log:      log.With("service", "tag"),
	}
}
