// Package problem is the lifecycle coordinator for problems: creation,
// statement updates, display-ID and publicness mutation, tag replacement,
// and file attachment. Every mutation runs inside one transaction threaded
// through the collaborators via context; authorization is the caller's job
// through the permission resolver.
package problem

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

type problemRepo interface {
	Create(ctx context.Context, p *domain.Problem) (*domain.Problem, error)
	GetByID(ctx context.Context, id int64) (*domain.Problem, error)
	GetByDisplayID(ctx context.Context, displayID int) (*domain.Problem, error)
	List(ctx context.Context, filter domain.ProblemFilter) ([]*domain.Problem, error)
	Count(ctx context.Context, filter domain.ProblemFilter) (int64, error)
	UpdateLocales(ctx context.Context, id int64, locales []string) error
	SetDisplayID(ctx context.Context, id int64, displayID *int) error
	SetPublic(ctx context.Context, id int64, isPublic bool, publicTime *time.Time) error
	IncrementStatistics(ctx context.Context, id int64, deltaSubmissions, deltaAccepted int64) error
	Delete(ctx context.Context, id int64) error

	UpsertJudgeInfo(ctx context.Context, problemID int64, info json.RawMessage) error
	GetJudgeInfo(ctx context.Context, problemID int64) (json.RawMessage, error)
	UpsertSample(ctx context.Context, problemID int64, data []domain.SampleData) error
	GetSample(ctx context.Context, problemID int64) ([]domain.SampleData, error)
}

type tagRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.ProblemTag, error)
	ReplaceProblemTags(ctx context.Context, problemID int64, tagIDs []int64) error
	GetTagIDsByProblem(ctx context.Context, problemID int64) ([]int64, error)
}

type fileRepo interface {
	Get(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename string) (*domain.ProblemFile, error)
	Insert(ctx context.Context, f *domain.ProblemFile) error
	UpdateUUID(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename string, contentUUID uuid.UUID) error
	Rename(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename, newFilename string) error
	Delete(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename string) (uuid.UUID, error)
	ListByType(ctx context.Context, problemID int64, typ domain.ProblemFileType) ([]*domain.ProblemFile, error)
	DeleteAllByProblem(ctx context.Context, problemID int64) ([]uuid.UUID, error)
}

// contentStore is the localized content collaborator: one text blob per
// (owner entity, kind, locale).
type contentStore interface {
	Get(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) (string, error)
	GetAll(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) (map[string]string, error)
	Upsert(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale, data string) error
	Delete(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) error
	DeleteAll(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) error
}

// fileStore is the reference-counting collaborator over content-addressed
// file storage.
type fileStore interface {
	Register(ctx context.Context, sha256 string, size int64) (uuid.UUID, error)
	TryReference(ctx context.Context, sha256 string) (uuid.UUID, bool, error)
	Dereference(ctx context.Context, handle uuid.UUID) error
	SizesOf(ctx context.Context, handles []uuid.UUID) ([]int64, error)
}

type grantStore interface {
	ReplaceGrants(ctx context.Context, objectID int64, objectType domain.ObjectType, grants []domain.PermissionGrant) error
	ListGrants(ctx context.Context, objectID int64, objectType domain.ObjectType) ([]domain.PermissionGrant, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service coordinates problem lifecycle mutations.
type Service struct {
	problems problemRepo
	tags     tagRepo
	files    fileRepo
	contents contentStore
	store    fileStore
	grants   grantStore
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new problem service.
func NewService(
	log *slog.Logger,
	problems problemRepo,
	tags tagRepo,
	files fileRepo,
	contents contentStore,
	store fileStore,
	grants grantStore,
	tx txManager,
) *Service {
	return &Service{
		problems: problems,
		tags:     tags,
		files:    files,
		contents: contents,
		store:    store,
		grants:   grants,
		tx:       tx,
		log:      log.With("service", "problem"),
	}
}
