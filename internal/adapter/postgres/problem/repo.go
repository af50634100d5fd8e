// Package problem implements the Problem repository using PostgreSQL.
// It owns the problem row plus its 1:1 children (judge info, sample), which
// callers keep in lockstep inside one transaction.
package problem

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ai4s-oj/lyrio/internal/adapter/postgres"
	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Repo provides problem persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new problem repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const problemColumns = `id, display_id, type, is_public, public_time, owner_id, locales,
	submission_count, accepted_submission_count`

func scanProblem(row pgx.Row) (*domain.Problem, error) {
	var p domain.Problem
	err := row.Scan(
		&p.ID, &p.DisplayID, &p.Type, &p.IsPublic, &p.PublicTime,
		&p.OwnerID, &p.Locales, &p.SubmissionCount, &p.AcceptedSubmissionCount,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ---------------------------------------------------------------------------
// Problem row
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO problem (display_id, type, is_public, public_time, owner_id, locales,
	submission_count, accepted_submission_count)
VALUES ($1, $2, $3, $4, $5, $6, 0, 0)
RETURNING ` + problemColumns

// Create inserts the problem row and returns it with the assigned ID.
func (r *Repo) Create(ctx context.Context, p *domain.Problem) (*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx, createSQL,
		p.DisplayID, p.Type, p.IsPublic, p.PublicTime, p.OwnerID, p.Locales)

	created, err := scanProblem(row)
	if err != nil {
		return nil, postgres.MapError(err, "problem", 0)
	}
	return created, nil
}

// GetByID returns a problem by its internal ID.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx,
		`SELECT `+problemColumns+` FROM problem WHERE id = $1`, id)

	p, err := scanProblem(row)
	if err != nil {
		return nil, postgres.MapError(err, "problem", id)
	}
	return p, nil
}

// GetByDisplayID returns a problem by its human-facing display ID.
func (r *Repo) GetByDisplayID(ctx context.Context, displayID int) (*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx,
		`SELECT `+problemColumns+` FROM problem WHERE display_id = $1`, displayID)

	p, err := scanProblem(row)
	if err != nil {
		return nil, postgres.MapError(err, "problem", int64(displayID))
	}
	return p, nil
}

func applyFilter(f domain.ProblemFilter, b sq.SelectBuilder) sq.SelectBuilder {
	if f.OwnerID != nil {
		b = b.Where(sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.Type != nil {
		b = b.Where(sq.Eq{"type": *f.Type})
	}
	if f.PublicOnly {
		b = b.Where(sq.Eq{"is_public": true})
	}
	return b
}

// List returns problems matching the filter, display-ID-holding problems
// first in display-ID order, then the rest by internal ID.
func (r *Repo) List(ctx context.Context, filter domain.ProblemFilter) ([]*domain.Problem, error) {
	b := applyFilter(filter, psql.Select(problemColumns).From("problem")).
		OrderBy("display_id NULLS LAST", "id")
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.q)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	defer rows.Close()

	var problems []*domain.Problem
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, fmt.Errorf("list problems: %w", err)
		}
		problems = append(problems, p)
	}
	return problems, rows.Err()
}

// Count returns the number of problems matching the filter.
func (r *Repo) Count(ctx context.Context, filter domain.ProblemFilter) (int64, error) {
	query, args, err := applyFilter(filter, psql.Select("COUNT(*)").From("problem")).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.q)
	var count int64
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count problems: %w", err)
	}
	return count, nil
}

// UpdateLocales persists the locale set of a problem.
func (r *Repo) UpdateLocales(ctx context.Context, id int64, locales []string) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := querier.Exec(ctx,
		`UPDATE problem SET locales = $2 WHERE id = $1`, id, locales)
	if err != nil {
		return postgres.MapError(err, "problem", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "problem", id)
	}
	return nil
}

// SetDisplayID persists a new display ID (nil clears it). A concurrent
// holder of the same display ID surfaces as domain.ErrAlreadyExists via
// the unique constraint; callers decide whether that is fatal.
func (r *Repo) SetDisplayID(ctx context.Context, id int64, displayID *int) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := querier.Exec(ctx,
		`UPDATE problem SET display_id = $2 WHERE id = $1`, id, displayID)
	if err != nil {
		return postgres.MapError(err, "problem", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "problem", id)
	}
	return nil
}

// SetPublic persists the publicness flag and, when publishing for the
// first time, the public timestamp.
func (r *Repo) SetPublic(ctx context.Context, id int64, isPublic bool, publicTime *time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := querier.Exec(ctx,
		`UPDATE problem SET is_public = $2, public_time = COALESCE(public_time, $3) WHERE id = $1`,
		id, isPublic, publicTime)
	if err != nil {
		return postgres.MapError(err, "problem", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "problem", id)
	}
	return nil
}

// IncrementStatistics applies submission-counter deltas in SQL. Deltas may
// be negative (e.g. submission deletion). Never read-modify-write: the
// arithmetic stays in the database so concurrent submissions cannot lose
// updates.
func (r *Repo) IncrementStatistics(ctx context.Context, id int64, deltaSubmissions, deltaAccepted int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	_, err := querier.Exec(ctx,
		`UPDATE problem
		 SET submission_count = submission_count + $2,
		     accepted_submission_count = accepted_submission_count + $3
		 WHERE id = $1`,
		id, deltaSubmissions, deltaAccepted)
	if err != nil {
		return postgres.MapError(err, "problem", id)
	}
	return nil
}

// Delete removes the problem row. Judge info and sample children go with
// it via ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	if _, err := querier.Exec(ctx, `DELETE FROM problem WHERE id = $1`, id); err != nil {
		return postgres.MapError(err, "problem", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Judge info (1:1)
// ---------------------------------------------------------------------------

// UpsertJudgeInfo replaces the judge configuration wholesale.
func (r *Repo) UpsertJudgeInfo(ctx context.Context, problemID int64, info json.RawMessage) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	_, err := querier.Exec(ctx,
		`INSERT INTO problem_judge_info (problem_id, judge_info) VALUES ($1, $2)
		 ON CONFLICT (problem_id) DO UPDATE SET judge_info = EXCLUDED.judge_info`,
		problemID, info)
	if err != nil {
		return postgres.MapError(err, "judge info", problemID)
	}
	return nil
}

// GetJudgeInfo returns the judge configuration blob.
func (r *Repo) GetJudgeInfo(ctx context.Context, problemID int64) (json.RawMessage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var info json.RawMessage
	err := querier.QueryRow(ctx,
		`SELECT judge_info FROM problem_judge_info WHERE problem_id = $1`, problemID).
		Scan(&info)
	if err != nil {
		return nil, postgres.MapError(err, "judge info", problemID)
	}
	return info, nil
}

// ---------------------------------------------------------------------------
// Sample (1:1)
// ---------------------------------------------------------------------------

// UpsertSample replaces the sample data wholesale.
func (r *Repo) UpsertSample(ctx context.Context, problemID int64, data []domain.SampleData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal sample data: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.q)
	_, err = querier.Exec(ctx,
		`INSERT INTO problem_sample (problem_id, data) VALUES ($1, $2)
		 ON CONFLICT (problem_id) DO UPDATE SET data = EXCLUDED.data`,
		problemID, payload)
	if err != nil {
		return postgres.MapError(err, "sample", problemID)
	}
	return nil
}

// GetSample returns the ordered sample pairs of a problem.
func (r *Repo) GetSample(ctx context.Context, problemID int64) ([]domain.SampleData, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var payload []byte
	err := querier.QueryRow(ctx,
		`SELECT data FROM problem_sample WHERE problem_id = $1`, problemID).
		Scan(&payload)
	if err != nil {
		return nil, postgres.MapError(err, "sample", problemID)
	}

	var data []domain.SampleData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("unmarshal sample data: %w", err)
	}
	return data, nil
}
