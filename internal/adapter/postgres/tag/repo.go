// Package tag implements the ProblemTag repository and the problem↔tag
// association table.
package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/ai4s-oj/lyrio/internal/adapter/postgres"
	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new tag repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const tagColumns = `id, color, locales`

func scanTag(row pgx.Row) (*domain.ProblemTag, error) {
	var t domain.ProblemTag
	if err := row.Scan(&t.ID, &t.Color, &t.Locales); err != nil {
		return nil, err
	}
	return &t, nil
}

// ---------------------------------------------------------------------------
// Tag rows
// ---------------------------------------------------------------------------

// Create inserts a tag row and returns it with the assigned ID.
func (r *Repo) Create(ctx context.Context, t *domain.ProblemTag) (*domain.ProblemTag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx,
		`INSERT INTO problem_tag (color, locales) VALUES ($1, $2) RETURNING `+tagColumns,
		t.Color, t.Locales)

	created, err := scanTag(row)
	if err != nil {
		return nil, postgres.MapError(err, "tag", 0)
	}
	return created, nil
}

// GetByID returns a tag by ID.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ProblemTag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	t, err := scanTag(querier.QueryRow(ctx,
		`SELECT `+tagColumns+` FROM problem_tag WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return t, nil
}

// GetByIDs returns the tags with the given IDs, in ID order. Missing IDs
// are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.ProblemTag, error) {
	if len(ids) == 0 {
		return []*domain.ProblemTag{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.q)
	rows, err := querier.Query(ctx,
		`SELECT `+tagColumns+` FROM problem_tag WHERE id = ANY($1::bigint[]) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("get tags by ids: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// List returns all tags ordered by ID.
func (r *Repo) List(ctx context.Context) ([]*domain.ProblemTag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx,
		`SELECT `+tagColumns+` FROM problem_tag ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// Update persists a tag's color and locale set.
func (r *Repo) Update(ctx context.Context, t *domain.ProblemTag) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := querier.Exec(ctx,
		`UPDATE problem_tag SET color = $2, locales = $3 WHERE id = $1`,
		t.ID, t.Color, t.Locales)
	if err != nil {
		return postgres.MapError(err, "tag", t.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "tag", t.ID)
	}
	return nil
}

// Delete removes a tag row. Association rows are removed by the caller in
// the same transaction.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	if _, err := querier.Exec(ctx, `DELETE FROM problem_tag WHERE id = $1`, id); err != nil {
		return postgres.MapError(err, "tag", id)
	}
	return nil
}

func scanTags(rows pgx.Rows) ([]*domain.ProblemTag, error) {
	var tags []*domain.ProblemTag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// ---------------------------------------------------------------------------
// problem_tag_map (M2M)
// ---------------------------------------------------------------------------

const insertMapSQL = `INSERT INTO problem_tag_map (problem_id, tag_id) SELECT $1, unnest($2::bigint[])`

// ReplaceProblemTags replaces the full tag association set of a problem:
// delete-all then bulk-insert. The insert is skipped entirely for an empty
// set. Must run inside the caller's transaction; concurrent replacement of
// the same problem is not serialized here.
func (r *Repo) ReplaceProblemTags(ctx context.Context, problemID int64, tagIDs []int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	if _, err := querier.Exec(ctx,
		`DELETE FROM problem_tag_map WHERE problem_id = $1`, problemID); err != nil {
		return postgres.MapError(err, "problem tag map", problemID)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	if _, err := querier.Exec(ctx, insertMapSQL, problemID, tagIDs); err != nil {
		return postgres.MapError(err, "problem tag map", problemID)
	}
	return nil
}

// GetTagIDsByProblem returns the tag IDs associated with a problem.
func (r *Repo) GetTagIDsByProblem(ctx context.Context, problemID int64) ([]int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx,
		`SELECT tag_id FROM problem_tag_map WHERE problem_id = $1 ORDER BY tag_id`, problemID)
	if err != nil {
		return nil, fmt.Errorf("get tag ids by problem: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan tag id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteMapByTag removes every association of a tag, across all problems.
// Used when the tag itself is deleted.
func (r *Repo) DeleteMapByTag(ctx context.Context, tagID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	if _, err := querier.Exec(ctx,
		`DELETE FROM problem_tag_map WHERE tag_id = $1`, tagID); err != nil {
		return postgres.MapError(err, "problem tag map", tagID)
	}
	return nil
}

// CountByTag returns how many problems currently carry the tag.
func (r *Repo) CountByTag(ctx context.Context, tagID int64) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var count int64
	err := querier.QueryRow(ctx,
		`SELECT COUNT(*) FROM problem_tag_map WHERE tag_id = $1`, tagID).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "problem tag map", tagID)
	}
	return count, nil
}
