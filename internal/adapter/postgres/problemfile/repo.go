// Package problemfile implements the ProblemFile repository. Rows are
// identified by (problem_id, type, filename) and hold content handles into
// the file reference store; reference counting itself lives there.
package problemfile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ai4s-oj/lyrio/internal/adapter/postgres"
	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Repo provides problem-file persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new problem-file repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Get returns the file row at (problemID, type, filename), or
// domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename string) (*domain.ProblemFile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var f domain.ProblemFile
	err := querier.QueryRow(ctx,
		`SELECT problem_id, type, filename, uuid FROM problem_file
		 WHERE problem_id = $1 AND type = $2 AND filename = $3`,
		problemID, typ, filename).
		Scan(&f.ProblemID, &f.Type, &f.Filename, &f.UUID)
	if err != nil {
		return nil, postgres.MapError(err, "problem file", problemID)
	}
	return &f, nil
}

// Insert creates a new file row. The key must be unoccupied.
func (r *Repo) Insert(ctx context.Context, f *domain.ProblemFile) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	_, err := querier.Exec(ctx,
		`INSERT INTO problem_file (problem_id, type, filename, uuid) VALUES ($1, $2, $3, $4)`,
		f.ProblemID, f.Type, f.Filename, f.UUID)
	if err != nil {
		return postgres.MapError(err, "problem file", f.ProblemID)
	}
	return nil
}

// UpdateUUID rewrites the content handle of an existing row.
func (r *Repo) UpdateUUID(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename string, contentUUID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := querier.Exec(ctx,
		`UPDATE problem_file SET uuid = $4
		 WHERE problem_id = $1 AND type = $2 AND filename = $3`,
		problemID, typ, filename, contentUUID)
	if err != nil {
		return postgres.MapError(err, "problem file", problemID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "problem file", problemID)
	}
	return nil
}

// Rename updates the filename component of the key in place. The content
// handle is untouched: this is a pure metadata operation, never
// delete-then-recreate. Returns domain.ErrNotFound if the old key is
// absent.
func (r *Repo) Rename(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename, newFilename string) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := querier.Exec(ctx,
		`UPDATE problem_file SET filename = $4
		 WHERE problem_id = $1 AND type = $2 AND filename = $3`,
		problemID, typ, filename, newFilename)
	if err != nil {
		return postgres.MapError(err, "problem file", problemID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "problem file", problemID)
	}
	return nil
}

// Delete removes the row at the key and returns its content handle so the
// caller can release the reference in the same transaction. Returns
// domain.ErrNotFound for a missing key.
func (r *Repo) Delete(ctx context.Context, problemID int64, typ domain.ProblemFileType, filename string) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var contentUUID uuid.UUID
	err := querier.QueryRow(ctx,
		`DELETE FROM problem_file
		 WHERE problem_id = $1 AND type = $2 AND filename = $3
		 RETURNING uuid`,
		problemID, typ, filename).
		Scan(&contentUUID)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "problem file", problemID)
	}
	return contentUUID, nil
}

// ListByType returns the file rows of one type, in filename order.
func (r *Repo) ListByType(ctx context.Context, problemID int64, typ domain.ProblemFileType) ([]*domain.ProblemFile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx,
		`SELECT problem_id, type, filename, uuid FROM problem_file
		 WHERE problem_id = $1 AND type = $2
		 ORDER BY filename`,
		problemID, typ)
	if err != nil {
		return nil, fmt.Errorf("list problem files: %w", err)
	}
	defer rows.Close()

	var files []*domain.ProblemFile
	for rows.Next() {
		var f domain.ProblemFile
		if err := rows.Scan(&f.ProblemID, &f.Type, &f.Filename, &f.UUID); err != nil {
			return nil, fmt.Errorf("scan problem file: %w", err)
		}
		files = append(files, &f)
	}
	return files, rows.Err()
}

// DeleteAllByProblem removes every file row of a problem and returns the
// released content handles for dereferencing.
func (r *Repo) DeleteAllByProblem(ctx context.Context, problemID int64) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx,
		`DELETE FROM problem_file WHERE problem_id = $1 RETURNING uuid`, problemID)
	if err != nil {
		return nil, postgres.MapError(err, "problem file", problemID)
	}
	defer rows.Close()

	var handles []uuid.UUID
	for rows.Next() {
		var u uuid.UUID
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan released handle: %w", err)
		}
		handles = append(handles, u)
	}
	return handles, rows.Err()
}
