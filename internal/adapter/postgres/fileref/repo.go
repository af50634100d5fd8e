// Package fileref implements the content-addressed file reference store.
// Content rows are keyed by an opaque UUID handle, deduplicated by SHA-256,
// and reference-counted: a row exists while at least one problem file
// points at it. Physical blob storage behind the handle is external; this
// store only owns the counting contract.
package fileref

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ai4s-oj/lyrio/internal/adapter/postgres"
	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Repo provides file reference counting backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new file reference store.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Register records freshly uploaded content and returns its handle with a
// reference count of zero. Uploading the same hash again returns the
// existing handle.
func (r *Repo) Register(ctx context.Context, sha256 string, size int64) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var handle uuid.UUID
	err := querier.QueryRow(ctx,
		`INSERT INTO file (uuid, sha256, size, ref_count)
		 VALUES ($1, $2, $3, 0)
		 ON CONFLICT (sha256) DO UPDATE SET sha256 = EXCLUDED.sha256
		 RETURNING uuid`,
		uuid.New(), sha256, size).
		Scan(&handle)
	if err != nil {
		return uuid.Nil, fmt.Errorf("register file content: %w", err)
	}
	return handle, nil
}

// TryReference acquires one reference on the content with the given hash.
// Returns (handle, true) on success and (Nil, false) when no such content
// has been uploaded. Must run inside the same transaction as the metadata
// row that will hold the handle.
func (r *Repo) TryReference(ctx context.Context, sha256 string) (uuid.UUID, bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var handle uuid.UUID
	err := querier.QueryRow(ctx,
		`UPDATE file SET ref_count = ref_count + 1 WHERE sha256 = $1 RETURNING uuid`,
		sha256).
		Scan(&handle)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("reference file content: %w", err)
	}
	return handle, true, nil
}

// Dereference releases one reference on the handle, deleting the content
// row when the count reaches zero. Must share the transaction of the
// metadata mutation that dropped the handle.
func (r *Repo) Dereference(ctx context.Context, handle uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	if _, err := querier.Exec(ctx,
		`UPDATE file SET ref_count = ref_count - 1 WHERE uuid = $1`, handle); err != nil {
		return fmt.Errorf("dereference file content: %w", err)
	}

	if _, err := querier.Exec(ctx,
		`DELETE FROM file WHERE uuid = $1 AND ref_count <= 0`, handle); err != nil {
		return fmt.Errorf("release file content: %w", err)
	}
	return nil
}

// SizesOf returns the content sizes for the given handles, joined by
// position. An unknown handle yields domain.ErrNotFound.
func (r *Repo) SizesOf(ctx context.Context, handles []uuid.UUID) ([]int64, error) {
	if len(handles) == 0 {
		return []int64{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.q)
	rows, err := querier.Query(ctx,
		`SELECT f.size
		 FROM unnest($1::uuid[]) WITH ORDINALITY AS h(uuid, ord)
		 LEFT JOIN file f ON f.uuid = h.uuid
		 ORDER BY h.ord`,
		handles)
	if err != nil {
		return nil, fmt.Errorf("file sizes: %w", err)
	}
	defer rows.Close()

	sizes := make([]int64, 0, len(handles))
	for rows.Next() {
		var size *int64
		if err := rows.Scan(&size); err != nil {
			return nil, fmt.Errorf("scan file size: %w", err)
		}
		if size == nil {
			return nil, fmt.Errorf("file handle: %w", domain.ErrNotFound)
		}
		sizes = append(sizes, *size)
	}
	return sizes, rows.Err()
}
