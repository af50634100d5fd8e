// Package localized implements the localized content store: one text blob
// per (owner entity ID, content type, locale). The problem core consumes it
// through the small interface in the service layer; this is the PostgreSQL
// implementation of that contract.
package localized

import (
	"context"
	"fmt"

	postgres "github.com/ai4s-oj/lyrio/internal/adapter/postgres"
	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Repo provides localized-content persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new localized-content repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Get returns the text for one (owner, type, locale) key, or
// domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) (string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var data string
	err := querier.QueryRow(ctx,
		`SELECT data FROM localized_content
		 WHERE object_id = $1 AND type = $2 AND locale = $3`,
		ownerID, typ, locale).
		Scan(&data)
	if err != nil {
		return "", postgres.MapError(err, "localized content", ownerID)
	}
	return data, nil
}

// GetAll returns every locale's text for one (owner, type) pair.
func (r *Repo) GetAll(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) (map[string]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx,
		`SELECT locale, data FROM localized_content
		 WHERE object_id = $1 AND type = $2`,
		ownerID, typ)
	if err != nil {
		return nil, fmt.Errorf("get localized contents: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var locale, data string
		if err := rows.Scan(&locale, &data); err != nil {
			return nil, fmt.Errorf("scan localized content: %w", err)
		}
		result[locale] = data
	}
	return result, rows.Err()
}

// Upsert creates or overwrites one (owner, type, locale) row.
func (r *Repo) Upsert(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale, data string) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	_, err := querier.Exec(ctx,
		`INSERT INTO localized_content (object_id, type, locale, data)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (object_id, type, locale) DO UPDATE SET data = EXCLUDED.data`,
		ownerID, typ, locale, data)
	if err != nil {
		return postgres.MapError(err, "localized content", ownerID)
	}
	return nil
}

// Delete removes one locale's row. Missing rows are not an error: locale
// reconciliation may delete speculatively.
func (r *Repo) Delete(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	_, err := querier.Exec(ctx,
		`DELETE FROM localized_content
		 WHERE object_id = $1 AND type = $2 AND locale = $3`,
		ownerID, typ, locale)
	if err != nil {
		return postgres.MapError(err, "localized content", ownerID)
	}
	return nil
}

// DeleteAll removes every locale's row for one (owner, type) pair.
func (r *Repo) DeleteAll(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	_, err := querier.Exec(ctx,
		`DELETE FROM localized_content WHERE object_id = $1 AND type = $2`,
		ownerID, typ)
	if err != nil {
		return postgres.MapError(err, "localized content", ownerID)
	}
	return nil
}
