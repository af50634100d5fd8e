// Package grant implements ACL grant storage: per-object permission
// entries for users and groups, group membership resolution, and global
// privilege rows. The permission resolver consumes it read-only; grant
// replacement is used by the permission-management flow.
package grant

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/ai4s-oj/lyrio/internal/adapter/postgres"
	"github.com/ai4s-oj/lyrio/internal/domain"
)

// Repo provides grant persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new grant repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// HasPermission reports whether the user holds a grant of at least
// minLevel on the object, directly or via any group they belong to. One
// query: the union of direct and group grants, reduced to max(level).
func (r *Repo) HasPermission(ctx context.Context, userID, objectID int64, objectType domain.ObjectType, minLevel domain.PermissionLevel) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var found bool
	err := querier.QueryRow(ctx,
		`SELECT COALESCE(MAX(g.level), 0) >= $4
		 FROM permission_grant g
		 WHERE g.object_id = $2 AND g.object_type = $3
		   AND (
		     (g.subject_type = 'USER' AND g.subject_id = $1)
		     OR
		     (g.subject_type = 'GROUP' AND g.subject_id IN (
		       SELECT group_id FROM group_membership WHERE user_id = $1))
		   )`,
		userID, objectID, objectType, minLevel).
		Scan(&found)
	if err != nil {
		return false, fmt.Errorf("check permission: %w", err)
	}
	return found, nil
}

// HasPrivilege reports whether the user holds a global privilege.
func (r *Repo) HasPrivilege(ctx context.Context, userID int64, privilege domain.Privilege) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var found bool
	err := querier.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM user_privilege WHERE user_id = $1 AND privilege = $2)`,
		userID, privilege).
		Scan(&found)
	if err != nil {
		return false, fmt.Errorf("check privilege: %w", err)
	}
	return found, nil
}

// ReplaceGrants replaces every grant on an object wholesale: delete-all
// then bulk-insert via pgx.Batch. Must run inside the caller's
// transaction.
func (r *Repo) ReplaceGrants(ctx context.Context, objectID int64, objectType domain.ObjectType, grants []domain.PermissionGrant) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	if _, err := querier.Exec(ctx,
		`DELETE FROM permission_grant WHERE object_id = $1 AND object_type = $2`,
		objectID, objectType); err != nil {
		return postgres.MapError(err, "permission grant", objectID)
	}

	if len(grants) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, g := range grants {
		batch.Queue(
			`INSERT INTO permission_grant (subject_id, subject_type, object_id, object_type, level)
			 VALUES ($1, $2, $3, $4, $5)`,
			g.SubjectID, g.SubjectType, objectID, objectType, g.Level)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range grants {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "permission grant", objectID)
		}
	}
	return results.Close()
}

// ListGrants returns every grant on an object.
func (r *Repo) ListGrants(ctx context.Context, objectID int64, objectType domain.ObjectType) ([]domain.PermissionGrant, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx,
		`SELECT subject_id, subject_type, object_id, object_type, level
		 FROM permission_grant
		 WHERE object_id = $1 AND object_type = $2
		 ORDER BY subject_type, subject_id`,
		objectID, objectType)
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	defer rows.Close()

	var grants []domain.PermissionGrant
	for rows.Next() {
		var g domain.PermissionGrant
		if err := rows.Scan(&g.SubjectID, &g.SubjectType, &g.ObjectID, &g.ObjectType, &g.Level); err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}
