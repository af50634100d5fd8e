// Package permission decides whether an actor may perform an action on a
// problem. The resolver is a pure function of (actor, problem, action) and
// the policy flags it was built with: it never mutates state, caches
// nothing, and is safe for concurrent use.
package permission

import (
	"context"
	"fmt"

	"github.com/ai4s-oj/lyrio/internal/domain"
)

type privilegeChecker interface {
	HasPrivilege(ctx context.Context, userID int64, privilege domain.Privilege) (bool, error)
}

type aclChecker interface {
	HasPermission(ctx context.Context, userID, objectID int64, objectType domain.ObjectType, minLevel domain.PermissionLevel) (bool, error)
}

// Policy carries the global configuration flags the rule table consults.
// Passed in explicitly at construction so authorization stays testable
// without environment setup.
type Policy struct {
	AllowOwnerManagePermission bool
	AllowOwnerDeleteProblem    bool
	AllowEveryoneCreateProblem bool
}

// Resolver evaluates the fixed rule table for problem actions.
type Resolver struct {
	policy     Policy
	privileges privilegeChecker
	acl        aclChecker
}

// NewResolver creates a permission resolver with the given policy and
// lookup collaborators.
func NewResolver(policy Policy, privileges privilegeChecker, acl aclChecker) *Resolver {
	return &Resolver{
		policy:     policy,
		privileges: privileges,
		acl:        acl,
	}
}

// CanCreateProblem reports whether the actor may create problems at all.
func (r *Resolver) CanCreateProblem(ctx context.Context, actor *domain.User) (bool, error) {
	if actor == nil {
		return false, nil
	}
	if r.policy.AllowEveryoneCreateProblem || actor.IsAdmin {
		return true, nil
	}
	return r.privileges.HasPrivilege(ctx, actor.ID, domain.PrivilegeManageProblem)
}

// Resolve reports whether the actor (nil for anonymous) may perform the
// action on the problem. Checks run in fixed precedence order per action;
// the first satisfied rule allows. Storage errors propagate: a failed
// lookup is an error, never a silent deny.
func (r *Resolver) Resolve(ctx context.Context, actor *domain.User, problem *domain.Problem, action domain.Action) (bool, error) {
	switch action {
	case domain.ActionView:
		if problem.IsPublic {
			return true, nil
		}
		if actor == nil {
			return false, nil
		}
		if actor.ID == problem.OwnerID || actor.IsAdmin {
			return true, nil
		}
		if ok, err := r.privileges.HasPrivilege(ctx, actor.ID, domain.PrivilegeManageProblem); err != nil || ok {
			return ok, err
		}
		return r.acl.HasPermission(ctx, actor.ID, problem.ID, domain.ObjectTypeProblem, domain.PermissionLevelRead)

	case domain.ActionModify:
		if actor == nil {
			return false, nil
		}
		if actor.ID == problem.OwnerID || actor.IsAdmin {
			return true, nil
		}
		if ok, err := r.privileges.HasPrivilege(ctx, actor.ID, domain.PrivilegeManageProblem); err != nil || ok {
			return ok, err
		}
		return r.acl.HasPermission(ctx, actor.ID, problem.ID, domain.ObjectTypeProblem, domain.PermissionLevelWrite)

	case domain.ActionManagePermission:
		if actor == nil {
			return false, nil
		}
		if actor.ID == problem.OwnerID && r.policy.AllowOwnerManagePermission {
			return true, nil
		}
		if actor.IsAdmin {
			return true, nil
		}
		return r.privileges.HasPrivilege(ctx, actor.ID, domain.PrivilegeManageProblem)

	case domain.ActionManagePublicness:
		// Ownership is never sufficient here.
		if actor == nil {
			return false, nil
		}
		if actor.IsAdmin {
			return true, nil
		}
		return r.privileges.HasPrivilege(ctx, actor.ID, domain.PrivilegeManageProblem)

	case domain.ActionDelete:
		if actor == nil {
			return false, nil
		}
		if actor.ID == problem.OwnerID && r.policy.AllowOwnerDeleteProblem {
			return true, nil
		}
		if actor.IsAdmin {
			return true, nil
		}
		return r.privileges.HasPrivilege(ctx, actor.ID, domain.PrivilegeManageProblem)
	}

	return false, fmt.Errorf("unknown action %q", action)
}
