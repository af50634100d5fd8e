package domain

// Action is a closed enumeration of the things an actor can do to a
// problem. The permission resolver dispatches over it exhaustively.
type Action string

const (
	ActionView             Action = "VIEW"
	ActionModify           Action = "MODIFY"
	ActionManagePermission Action = "MANAGE_PERMISSION"
	ActionManagePublicness Action = "MANAGE_PUBLICNESS"
	ActionDelete           Action = "DELETE"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionView, ActionModify, ActionManagePermission,
		ActionManagePublicness, ActionDelete:
		return true
	}
	return false
}

// PermissionLevel orders ACL grant strengths: a Write grant satisfies any
// Read requirement.
type PermissionLevel int

const (
	PermissionLevelRead  PermissionLevel = 1
	PermissionLevelWrite PermissionLevel = 2
)

func (l PermissionLevel) IsValid() bool {
	return l == PermissionLevelRead || l == PermissionLevelWrite
}

// SubjectType tells whether a grant targets a single user or a group.
type SubjectType string

const (
	SubjectTypeUser  SubjectType = "USER"
	SubjectTypeGroup SubjectType = "GROUP"
)

// ObjectType names the kind of entity a grant applies to. Only problems
// are governed by this core.
type ObjectType string

const ObjectTypeProblem ObjectType = "PROBLEM"

// PermissionGrant is one stored ACL entry.
type PermissionGrant struct {
	SubjectID   int64
	SubjectType SubjectType
	ObjectID    int64
	ObjectType  ObjectType
	Level       PermissionLevel
}

// Privilege is a global capability independent of any single object.
type Privilege string

const PrivilegeManageProblem Privilege = "MANAGE_PROBLEM"
