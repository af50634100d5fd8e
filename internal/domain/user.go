package domain

// User is the slice of the platform's identity record this core consumes.
// Identity storage, sessions, and profiles live elsewhere; the resolver
// only needs who the actor is and whether they are a system admin.
type User struct {
	ID      int64
	IsAdmin bool
}
