package user

import "time"

// User represents a user entity in the system.
type User struct {
	ID        int64     // ID is the server-assigned unique identifier
	Email     string    // Email is the unique email address of the user
	Name      string    // Name is the full name of the user
	Role      string    // Role is the access role, defaults to "user"
	Active    bool      // Active reports whether the account is enabled
	CreatedAt time.Time // CreatedAt is set by the server on insert
	UpdatedAt time.Time // UpdatedAt is bumped on every update
}

// DefaultRole is assigned when a create request omits the role.
const DefaultRole = "user"

// Update carries the sparse set of mutable fields for a partial update.
// Nil means "leave unchanged".
type Update struct {
	Name   *string
	Role   *string
	Active *bool
}

// Empty reports whether no field is set.
func (u Update) Empty() bool {
	return u.Name == nil && u.Role == nil && u.Active == nil
}
