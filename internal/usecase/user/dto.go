package user

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=1,max=255"`
	Role  string `validate:"omitempty,max=50"`
}

// UpdateUserRequest represents the request payload for a partial update.
// Nil fields are left unchanged; at least one field must be set.
type UpdateUserRequest struct {
	ID     int64   `validate:"required,gt=0"`
	Name   *string `validate:"omitempty,min=1,max=255"`
	Role   *string `validate:"omitempty,max=50"`
	Active *bool
}

// ListUsersRequest represents the request payload for listing users.
type ListUsersRequest struct {
	Limit  int
	Offset int
}
