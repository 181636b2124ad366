package users

import (
	"context"
)

type Repository interface {
	// Create stores a new user, assigning a fresh monotonic id. Returns
	// common.ErrorAlreadyExists when the email is already taken
	// (case-sensitive exact match).
	Create(ctx context.Context, user *User) (*User, error)

	// GetUserByEmail looks a user up by exact email match. Returns
	// common.ErrorNotFound when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
