package ports

import (
	"context"

	"github.com/savoria/ordering-system/internal/core/domain"
)

// UserService defines use-case operations on users and roles.
type UserService interface {
	// Register creates a customer account. Duplicate emails fail with
	// domain.ErrUserExists.
	Register(ctx context.Context, name, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// IsAdmin reports whether the stored role for email is admin. An unknown
	// email is simply not an admin.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// Promote elevates the user with the given id to admin. This is the only
	// code path that assigns the admin role.
	Promote(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
