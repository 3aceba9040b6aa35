package ports

import (
	"context"

	"github.com/savoria/ordering-system/internal/core/domain"
)

// RoleDirectory resolves the stored role for an identity. The admin gate
// consults it on every request; results are never cached in-process.
type RoleDirectory interface {
	// RoleByEmail returns the user's role, or domain.ErrUserNotFound when no
	// user with that email exists.
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// UserRepository defines persistence for users and the role directory.
type UserRepository interface {
	RoleDirectory

	// Insert creates a user. Email is a unique key: a duplicate insert fails
	// with domain.ErrUserExists.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	// SetRole updates the role of the user with the given id.
	SetRole(ctx context.Context, id, role string) error
	EstimatedCount(ctx context.Context) (int64, error)
}
