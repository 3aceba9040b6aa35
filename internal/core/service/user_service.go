package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/savoria/ordering-system/internal/core/domain"
	"github.com/savoria/ordering-system/internal/core/ports"
)

// UserService implements registration and role administration.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register creates a customer account. The role is always set explicitly to
// customer here; elevation happens only through Promote.
func (s *UserService) Register(ctx context.Context, name, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	user := &domain.User{
		Name:      name,
		Email:     email,
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Msg("user registered")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// IsAdmin reports whether the stored role for email is admin. A missing user
// record means not admin, not an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.repo.RoleByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return false, nil
		}
		return false, err
	}
	return role == domain.RoleAdmin, nil
}

func (s *UserService) Promote(ctx context.Context, id string) error {
	if err := s.repo.SetRole(ctx, id, domain.RoleAdmin); err != nil {
		return fmt.Errorf("promote user: %w", err)
	}
	s.log.Info().Str("user_id", id).Msg("user promoted to admin")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
