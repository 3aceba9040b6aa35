package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/savoria/ordering-system/internal/core/domain"
)

type stubUserRepo struct {
	usersByEmail map[string]*domain.User
	inserted     []*domain.User
	insertErr    error
	roleErr      error
	setRoleID    string
	setRole      string
	setRoleErr   error
	deletedID    string
	count        int64
}

func (s *stubUserRepo) RoleByEmail(_ context.Context, email string) (string, error) {
	if s.roleErr != nil {
		return "", s.roleErr
	}
	u, ok := s.usersByEmail[email]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return u.Role, nil
}

func (s *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	if _, ok := s.usersByEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	cp := *user
	cp.ID = fmt.Sprintf("user-%d", len(s.inserted)+1)
	s.inserted = append(s.inserted, &cp)
	return &cp, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.usersByEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(s.usersByEmail))
	for _, u := range s.usersByEmail {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserRepo) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return nil
}

func (s *stubUserRepo) SetRole(_ context.Context, id, role string) error {
	if s.setRoleErr != nil {
		return s.setRoleErr
	}
	s.setRoleID, s.setRole = id, role
	return nil
}

func (s *stubUserRepo) EstimatedCount(_ context.Context) (int64, error) {
	return s.count, nil
}

func TestUserService_Register_DefaultsToCustomer(t *testing.T) {
	repo := &stubUserRepo{usersByEmail: map[string]*domain.User{}}
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Register(context.Background(), "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %q", created.Role)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("incomplete user record: %+v", created)
	}
}

func TestUserService_Register_EmptyEmail(t *testing.T) {
	repo := &stubUserRepo{usersByEmail: map[string]*domain.User{}}
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Alice", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("invalid registration reached the store")
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{usersByEmail: map[string]*domain.User{
		"alice@example.com": {Email: "alice@example.com", Role: domain.RoleCustomer},
	}}
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_IsAdmin(t *testing.T) {
	repo := &stubUserRepo{usersByEmail: map[string]*domain.User{
		"root@example.com":  {Email: "root@example.com", Role: domain.RoleAdmin},
		"alice@example.com": {Email: "alice@example.com", Role: domain.RoleCustomer},
	}}
	svc := NewUserService(repo, zerolog.Nop())

	cases := []struct {
		email string
		want  bool
	}{
		{"root@example.com", true},
		{"alice@example.com", false},
		// Unknown users are simply not admins, not an error.
		{"ghost@example.com", false},
	}
	for _, tc := range cases {
		got, err := svc.IsAdmin(context.Background(), tc.email)
		if err != nil {
			t.Fatalf("IsAdmin(%s): %v", tc.email, err)
		}
		if got != tc.want {
			t.Fatalf("IsAdmin(%s) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestUserService_IsAdmin_StoreError(t *testing.T) {
	repo := &stubUserRepo{roleErr: errors.New("connection reset")}
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.IsAdmin(context.Background(), "alice@example.com"); err == nil {
		t.Fatalf("expected store error to surface")
	}
}

func TestUserService_Promote(t *testing.T) {
	repo := &stubUserRepo{usersByEmail: map[string]*domain.User{}}
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Promote(context.Background(), "user-7"); err != nil {
		t.Fatalf("promote: %v", err)
	}
	if repo.setRoleID != "user-7" || repo.setRole != domain.RoleAdmin {
		t.Fatalf("unexpected role update: %s %s", repo.setRoleID, repo.setRole)
	}
}
