package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/savoria/ordering-system/internal/core/domain"
)

func TestCartService_ListForOwner_EmptyTarget(t *testing.T) {
	repo := &stubCartRepo{items: []*domain.CartItem{{ID: "c1"}}}
	svc := NewCartService(repo, zerolog.Nop())

	items, err := svc.ListForOwner(context.Background(), "alice@example.com", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty list, got %v", items)
	}
	if repo.findCalls != 0 {
		t.Fatalf("store read for empty target")
	}
}

func TestCartService_ListForOwner_Mismatch(t *testing.T) {
	repo := &stubCartRepo{items: []*domain.CartItem{{ID: "c1"}}}
	svc := NewCartService(repo, zerolog.Nop())

	_, err := svc.ListForOwner(context.Background(), "alice@example.com", "bob@example.com")
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.findCalls != 0 {
		t.Fatalf("forbidden request reached the store")
	}
}

func TestCartService_ListForOwner_Owner(t *testing.T) {
	repo := &stubCartRepo{items: []*domain.CartItem{{ID: "c1"}, {ID: "c2"}}}
	svc := NewCartService(repo, zerolog.Nop())

	items, err := svc.ListForOwner(context.Background(), "alice@example.com", "alice@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestCartService_Add_ForcesOwnerAndQuantity(t *testing.T) {
	repo := &stubCartRepo{}
	svc := NewCartService(repo, zerolog.Nop())

	created, err := svc.Add(context.Background(), "alice@example.com", &domain.CartItem{
		Email:      "mallory@example.com",
		MenuItemID: "m1",
		Name:       "Fettuccine Alfredo",
		Price:      14.20,
		Quantity:   0,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.Email != "alice@example.com" {
		t.Fatalf("client-supplied owner not overwritten: %s", created.Email)
	}
	if created.Quantity != 1 {
		t.Fatalf("expected quantity defaulted to 1, got %d", created.Quantity)
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	repo := &stubCartRepo{}
	svc := NewCartService(repo, zerolog.Nop())

	if err := svc.UpdateQuantity(context.Background(), "alice@example.com", "c1", 3); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.updatedID != "c1" || repo.updatedEmail != "alice@example.com" || repo.updatedQty != 3 {
		t.Fatalf("unexpected update args: %s %s %d", repo.updatedID, repo.updatedEmail, repo.updatedQty)
	}

	if err := svc.UpdateQuantity(context.Background(), "alice@example.com", "c1", 0); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for zero quantity, got %v", err)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("invalid quantity reached the store")
	}
}

func TestCartService_Remove_AbsentIDIsZeroCount(t *testing.T) {
	repo := &stubCartRepo{deleteCount: 0}
	svc := NewCartService(repo, zerolog.Nop())

	count, err := svc.Remove(context.Background(), "alice@example.com", "missing")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero count, got %d", count)
	}
	if repo.deletedEmail != "alice@example.com" {
		t.Fatalf("delete not scoped to owner: %s", repo.deletedEmail)
	}
}
