package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/savoria/ordering-system/internal/api/middleware"
	"github.com/savoria/ordering-system/internal/core/domain"
)

type stubCartService struct {
	gotAuth   string
	gotTarget string
	items     []*domain.CartItem
	listErr   error

	added        *domain.CartItem
	removedID    string
	removedCount int64
}

func (s *stubCartService) ListForOwner(_ context.Context, authEmail, targetEmail string) ([]*domain.CartItem, error) {
	s.gotAuth, s.gotTarget = authEmail, targetEmail
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *stubCartService) Add(_ context.Context, authEmail string, item *domain.CartItem) (*domain.CartItem, error) {
	item.Email = authEmail
	item.ID = "cart-1"
	s.added = item
	return item, nil
}

func (s *stubCartService) UpdateQuantity(_ context.Context, _, _ string, _ int) error {
	return nil
}

func (s *stubCartService) Remove(_ context.Context, _, id string) (int64, error) {
	s.removedID = id
	return s.removedCount, nil
}

func TestCartHandler_List(t *testing.T) {
	svc := &stubCartService{items: []*domain.CartItem{{ID: "c1"}}}
	h := NewCartHandler(svc)

	c, rec := jsonRequest(t, http.MethodGet, "/carts?email=alice@example.com", "")
	c.Set(middleware.ClaimsKey, "alice@example.com")

	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if svc.gotAuth != "alice@example.com" || svc.gotTarget != "alice@example.com" {
		t.Fatalf("unexpected service args: %s %s", svc.gotAuth, svc.gotTarget)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_List_ForbiddenPropagates(t *testing.T) {
	svc := &stubCartService{listErr: domain.ErrForbidden}
	h := NewCartHandler(svc)

	c, _ := jsonRequest(t, http.MethodGet, "/carts?email=bob@example.com", "")
	c.Set(middleware.ClaimsKey, "alice@example.com")

	if err := h.List(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestCartHandler_Add(t *testing.T) {
	svc := &stubCartService{}
	h := NewCartHandler(svc)

	body := `{"menu_item_id":"m1","name":"Fettuccine Alfredo","price":14.2,"quantity":2}`
	c, rec := jsonRequest(t, http.MethodPost, "/carts", body)
	c.Set(middleware.ClaimsKey, "alice@example.com")

	if err := h.Add(c); err != nil {
		t.Fatalf("add: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.added == nil || svc.added.MenuItemID != "m1" || svc.added.Quantity != 2 {
		t.Fatalf("unexpected added item: %+v", svc.added)
	}
}

func TestCartHandler_Add_RejectsIncompletePayload(t *testing.T) {
	h := NewCartHandler(&stubCartService{})

	c, _ := jsonRequest(t, http.MethodPost, "/carts", `{"name":"Fettuccine Alfredo"}`)
	c.Set(middleware.ClaimsKey, "alice@example.com")

	if err := h.Add(c); err == nil {
		t.Fatalf("expected validation failure")
	}
}

func TestCartHandler_Remove(t *testing.T) {
	svc := &stubCartService{removedCount: 1}
	h := NewCartHandler(svc)

	c, rec := jsonRequest(t, http.MethodDelete, "/carts/c1", "")
	c.Set(middleware.ClaimsKey, "alice@example.com")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Remove(c); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if svc.removedID != "c1" {
		t.Fatalf("service not called with path id: %s", svc.removedID)
	}

	var resp deleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.DeletedCount != 1 {
		t.Fatalf("expected deletedCount 1, got %d", resp.DeletedCount)
	}
}
