package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/savoria/ordering-system/internal/api/middleware"
	"github.com/savoria/ordering-system/internal/core/domain"
	"github.com/savoria/ordering-system/internal/core/ports"
)

type stubCheckoutService struct {
	gotEmail  string
	gotPrice  float64
	secret    string
	intentErr error

	gotInput  ports.SettlePaymentInput
	result    *ports.SettleResult
	settleErr error
}

func (s *stubCheckoutService) CreateIntent(_ context.Context, email string, price float64) (string, error) {
	s.gotEmail, s.gotPrice = email, price
	if s.intentErr != nil {
		return "", s.intentErr
	}
	return s.secret, nil
}

func (s *stubCheckoutService) Settle(_ context.Context, in ports.SettlePaymentInput) (*ports.SettleResult, error) {
	s.gotInput = in
	if s.settleErr != nil {
		return nil, s.settleErr
	}
	return s.result, nil
}

type stubPaymentStore struct {
	payments []*domain.Payment
	gotEmail string
}

func (s *stubPaymentStore) Insert(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	return p, nil
}

func (s *stubPaymentStore) FindByEmail(_ context.Context, email string) ([]*domain.Payment, error) {
	s.gotEmail = email
	return s.payments, nil
}

func (s *stubPaymentStore) TotalRevenue(_ context.Context) (float64, error) { return 0, nil }

func (s *stubPaymentStore) CategoryStats(_ context.Context) ([]ports.CategoryStat, error) {
	return nil, nil
}

func (s *stubPaymentStore) EstimatedCount(_ context.Context) (int64, error) { return 0, nil }

func TestPaymentHandler_CreateIntent(t *testing.T) {
	checkout := &stubCheckoutService{secret: "pi_secret_123"}
	h := NewPaymentHandler(checkout, &stubPaymentStore{})

	c, rec := jsonRequest(t, http.MethodPost, "/create-payment-intent", `{"price":12.5}`)
	c.Set(middleware.ClaimsKey, "alice@example.com")

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if checkout.gotEmail != "alice@example.com" || checkout.gotPrice != 12.5 {
		t.Fatalf("unexpected service args: %s %v", checkout.gotEmail, checkout.gotPrice)
	}

	var resp createIntentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ClientSecret != "pi_secret_123" {
		t.Fatalf("unexpected client secret: %s", resp.ClientSecret)
	}
}

func TestPaymentHandler_CreateIntent_MissingClaims(t *testing.T) {
	h := NewPaymentHandler(&stubCheckoutService{}, &stubPaymentStore{})

	c, _ := jsonRequest(t, http.MethodPost, "/create-payment-intent", `{"price":12.5}`)
	err := h.CreateIntent(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPaymentHandler_Settle(t *testing.T) {
	checkout := &stubCheckoutService{result: &ports.SettleResult{PaymentID: "pay-1", DeletedCount: 2}}
	h := NewPaymentHandler(checkout, &stubPaymentStore{})

	body := `{"price":35.5,"transactionId":"txn_1","cartItems":["c1","c2"],"menuItems":["m1","m2"]}`
	c, rec := jsonRequest(t, http.MethodPost, "/payments", body)
	c.Set(middleware.ClaimsKey, "alice@example.com")

	if err := h.Settle(c); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	in := checkout.gotInput
	if in.Email != "alice@example.com" || in.TransactionID != "txn_1" || len(in.CartItemIDs) != 2 {
		t.Fatalf("unexpected settle input: %+v", in)
	}

	var resp settlePaymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PaymentID != "pay-1" || resp.DeletedCount != 2 || resp.Duplicate {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPaymentHandler_Settle_Duplicate(t *testing.T) {
	checkout := &stubCheckoutService{result: &ports.SettleResult{Duplicate: true}}
	h := NewPaymentHandler(checkout, &stubPaymentStore{})

	body := `{"price":35.5,"transactionId":"txn_1","cartItems":["c1"]}`
	c, rec := jsonRequest(t, http.MethodPost, "/payments", body)
	c.Set(middleware.ClaimsKey, "alice@example.com")

	if err := h.Settle(c); err != nil {
		t.Fatalf("settle: %v", err)
	}
	// A replay is acknowledged, not re-created.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for duplicate, got %d", rec.Code)
	}
}

func TestPaymentHandler_Settle_RequiresCartItems(t *testing.T) {
	h := NewPaymentHandler(&stubCheckoutService{}, &stubPaymentStore{})

	c, _ := jsonRequest(t, http.MethodPost, "/payments", `{"price":35.5,"cartItems":[]}`)
	c.Set(middleware.ClaimsKey, "alice@example.com")

	err := h.Settle(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestPaymentHandler_Settle_ReconcileFailurePropagates(t *testing.T) {
	checkout := &stubCheckoutService{settleErr: domain.ErrCartReconcile}
	h := NewPaymentHandler(checkout, &stubPaymentStore{})

	c, _ := jsonRequest(t, http.MethodPost, "/payments", `{"price":35.5,"cartItems":["c1"]}`)
	c.Set(middleware.ClaimsKey, "alice@example.com")

	if err := h.Settle(c); !errors.Is(err, domain.ErrCartReconcile) {
		t.Fatalf("expected ErrCartReconcile to propagate, got %v", err)
	}
}

func TestPaymentHandler_History_ScopedToClaim(t *testing.T) {
	store := &stubPaymentStore{payments: []*domain.Payment{{ID: "pay-1", Email: "alice@example.com"}}}
	h := NewPaymentHandler(&stubCheckoutService{}, store)

	c, rec := jsonRequest(t, http.MethodGet, "/payments", "")
	c.Set(middleware.ClaimsKey, "alice@example.com")

	if err := h.History(c); err != nil {
		t.Fatalf("history: %v", err)
	}
	if store.gotEmail != "alice@example.com" {
		t.Fatalf("history not scoped to claim: %s", store.gotEmail)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
