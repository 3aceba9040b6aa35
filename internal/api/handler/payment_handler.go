package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savoria/ordering-system/internal/core/ports"
)

// PaymentHandler drives the two-phase checkout and serves payment history.
type PaymentHandler struct {
	checkout ports.CheckoutService
	payments ports.PaymentRepository
}

func NewPaymentHandler(checkout ports.CheckoutService, payments ports.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, payments: payments}
}

type createIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type settlePaymentRequest struct {
	Price         float64  `json:"price"         validate:"required,gt=0"`
	TransactionID string   `json:"transactionId"`
	CartItemIDs   []string `json:"cartItems"     validate:"required,min=1"`
	MenuItemIDs   []string `json:"menuItems"`
}

type settlePaymentResponse struct {
	PaymentID    string `json:"paymentId,omitempty"`
	DeletedCount int64  `json:"deletedCount"`
	Duplicate    bool   `json:"duplicate,omitempty"`
}

// CreateIntent handles POST /create-payment-intent — authorizes a charge for
// the truncated-cents amount and returns the provider's client secret. No
// ledger is touched on this request.
//
// @Summary      Create a charge intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIntentRequest  true  "Decimal price"
// @Success      200   {object}  createIntentResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	secret, err := h.checkout.CreateIntent(c.Request().Context(), email, req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: secret})
}

// Settle handles POST /payments — records the completed payment and clears the
// settled cart lines, reporting both outcomes together.
//
// @Summary      Settle a completed checkout
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      settlePaymentRequest  true  "Settlement details"
// @Success      201   {object}  settlePaymentResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Settle(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req settlePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.checkout.Settle(c.Request().Context(), ports.SettlePaymentInput{
		Email:         email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		CartItemIDs:   req.CartItemIDs,
		MenuItemIDs:   req.MenuItemIDs,
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	return c.JSON(status, settlePaymentResponse{
		PaymentID:    result.PaymentID,
		DeletedCount: result.DeletedCount,
		Duplicate:    result.Duplicate,
	})
}

// History handles GET /payments and GET /orders — the caller's own payment
// records, newest first. The target identity is always the token's email.
func (h *PaymentHandler) History(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	payments, err := h.payments.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}
