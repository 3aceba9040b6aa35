package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savoria/ordering-system/internal/core/domain"
	"github.com/savoria/ordering-system/internal/core/ports"
)

// CartHandler handles cart reads and mutations. Every route is behind the
// token gate; ownership is enforced against the email claim.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addCartItemRequest struct {
	MenuItemID string  `json:"menu_item_id" validate:"required"`
	Name       string  `json:"name"         validate:"required"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"        validate:"required,gt=0"`
	Quantity   int     `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// List handles GET /carts?email= — the caller's pending cart.
//
// @Summary      List cart items for an email
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  false  "Owner email (must match the token's email)"
// @Success      200    {array}   map[string]any
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /carts [get]
func (h *CartHandler) List(c echo.Context) error {
	authEmail, err := ctxEmail(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListForOwner(c.Request().Context(), authEmail, c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add handles POST /carts — inserts a line owned by the caller.
func (h *CartHandler) Add(c echo.Context) error {
	authEmail, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := h.service.Add(c.Request().Context(), authEmail, &domain.CartItem{
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateQuantity handles PUT /carts/:id.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	authEmail, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.UpdateQuantity(c.Request().Context(), authEmail, c.Param("id"), req.Quantity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"modifiedCount": 1})
}

// Remove handles DELETE /carts/:id. Removing an id that is already gone
// reports a zero count rather than an error.
func (h *CartHandler) Remove(c echo.Context) error {
	authEmail, err := ctxEmail(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Remove(c.Request().Context(), authEmail, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{DeletedCount: deleted})
}
