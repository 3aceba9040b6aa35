package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savoria/ordering-system/internal/core/domain"
	"github.com/savoria/ordering-system/internal/core/ports"
)

// MenuHandler serves the menu catalog and customer reviews. These paths are
// thin field-mapping over the store; the interesting gating lives in the
// router (menu mutations are admin-only).
type MenuHandler struct {
	menu    ports.MenuRepository
	reviews ports.ReviewRepository
}

func NewMenuHandler(menu ports.MenuRepository, reviews ports.ReviewRepository) *MenuHandler {
	return &MenuHandler{menu: menu, reviews: reviews}
}

type createMenuItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// List handles GET /menu.
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menu.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /menu (admin-only).
func (h *MenuHandler) Create(c echo.Context) error {
	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	item, err := h.menu.Insert(c.Request().Context(), &domain.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Delete handles DELETE /menu/:id (admin-only).
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.menu.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{DeletedCount: 1})
}

// ListReviews handles GET /reviews.
func (h *MenuHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
