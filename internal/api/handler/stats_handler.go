package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savoria/ordering-system/internal/core/ports"
)

// StatsHandler serves payment-derived aggregates.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// AdminStats handles GET /admin-stats — platform-wide revenue and counts.
//
// @Summary      Platform summary
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  errorResponse
// @Router       /admin-stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.service.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// OrderStats handles GET /order-stats — per-category order count and revenue.
//
// @Summary      Per-category revenue breakdown
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   map[string]any
// @Failure      403  {object}  errorResponse
// @Router       /order-stats [get]
func (h *StatsHandler) OrderStats(c echo.Context) error {
	stats, err := h.service.OrderStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// UserStats handles GET /user-stats — the caller's own purchase summary.
func (h *StatsHandler) UserStats(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	stats, err := h.service.UserStats(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
