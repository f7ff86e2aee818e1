package handler // dashboard aggregation handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joacia/laundry-service/internal/service"
)

// DashboardHandler serves the stats block, activity feed and global
// search backing the admin landing page.
type DashboardHandler struct {
	Dash          *service.Dashboard
	RefreshMillis int
}

// NewDashboardHandler wires a DashboardHandler.  refreshMillis tells
// the client how often to poll for fresh stats.
func NewDashboardHandler(dash *service.Dashboard, refreshMillis int) *DashboardHandler {
	return &DashboardHandler{Dash: dash, RefreshMillis: refreshMillis}
}

// Stats handles GET /v1/admin/dashboard/stats.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.Dash.Stats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not compute stats"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"stats":           stats,
		"refreshInterval": h.RefreshMillis,
	})
}

// Activity handles GET /v1/admin/dashboard/activity.
func (h *DashboardHandler) Activity(c echo.Context) error {
	items, err := h.Dash.Activity(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load activity"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// Search handles GET /v1/admin/search?q= and matches the query across
// bookings, orders and customers.
func (h *DashboardHandler) Search(c echo.Context) error {
	results, err := h.Dash.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "search failed"})
	}
	return c.JSON(http.StatusOK, results)
}
