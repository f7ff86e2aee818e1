package handler // business settings handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joacia/laundry-service/internal/config"
	"github.com/joacia/laundry-service/internal/notify"
	"github.com/joacia/laundry-service/internal/pricing"
	"github.com/joacia/laundry-service/internal/store"
)

// SettingsHandler lets the operator read and edit the business
// profile and price lists.  The YAML file provides the initial
// values; edits made through the dashboard are persisted in the draft
// store and win over the file on subsequent loads.
type SettingsHandler struct {
	Drafts   *store.Store
	Defaults config.Settings
}

// NewSettingsHandler wires a SettingsHandler.
func NewSettingsHandler(drafts *store.Store, defaults config.Settings) *SettingsHandler {
	return &SettingsHandler{Drafts: drafts, Defaults: defaults}
}

// current merges persisted overrides over the defaults.
func (h *SettingsHandler) current() (config.Settings, error) {
	s := h.Defaults
	if err := h.Drafts.Settings(&s); err != nil {
		return s, err
	}
	if s.AdminRates == nil {
		s.AdminRates = pricing.AdminRates
	}
	if s.PublicRates == nil {
		s.PublicRates = pricing.PublicRates
	}
	return s, nil
}

// Get handles GET /v1/admin/settings.
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.current()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load settings"})
	}
	return c.JSON(http.StatusOK, s)
}

// Update handles PUT /v1/admin/settings.
func (h *SettingsHandler) Update(c echo.Context) error {
	var s config.Settings
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	for service, rate := range s.AdminRates {
		if rate < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "rate for " + service + " cannot be negative"})
		}
	}
	for service, rate := range s.PublicRates {
		if rate < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "rate for " + service + " cannot be negative"})
		}
	}
	if err := h.Drafts.SaveSettings(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save settings"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"settings":     s,
		"notification": notify.New(notify.Success, "Settings saved"),
	})
}
