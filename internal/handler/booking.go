package handler // admin booking CRUD handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/notify"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/service"
	"github.com/joacia/laundry-service/internal/validate"
)

// BookingHandler serves the dashboard's booking management endpoints.
type BookingHandler struct {
	Svc  *service.BookingService
	Repo *repository.BookingRepo
}

// NewBookingHandler wires a BookingHandler.
func NewBookingHandler(svc *service.BookingService, repo *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Svc: svc, Repo: repo}
}

// List handles GET /v1/admin/bookings and returns every booking.
func (h *BookingHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load bookings"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// Get handles GET /v1/admin/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	b, err := h.Repo.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load booking"})
	}
	return c.JSON(http.StatusOK, b)
}

// Create handles POST /v1/admin/bookings.  Admin entries run through
// the same intake workflow as the public form, so the ledger and the
// activity feed stay consistent.
func (h *BookingHandler) Create(c echo.Context) error {
	var b model.Booking
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	b.ID = ""

	created, fieldErrs, err := h.Svc.Submit(c.Request().Context(), b, service.SourceAdmin)
	if err != nil {
		if err == service.ErrOrderNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create booking"})
	}
	if !fieldErrs.OK() {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"errors":       fieldErrs,
			"notification": notify.New(notify.Error, "Please fix the highlighted fields"),
		})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"booking":      created,
		"notification": notify.New(notify.Success, "Booking created"),
	})
}

// Update handles PUT /v1/admin/bookings/:id.  The creation timestamp
// of the stored record is preserved; everything else follows the
// request body.
func (h *BookingHandler) Update(c echo.Context) error {
	id := c.Param("id")
	existing, err := h.Repo.Get(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load booking"})
	}

	var b model.Booking
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	b.CreatedAt = existing.CreatedAt
	if b.Status == "" {
		b.Status = existing.Status
	}

	// Edits may move the pickup date freely, including into the past,
	// so only the field shape is validated here.
	fe := validate.FieldErrors{}
	if b.Email != "" && !validate.Email(b.Email) {
		fe["email"] = "Please enter a valid email address"
	}
	if b.Phone != "" && !validate.Phone(b.Phone) {
		fe["phone"] = "Please enter a valid phone number"
	}
	if !fe.OK() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}

	updated, err := h.Repo.Update(c.Request().Context(), id, b)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update booking"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"booking":      updated,
		"notification": notify.New(notify.Success, "Booking updated"),
	})
}

// Delete handles DELETE /v1/admin/bookings/:id?confirm=true.  The
// confirm flag stands in for the dashboard's confirmation dialog; a
// request without it is rejected before anything is removed.
func (h *BookingHandler) Delete(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "deletion requires confirm=true"})
	}
	if err := h.Repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete booking"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"notification": notify.New(notify.Success, "Booking deleted"),
	})
}
