package handler // admin order CRUD handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/joacia/laundry-service/internal/intake"
	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/notify"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/service"
	"github.com/joacia/laundry-service/internal/validate"
)

// OrderHandler serves the dashboard's order management endpoints.
type OrderHandler struct {
	Svc  *service.OrderService
	Repo *repository.OrderRepo
}

// NewOrderHandler wires an OrderHandler.
func NewOrderHandler(svc *service.OrderService, repo *repository.OrderRepo) *OrderHandler {
	return &OrderHandler{Svc: svc, Repo: repo}
}

// List handles GET /v1/admin/orders and returns every order.
func (h *OrderHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load orders"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// Get handles GET /v1/admin/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	o, err := h.Repo.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load order"})
	}
	return c.JSON(http.StatusOK, o)
}

// Create handles POST /v1/admin/orders.  The dashboard form posts
// multipart/form-data so several photos can be attached; a JSON body
// is accepted when there are none.  Admin attachments are stored
// inline as data URLs rather than uploaded.
func (h *OrderHandler) Create(c echo.Context) error {
	var o model.Order
	var files []intake.File

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		o = model.Order{
			CustomerName:  c.FormValue("customerName"),
			CustomerEmail: c.FormValue("customerEmail"),
			CustomerPhone: c.FormValue("customerPhone"),
			ServiceType:   c.FormValue("serviceType"),
			Instructions:  c.FormValue("instructions"),
			Status:        c.FormValue("status"),
		}
		o.Quantity, _ = strconv.ParseFloat(c.FormValue("quantity"), 64)
		var err error
		files, err = formFiles(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not read uploaded files"})
		}
	} else if err := c.Bind(&o); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	o.ID = ""

	created, warnings, fieldErrs, err := h.Svc.Submit(c.Request().Context(), o, files, service.SourceAdmin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create order"})
	}
	if !fieldErrs.OK() {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"errors":       fieldErrs,
			"notification": notify.New(notify.Error, "Please fix the highlighted fields"),
		})
	}
	resp := map[string]any{
		"order":        created,
		"notification": notify.New(notify.Success, "Order created"),
	}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /v1/admin/orders/:id.  The total is recomputed
// from the edited service type and quantity; a total supplied in the
// body is ignored.  The creation timestamp is preserved.
func (h *OrderHandler) Update(c echo.Context) error {
	id := c.Param("id")
	existing, err := h.Repo.Get(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load order"})
	}

	var o model.Order
	if err := c.Bind(&o); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	o.CreatedAt = existing.CreatedAt
	if o.Status == "" {
		o.Status = existing.Status
	}
	if len(o.Attachments) == 0 {
		o.Attachments = existing.Attachments
	}
	if len(o.FileIDs) == 0 {
		o.FileIDs = existing.FileIDs
	}

	if fe := validate.Order(o); !fe.OK() {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"errors":       fe,
			"notification": notify.New(notify.Error, "Please fix the highlighted fields"),
		})
	}
	h.Svc.Reprice(&o)

	updated, err := h.Repo.Update(c.Request().Context(), id, o)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update order"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"order":        updated,
		"notification": notify.New(notify.Success, "Order updated"),
	})
}

// Delete handles DELETE /v1/admin/orders/:id?confirm=true.
func (h *OrderHandler) Delete(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "deletion requires confirm=true"})
	}
	if err := h.Repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete order"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"notification": notify.New(notify.Success, "Order deleted"),
	})
}
