package handler // admin customer management handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/notify"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/validate"
)

// CustomerHandler serves the dashboard's customer list.  Customers
// are mostly created as a side effect of bookings and orders; direct
// creation exists for walk-in contacts the operator wants on file.
type CustomerHandler struct {
	Repo *repository.CustomerRepo
}

// NewCustomerHandler wires a CustomerHandler.
func NewCustomerHandler(repo *repository.CustomerRepo) *CustomerHandler {
	return &CustomerHandler{Repo: repo}
}

// List handles GET /v1/admin/customers.
func (h *CustomerHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load customers"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// Create handles POST /v1/admin/customers.  The email must be valid
// and not already on file; duplicates are folded into the existing
// record by the intake workflow, never created here.
func (h *CustomerHandler) Create(c echo.Context) error {
	var body model.Customer
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	fe := validate.FieldErrors{}
	if body.Name == "" {
		fe["name"] = "Name is required"
	}
	if !validate.Email(body.Email) {
		fe["email"] = "Please enter a valid email address"
	}
	if !fe.OK() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}

	if _, err := h.Repo.FindByEmail(c.Request().Context(), body.Email); err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "a customer with this email already exists"})
	} else if err != repository.ErrNotFound {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not check for duplicates"})
	}

	body.ID = ""
	created, err := h.Repo.Create(c.Request().Context(), body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create customer"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"customer":     created,
		"notification": notify.New(notify.Success, "Customer added"),
	})
}

// Update handles PUT /v1/admin/customers/:id.
func (h *CustomerHandler) Update(c echo.Context) error {
	var body model.Customer
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.Email != "" && !validate.Email(body.Email) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"errors": validate.FieldErrors{"email": "Please enter a valid email address"},
		})
	}
	updated, err := h.Repo.Update(c.Request().Context(), c.Param("id"), body)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update customer"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"customer":     updated,
		"notification": notify.New(notify.Success, "Customer updated"),
	})
}

// Delete handles DELETE /v1/admin/customers/:id?confirm=true.
func (h *CustomerHandler) Delete(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "deletion requires confirm=true"})
	}
	if err := h.Repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete customer"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"notification": notify.New(notify.Success, "Customer deleted"),
	})
}
