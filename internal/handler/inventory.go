package handler // admin inventory handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/notify"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/validate"
)

// InventoryHandler serves the supply-tracking tab of the dashboard.
type InventoryHandler struct {
	Repo *repository.InventoryRepo
}

// NewInventoryHandler wires an InventoryHandler.
func NewInventoryHandler(repo *repository.InventoryRepo) *InventoryHandler {
	return &InventoryHandler{Repo: repo}
}

// List handles GET /v1/admin/inventory.  Items come back grouped by
// category the way the inventory grid renders them, with a flat list
// alongside and the IDs of items at or below their minimum stock.
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load inventory"})
	}
	var low []string
	for _, it := range items {
		if it.LowStock() {
			low = append(low, it.ID)
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items":    items,
		"grouped":  repository.ByCategory(items),
		"lowStock": low,
	})
}

// Create handles POST /v1/admin/inventory.
func (h *InventoryHandler) Create(c echo.Context) error {
	var item model.InventoryItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if fe := validateItem(item); !fe.OK() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	item.ID = ""
	item.CreatedAt = time.Now()
	created, err := h.Repo.Create(c.Request().Context(), item)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create item"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"item":         created,
		"notification": notify.New(notify.Success, "Inventory item added"),
	})
}

// Update handles PUT /v1/admin/inventory/:id.
func (h *InventoryHandler) Update(c echo.Context) error {
	id := c.Param("id")
	existing, err := h.Repo.Get(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load item"})
	}

	var item model.InventoryItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if fe := validateItem(item); !fe.OK() {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fe})
	}
	item.CreatedAt = existing.CreatedAt

	updated, err := h.Repo.Update(c.Request().Context(), id, item)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update item"})
	}
	resp := map[string]any{
		"item":         updated,
		"notification": notify.New(notify.Success, "Inventory item updated"),
	}
	if updated.LowStock() {
		resp["notification"] = notify.New(notify.Warning, "Stock is at or below the minimum for "+updated.Name)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /v1/admin/inventory/:id?confirm=true.
func (h *InventoryHandler) Delete(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "deletion requires confirm=true"})
	}
	if err := h.Repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete item"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"notification": notify.New(notify.Success, "Inventory item removed"),
	})
}

func validateItem(item model.InventoryItem) validate.FieldErrors {
	fe := validate.FieldErrors{}
	if item.Name == "" {
		fe["name"] = "Name is required"
	}
	if item.Category == "" {
		fe["category"] = "Category is required"
	}
	if item.Quantity < 0 {
		fe["quantity"] = "Quantity cannot be negative"
	}
	if item.MinStock < 0 {
		fe["minStock"] = "Minimum stock cannot be negative"
	}
	return fe
}
