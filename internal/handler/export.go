package handler // spreadsheet export handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/joacia/laundry-service/internal/export"
	"github.com/joacia/laundry-service/internal/repository"
)

// ExportHandler serves downloadable reports.
type ExportHandler struct {
	Orders *repository.OrderRepo
}

// NewExportHandler wires an ExportHandler.
func NewExportHandler(orders *repository.OrderRepo) *ExportHandler {
	return &ExportHandler{Orders: orders}
}

// OrdersXLSX handles GET /v1/admin/export/orders.xlsx and streams the
// full order book as an Excel workbook.
func (h *ExportHandler) OrdersXLSX(c echo.Context) error {
	orders, err := h.Orders.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load orders"})
	}

	var buf bytes.Buffer
	if err := export.Orders(&buf, orders); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not build workbook"})
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
