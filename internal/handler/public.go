package handler // public-facing intake handlers: order form, booking form, quote

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/joacia/laundry-service/internal/intake"
	"github.com/joacia/laundry-service/internal/model"
	"github.com/joacia/laundry-service/internal/notify"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/service"
)

// PublicHandler serves the unauthenticated storefront endpoints.
type PublicHandler struct {
	Bookings  *service.BookingService
	Orders    *service.OrderService
	OrderRepo *repository.OrderRepo
}

// NewPublicHandler wires a PublicHandler.
func NewPublicHandler(bookings *service.BookingService, orders *service.OrderService, orderRepo *repository.OrderRepo) *PublicHandler {
	return &PublicHandler{Bookings: bookings, Orders: orders, OrderRepo: orderRepo}
}

// LookupOrder handles GET /v1/public/orders/:id.  The booking page
// calls it to verify an order reference before letting the customer
// schedule a pickup against it.
func (h *PublicHandler) LookupOrder(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "order id is required"})
	}
	order, err := h.OrderRepo.Get(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not look up order"})
	}
	return c.JSON(http.StatusOK, order)
}

// Quote handles GET /v1/public/quote?service=&quantity= and prices a
// prospective order from the public rate card without storing anything.
func (h *PublicHandler) Quote(c echo.Context) error {
	serviceType := c.QueryParam("service")
	quantity, err := strconv.ParseFloat(c.QueryParam("quantity"), 64)
	if err != nil || quantity <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity must be a positive number"})
	}
	total := h.Orders.Quote(serviceType, quantity)
	return c.JSON(http.StatusOK, map[string]any{
		"serviceType": serviceType,
		"quantity":    quantity,
		"total":       total,
	})
}

// Slots handles GET /v1/public/slots?date= and returns the pickup
// times still selectable for that date.
func (h *PublicHandler) Slots(c echo.Context) error {
	date := c.QueryParam("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"date":  date,
		"slots": service.AvailableSlots(date, time.Now()),
	})
}

// SubmitBooking handles POST /v1/public/bookings.  On success the
// response carries a sticky notification: the booking page keeps the
// confirmation visible until the customer dismisses it.
func (h *PublicHandler) SubmitBooking(c echo.Context) error {
	var b model.Booking
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	b.ID = "" // identifiers are always server-issued
	b.Status = ""

	created, fieldErrs, err := h.Bookings.Submit(c.Request().Context(), b, service.SourcePublic)
	if err != nil {
		if err == service.ErrOrderNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save booking"})
	}
	if !fieldErrs.OK() {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"errors":       fieldErrs,
			"notification": notify.New(notify.Error, "Please fix the highlighted fields"),
		})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"booking":      created,
		"notification": notify.StickySuccess("Booking received! We will contact you to confirm your pickup."),
	})
}

// SubmitOrder handles POST /v1/public/orders.  The form posts
// multipart/form-data so an image can ride along; a plain JSON body
// is also accepted when no file is attached.
func (h *PublicHandler) SubmitOrder(c echo.Context) error {
	var o model.Order
	var files []intake.File

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		o = model.Order{
			CustomerName:  c.FormValue("customerName"),
			CustomerEmail: c.FormValue("customerEmail"),
			CustomerPhone: c.FormValue("customerPhone"),
			ServiceType:   c.FormValue("serviceType"),
			Instructions:  c.FormValue("instructions"),
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
	o.Status = ""

	created, warnings, fieldErrs, err := h.Orders.Submit(c.Request().Context(), o, files, service.SourcePublic)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save order"})
	}
	if !fieldErrs.OK() {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"errors":       fieldErrs,
			"notification": notify.New(notify.Error, "Please fix the highlighted fields"),
		})
	}
	resp := map[string]any{
		"order":        created,
		"notification": notify.New(notify.Success, "Order placed successfully!"),
	}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	return c.JSON(http.StatusCreated, resp)
}

// formFiles reads every uploaded "images" part into memory.
func formFiles(c echo.Context) ([]intake.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	var files []intake.File
	for _, hdr := range form.File["images"] {
		src, err := hdr.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, intake.File{
			Name:        hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}
