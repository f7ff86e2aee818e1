package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joacia/laundry-service/internal/handler"
)

// RegisterRoutes registers the operational endpoints on the provided
// Echo instance: the health check used by load balancers and the
// Prometheus scrape target.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterPublic registers the unauthenticated storefront endpoints
// under /v1/public: the order form, the booking form and its order
// lookup gate, and the self-service quote.  The rate limiter is
// attached here so only customer-facing submissions are throttled.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/public")
	if limiter != nil {
		g.Use(limiter)
	}

	g.POST("/orders", p.SubmitOrder)
	g.GET("/orders/:id", p.LookupOrder)
	g.POST("/bookings", p.SubmitBooking)
	g.GET("/quote", p.Quote)
	g.GET("/slots", p.Slots)
}

// AdminHandlers bundles everything the dashboard routes need.
type AdminHandlers struct {
	Bookings  *handler.BookingHandler
	Orders    *handler.OrderHandler
	Customers *handler.CustomerHandler
	Inventory *handler.InventoryHandler
	Dashboard *handler.DashboardHandler
	Export    *handler.ExportHandler
	Settings  *handler.SettingsHandler
}

// RegisterAdmin registers the dashboard endpoints under /v1/admin.
// The response cache, when configured, fronts only the read-heavy
// dashboard aggregation endpoints.
func RegisterAdmin(e *echo.Echo, h AdminHandlers, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/admin")

	// ---- Bookings ----
	g.GET("/bookings", h.Bookings.List)
	g.POST("/bookings", h.Bookings.Create)
	g.GET("/bookings/:id", h.Bookings.Get)
	g.PUT("/bookings/:id", h.Bookings.Update)
	g.PATCH("/bookings/:id", h.Bookings.Update) // alias for clients that use PATCH
	g.DELETE("/bookings/:id", h.Bookings.Delete)

	// ---- Orders ----
	g.GET("/orders", h.Orders.List)
	g.POST("/orders", h.Orders.Create)
	g.GET("/orders/:id", h.Orders.Get)
	g.PUT("/orders/:id", h.Orders.Update)
	g.PATCH("/orders/:id", h.Orders.Update)
	g.DELETE("/orders/:id", h.Orders.Delete)

	// ---- Customers ----
	g.GET("/customers", h.Customers.List)
	g.POST("/customers", h.Customers.Create)
	g.PUT("/customers/:id", h.Customers.Update)
	g.PATCH("/customers/:id", h.Customers.Update)
	g.DELETE("/customers/:id", h.Customers.Delete)

	// ---- Inventory ----
	g.GET("/inventory", h.Inventory.List)
	g.POST("/inventory", h.Inventory.Create)
	g.PUT("/inventory/:id", h.Inventory.Update)
	g.PATCH("/inventory/:id", h.Inventory.Update)
	g.DELETE("/inventory/:id", h.Inventory.Delete)

	// ---- Dashboard ----
	dash := g.Group("/dashboard")
	if cache != nil {
		dash.Use(cache)
	}
	dash.GET("/stats", h.Dashboard.Stats)
	dash.GET("/activity", h.Dashboard.Activity)
	g.GET("/search", h.Dashboard.Search)

	// ---- Export & settings ----
	g.GET("/export/orders.xlsx", h.Export.OrdersXLSX)
	g.GET("/settings", h.Settings.Get)
	g.PUT("/settings", h.Settings.Update)
}
