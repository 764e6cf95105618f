package router // router defines how HTTP routes are registered for the API

import (
	"github.com/iliyamo/property-management/internal/handler"    // owner handlers
	"github.com/iliyamo/property-management/internal/middleware" // JWT + role middlewares
	"github.com/labstack/echo/v4"
)

// RegisterOwner registers OWNER-scoped endpoints under /v1.
// All routes require a valid JWT and OWNER role. The optional dashboardMW
// middlewares (typically the Redis response cache) wrap only the analytics
// endpoints, which are the expensive reads worth caching.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string, dashboardMW ...echo.MiddlewareFunc) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER"),
	)

	// ---- Properties ----
	g.POST("/properties", o.CreateProperty)
	g.GET("/properties", o.ListProperties)
	g.GET("/properties/:id", o.GetProperty)
	g.PUT("/properties/:id", o.UpdateProperty)
	g.PATCH("/properties/:id", o.UpdateProperty) // allow partial updates via PATCH as well

	// ---- Contracts ----
	g.POST("/contracts", o.CreateContract)
	g.GET("/contracts", o.ListContracts)
	g.PATCH("/contracts/:id/status", o.UpdateContractStatus)

	// ---- Payments ----
	g.POST("/payments", o.CreatePayment)
	g.GET("/payments", o.ListPayments)
	g.POST("/payments/:id/pay", o.MarkPaymentPaid)

	// ---- Maintenance ----
	g.POST("/maintenance", o.CreateMaintenanceRequest)
	g.GET("/maintenance", o.ListMaintenanceRequests)
	g.PATCH("/maintenance/:id/status", o.UpdateMaintenanceStatus)

	// ---- Analytics ----
	g.GET("/dashboard", o.GetDashboard, dashboardMW...)
	g.GET("/dashboard/cashflow", o.GetCashFlow, dashboardMW...)
	g.GET("/reports/revenue", o.GetRevenueReport, dashboardMW...)
}
