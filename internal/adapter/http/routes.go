package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Health       *Handler
	Catalog      *CatalogHandler
	Reservations *ReservationHandler
	Investments  *InvestmentHandler
	Sales        *SaleHandler
}

// Register mounts every route. auth resolves the caller; idem guards the
// mutating routes against retried requests.
func Register(e *echo.Echo, h Handlers, auth, idem echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	v1 := e.Group("/v1")

	// public reads
	v1.GET("/properties/:property_id", h.Catalog.GetProperty)
	v1.GET("/projects", h.Catalog.ListProjects)
	v1.GET("/projects/:project_id", h.Catalog.GetProject)

	v1.POST("/properties", h.Catalog.CreateProperty, auth, idem)
	v1.POST("/projects", h.Catalog.CreateProject, auth, idem)
	v1.GET("/admin/ledger", h.Catalog.Reconcile, auth)

	v1.POST("/reservations", h.Reservations.Create, auth, idem)
	v1.GET("/reservations/mine", h.Reservations.ListMine, auth)
	v1.GET("/reservations/received", h.Reservations.ListReceived, auth)
	v1.POST("/reservations/:reservation_id/resolve", h.Reservations.Resolve, auth, idem)
	v1.POST("/reservations/:reservation_id/cancel", h.Reservations.Cancel, auth, idem)
	v1.DELETE("/reservations/:reservation_id", h.Reservations.Purge, auth, idem)

	v1.POST("/investments", h.Investments.Invest, auth, idem)
	v1.GET("/investments/mine", h.Investments.ListMine, auth)
	v1.GET("/investments", h.Investments.ListAll, auth)

	v1.POST("/sales", h.Sales.Create, auth, idem)
	v1.POST("/sales/:sale_id/confirm", h.Sales.Confirm, auth, idem)
	v1.GET("/sales/mine", h.Sales.ListMine, auth)
	v1.GET("/sales", h.Sales.ListAll, auth)
}
