package router

import (
	_ "arabina/docs"
	"arabina/internal/handlers/auth"
	"arabina/internal/handlers/booking"
	"arabina/internal/handlers/ledger"
	"arabina/internal/handlers/procurement"
	"arabina/internal/handlers/stock"
	"arabina/internal/handlers/tenant"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Tenant      tenant.Handler
	Booking     booking.Handler
	Ledger      ledger.Handler
	Procurement procurement.Handler
	Stock       stock.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Tenant.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Ledger.Router(routerGroup)
		r.DomainHandlers.Procurement.Router(routerGroup)
		r.DomainHandlers.Stock.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
