package router

import (
	"deliveryform/internal/handlers/delivery"
	"deliveryform/internal/handlers/form"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Delivery delivery.Handler
	Form     form.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Form.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Delivery.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
