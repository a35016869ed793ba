package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает HTTP API корзины под префиксом /v1/cart.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handler.logRequests)
	r.Use(middleware.Recoverer)

	r.Route("/v1/cart", func(r chi.Router) {
		r.Use(handler.session)

		r.Delete("/", handler.Clear)
		r.Get("/count", handler.Count)
		r.Get("/total", handler.Total)

		r.Get("/items", handler.ListItems)
		r.Post("/items", handler.AddItem)
		r.Put("/items", handler.UpdateItem)
		r.Delete("/items/{id}", handler.RemoveItem)

		r.Get("/coupons", handler.ListCoupons)
		r.Post("/coupons", handler.AddCoupon)
		r.Delete("/coupons/{id}", handler.RemoveCoupon)

		r.Get("/charges", handler.ListOtherCharges)
		r.Post("/charges", handler.AddOtherCharge)
		r.Delete("/charges/{id}", handler.RemoveOtherCharge)
	})
	return r
}
