package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	r.Get("/items", handlers.GetItemsHandler)
	r.Get("/items/low-stock", handlers.GetLowStockItemsHandler)
	r.Get("/items/{id}", handlers.GetItemByIDHandler)
	r.Get("/stats", handlers.GetStatsHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/items", handlers.CreateItemHandler)
		r.Put("/items/{id}", handlers.UpdateItemHandler)
		r.Delete("/items/{id}", handlers.DeleteItemHandler)
		r.Put("/items/{id}/quantity", handlers.SetQuantityHandler)
		r.Post("/items/{id}/adjust", handlers.AdjustQuantityHandler)
		r.Post("/alerts/low-stock", handlers.SendLowStockAlertsHandler)
	})

	return r
}
