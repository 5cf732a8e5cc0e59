package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/fatura/internal/http/auth"
	"github.com/MrJamesThe3rd/fatura/internal/http/bill"
	"github.com/MrJamesThe3rd/fatura/internal/http/card"
	"github.com/MrJamesThe3rd/fatura/internal/http/categorize"
	"github.com/MrJamesThe3rd/fatura/internal/http/item"
)

func New(
	jwtSecret string,
	cardsV1 *card.Handler,
	billsV1 *bill.Handler,
	itemsV1 *item.Handler,
	categorizeV1 *categorize.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/cards", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cardsV1.Routes(r)
		})

		r.Route("/bills", func(r chi.Router) {
			billsV1.Routes(r)
		})

		r.Route("/items", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			itemsV1.Routes(r)
		})

		r.Route("/categorize", func(r chi.Router) {
			categorizeV1.Routes(r)
		})
	})

	return router
}
