package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/espressobank/extrato/internal/http/statement"
)

// New builds the development statement API router. secret, when
// non-empty, gates the statements route behind bearer-token auth.
func New(statementsV1 *statement.Handler, secret string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/statements", func(r chi.Router) {
		if secret != "" {
			r.Use(RequireToken(secret))
		}

		statementsV1.Routes(r)
	})

	return router
}
