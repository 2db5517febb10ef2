package middleware

import (
	"net/http"

	"telehealth-portal/pkg/utils"

	"github.com/go-chi/cors"
)

// CORS lets the configured browser origins call the API with cookies.
func CORS(cfg utils.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
