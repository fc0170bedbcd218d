package router

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
)

// Middleware returns the handler chain that every public route is wrapped in.
// Tracing comes last so that the span is available to the handlers below it.
func Middleware(serviceName string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowCredentials: true,
			Debug:            false,
		}).Handler,
		middleware.Recoverer,
		otelchi.Middleware(serviceName),
	}
}
