package api

import (
	"net/http"

	"visit-route-service/internal/api/handlers"
	"visit-route-service/internal/platform/metrics"
	"visit-route-service/internal/ports"
	"visit-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(optimizer *services.Optimizer, geocoder ports.Geocoder, repo ports.RouteRepository) http.Handler {
	mux := http.NewServeMux()

	optHandler := &handlers.OptimizeHandler{
		Optimizer: optimizer,
		Geocoder:  geocoder,
	}
	routeHandler := &handlers.RouteHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/optimize", optHandler.Optimize)
	mux.HandleFunc("/routes", routeHandler.Collection)
	mux.HandleFunc("/routes/", routeHandler.Delete)
	mux.Handle("/metrics", metrics.Handler())

	return loggingMiddleware(mux)
}
