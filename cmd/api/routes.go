package main

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedResponse)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.cors.trustedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         60,
	}))
	router.Use(app.rateLimit)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// Game Endpoints
	router.Route("/v1/game", func(router chi.Router) {
		router.Get("/", app.GetAllGames)
		router.Get("/{id}", app.GetGame)
		router.Get("/{id}/passplot", app.GetGamePassPlot)
		router.Get("/{id}/passplot/watch", app.WatchGamePassPlot)
	})

	return router
}
