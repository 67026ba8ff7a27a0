package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/openglucose/glucose-tracker/docs"
	"github.com/openglucose/glucose-tracker/internal/api/handler"
	"github.com/openglucose/glucose-tracker/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler       *handler.UserHandler
	settingsHandler   *handler.SettingsHandler
	eventHandler      *handler.EventHandler
	simulationHandler *handler.SimulationHandler
	insightsHandler   *handler.InsightsHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	settingsHandler *handler.SettingsHandler,
	eventHandler *handler.EventHandler,
	simulationHandler *handler.SimulationHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		userHandler:       userHandler,
		settingsHandler:   settingsHandler,
		eventHandler:      eventHandler,
		simulationHandler: simulationHandler,
		insightsHandler:   insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			// Per-user resources
			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				r.Route("/settings", func(r chi.Router) {
					r.Post("/", rt.settingsHandler.Create)
					r.Get("/", rt.settingsHandler.List)
				})
				r.Get("/profile", rt.settingsHandler.GetProfile)

				r.Route("/events", func(r chi.Router) {
					r.Post("/", rt.eventHandler.Create)
					r.Get("/", rt.eventHandler.List)
				})

				r.Get("/simulation", rt.simulationHandler.Simulate)
				r.Get("/insights", rt.insightsHandler.GetInsights)
			})
		})
	})

	return r
}
