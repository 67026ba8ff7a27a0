// Glucose Tracker API
//
// REST API for logging insulin and food events and simulating their
// blood-glucose effect.
//
//	@title			Glucose Tracker API
//	@version		1.0
//	@description	Record pump settings history and glucose-affecting events, then simulate the predicted blood-glucose derivative by superposing each event's decay curve.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			settings
//	@tag.description	Setting schedule history and derived profile endpoints
//
//	@tag.name			events
//	@tag.description	Event logging endpoints
//
//	@tag.name			simulation
//	@tag.description	Glucose effect simulation endpoints
//
//	@tag.name			insights
//	@tag.description	LLM narrative endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/openglucose/glucose-tracker/internal/api"
	"github.com/openglucose/glucose-tracker/internal/api/handler"
	"github.com/openglucose/glucose-tracker/internal/config"
	"github.com/openglucose/glucose-tracker/internal/domain"
	"github.com/openglucose/glucose-tracker/internal/llm"
	"github.com/openglucose/glucose-tracker/internal/repository"
	"github.com/openglucose/glucose-tracker/internal/seed"
	"github.com/openglucose/glucose-tracker/internal/service"
	"github.com/openglucose/glucose-tracker/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when no OTLP endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "glucose-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.SettingEntry{}, &domain.EventRecord{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingRepo, userRepo)
	eventService := service.NewEventService(eventRepo, userRepo)
	simulationService := service.NewSimulationService(settingRepo, eventRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize insights service
	insightsService := service.NewInsightsService(simulationService, settingsService, openaiClient, eventRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	eventHandler := handler.NewEventHandler(eventService)
	simulationHandler := handler.NewSimulationHandler(simulationService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(userHandler, settingsHandler, eventHandler, simulationHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
