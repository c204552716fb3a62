// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rayenbac/pfe-project/internal/config"
	"github.com/rayenbac/pfe-project/internal/database"
	"github.com/rayenbac/pfe-project/internal/dataset"
	"github.com/rayenbac/pfe-project/internal/handlers"
	"github.com/rayenbac/pfe-project/internal/repository"
	"github.com/rayenbac/pfe-project/internal/routes"
	"github.com/rayenbac/pfe-project/internal/services"
)

func main() {

	// =========================
	// LOAD CONFIG
	// =========================
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	// =========================
	// PICK DATA SOURCE
	// =========================
	var source dataset.Source
	switch cfg.DataSource {
	case "postgres":
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("Database connection failed: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		source = repository.NewPostgresSource(db)
	default:
		source = &dataset.CSVSource{Dir: cfg.DataDir}
	}

	// =========================
	// LOAD DATA
	// =========================
	ds, err := source.Load()
	if err != nil {
		log.Printf("⚠️ Data load failed: %v", err)
		log.Println("⚠️ Generating synthetic dataset instead")
		ds = dataset.Generate(
			dataset.DefaultNumUsers,
			dataset.DefaultNumProperties,
			dataset.DefaultNumInteractions,
			time.Now().UnixNano(),
		)
		if err := source.Save(ds); err != nil {
			log.Printf("⚠️ Could not persist generated data: %v", err)
		}
	}

	// =========================
	// BUILD ENGINE
	// =========================
	engine, err := services.NewEngine(ds)
	if err != nil {
		log.Fatalf("Engine initialization failed: %v", err)
	}

	// =========================
	// INIT SERVICES
	// =========================
	collaborativeService := services.NewCollaborativeService(engine)
	contentService := services.NewContentBasedService(engine)
	hybridService := services.NewHybridService(
		collaborativeService, contentService,
		cfg.CollaborativeWeight, cfg.ContentWeight,
	)
	rankingService := services.NewRankingService(engine, services.TrendingWeights{
		ViewWeight:   cfg.TrendingViewWeight,
		CountWeight:  cfg.TrendingCountWeight,
		RatingWeight: cfg.TrendingRatingWeight,
	})
	preferenceService := services.NewPreferenceService(engine)

	// =========================
	// INIT HANDLERS & ROUTES
	// =========================
	propertyHandler := handlers.NewPropertyHandler(engine)
	recommendationHandler := handlers.NewRecommendationHandler(
		engine, collaborativeService, contentService,
		hybridService, rankingService, preferenceService,
	)
	dataHandler := handlers.NewDataHandler(engine, source)

	router := routes.SetupRoutes(cfg, propertyHandler, recommendationHandler, dataHandler)

	// =========================
	// START SERVER
	// =========================
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("✅ Server listening on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// =========================
	// GRACEFUL SHUTDOWN
	// =========================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
