package routes

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rayenbac/pfe-project/internal/config"
	"github.com/rayenbac/pfe-project/internal/handlers"
)

func SetupRoutes(
	cfg *config.Config,
	propertyHandler *handlers.PropertyHandler,
	recommendationHandler *handlers.RecommendationHandler,
	dataHandler *handlers.DataHandler,
) *gin.Engine {

	router := gin.New()

	// =========================
	// GLOBAL MIDDLEWARE
	// =========================
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// =========================
	// CORS CONFIG (DEV / PROD)
	// =========================
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.Env == "production" {
		if cfg.CORSOrigin == "" {
			log.Fatal("❌ CORS_ORIGIN environment variable is NOT set in production!")
		}
		corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
		log.Printf("✅ CORS configured for production: %s", cfg.CORSOrigin)
	} else {
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://localhost:4200",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:4200",
			"http://127.0.0.1:5173",
		}
		if cfg.CORSOrigin != "" {
			allowedOrigins = append(allowedOrigins, cfg.CORSOrigin)
		}
		corsConfig.AllowOrigins = allowedOrigins
		log.Printf("✅ CORS configured for development with %d allowed origins", len(allowedOrigins))
	}

	router.Use(cors.New(corsConfig))

	// =========================
	// SECURITY HEADERS MIDDLEWARE
	// =========================
	router.Use(func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	})

	// =========================
	// API ROUTES
	// =========================
	api := router.Group("/api")
	{
		// ---------- PROPERTIES ----------
		properties := api.Group("/properties")
		{
			properties.GET("", propertyHandler.GetAllProperties)
			properties.GET("/:id", propertyHandler.GetPropertyByID)
		}

		// ---------- RECOMMENDATIONS ----------
		recommendations := api.Group("/recommendations")
		{
			recommendations.GET("", recommendationHandler.GetRecommendations)
			recommendations.GET("/similar", recommendationHandler.GetSimilarProperties)
			recommendations.GET("/trending", recommendationHandler.GetTrendingProperties)
			recommendations.GET("/preferences", recommendationHandler.GetUserPreferences)
		}

		// ---------- DATA ----------
		data := api.Group("/data")
		{
			data.POST("/reload", dataHandler.ReloadData)
			data.POST("/generate", dataHandler.GenerateData)
		}
	}

	// =========================
	// HEALTH & ROOT
	// =========================
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "Server is running",
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "Property Recommendation API",
			"version": "1.0.0",
		})
	})

	return router
}
