package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ServerPort string

	// DataSource selects where the engine loads its tables from:
	// "csv" (files under DataDir) or "postgres".
	DataSource string
	DataDir    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	CORSOrigin string

	// Hybrid blend weights. They conventionally sum to 1 but are not
	// forced to.
	CollaborativeWeight float64
	ContentWeight       float64

	// Trending score weights: interaction volume, rating count,
	// average rating.
	TrendingViewWeight   float64
	TrendingCountWeight  float64
	TrendingRatingWeight float64
}

// Load reads .env (if present) and the environment and returns the
// resolved configuration. Callers own the returned value; there is no
// package-level config state.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := getEnv("ENV", "development")

	collabWeight, _ := strconv.ParseFloat(getEnv("COLLAB_WEIGHT", "0.6"), 64)
	contentWeight, _ := strconv.ParseFloat(getEnv("CONTENT_WEIGHT", "0.4"), 64)
	viewWeight, _ := strconv.ParseFloat(getEnv("TRENDING_VIEW_WEIGHT", "0.4"), 64)
	countWeight, _ := strconv.ParseFloat(getEnv("TRENDING_COUNT_WEIGHT", "0.3"), 64)
	ratingWeight, _ := strconv.ParseFloat(getEnv("TRENDING_RATING_WEIGHT", "0.3"), 64)

	var dbSSLMode string
	if env == "production" {
		dbSSLMode = getEnv("DB_SSLMODE", "require")
	} else {
		dbSSLMode = getEnv("DB_SSLMODE", "disable")
	}

	cfg := &Config{
		Env:        env,
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DataSource: getEnv("DATA_SOURCE", "csv"),
		DataDir:    getEnv("DATA_DIR", "./data"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "real_estate"),
		DBSSLMode:  dbSSLMode,

		CORSOrigin: getEnv("CORS_ORIGIN", ""),

		CollaborativeWeight: collabWeight,
		ContentWeight:       contentWeight,

		TrendingViewWeight:   viewWeight,
		TrendingCountWeight:  countWeight,
		TrendingRatingWeight: ratingWeight,
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
