package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the app reads from the environment. The
// remote food-court API is an external service; only its base URL is
// configured here.
type Config struct {
	APIBaseURL   string
	StoragePath  string
	Port         string
	PaymentDelay time.Duration
	PollInterval time.Duration
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid duration, using fallback")
		return fallback
	}
	return d
}

// Load reads .env if present and assembles the config from env vars.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment")
	}

	return Config{
		APIBaseURL:   getEnv("FC_API_URL", "http://localhost:5000"),
		StoragePath:  getEnv("FC_STORAGE_PATH", "foodcourt.db"),
		Port:         getEnv("PORT", "8080"),
		PaymentDelay: getEnvDuration("FC_PAYMENT_DELAY", 2*time.Second),
		PollInterval: getEnvDuration("FC_POLL_INTERVAL", 10*time.Second),
	}
}
