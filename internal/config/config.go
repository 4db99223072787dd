package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-compare/internal/weather/providers"
)

type AppConfig struct {
	// OpenWeatherAPIKey is read once at startup. An empty key does not stop
	// the server but every lookup fails.
	OpenWeatherAPIKey string
	OpenWeatherURL    string

	// HTTPTimeout bounds outbound provider calls (0 = transport default).
	HTTPTimeout time.Duration
	MaxRetries  int

	// Location used to display sunrise and sunset.
	DisplayLocation *time.Location

	// Availability probe; an empty ProbeCity disables it.
	ProbeCity     string
	ProbeInterval time.Duration

	// In-memory probe history retention.
	StoreMaxHistory int           // max number of results per city (0 = unlimited)
	StoreMaxAge     time.Duration // max age of results (0 = unlimited)

	Port string
}

// Load reads configuration from .env and the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = getenvDefault("OPENWEATHER_API_KEY", os.Getenv("API_KEY"))
	if cfg.OpenWeatherAPIKey == "" {
		log.Printf("WARN: OPENWEATHER_API_KEY is not set; weather lookups will fail")
	}
	cfg.OpenWeatherURL = getenvDefault("OPENWEATHER_URL", providers.DefaultOpenWeatherURL)

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "0s"); err != nil {
		return nil, err
	}
	cfg.MaxRetries = getenvInt("PROVIDER_MAX_RETRIES", 0)
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("invalid PROVIDER_MAX_RETRIES: must not be negative")
	}

	cfg.DisplayLocation = time.Local
	if tz := os.Getenv("DISPLAY_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE: %w", err)
		}
		cfg.DisplayLocation = loc
	}

	cfg.ProbeCity = os.Getenv("PROBE_CITY")
	if cfg.ProbeInterval, err = getenvDuration("PROBE_INTERVAL", "15m"); err != nil {
		return nil, err
	}
	if cfg.ProbeInterval <= 0 {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: must be positive")
	}

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96) // roughly 24h at 15-minute intervals
	if cfg.StoreMaxAge, err = getenvDuration("STORE_MAX_AGE", "24h"); err != nil {
		return nil, err
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
