package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-compare/internal/api/http"
	"github.com/i474232898/weather-compare/internal/config"
	"github.com/i474232898/weather-compare/internal/scheduler"
	"github.com/i474232898/weather-compare/internal/store"
	"github.com/i474232898/weather-compare/internal/views"
	"github.com/i474232898/weather-compare/internal/weather"
	"github.com/i474232898/weather-compare/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, cfg.OpenWeatherURL, cfg.MaxRetries)

	// Probe history is only kept when the availability probe is enabled.
	var probes weather.ProbeStore
	if cfg.ProbeCity != "" {
		probes = store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)
	}

	service := weather.NewService(provider, probes, cfg.DisplayLocation)

	sched := scheduler.New(cfg.ProbeCity, cfg.ProbeInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := httpapi.NewApp(views.New())

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	httpapi.RegisterRoutes(app, service, httpapi.Options{
		ProbeCity: cfg.ProbeCity,
		Circuit:   provider,
	})

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("INFO: listening on :%s", cfg.Port)
	if err := httpapi.Run(ctx, app, ":"+cfg.Port, 10*time.Second); err != nil {
		sched.Stop()
		log.Fatalf("server stopped: %v", err)
	}
}
