package config

import (
	"strings"
	"testing"
	"time"

	"github.com/i474232898/weather-compare/internal/weather/providers"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OPENWEATHER_API_KEY", "API_KEY", "OPENWEATHER_URL", "HTTP_TIMEOUT",
		"PROVIDER_MAX_RETRIES", "DISPLAY_TIMEZONE", "PROBE_CITY", "PROBE_INTERVAL",
		"STORE_MAX_HISTORY", "STORE_MAX_AGE", "PORT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "" {
		t.Errorf("expected empty key, got %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.OpenWeatherURL != providers.DefaultOpenWeatherURL {
		t.Errorf("unexpected url %q", cfg.OpenWeatherURL)
	}
	if cfg.HTTPTimeout != 0 || cfg.MaxRetries != 0 {
		t.Errorf("expected no timeout and no retries, got %v / %d", cfg.HTTPTimeout, cfg.MaxRetries)
	}
	if cfg.DisplayLocation != time.Local {
		t.Errorf("expected local display zone, got %v", cfg.DisplayLocation)
	}
	if cfg.ProbeCity != "" || cfg.ProbeInterval != 15*time.Minute {
		t.Errorf("unexpected probe config %q / %v", cfg.ProbeCity, cfg.ProbeInterval)
	}
	if cfg.StoreMaxHistory != 96 || cfg.StoreMaxAge != 24*time.Hour {
		t.Errorf("unexpected store config %d / %v", cfg.StoreMaxHistory, cfg.StoreMaxAge)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("PROVIDER_MAX_RETRIES", "2")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("PROBE_CITY", "London")
	t.Setenv("PROBE_INTERVAL", "90s")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "legacy" {
		t.Errorf("expected API_KEY fallback, got %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.HTTPTimeout != 3*time.Second || cfg.MaxRetries != 2 {
		t.Errorf("unexpected client config %v / %d", cfg.HTTPTimeout, cfg.MaxRetries)
	}
	if cfg.DisplayLocation.String() != "UTC" {
		t.Errorf("unexpected zone %v", cfg.DisplayLocation)
	}
	if cfg.ProbeInterval != 90*time.Second {
		t.Errorf("expected 90s probe interval, got %v", cfg.ProbeInterval)
	}
	if cfg.ProbeCity != "London" || cfg.Port != "9090" {
		t.Errorf("unexpected probe city / port %q / %q", cfg.ProbeCity, cfg.Port)
	}

	t.Setenv("OPENWEATHER_API_KEY", "primary")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "primary" {
		t.Errorf("expected OPENWEATHER_API_KEY to win, got %q", cfg.OpenWeatherAPIKey)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"HTTP_TIMEOUT":         "soon",
		"PROBE_INTERVAL":       "often",
		"PROBE_INTERVAL=0":     "0s",
		"PROBE_INTERVAL=-1m":   "-1m",
		"STORE_MAX_AGE":        "-",
		"DISPLAY_TIMEZONE":     "Not/AZone",
		"PROVIDER_MAX_RETRIES": "-1",
	}
	for name, val := range cases {
		t.Run(name, func(t *testing.T) {
			key, _, _ := strings.Cut(name, "=")
			clearEnv(t)
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}
}
