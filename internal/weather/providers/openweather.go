package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-compare/internal/weather"
)

// DefaultOpenWeatherURL is the OpenWeatherMap current-weather endpoint.
const DefaultOpenWeatherURL = "http://api.openweathermap.org/data/2.5/weather"

var validate = validator.New()

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherProvider creates a provider for baseURL (DefaultOpenWeatherURL
// when empty). maxRetries of zero disables retries.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string, maxRetries int) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      maxRetries,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// CircuitState reports the breaker state ("closed", "half-open" or "open").
func (p *OpenWeatherProvider) CircuitState() string {
	return p.circuit.State().String()
}

// openWeatherPayload mirrors the subset of the response the pages need.
// Pointers distinguish a missing key from a zero value.
type openWeatherPayload struct {
	Name    *string                `json:"name" validate:"required"`
	Weather []openWeatherCondition `json:"weather" validate:"required,min=1,dive"`
	Main    *struct {
		Temp     *float64 `json:"temp" validate:"required"`
		Humidity *float64 `json:"humidity" validate:"required"`
		TempMax  float64  `json:"temp_max"`
		TempMin  float64  `json:"temp_min"`
	} `json:"main" validate:"required"`
	Wind *struct {
		Speed *float64 `json:"speed" validate:"required"`
	} `json:"wind" validate:"required"`
	Sys *struct {
		Sunrise *int64 `json:"sunrise" validate:"required"`
		Sunset  *int64 `json:"sunset" validate:"required"`
	} `json:"sys" validate:"required"`
}

type openWeatherCondition struct {
	Description *string `json:"description" validate:"required"`
	Icon        *string `json:"icon" validate:"required"`
}

// Fetch queries current conditions for city. Units are forwarded unchanged;
// empty parameters are left out of the query.
func (p *OpenWeatherProvider) Fetch(ctx context.Context, city, units string) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("%w: openweather api key is not configured", weather.ErrUpstreamUnavailable)
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		if city != "" {
			values.Set("q", city)
		}
		if units != "" {
			values.Set("units", units)
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("%w: %s: %v", weather.ErrUpstreamUnavailable, p.name, err)
	}
	defer resp.Body.Close()

	var payload openWeatherPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, fmt.Errorf("%w: %s: decode: %v", weather.ErrUpstreamUnavailable, p.name, err)
	}
	if err := validate.Struct(payload); err != nil {
		return weather.Reading{}, fmt.Errorf("%w: %s: incomplete payload: %v", weather.ErrUpstreamUnavailable, p.name, err)
	}

	cond := payload.Weather[0]
	return weather.Reading{
		City:        *payload.Name,
		Description: *cond.Description,
		Icon:        *cond.Icon,
		Temp:        *payload.Main.Temp,
		TempMin:     payload.Main.TempMin,
		TempMax:     payload.Main.TempMax,
		Humidity:    *payload.Main.Humidity,
		WindSpeed:   *payload.Wind.Speed,
		Sunrise:     *payload.Sys.Sunrise,
		Sunset:      *payload.Sys.Sunset,
	}, nil
}
