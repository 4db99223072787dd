package weather

import (
	"context"
	"errors"
	"time"
)

// ErrUpstreamUnavailable is the single error kind reported when the provider
// cannot produce a usable reading: unreachable, non-2xx, malformed or
// incomplete payloads all map to it.
var ErrUpstreamUnavailable = errors.New("upstream data unavailable")

// ErrProbesDisabled is returned by probe queries when no probe store is configured.
var ErrProbesDisabled = errors.New("availability probe disabled")

// Provider abstracts the current-weather data source (OpenWeatherMap).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, city, units string) (Reading, error)
}

// ProbeStore is the contract the in-memory probe history must satisfy.
type ProbeStore interface {
	SaveProbe(res ProbeResult)
	GetLatest(city string) (ProbeResult, error)
	GetRange(city string, from, to time.Time) ([]ProbeResult, error)
}
