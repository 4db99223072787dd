package weather

import (
	"time"
)

// Unit systems understood by the provider. Any other value is forwarded as-is.
const (
	UnitsImperial = "imperial"
	UnitsMetric   = "metric"
	UnitsStandard = "standard"
)

// Reading is the current-conditions result for one location as returned by a provider.
type Reading struct {
	City        string
	Description string
	Icon        string

	Temp      float64
	TempMin   float64
	TempMax   float64
	Humidity  float64
	WindSpeed float64

	// Sunrise and Sunset are unix seconds.
	Sunrise int64
	Sunset  int64
}

// CityView is the flattened display model for a single location.
type CityView struct {
	City        string    `json:"city"`
	Description string    `json:"description"`
	Temp        float64   `json:"temp"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`
	UnitsLetter string    `json:"units_letter"`
	Icon        string    `json:"icon"`
}

// ResultsView backs the single-city results page.
type ResultsView struct {
	Date string `json:"date"`
	CityView
}

// ComparisonView backs the two-city comparison page.
type ComparisonView struct {
	Date  string   `json:"date"`
	City1 CityView `json:"city1_info"`
	City2 CityView `json:"city2_info"`

	TempDiff  Difference `json:"temp_diff"`
	HumidDiff Difference `json:"humid_diff"`
	WindDiff  Difference `json:"wind_diff"`
	SunDiff   Difference `json:"sun_diff"`
}

// HomeView carries the date bounds shown on the home page forms.
type HomeView struct {
	MinDate time.Time `json:"min_date"`
	MaxDate time.Time `json:"max_date"`
}

// ProbeResult records one background availability check against the provider.
type ProbeResult struct {
	ID        string        `json:"id"`
	City      string        `json:"city"`
	Timestamp time.Time     `json:"timestamp"` // always UTC
	OK        bool          `json:"ok"`
	Error     string        `json:"error,omitempty"`
	Latency   time.Duration `json:"latencyNs"`
}
