package weather

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Service orchestrates provider lookups and assembles the display models.
type Service struct {
	provider Provider
	probes   ProbeStore
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a new Service. probes may be nil when the availability
// probe is disabled; loc defaults to the process local zone.
func NewService(provider Provider, probes ProbeStore, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		provider: provider,
		probes:   probes,
		loc:      loc,
		now:      time.Now,
	}
}

// Home returns the date bounds for the home page.
func (s *Service) Home() HomeView {
	return NewHomeView(s.now())
}

// Lookup fetches current conditions for one city.
func (s *Service) Lookup(ctx context.Context, city, units string) (ResultsView, error) {
	r, err := s.fetch(ctx, city, units)
	if err != nil {
		return ResultsView{}, err
	}
	return NewResultsView(s.now(), r, units, s.loc), nil
}

// Compare fetches both cities one after the other and computes how city1
// relates to city2.
func (s *Service) Compare(ctx context.Context, city1, city2, units string) (ComparisonView, error) {
	r1, err := s.fetch(ctx, city1, units)
	if err != nil {
		return ComparisonView{}, err
	}
	r2, err := s.fetch(ctx, city2, units)
	if err != nil {
		return ComparisonView{}, err
	}
	return NewComparisonView(s.now(), r1, r2, units, s.loc), nil
}

func (s *Service) fetch(ctx context.Context, city, units string) (Reading, error) {
	if s.provider == nil {
		log.Printf("ERROR: no weather provider configured")
		return Reading{}, fmt.Errorf("%w: no provider configured", ErrUpstreamUnavailable)
	}

	r, err := s.provider.Fetch(ctx, city, units)
	if err != nil {
		log.Printf("provider %s fetch failed for %q (units=%q): %v", s.provider.Name(), city, units, err)
		return Reading{}, err
	}
	return r, nil
}

// Probe looks up city once and records the outcome in the probe store.
func (s *Service) Probe(ctx context.Context, city string) ProbeResult {
	start := s.now()
	_, err := s.fetch(ctx, city, UnitsStandard)

	res := ProbeResult{
		ID:        uuid.NewString(),
		City:      city,
		Timestamp: start.UTC(),
		OK:        err == nil,
		Latency:   s.now().Sub(start),
	}
	if err != nil {
		res.Error = err.Error()
	}

	if s.probes != nil {
		s.probes.SaveProbe(res)
	}
	return res
}

// LatestProbe delegates to the probe store.
func (s *Service) LatestProbe(city string) (ProbeResult, error) {
	if s.probes == nil {
		return ProbeResult{}, ErrProbesDisabled
	}
	return s.probes.GetLatest(city)
}

// ProbeRange delegates to the probe store.
func (s *Service) ProbeRange(city string, from, to time.Time) ([]ProbeResult, error) {
	if s.probes == nil {
		return nil, ErrProbesDisabled
	}
	return s.probes.GetRange(city, from, to)
}
