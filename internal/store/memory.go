package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/i474232898/weather-compare/internal/weather"
)

// ErrNotFound means the city has never been probed, or nothing falls in the
// requested window.
var ErrNotFound = errors.New("no probe results for city")

// MemoryStore keeps recent availability checks per city, oldest first.
// Cities are matched case-insensitively.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[string][]weather.ProbeResult

	maxHistory int           // <= 0 keeps every result
	maxAge     time.Duration // <= 0 disables age trimming
}

// NewMemoryStore creates a store bounded by result count and age.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		results:    make(map[string][]weather.ProbeResult),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

func key(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// SaveProbe records res under its city and trims the history.
func (s *MemoryStore) SaveProbe(res weather.ProbeResult) {
	k := key(res.City)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[k] = s.trim(append(s.results[k], res), time.Now())
}

// trim drops the oldest entries beyond maxHistory, then those older than
// maxAge. The newest entry survives even if it is stale so /health always has
// something to report.
func (s *MemoryStore) trim(list []weather.ProbeResult, now time.Time) []weather.ProbeResult {
	if s.maxHistory > 0 && len(list) > s.maxHistory {
		list = list[len(list)-s.maxHistory:]
	}

	if s.maxAge > 0 {
		cutoff := now.Add(-s.maxAge)
		i := 0
		for i < len(list)-1 && list[i].Timestamp.Before(cutoff) {
			i++
		}
		list = list[i:]
	}
	return list
}

// GetLatest returns the last recorded result for city.
func (s *MemoryStore) GetLatest(city string) (weather.ProbeResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.results[key(city)]
	if len(list) == 0 {
		return weather.ProbeResult{}, ErrNotFound
	}
	return list[len(list)-1], nil
}

// GetRange returns results for city with from <= Timestamp <= to.
func (s *MemoryStore) GetRange(city string, from, to time.Time) ([]weather.ProbeResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []weather.ProbeResult
	for _, res := range s.results[key(city)] {
		if res.Timestamp.Before(from) || res.Timestamp.After(to) {
			continue
		}
		out = append(out, res)
	}

	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}
