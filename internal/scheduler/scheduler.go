package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-compare/internal/weather"
)

const defaultInterval = 15 * time.Minute

// Scheduler periodically probes provider availability for a configured city.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	city      string
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler.
func New(city string, interval time.Duration, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		city:      city,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the periodic probe and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.city == "" {
		log.Println("scheduler: no probe city configured; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.period()).Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// period is the configured interval, or defaultInterval when unset.
func (s *Scheduler) period() time.Duration {
	if s.interval <= 0 {
		return defaultInterval
	}
	return s.interval
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	res := s.service.Probe(ctx, s.city)
	if !res.OK {
		log.Printf("scheduler: probe failed for %q after %s: %s", s.city, res.Latency, res.Error)
		return
	}
	log.Printf("scheduler: probe ok for %q in %s", s.city, res.Latency)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
