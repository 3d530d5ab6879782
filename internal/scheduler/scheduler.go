// Package scheduler runs the periodic background jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/integrations/keyrate"
)

// Scheduler wraps a cron runner
type Scheduler struct {
	cron *cron.Cron
	log  *logrus.Logger
}

// New creates a scheduler that recovers from panicking jobs
func New(log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(log)))),
		log:  log,
	}
}

// Add registers job under a cron spec such as "@every 1h" or "0 9 * * *"
func (s *Scheduler) Add(spec string, job func()) error {
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Infof("Scheduler started with %d job(s)", len(s.cron.Entries()))
}

// Stop stops the scheduler and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Scheduler stop timed out")
	}
}

// RateSource fetches the key rate
type RateSource interface {
	GetKeyRate(ctx context.Context) (keyrate.Rate, error)
}

// KeyRateRefresher keeps the most recent key rate observation
type KeyRateRefresher struct {
	source  RateSource
	timeout time.Duration
	log     *logrus.Logger

	mu     sync.RWMutex
	latest *keyrate.Rate
}

// NewKeyRateRefresher creates a refresher bound to source
func NewKeyRateRefresher(source RateSource, timeout time.Duration, log *logrus.Logger) *KeyRateRefresher {
	return &KeyRateRefresher{source: source, timeout: timeout, log: log}
}

// Refresh fetches a new observation. A failed fetch keeps the previous one.
func (r *KeyRateRefresher) Refresh(ctx context.Context) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	rate, err := r.source.GetKeyRate(ctx)
	if err != nil {
		r.log.Errorf("Failed to refresh key rate: %v", err)
		return fmt.Errorf("failed to refresh key rate: %w", err)
	}
	r.mu.Lock()
	r.latest = &rate
	r.mu.Unlock()
	return nil
}

// Job adapts Refresh to a cron job
func (r *KeyRateRefresher) Job() func() {
	return func() {
		_ = r.Refresh(context.Background())
	}
}

// Latest returns the last observed rate
func (r *KeyRateRefresher) Latest() (keyrate.Rate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.latest == nil {
		return keyrate.Rate{}, false
	}
	return *r.latest, true
}
