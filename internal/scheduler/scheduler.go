// Package scheduler runs the server's periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/recorder"
)

// counter is implemented by recorders that can report per-calculator totals.
type counter interface {
	Counts(ctx context.Context) (map[string]int64, error)
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Recorder  recorder.Recorder
	Retention time.Duration
	Ctx       context.Context
	Logger    calculation.Logger

	now func() time.Time
}

// NewScheduler creates a new Scheduler. A nil logger discards output.
func NewScheduler(ctx context.Context, rec recorder.Recorder, retention time.Duration, logger calculation.Logger) *Scheduler {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Scheduler{
		Logger:    logger,
		Cron:      cron.New(cron.WithSeconds()),
		Recorder:  rec,
		Retention: retention,
		Ctx:       ctx,
		now:       time.Now,
	}
}

// RegisterAll registers the usage retention task.
func (s *Scheduler) RegisterAll(pruneCron string) error {
	if _, err := s.Cron.AddFunc(pruneCron, s.pruneTask); err != nil {
		return fmt.Errorf("register prune task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Infof("scheduler started")
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Infof("scheduler stopped")
}

// RunPruneNow executes the prune task immediately and returns the number of
// events removed.
func (s *Scheduler) RunPruneNow() (int64, error) {
	return s.prune()
}

func (s *Scheduler) pruneTask() {
	s.Logger.Infof("running usage prune")
	if _, err := s.prune(); err != nil {
		s.Logger.Errorf("prune usage: %v", err)
	}
}

func (s *Scheduler) prune() (int64, error) {
	cutoff := s.now().Add(-s.Retention)
	n, err := s.Recorder.Prune(s.Ctx, cutoff)
	if err != nil {
		return 0, err
	}
	s.Logger.Infof("pruned %d usage events older than %s", n, cutoff.Format(time.RFC3339))

	if c, ok := s.Recorder.(counter); ok {
		counts, err := c.Counts(s.Ctx)
		if err != nil {
			s.Logger.Warnf("count usage: %v", err)
		} else {
			s.Logger.Infof("usage retained: %v", counts)
		}
	}
	return n, nil
}
