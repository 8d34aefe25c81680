// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"travel-backoffice-be/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

const module = "Scheduler"

// Job is one unit of periodic work. The returned count is logged.
type Job func(ctx context.Context) (int64, error)

type Scheduler struct {
	cron    *cron.Cron
	log     logger.ILogger
	timeout time.Duration
}

// New uses six-field specs (seconds first), e.g. "0 0 * * * *" for hourly.
func New(log logger.ILogger, jobTimeout time.Duration) *Scheduler {
	if jobTimeout <= 0 {
		jobTimeout = time.Minute
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		log:     log,
		timeout: jobTimeout,
	}
}

func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() { s.Run(name, job) })
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	s.log.Info(module, "Job scheduled", map[string]interface{}{"job": name, "spec": spec})
	return nil
}

// Run executes job once with the scheduler's timeout.
func (s *Scheduler) Run(name string, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	affected, err := job(ctx)
	if err != nil {
		s.log.Error(module, "Job failed", map[string]interface{}{"job": name, "error": err.Error()})
		return
	}
	s.log.Info(module, "Job finished", map[string]interface{}{
		"job":      name,
		"affected": affected,
		"duration": time.Since(start).String(),
	})
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
