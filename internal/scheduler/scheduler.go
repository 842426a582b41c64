// Package scheduler runs the storefront's periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/robfig/cron/v3"
)

// Job is one periodic task. Spec uses robfig/cron syntax, e.g. "@every 1h".
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
	// RunOnStart fires the job once right after Start.
	RunOnStart bool
}

type Scheduler struct {
	cron *cron.Cron
	jobs []Job
	log  logger.Logger
}

func New(log logger.Logger, jobs ...Job) *Scheduler {
	cl := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		jobs: jobs,
		log:  log,
	}
}

// Start registers every job and starts the cron loop. Jobs see ctx, so
// cancelling it aborts in-flight runs.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, job := range s.jobs {
		job := job
		if _, err := s.cron.AddFunc(job.Spec, func() { s.run(ctx, job) }); err != nil {
			return fmt.Errorf("failed to schedule job %s (%q): %w", job.Name, job.Spec, err)
		}
		s.log.Infof("Scheduled job %s: %s", job.Name, job.Spec)
	}
	s.cron.Start()

	for _, job := range s.jobs {
		if job.RunOnStart {
			go s.run(ctx, job)
		}
	}
	return nil
}

// Stop halts scheduling and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	start := time.Now()
	if err := job.Run(ctx); err != nil {
		s.log.Errorf("Job %s failed after %s: %v", job.Name, time.Since(start), err)
		return
	}
	s.log.Debugf("Job %s completed in %s", job.Name, time.Since(start))
}

// cronLogger adapts logger.Logger to cron.Logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.With(keysAndValues...).Debug("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.With(keysAndValues...).Errorf("cron: %s: %v", msg, err)
}
