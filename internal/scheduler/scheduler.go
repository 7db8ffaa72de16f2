package scheduler

import (
	"github.com/haidar-allaw/red-cross-sub000/internal/jobs"
	"github.com/haidar-allaw/red-cross-sub000/internal/logger"
	"github.com/robfig/cron/v3"
	"time"
)

type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler registers the jobs on a seconds-precision UTC cron. An invalid
// cron expression is returned as an error.
func NewScheduler(jobRunner *jobs.JobRunner, reminderSpec string) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if _, err := s.cron.AddFunc(reminderSpec, s.jobs.SendDonationReminders); err != nil {
		return nil, err
	}

	log := logger.WithComponent("scheduler")
	log.Info().Str("reminder_spec", reminderSpec).Msg("cron jobs registered")
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log := logger.WithComponent("scheduler")
	log.Info().Msg("cron scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log := logger.WithComponent("scheduler")
	log.Info().Msg("cron scheduler stopped")
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
