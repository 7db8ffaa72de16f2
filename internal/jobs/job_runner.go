package jobs

import (
	"context"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/haidar-allaw/red-cross-sub000/internal/logger"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/mailing"
	"time"
)

type (
	// ReminderStore is the slice of the blood entry repository the reminder job needs.
	ReminderStore interface {
		GetEntriesToRemind(ctx context.Context, from, to time.Time) ([]*entities.BloodEntry, error)
		MarkReminded(ctx context.Context, id string, remindedAt time.Time) (bool, error)
	}

	Notifier interface {
		Notify(ctx context.Context, userID string, message string, link string) (*domain.Notification, error)
	}

	// JobRunner holds the dependencies of every scheduled job.
	JobRunner struct {
		reminders ReminderStore
		notifier  Notifier
		mailer    mailing.Mailer
		now       func() time.Time
	}
)

func NewJobRunner(reminders ReminderStore, notifier Notifier, mailer mailing.Mailer) *JobRunner {
	return &JobRunner{
		reminders: reminders,
		notifier:  notifier,
		mailer:    mailer,
		now:       time.Now,
	}
}

func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	log := logger.WithComponent("jobs")
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("job", jobName).Interface("panic", r).Msg("job panicked")
		}
	}()

	log.Info().Str("job", jobName).Msg("starting job")
	jobFunc()
	log.Info().Str("job", jobName).Msg("job completed")
}
