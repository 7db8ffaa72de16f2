package jobs

import (
	"context"
	"fmt"
	"github.com/haidar-allaw/red-cross-sub000/internal/logger"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/mailing"
	"time"
)

// ReminderWindow is how far ahead of a scheduled donation the donor is reminded.
const ReminderWindow = 24 * time.Hour

// SendDonationReminders is the cron entry point.
func (jr *JobRunner) SendDonationReminders() {
	jr.runWithRecovery("SendDonationReminders", func() {
		sent, err := jr.RemindUpcomingDonations(context.Background())
		log := logger.WithComponent("jobs")
		if err != nil {
			log.Error().Err(err).Msg("failed to query upcoming donations")
			return
		}
		log.Info().Int("count", sent).Msg("donation reminders sent")
	})
}

// RemindUpcomingDonations notifies every donor with a scheduled donation in
// the next ReminderWindow who has not been reminded yet, and returns how many
// reminders went out. Each entry is stamped before anything is sent, so an
// entry is reminded at most once even when a later step fails.
func (jr *JobRunner) RemindUpcomingDonations(ctx context.Context) (int, error) {
	log := logger.WithComponent("jobs")
	now := jr.now()

	entries, err := jr.reminders.GetEntriesToRemind(ctx, now, now.Add(ReminderWindow))
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		claimed, err := jr.reminders.MarkReminded(ctx, entry.ID.String(), now)
		if err != nil {
			log.Error().Err(err).Str("entry_id", entry.ID.String()).Msg("failed to mark donation reminded")
			continue
		}
		if !claimed {
			continue
		}

		centerName := "the medical center"
		if entry.MedicalCenter != nil {
			centerName = entry.MedicalCenter.Name
		}

		message := fmt.Sprintf("Reminder: your donation at %s is scheduled for %s", centerName, entry.ScheduledAt.Format("Mon, 02 Jan 2006 15:04 MST"))
		if _, err := jr.notifier.Notify(ctx, entry.UserID.String(), message, "/bloodEntries/"+entry.ID.String()); err != nil {
			log.Error().Err(err).Str("entry_id", entry.ID.String()).Msg("failed to store donation reminder")
			continue
		}

		if entry.User != nil && entry.User.Email != "" {
			body := mailing.DonationReminderBody(entry.User.Name, centerName, entry.ScheduledAt)
			if err := jr.mailer.SendMail(entry.User.Email, "Upcoming blood donation", body); err != nil {
				log.Warn().Err(err).Str("entry_id", entry.ID.String()).Msg("failed to send donation reminder email")
			}
		}
		count++
	}

	return count, nil
}
