package mailing

import (
	"errors"
	"fmt"
	"html"
	"time"
)

var ErrMailerNotConfigured = errors.New("smtp host not configured")

func BloodRequestDecisionBody(status, bloodType string, units int, centerName, reason string) string {
	body := fmt.Sprintf(
		"<p>Your request for %d unit(s) of %s blood has been <strong>%s</strong> by %s.</p>",
		units, html.EscapeString(bloodType), html.EscapeString(status), html.EscapeString(centerName),
	)
	if reason != "" {
		body += fmt.Sprintf("<p>Reason: %s</p>", html.EscapeString(reason))
	}
	return body
}

func CenterApprovedBody(centerName, appURL string) string {
	return fmt.Sprintf(
		"<p>Hello %s,</p><p>Your medical center has been approved. You can now sign in at <a href=\"%s\">%s</a>.</p>",
		html.EscapeString(centerName), appURL, appURL,
	)
}

func DonationReminderBody(donorName, centerName string, scheduledAt time.Time) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>This is a reminder of your blood donation at %s on %s.</p>",
		html.EscapeString(donorName), html.EscapeString(centerName), scheduledAt.Format("Mon, 02 Jan 2006 15:04 MST"),
	)
}
