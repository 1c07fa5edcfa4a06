package service

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotificationSender implements ports.NotificationSender by logging.
// The platform's messaging service handles real delivery; this service
// only emits the event.
//
// TODO: replace with the platform notification queue once its Go client
// is published.
type LogNotificationSender struct {
	log zerolog.Logger
}

// NewLogNotificationSender creates the log-backed sender.
func NewLogNotificationSender(log zerolog.Logger) *LogNotificationSender {
	return &LogNotificationSender{log: log}
}

// Send records the notification. The body may carry a confirmation
// token, so it is never logged.
func (s *LogNotificationSender) Send(ctx context.Context, userID int64, subject, body string) {
	s.log.Info().
		Int64("user_id", userID).
		Str("subject", subject).
		Int("body_len", len(body)).
		Msg("notification dispatched")
}
