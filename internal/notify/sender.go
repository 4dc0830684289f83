package notify

import (
	"context"
	"log/slog"
)

// Sender delivers a formatted text message to the requester that placed an
// order. Delivery failures are reported to the caller; they never roll back
// the state change that triggered them.
type Sender interface {
	SendMessage(ctx context.Context, requesterID, text string) error
}

// LogSender writes messages to the log instead of a chat. Used when no bot
// token is configured (local development).
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendMessage(ctx context.Context, requesterID, text string) error {
	s.logger.Info("notification (no bot configured)",
		"requester_id", requesterID,
		"text", text,
	)
	return nil
}
