package notify

import (
	"context"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JoseSC30/superburguer-miniapp/internal/apperrors"
)

// TelegramSender delivers messages through the Bot API. The requester id is
// the chat id of the conversation that placed the order.
type TelegramSender struct {
	api    *tgbotapi.BotAPI
	logger *slog.Logger
}

func NewTelegramSender(api *tgbotapi.BotAPI, logger *slog.Logger) *TelegramSender {
	return &TelegramSender{api: api, logger: logger}
}

func (s *TelegramSender) SendMessage(ctx context.Context, requesterID, text string) error {
	chatID, err := strconv.ParseInt(requesterID, 10, 64)
	if err != nil {
		return apperrors.NewValidationError("requester_id", "not a valid chat id")
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := s.api.Send(msg); err != nil {
		s.logger.Error("failed to send telegram message",
			"chat_id", chatID,
			"error", err,
		)
		return apperrors.NewUpstreamError("telegram", err)
	}
	return nil
}
