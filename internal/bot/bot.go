package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JoseSC30/superburguer-miniapp/internal/config"
	"github.com/JoseSC30/superburguer-miniapp/internal/notify"
	"github.com/JoseSC30/superburguer-miniapp/internal/service"
)

const (
	buttonOrder  = "🍔 Hacer Pedido"
	buttonOrders = "📋 Ver Mis Pedidos"
	buttonHelp   = "❓ Ayuda"
)

// Bot runs the Telegram side of the Mini App: greeting, order submission
// via Web App data, and the order-list and help commands.
type Bot struct {
	api    *tgbotapi.BotAPI
	orders *service.OrderService
	cfg    config.TelegramConfig
	logger *slog.Logger
}

func New(api *tgbotapi.BotAPI, orders *service.OrderService, cfg config.TelegramConfig, logger *slog.Logger) *Bot {
	return &Bot{
		api:    api,
		orders: orders,
		cfg:    cfg,
		logger: logger,
	}
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.PollTimeout

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.WebAppData != nil {
		b.handleWebAppOrder(ctx, msg)
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.sendWelcome(msg.Chat.ID)
		case "pedidos":
			b.sendOrderList(ctx, msg.Chat.ID)
		case "ayuda", "help":
			b.send(msg.Chat.ID, notify.Help)
		}
		return
	}

	switch msg.Text {
	case buttonOrders:
		b.sendOrderList(ctx, msg.Chat.ID)
	case buttonHelp:
		b.send(msg.Chat.ID, notify.Help)
	}
}

// handleWebAppOrder receives the serialized cart the Mini App sends through
// Telegram and turns it into an order. The confirmation message comes from
// the order service itself.
func (b *Bot) handleWebAppOrder(ctx context.Context, msg *tgbotapi.Message) {
	req, err := ParseWebAppOrder(msg.WebAppData.Data, msg.Chat.ID)
	if err != nil {
		b.logger.Error("failed to parse web app order",
			"chat_id", msg.Chat.ID,
			"error", err,
		)
		b.send(msg.Chat.ID, notify.OrderFailed)
		return
	}

	order, err := b.orders.CreateOrder(ctx, req)
	if err != nil {
		b.logger.Error("failed to create order from web app",
			"chat_id", msg.Chat.ID,
			"error", err,
		)
		b.send(msg.Chat.ID, notify.OrderFailed)
		return
	}

	b.logger.Info("order received from web app",
		"order_id", order.ID,
		"chat_id", msg.Chat.ID,
	)
}

func (b *Bot) sendWelcome(chatID int64) {
	reply := tgbotapi.NewMessage(chatID, notify.Welcome)
	reply.ParseMode = tgbotapi.ModeMarkdown

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.KeyboardButton{
				Text:   buttonOrder,
				WebApp: &tgbotapi.WebAppInfo{URL: b.cfg.MiniAppURL},
			},
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonOrders),
			tgbotapi.NewKeyboardButton(buttonHelp),
		),
	)
	keyboard.ResizeKeyboard = true
	reply.ReplyMarkup = keyboard

	if _, err := b.api.Send(reply); err != nil {
		b.logger.Error("failed to send welcome", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) sendOrderList(ctx context.Context, chatID int64) {
	orders, err := b.orders.ListOrders(ctx, requesterID(chatID))
	if err != nil {
		b.logger.Error("failed to list orders", "chat_id", chatID, "error", err)
		b.send(chatID, notify.OrderFailed)
		return
	}
	b.send(chatID, notify.OrderList(orders))
}

func (b *Bot) send(chatID int64, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}
