package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JoseSC30/superburguer-miniapp/internal/bot"
	"github.com/JoseSC30/superburguer-miniapp/internal/cache"
	"github.com/JoseSC30/superburguer-miniapp/internal/clients"
	"github.com/JoseSC30/superburguer-miniapp/internal/config"
	"github.com/JoseSC30/superburguer-miniapp/internal/events"
	"github.com/JoseSC30/superburguer-miniapp/internal/handlers"
	"github.com/JoseSC30/superburguer-miniapp/internal/metrics"
	"github.com/JoseSC30/superburguer-miniapp/internal/notify"
	"github.com/JoseSC30/superburguer-miniapp/internal/server"
	"github.com/JoseSC30/superburguer-miniapp/internal/service"
	"github.com/JoseSC30/superburguer-miniapp/internal/store"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger.Info("starting superburguer-miniapp", "port", cfg.Server.Port)

	orderStore := store.NewMemoryOrderStore()

	var catalogCache cache.CatalogCache
	if cfg.Features.EnableCatalogCache {
		catalogCache = cache.NewRedisCatalogCache(cfg.Redis, logger.With("component", "catalog-cache"))
	}

	catalogClient := clients.NewHTTPCatalogClient(cfg.Catalog, logger.With("component", "catalog-client"))
	userClient := clients.NewHTTPUserClient(cfg.UserService, logger.With("component", "user-client"))
	catalogService := service.NewCatalogService(catalogClient, catalogCache, logger.With("component", "catalog"))

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Features.EnableOrderEvents && len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka, logger.With("component", "events"))
	}
	defer publisher.Close()

	var sender notify.Sender = notify.NewLogSender(logger.With("component", "notify"))
	var api *tgbotapi.BotAPI
	if cfg.Telegram.BotToken != "" {
		var err error
		api, err = tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			logger.Error("failed to connect to telegram", "error", err)
			os.Exit(1)
		}
		sender = notify.NewTelegramSender(api, logger.With("component", "notify"))
		logger.Info("telegram bot connected", "username", api.Self.UserName)
	} else {
		logger.Warn("BOT_TOKEN not set; notifications go to the log")
	}

	orderService := service.NewOrderService(
		orderStore,
		catalogService,
		publisher,
		sender,
		logger.With("component", "orders"),
	)

	h := handlers.NewHandlers(orderService, catalogService, userClient, cfg, logger.With("component", "handlers"))
	srv := server.New(h, metrics.NewServerMetrics(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if api != nil {
		b := bot.New(api, orderService, cfg.Telegram, logger.With("component", "bot"))
		go b.Run(ctx)
	}

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
