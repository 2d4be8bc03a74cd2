package main

import (
	"log/slog"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/EBWTBME/reshu-bot/pkg/config"
	"github.com/EBWTBME/reshu-bot/pkg/pricing"
	"github.com/EBWTBME/reshu-bot/pkg/telegram"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Init()
	if err != nil {
		logger.Error("can't init config", "err", err)
		os.Exit(1)
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Error("can't create bot api", "err", err)
		os.Exit(1)
	}
	api.Debug = cfg.Debug
	logger.Info("authorized", "account", api.Self.UserName)

	bot := telegram.NewBot(api, cfg, pricing.DefaultTable(), logger)
	if err := bot.Start(); err != nil {
		logger.Error("bot stopped", "err", err)
		os.Exit(1)
	}
}
