package telegram

import (
	"fmt"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/EBWTBME/reshu-bot/pkg/config"
	"github.com/EBWTBME/reshu-bot/pkg/pricing"
	"github.com/EBWTBME/reshu-bot/pkg/session"
)

// Client — часть API бота, которой пользуются обработчики.
// *tgbotapi.BotAPI её реализует, в тестах подставляется заглушка.
type Client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api      *tgbotapi.BotAPI
	client   Client
	cfg      *config.Config
	messages config.Responses
	table    pricing.Table
	sessions *session.Store
	logger   *slog.Logger
}

func NewBot(api *tgbotapi.BotAPI, cfg *config.Config, table pricing.Table, logger *slog.Logger) *Bot {
	return &Bot{
		api:      api,
		client:   api,
		cfg:      cfg,
		messages: cfg.Messages.Responses,
		table:    table,
		sessions: session.NewStore(),
		logger:   logger,
	}
}

// Start запускает приём апдейтов: webhook, если задан WEBHOOK_URL, иначе
// long polling. Все апдейты обрабатываются в одной горутине, поэтому
// сессии не требуют блокировок.
func (b *Bot) Start() error {
	var updates tgbotapi.UpdatesChannel

	if b.cfg.WebhookURL != "" {
		wh, err := tgbotapi.NewWebhook(b.cfg.WebhookURL + "/webhook")
		if err != nil {
			return fmt.Errorf("can't build webhook config: %w", err)
		}
		wh.DropPendingUpdates = true
		if _, err := b.api.Request(wh); err != nil {
			return fmt.Errorf("can't set webhook: %w", err)
		}
		updates = b.api.ListenForWebhook("/webhook")
		go func() {
			if err := http.ListenAndServe(":"+b.cfg.Port, nil); err != nil {
				b.logger.Error("webhook server stopped", "err", err)
			}
		}()
		b.logger.Info("запуск в режиме webhook", "url", b.cfg.WebhookURL, "port", b.cfg.Port)
	} else {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates = b.api.GetUpdatesChan(u)
		b.logger.Info("запуск в режиме polling")
	}

	for update := range updates {
		b.HandleUpdate(update)
	}
	return nil
}

// HandleUpdate разбирает апдейт по типу события. Ошибки обработчиков
// логируются и не валят цикл; состояние диалога при этом не трогается.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("паника при обработке апдейта", "update_id", update.UpdateID, "panic", r)
		}
	}()

	var err error
	switch {
	case update.PreCheckoutQuery != nil:
		err = b.handlePreCheckout(update.PreCheckoutQuery)
	case update.CallbackQuery != nil:
		err = b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		err = b.handleMessage(update.Message)
	}
	if err != nil {
		b.logger.Error("ошибка обработки апдейта", "update_id", update.UpdateID, "err", err)
	}
}

// send отправляет сообщение, отбрасывая результат.
func (b *Bot) send(c tgbotapi.Chattable) error {
	_, err := b.client.Send(c)
	return err
}
