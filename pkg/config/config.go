package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// NotifyPolicy — момент уведомления админа о заказе.
type NotifyPolicy string

const (
	// NotifyOnConfirm — материал пересылается сразу при получении, сводка
	// уходит при подтверждении заказа (до оплаты) и повторно после оплаты.
	NotifyOnConfirm NotifyPolicy = "confirm"
	// NotifyOnComplete — все пересылки и сводка откладываются до оплаты
	// или получения чека.
	NotifyOnComplete NotifyPolicy = "complete"
)

type Config struct {
	TelegramToken         string
	AdminChatID           int64
	PaymentsProviderToken string
	Currency              string
	CardNumber            string
	WebhookURL            string
	Port                  string
	Notify                NotifyPolicy
	Debug                 bool
	Messages              Messages
}

// Init читает конфигурацию из .env (если есть) и переменных окружения.
func Init() (*Config, error) {
	_ = godotenv.Load() // .env опционален

	cfg := &Config{
		TelegramToken:         os.Getenv("TG_BOT_TOKEN"),
		PaymentsProviderToken: os.Getenv("PAYMENTS_PROVIDER_TOKEN"),
		Currency:              getEnv("CURRENCY", "RUB"),
		CardNumber:            getEnv("CARD_NUMBER", "2200 7013 9298 5914"),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		Port:                  getEnv("PORT", "8000"),
		Notify:                NotifyPolicy(getEnv("NOTIFY_POLICY", string(NotifyOnConfirm))),
		Debug:                 os.Getenv("DEBUG") == "1",
		Messages:              DefaultMessages(),
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TG_BOT_TOKEN is not set")
	}

	adminID, err := strconv.ParseInt(getEnv("ADMIN_CHAT_ID", "888140003"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_CHAT_ID: %w", err)
	}
	cfg.AdminChatID = adminID

	switch cfg.Notify {
	case NotifyOnConfirm, NotifyOnComplete:
	default:
		return nil, fmt.Errorf("invalid NOTIFY_POLICY: %q", cfg.Notify)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
