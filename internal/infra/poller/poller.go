package poller

import (
	"fmt"

	"github.com/IT-Nick/burncheckbot/internal/infra/config"
	"gopkg.in/telebot.v4"
)

// NewPoller создаёт Poller в зависимости от режима.
func NewPoller(cfg *config.Config) (telebot.Poller, error) {
	switch cfg.TelegramBot.Mode {
	case config.ModeWebhook:
		if cfg.TelegramBot.WebhookURL == "" {
			return nil, fmt.Errorf("poller.NewPoller: WEBHOOK_URL must be set in webhook mode")
		}
		return &telebot.Webhook{
			Listen:      cfg.TelegramBot.ListenAddr,
			DropUpdates: true,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.TelegramBot.WebhookURL,
			},
		}, nil
	case config.ModePolling, "":
		return &telebot.LongPoller{Timeout: cfg.TelegramBot.PollTimeout}, nil
	default:
		return nil, fmt.Errorf("poller.NewPoller: unknown mode %q", cfg.TelegramBot.Mode)
	}
}
