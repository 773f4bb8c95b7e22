package poller

import (
	"testing"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

func TestNewPoller(t *testing.T) {
	cfg := config.Default()
	cfg.TelegramBot.PollTimeout = 3 * time.Second

	p, err := NewPoller(cfg)
	require.NoError(t, err)
	lp, ok := p.(*telebot.LongPoller)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, lp.Timeout)

	cfg.TelegramBot.Mode = config.ModeWebhook
	_, err = NewPoller(cfg)
	assert.Error(t, err)

	cfg.TelegramBot.WebhookURL = "https://example.org/bot"
	p, err = NewPoller(cfg)
	require.NoError(t, err)
	wh, ok := p.(*telebot.Webhook)
	require.True(t, ok)
	assert.Equal(t, ":8443", wh.Listen)
	assert.Equal(t, "https://example.org/bot", wh.Endpoint.PublicURL)

	cfg.TelegramBot.Mode = "sms"
	_, err = NewPoller(cfg)
	assert.Error(t, err)
}
