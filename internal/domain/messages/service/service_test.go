package service

import (
	"context"
	"errors"
	"testing"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	messages []model.Message
	err      error
}

func (f *fakeSource) ListMessages(ctx context.Context) ([]model.Message, error) {
	return f.messages, f.err
}

func TestGetMessageByKey_Catalog(t *testing.T) {
	s := NewMessageService(nil)

	assert.Contains(t, s.GetMessageByKey(model.WelcomeKey), "Диагностика уровня эмоционального выгорания")
	assert.Equal(t, "✅ Согласен", s.GetMessageByKey(model.AgreeButtonKey))
	assert.Equal(t, "no_such_key", s.GetMessageByKey("no_such_key"))

	n, err := s.Reload(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReload_Overrides(t *testing.T) {
	src := &fakeSource{messages: []model.Message{
		{Key: model.HelpKey, Text: "custom help"},
		{Key: model.AboutKey, Text: ""},
		{Key: "unknown", Text: "ignored"},
	}}
	s := NewMessageService(src)

	n, err := s.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "custom help", s.GetMessageByKey(model.HelpKey))
	assert.Contains(t, s.GetMessageByKey(model.AboutKey), "Об основе методики")
	assert.Equal(t, "unknown", s.GetMessageByKey("unknown"))
}

func TestReload_ErrorKeepsPrevious(t *testing.T) {
	src := &fakeSource{messages: []model.Message{{Key: model.HelpKey, Text: "v1"}}}
	s := NewMessageService(src)
	_, err := s.Reload(context.Background())
	require.NoError(t, err)

	src.err = errors.New("db down")
	_, err = s.Reload(context.Background())
	require.Error(t, err)
	assert.Equal(t, "v1", s.GetMessageByKey(model.HelpKey))
}

func TestCatalog_HasAllKeys(t *testing.T) {
	keys := []string{
		model.WelcomeKey, model.AboutKey, model.HelpKey, model.NamePromptKey, model.NameRetryKey,
		model.SubscriptionRequestKey, model.SubscriptionMissingKey, model.MalformedAnswerKey,
		model.UnexpectedErrorKey, model.SessionExpiredKey, model.TextHintKey, model.CertificateCaptionKey,
		model.PartialNoticeKey, model.RecommendationLowKey, model.RecommendationMidKey, model.RecommendationHighKey,
		model.AgreeButtonKey, model.DisagreeButtonKey, model.FullTestButtonKey, model.RestartButtonKey,
		model.AboutButtonKey, model.BackButtonKey, model.CheckButtonKey, model.SubscribeButtonKey,
		model.TakeTestButtonKey,
	}
	assert.ElementsMatch(t, keys, Keys())
}
