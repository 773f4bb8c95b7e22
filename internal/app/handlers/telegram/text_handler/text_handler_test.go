package text_handler

import (
	"context"
	"testing"

	"github.com/IT-Nick/burncheckbot/internal/domain/flow"
	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

type fakeContext struct {
	telebot.Context
	text string
}

func (f *fakeContext) Sender() *telebot.User       { return &telebot.User{ID: 3} }
func (f *fakeContext) Callback() *telebot.Callback { return nil }
func (f *fakeContext) Text() string                { return f.text }
func (f *fakeContext) Send(interface{}, ...interface{}) error {
	return nil
}

type fakeFlow struct {
	action flow.Action
}

func (f *fakeFlow) Handle(_ context.Context, _ model.User, action flow.Action) ([]flow.Output, error) {
	f.action = action
	return nil, nil
}

func TestTextHandler(t *testing.T) {
	tests := []struct {
		name string
		text string
		want flow.Action
	}{
		{"name", "иван петров", flow.TextMessage{Body: "иван петров"}},
		{"start with bot name", "/start@burncheck_bot", flow.Command{Name: flow.CommandStart, Args: []string{}}},
		{"upper help", "/HELP", flow.Command{Name: flow.CommandHelp, Args: []string{}}},
		{"unknown command", "/foo", flow.Command{Name: "foo", Args: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFlow{}
			require.NoError(t, NewTextHandler(f).Handle(&fakeContext{text: tt.text}))
			assert.Equal(t, tt.want, f.action)
		})
	}
}
