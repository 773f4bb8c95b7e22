package callback_handler

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
	callback *telebot.Callback
	sent     []interface{}
}

func (f *fakeContext) Sender() *telebot.User       { return &telebot.User{ID: 3} }
func (f *fakeContext) Callback() *telebot.Callback { return f.callback }
func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

type fakeFlow struct {
	actions []flow.Action
}

func (f *fakeFlow) Handle(_ context.Context, _ model.User, action flow.Action) ([]flow.Output, error) {
	f.actions = append(f.actions, action)
	return []flow.Output{flow.Screen{Text: "screen"}}, nil
}

func TestCallbackHandler(t *testing.T) {
	f := &fakeFlow{}
	h := NewCallbackHandler(f)

	c := &fakeContext{callback: &telebot.Callback{Data: "\fanswer_1"}}
	require.NoError(t, h.GetHandlerFunc()(c))

	require.Len(t, f.actions, 1)
	press, ok := f.actions[0].(flow.ButtonPress)
	require.True(t, ok)
	assert.Equal(t, flow.TagAnswer, press.Tag)
	assert.Equal(t, 1, press.Arg)
	assert.True(t, press.HasArg)
	assert.Equal(t, []interface{}{"screen"}, c.sent)
}

func TestCallbackHandlerWithoutCallback(t *testing.T) {
	f := &fakeFlow{}
	require.NoError(t, NewCallbackHandler(f).Handle(&fakeContext{}))
	assert.Empty(t, f.actions)
}
