package callback_handler

import (
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/burncheckbot/internal/domain/flow"
	"gopkg.in/telebot.v4"
)

// CallbackHandler обрабатывает нажатия всех инлайн-кнопок диалога
type CallbackHandler struct {
	flow reply.Flow
}

// NewCallbackHandler возвращает новый экземпляр обработчика
func NewCallbackHandler(f reply.Flow) *CallbackHandler {
	return &CallbackHandler{flow: f}
}

// Handle разбирает данные кнопки и передаёт нажатие в диалог.
// Ответ на callback отправляет middleware AutoRespond.
func (h *CallbackHandler) Handle(c telebot.Context) error {
	cb := c.Callback()
	if cb == nil {
		return nil
	}
	return reply.Dispatch(c, h.flow, flow.ParseButton(cb.Data))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *CallbackHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
