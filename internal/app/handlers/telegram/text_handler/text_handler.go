package text_handler

import (
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/burncheckbot/internal/domain/flow"
	"gopkg.in/telebot.v4"
)

// TextHandler обрабатывает произвольный текст: ввод имени или подсказку.
// Незарегистрированные команды тоже приходят сюда.
type TextHandler struct {
	flow reply.Flow
}

func NewTextHandler(f reply.Flow) *TextHandler {
	return &TextHandler{flow: f}
}

func (h *TextHandler) Handle(c telebot.Context) error {
	text := c.Text()

	// /start@bot_name и /HELP telebot не сопоставляет с зарегистрированными командами
	if cmd, ok := flow.ParseCommand(text); ok {
		return reply.Dispatch(c, h.flow, cmd)
	}

	return reply.Dispatch(c, h.flow, flow.TextMessage{Body: text})
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *TextHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
