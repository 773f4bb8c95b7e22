package start_handler

import (
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/burncheckbot/internal/domain/flow"
	"gopkg.in/telebot.v4"
)

// StartHandler структура для обработки команды /start
type StartHandler struct {
	flow reply.Flow
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(f reply.Flow) *StartHandler {
	return &StartHandler{flow: f}
}

// Handle сбрасывает сессию и запрашивает имя заново
func (h *StartHandler) Handle(c telebot.Context) error {
	cmd := flow.Command{Name: flow.CommandStart, Args: c.Args()}
	return reply.Dispatch(c, h.flow, cmd)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
