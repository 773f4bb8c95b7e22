package help_handler

import (
	"github.com/IT-Nick/burncheckbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/burncheckbot/internal/domain/flow"
	"gopkg.in/telebot.v4"
)

// HelpHandler обработчик команды /help, доступен в любом состоянии
type HelpHandler struct {
	flow reply.Flow
}

func NewHelpHandler(f reply.Flow) *HelpHandler {
	return &HelpHandler{flow: f}
}

func (h *HelpHandler) Handle(c telebot.Context) error {
	return reply.Dispatch(c, h.flow, flow.Command{Name: flow.CommandHelp})
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *HelpHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
