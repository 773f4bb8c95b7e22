package stats_handler

import (
	"gopkg.in/telebot.v4"
)

// Summarizer сводка статистики
type Summarizer interface {
	Summary() string
}

// StatsHandler обработчик команды администратора /stats
type StatsHandler struct {
	stats Summarizer
}

func NewStatsHandler(stats Summarizer) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Handle(c telebot.Context) error {
	return c.Send(h.stats.Summary())
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StatsHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
