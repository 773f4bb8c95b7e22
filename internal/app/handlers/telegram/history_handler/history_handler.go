package history_handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	resultsService "github.com/IT-Nick/burncheckbot/internal/domain/results/service"
	"gopkg.in/telebot.v4"
)

// History архив результатов пользователя
type History interface {
	History(ctx context.Context, userID int64, limit int) ([]model.ResultRecord, error)
}

// HistoryHandler история прохождений пользователя из архива: /history <telegram_id>
type HistoryHandler struct {
	results History
}

func NewHistoryHandler(results History) *HistoryHandler {
	return &HistoryHandler{results: results}
}

func (h *HistoryHandler) Handle(c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Использование: /history <telegram_id>")
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send("Telegram ID должен быть числом.")
	}

	records, err := h.results.History(context.Background(), userID, resultsService.DefaultHistoryLimit)
	if errors.Is(err, resultsService.ErrHistoryDisabled) {
		return c.Send("Архив результатов отключён: база данных не настроена.")
	}
	if err != nil {
		return fmt.Errorf("history_handler: %w", err)
	}

	return c.Send(resultsService.FormatHistory(userID, records))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *HistoryHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
