package user_handler

import (
	"strconv"

	"github.com/IT-Nick/burncheckbot/internal/domain/stats"
	"gopkg.in/telebot.v4"
)

// UserResults последние результаты пользователей
type UserResults interface {
	UserResult(userID int64) (stats.UserRecord, bool)
}

// UserHandler показывает последний результат пользователя: /user <telegram_id>
type UserHandler struct {
	stats UserResults
}

func NewUserHandler(stats UserResults) *UserHandler {
	return &UserHandler{stats: stats}
}

func (h *UserHandler) Handle(c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Использование: /user <telegram_id>")
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send("Telegram ID должен быть числом.")
	}

	rec, ok := h.stats.UserResult(userID)
	if !ok {
		return c.Send("Пользователь " + args[0] + " не найден в статистике.")
	}
	return c.Send(stats.FormatUser(userID, rec))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *UserHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
