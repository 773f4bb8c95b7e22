package middleware

import (
	"context"
	"fmt"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// StateReader отдаёт текущее состояние диалога пользователя
type StateReader interface {
	State(ctx context.Context, userID int64) (model.State, bool, error)
}

// DebugUserActions при включённом режиме отладки пишет в лог действие пользователя
// вместе с состоянием его диалога после обработки.
func DebugUserActions(enabled bool, states StateReader, log zerolog.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		if !enabled {
			return next
		}
		return func(c tele.Context) error {
			err := next(c)

			user := c.Sender()
			if user == nil {
				return err
			}

			state := "none"
			if st, ok, stErr := states.State(context.Background(), user.ID); stErr == nil && ok {
				state = string(st)
			}

			l := FromContext(c, log)
			l.Debug().
				Str("first_name", user.FirstName).
				Str("state", state).
				Str("action", describeAction(c)).
				Msg("user action")

			return err
		}
	}
}

func describeAction(c tele.Context) string {
	if cb := c.Callback(); cb != nil {
		return "callback: " + cb.Data
	}
	if msg := c.Message(); msg != nil {
		return fmt.Sprintf("message: %q", msg.Text)
	}
	return "unknown"
}
