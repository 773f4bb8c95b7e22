package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// ключ логгера запроса в контексте telebot
const loggerKey = "logger"

// UpdateObserver принимает длительность и исход обработки обновления
type UpdateObserver interface {
	ObserveUpdate(kind string, started time.Time, err error)
}

// Logger возвращает middleware, которое логирует входящие обновления Telegram.
// Каждому обновлению присваивается request_id, дочерний логгер кладётся в контекст.
func Logger(log zerolog.Logger, observer UpdateObserver) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			started := time.Now()
			kind := UpdateKind(c)

			l := log.With().
				Str("request_id", uuid.NewString()).
				Str("kind", kind).
				Int64("user_id", senderID(c)).
				Logger()
			c.Set(loggerKey, l)

			err := next(c)

			ev := l.Debug()
			if err != nil {
				ev = l.Error().Err(err)
			}
			ev.Dur("took", time.Since(started)).Msg("update handled")

			if observer != nil {
				observer.ObserveUpdate(kind, started, err)
			}
			return err
		}
	}
}

// FromContext логгер текущего обновления, либо fallback
func FromContext(c tele.Context, fallback zerolog.Logger) zerolog.Logger {
	if l, ok := c.Get(loggerKey).(zerolog.Logger); ok {
		return l
	}
	return fallback
}

// UpdateKind тип обновления для логов и метрик
func UpdateKind(c tele.Context) string {
	switch {
	case c.Callback() != nil:
		return "callback"
	case c.Message() != nil && len(c.Message().Text) > 0 && c.Message().Text[0] == '/':
		return "command"
	case c.Message() != nil:
		return "message"
	default:
		return "other"
	}
}

func senderID(c tele.Context) int64 {
	if u := c.Sender(); u != nil {
		return u.ID
	}
	return 0
}
