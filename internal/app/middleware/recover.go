package middleware

import (
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"
)

// Recover перехватывает панику в обработчике и вызывает onError.
// Паника превращается в ошибку, которую получает следующий уровень (OnError бота).
func Recover(onError func(error, tele.Context)) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = fmt.Errorf("panic: %v", x)
					}
					if onError != nil {
						onError(e, c)
					}
					err = e
				}
			}()
			return next(c)
		}
	}
}
