package reply

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/IT-Nick/burncheckbot/internal/domain/flow"
	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// Flow диалог, в который обработчики передают действия пользователя
type Flow interface {
	Handle(ctx context.Context, user model.User, action flow.Action) ([]flow.Output, error)
}

// User отправитель обновления в терминах домена
func User(sender *telebot.User) model.User {
	if sender == nil {
		return model.User{}
	}
	return model.User{
		ID:        sender.ID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
	}
}

// Dispatch передаёт действие в диалог и отправляет полученные экраны
func Dispatch(c telebot.Context, f Flow, action flow.Action) error {
	if c.Sender() == nil {
		return nil
	}
	outs, err := f.Handle(context.Background(), User(c.Sender()), action)
	if err != nil {
		return err
	}
	return Send(c, outs)
}

// Send отправляет экраны по порядку. Экран с Edit заменяет сообщение с нажатой кнопкой.
func Send(c telebot.Context, outs []flow.Output) error {
	for _, out := range outs {
		var err error
		switch o := out.(type) {
		case flow.Screen:
			err = sendScreen(c, o)
		case flow.Photo:
			err = sendPhoto(c, o)
		default:
			err = fmt.Errorf("reply.Send: unsupported output %T", out)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func sendScreen(c telebot.Context, s flow.Screen) error {
	opts := &telebot.SendOptions{
		ParseMode:             telebot.ModeHTML,
		DisableWebPagePreview: true,
	}
	if len(s.Buttons) > 0 {
		opts.ReplyMarkup = &telebot.ReplyMarkup{InlineKeyboard: Keyboard(s.Buttons)}
	}

	if s.Edit && c.Callback() != nil && c.Callback().Message != nil {
		err := c.Edit(s.Text, opts)
		if err == nil || isNotModified(err) {
			return nil
		}
		// Старое сообщение могло быть удалено или стать недоступным для редактирования
	}

	if err := c.Send(s.Text, opts); err != nil {
		return fmt.Errorf("reply.sendScreen: %w", err)
	}
	return nil
}

func sendPhoto(c telebot.Context, p flow.Photo) error {
	photo := &telebot.Photo{
		File:    telebot.FromReader(bytes.NewReader(p.Image)),
		Caption: p.Caption,
	}
	if err := c.Send(photo, telebot.ModeHTML); err != nil {
		return fmt.Errorf("reply.sendPhoto: %w", err)
	}
	return nil
}

// Keyboard инлайн-клавиатура из раскладки кнопок
func Keyboard(rows [][]flow.Button) [][]telebot.InlineButton {
	keyboard := make([][]telebot.InlineButton, 0, len(rows))
	for _, row := range rows {
		line := make([]telebot.InlineButton, 0, len(row))
		for _, b := range row {
			line = append(line, telebot.InlineButton{
				Text: b.Label,
				Data: b.Data,
				URL:  b.URL,
			})
		}
		keyboard = append(keyboard, line)
	}
	return keyboard
}

func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}
