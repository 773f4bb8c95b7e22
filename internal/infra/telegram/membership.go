package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/IT-Nick/burncheckbot/internal/domain/flow"
	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

var ErrChannelNotFound = errors.New("channel not found")

// ChatAPI часть API бота, нужная для проверки подписки
type ChatAPI interface {
	ChatByUsername(name string) (*tele.Chat, error)
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// MembershipChecker проверяет подписку на канал через getChat и getChatMember.
// Бот должен быть администратором канала.
type MembershipChecker struct {
	api     ChatAPI
	channel string
	log     zerolog.Logger

	mu   sync.Mutex
	chat *tele.Chat
}

func NewMembershipChecker(api ChatAPI, channel string, log zerolog.Logger) *MembershipChecker {
	return &MembershipChecker{
		api:     api,
		channel: strings.TrimPrefix(strings.TrimSpace(channel), "@"),
		log:     log,
	}
}

// Check возвращает ошибку, если канал или участника не удалось получить.
// Решение пропускать пользователя при ошибке принимает вызывающий.
func (m *MembershipChecker) Check(ctx context.Context, userID int64) (flow.Membership, error) {
	if err := ctx.Err(); err != nil {
		return flow.Membership{}, err
	}

	chat, err := m.resolveChat()
	if err != nil {
		return flow.Membership{}, err
	}

	member, err := m.api.ChatMemberOf(chat, tele.ChatID(userID))
	if err != nil {
		return flow.Membership{}, fmt.Errorf("telegram.Check: get chat member %d: %w", userID, err)
	}

	return flow.Membership{
		Subscribed: isSubscribed(member),
		Status:     string(member.Role),
	}, nil
}

// resolveChat пробует @username, затем имя как есть (например, числовой id канала)
func (m *MembershipChecker) resolveChat() (*tele.Chat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.chat != nil {
		return m.chat, nil
	}
	if m.channel == "" {
		return nil, fmt.Errorf("telegram.resolveChat: %w: empty channel username", ErrChannelNotFound)
	}

	var errs []error
	for _, name := range []string{"@" + m.channel, m.channel} {
		chat, err := m.api.ChatByUsername(name)
		if err != nil {
			m.log.Warn().Err(err).Str("channel", name).Msg("channel lookup failed")
			errs = append(errs, err)
			continue
		}
		m.chat = chat
		m.log.Info().Str("channel", name).Int64("chat_id", chat.ID).Msg("channel resolved")
		return chat, nil
	}

	return nil, fmt.Errorf("telegram.resolveChat: %w: %w", ErrChannelNotFound, errors.Join(errs...))
}

func isSubscribed(m *tele.ChatMember) bool {
	switch m.Role {
	case tele.Creator, tele.Administrator, tele.Member:
		return true
	case tele.Restricted:
		return m.Member
	default:
		return false
	}
}
