package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
)

// MessageSource источник переопределённых текстов
type MessageSource interface {
	ListMessages(ctx context.Context) ([]model.Message, error)
}

// MessageService содержит логику для работы с сообщениями.
// Встроенный каталог дополняется текстами из источника, если он задан.
type MessageService struct {
	source MessageSource

	mu        sync.RWMutex
	overrides map[string]string
}

// NewMessageService создает новый экземпляр MessageService. source может быть nil.
func NewMessageService(source MessageSource) *MessageService {
	return &MessageService{
		source:    source,
		overrides: make(map[string]string),
	}
}

// Reload перечитывает переопределения из источника
func (s *MessageService) Reload(ctx context.Context) (int, error) {
	if s.source == nil {
		return 0, nil
	}

	messages, err := s.source.ListMessages(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load messages: %w", err)
	}

	overrides := make(map[string]string, len(messages))
	for _, m := range messages {
		if _, known := catalog[m.Key]; !known || m.Text == "" {
			continue
		}
		overrides[m.Key] = m.Text
	}

	s.mu.Lock()
	s.overrides = overrides
	s.mu.Unlock()

	return len(overrides), nil
}

// GetMessageByKey возвращает текст по ключу. Неизвестный ключ возвращается как есть.
func (s *MessageService) GetMessageByKey(messageKey string) string {
	s.mu.RLock()
	text, ok := s.overrides[messageKey]
	s.mu.RUnlock()
	if ok {
		return text
	}
	if text, ok := catalog[messageKey]; ok {
		return text
	}
	return messageKey
}

// Keys все ключи встроенного каталога
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	return keys
}
