package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
)

// Типы хранилища сессий
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var ErrUnknownBackend = errors.New("unknown session backend")

// Store хранилище сессий: идентификатор пользователя -> сессия.
// Get возвращает копию, изменения видны только после Save.
type Store interface {
	Get(ctx context.Context, userID int64) (*model.Session, bool, error)
	Save(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, userID int64) error
}

// Options параметры создания хранилища
type Options struct {
	Backend  string
	TTL      time.Duration
	RedisURL string
}

// NewStore возвращает реализацию Store в зависимости от типа хранения.
func NewStore(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(opts.TTL), nil
	case BackendRedis:
		st, err := NewRedisStore(opts.RedisURL, opts.TTL)
		if err != nil {
			return nil, fmt.Errorf("sessions.NewStore: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
}
