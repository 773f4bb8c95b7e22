package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "burncheck:session:"

// RedisStore хранит сессии в Redis в виде JSON. TTL продлевается при каждом сохранении,
// так что брошенные сессии истекают сами.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore подключается к Redis по URL вида redis://host:port/db
func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return NewRedisStoreWithClient(redis.NewClient(opts), ttl), nil
}

// NewRedisStoreWithClient использует готовый клиент
func NewRedisStoreWithClient(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Ping проверяет доступность Redis
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// Close закрывает соединение
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}

func (r *RedisStore) Get(ctx context.Context, userID int64) (*model.Session, bool, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get session %d: %w", userID, err)
	}

	s, err := decodeSession(raw)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode session %d: %w", userID, err)
	}
	return s, true, nil
}

func (r *RedisStore) Save(ctx context.Context, s *model.Session) error {
	raw, err := encodeSession(s)
	if err != nil {
		return fmt.Errorf("failed to encode session %d: %w", s.UserID, err)
	}
	if err := r.rdb.Set(ctx, sessionKey(s.UserID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %d: %w", s.UserID, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, userID int64) error {
	if err := r.rdb.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %d: %w", userID, err)
	}
	return nil
}

func sessionKey(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}

func encodeSession(s *model.Session) ([]byte, error) {
	return json.Marshal(s)
}

func decodeSession(raw []byte) (*model.Session, error) {
	var s model.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if s.Answers == nil {
		s.Answers = make(map[int]map[int]bool)
	}
	return &s, nil
}
