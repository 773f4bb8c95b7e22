package sessions

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "burncheck:session:42", sessionKey(42))
}

func TestDecodeSessionFillsAnswers(t *testing.T) {
	s, err := decodeSession([]byte(`{"user_id":7,"state":"selecting_phase"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.UserID)
	assert.NotNil(t, s.Answers)

	_, err = decodeSession([]byte("{"))
	assert.Error(t, err)
}

func TestNewRedisStoreBadURL(t *testing.T) {
	_, err := NewRedisStore("http://localhost", time.Hour)
	assert.Error(t, err)

	_, err = NewStore(Options{Backend: BackendRedis, RedisURL: "::"})
	assert.Error(t, err)
}

// Интеграционный тест, нужен живой Redis: REDIS_TEST_URL=redis://localhost:6379/15
func TestRedisStore_Integration(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL is not set")
	}

	ctx := context.Background()
	st, err := NewRedisStore(url, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Ping(ctx))

	const userID = int64(900001)
	t.Cleanup(func() { _ = st.Delete(ctx, userID) })

	s := model.NewSession(userID, time.Now())
	s.FullName = "Иван Петров"
	s.Begin(model.Selection{FullTest: true}, time.Now())
	s.Record(true)
	require.NoError(t, st.Save(ctx, s))

	got, ok, err := st.Get(ctx, userID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Иван Петров", got.FullName)
	assert.Equal(t, model.StateAnsweringQuestions, got.State)
	assert.Equal(t, 1, len(got.Answers[0]))

	require.NoError(t, st.Delete(ctx, userID))
	_, ok, err = st.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, ok)
}
