package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(time.Hour)

	_, ok, err := st.Get(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	s := model.NewSession(42, time.Now())
	s.FullName = "Иван Петров"
	require.NoError(t, st.Save(ctx, s))

	got, ok, err := st.Get(ctx, 42)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Иван Петров", got.FullName)

	require.NoError(t, st.Delete(ctx, 42))
	_, ok, _ = st.Get(ctx, 42)
	assert.False(t, ok)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(0)

	s := model.NewSession(1, time.Now())
	s.Begin(model.Selection{FullTest: true}, time.Now())
	require.NoError(t, st.Save(ctx, s))

	got, _, _ := st.Get(ctx, 1)
	got.Record(true)

	again, _, _ := st.Get(ctx, 1)
	assert.Equal(t, 0, again.Question)
	assert.Empty(t, again.Answers[0])
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(time.Hour)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	stale := model.NewSession(1, now.Add(-2*time.Hour))
	fresh := model.NewSession(2, now.Add(-10*time.Minute))
	require.NoError(t, st.Save(ctx, stale))
	require.NoError(t, st.Save(ctx, fresh))

	assert.Equal(t, 1, st.Sweep(now))
	assert.Equal(t, 1, st.Len())

	_, ok, _ := st.Get(ctx, 2)
	assert.True(t, ok)
}

func TestMemoryStore_SweepDisabled(t *testing.T) {
	st := NewMemoryStore(0)
	require.NoError(t, st.Save(context.Background(), model.NewSession(1, time.Unix(0, 0))))
	assert.Equal(t, 0, st.Sweep(time.Now()))
}

func TestNewStore_UnknownBackend(t *testing.T) {
	_, err := NewStore(Options{Backend: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestSessionCodec(t *testing.T) {
	s := model.NewSession(7, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	s.Begin(model.Selection{Phase: 2}, s.StartedAt)
	s.Record(true)
	s.Record(false)

	raw, err := encodeSession(s)
	require.NoError(t, err)

	got, err := decodeSession(raw)
	require.NoError(t, err)
	assert.Equal(t, s.Answers, got.Answers)
	assert.Equal(t, 2, got.Phase)
	assert.Equal(t, 2, got.Question)
	assert.Equal(t, "burncheck:session:7", sessionKey(7))
}
