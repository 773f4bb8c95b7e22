package app

import (
	"context"
	"testing"

	"github.com/IT-Nick/burncheckbot/internal/domain/sessions"
	"github.com/IT-Nick/burncheckbot/internal/infra/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closingStore struct {
	*sessions.MemoryStore
	closed bool
}

func (s *closingStore) Close() error {
	s.closed = true
	return nil
}

func TestNewApp_ClosesStoreWhenDatabaseFails(t *testing.T) {
	store := &closingStore{MemoryStore: sessions.NewMemoryStore(0)}

	orig := newSessionStore
	newSessionStore = func(sessions.Options) (sessions.Store, error) { return store, nil }
	t.Cleanup(func() { newSessionStore = orig })

	cfg := &config.Config{}
	cfg.Database.URL = "postgres://%zz"

	app, err := NewApp(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "failed to initialize database")
	assert.True(t, store.closed)
}
