package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
)

// MemoryStore — in‑memory реализация с вытеснением брошенных сессий по возрасту.
type MemoryStore struct {
	data map[int64]*model.Session
	ttl  time.Duration
	mu   sync.RWMutex
}

// NewMemoryStore создаёт новый MemoryStore. ttl <= 0 отключает вытеснение.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data: make(map[int64]*model.Session),
		ttl:  ttl,
	}
}

func (m *MemoryStore) Get(_ context.Context, userID int64) (*model.Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.data[userID]
	if !ok {
		return nil, false, nil
	}
	return s.Clone(), true, nil
}

func (m *MemoryStore) Save(_ context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[s.UserID] = s.Clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID)
	return nil
}

// Len количество хранимых сессий
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Sweep удаляет сессии, не обновлявшиеся дольше ttl. Возвращает число удалённых.
func (m *MemoryStore) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.data {
		if now.Sub(s.UpdatedAt) > m.ttl {
			delete(m.data, id)
			removed++
		}
	}
	return removed
}
