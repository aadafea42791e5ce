package sessions

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	expiresAt time.Time
	timer     *time.Timer
}

// MemoryStore хранит токены в памяти процесса, каждый токен удаляется собственным таймером
// Содержимое теряется при рестарте
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

// NewMemoryStore создает хранилище сессий в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

// Save сохраняет токен на ttl
func (s *MemoryStore) Save(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[token]; ok {
		old.timer.Stop()
	}

	entry := &memoryEntry{expiresAt: time.Now().Add(ttl)}
	entry.timer = time.AfterFunc(ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// Токен мог быть перезаписан новым Save
		if cur, ok := s.entries[token]; ok && cur == entry {
			delete(s.entries, token)
		}
	})
	s.entries[token] = entry

	return nil
}

// Exists true, если токен сохранён и ещё не истёк
func (s *MemoryStore) Exists(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return false, nil
	}
	return time.Now().Before(entry.expiresAt), nil
}

// Delete удаляет токен, отсутствие токена не ошибка
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[token]; ok {
		entry.timer.Stop()
		delete(s.entries, token)
	}
	return nil
}

// Len количество живых токенов
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close останавливает все таймеры и очищает хранилище
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, entry := range s.entries {
		entry.timer.Stop()
		delete(s.entries, token)
	}
	return nil
}
