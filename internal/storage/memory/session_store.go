package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

type sessionRecord struct {
	data      []byte
	version   int64
	updatedAt time.Time
	expiresAt time.Time
}

// sessionStoreInMemory хранит сессии в памяти процесса (локальная разработка и тесты).
type sessionStoreInMemory struct {
	mu    sync.RWMutex
	items map[string]sessionRecord
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionStore возвращает in-memory SessionStore с поддержкой версий.
// ttl > 0 включает истечение ключей, как у сессии с ограниченным временем жизни.
func NewSessionStore(ttl time.Duration) *sessionStoreInMemory {
	return &sessionStoreInMemory{
		items: make(map[string]sessionRecord),
		ttl:   ttl,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionStoreInMemory) Has(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.lookup(key)
	return ok, nil
}

func (s *sessionStoreInMemory) Get(_ context.Context, key string) (domain.SessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.lookup(key)
	if !ok {
		return domain.SessionEntry{}, domain.ErrSessionKeyNotFound
	}
	// Отдаём копию, чтобы вызывающий не мог изменить сохранённые байты.
	return domain.SessionEntry{
		Data:      append([]byte(nil), record.data...),
		Version:   record.version,
		UpdatedAt: record.updatedAt,
	}, nil
}

func (s *sessionStoreInMemory) Put(_ context.Context, key string, data []byte) error {
	if strings.TrimSpace(key) == "" {
		return domain.ErrNamespaceRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.lookup(key)
	s.write(key, data, current.version)
	return nil
}

func (s *sessionStoreInMemory) PutIfVersion(_ context.Context, key string, data []byte, version int64) (int64, error) {
	if strings.TrimSpace(key) == "" {
		return 0, domain.ErrNamespaceRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.lookup(key)
	if current.version != version {
		return 0, domain.ErrSessionVersionConflict
	}
	return s.write(key, data, current.version), nil
}

// Ping всегда успешен: хранилище живёт в памяти процесса.
func (s *sessionStoreInMemory) Ping(context.Context) error {
	return nil
}

// Len возвращает количество живых ключей.
func (s *sessionStoreInMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for key := range s.items {
		if _, ok := s.lookup(key); ok {
			count++
		}
	}
	return count
}

// DeleteExpired физически удаляет до limit просроченных записей.
func (s *sessionStoreInMemory) DeleteExpired(_ context.Context, limit int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for key := range s.items {
		if limit > 0 && deleted >= limit {
			break
		}
		if _, ok := s.lookup(key); !ok {
			delete(s.items, key)
			deleted++
		}
	}
	return deleted, nil
}

// lookup вызывается под блокировкой; просроченная запись считается отсутствующей.
func (s *sessionStoreInMemory) lookup(key string) (sessionRecord, bool) {
	record, ok := s.items[key]
	if !ok {
		return sessionRecord{}, false
	}
	if !record.expiresAt.IsZero() && !s.now().Before(record.expiresAt) {
		return sessionRecord{}, false
	}
	return record, true
}

func (s *sessionStoreInMemory) write(key string, data []byte, prevVersion int64) int64 {
	now := s.now()
	record := sessionRecord{
		data:      append([]byte(nil), data...),
		version:   prevVersion + 1,
		updatedAt: now,
	}
	if s.ttl > 0 {
		record.expiresAt = now.Add(s.ttl)
	}
	s.items[key] = record
	return record.version
}

var (
	_ domain.VersionedSessionStore = (*sessionStoreInMemory)(nil)
	_ domain.Pinger                = (*sessionStoreInMemory)(nil)
	_ domain.ExpiredSessionPurger  = (*sessionStoreInMemory)(nil)
)
