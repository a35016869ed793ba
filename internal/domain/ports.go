package domain

import (
	"context"
	"time"
)

// SessionEntry содержит закодированное значение ключа сессии и его версию.
type SessionEntry struct {
	Data []byte
	// Version растёт на единицу при каждой записи; 0 означает, что ключ ещё не записан.
	Version   int64
	UpdatedAt time.Time
}

// SessionStore описывает внешнее key-value хранилище сессии.
type SessionStore interface {
	// Has сообщает, записан ли ключ.
	Has(ctx context.Context, key string) (bool, error)
	// Get возвращает значение ключа или ErrSessionKeyNotFound.
	Get(ctx context.Context, key string) (SessionEntry, error)
	// Put безусловно перезаписывает значение ключа.
	Put(ctx context.Context, key string, data []byte) error
}

// VersionedSessionStore добавляет условную запись для optimistic locking.
type VersionedSessionStore interface {
	SessionStore
	// PutIfVersion записывает значение, только если текущая версия ключа равна version
	// (0 требует, чтобы ключ отсутствовал). Возвращает новую версию или ErrSessionVersionConflict.
	PutIfVersion(ctx context.Context, key string, data []byte, version int64) (int64, error)
}

// Pinger реализуют хранилища, доступность которых можно проверить (для health checks).
type Pinger interface {
	Ping(ctx context.Context) error
}

// ExpiredSessionPurger реализуют хранилища, которые сами не удаляют просроченные ключи.
type ExpiredSessionPurger interface {
	// DeleteExpired удаляет не больше limit просроченных ключей и возвращает их число.
	DeleteExpired(ctx context.Context, limit int) (int, error)
}
