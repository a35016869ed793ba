package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

const (
	sessionOpTimeout = 5 * time.Second
	uniqueViolation  = "23505"
)

type sessionStore struct {
	db  *sql.DB
	ttl time.Duration
}

var (
	_ domain.VersionedSessionStore = (*sessionStore)(nil)
	_ domain.Pinger                = (*sessionStore)(nil)
	_ domain.ExpiredSessionPurger  = (*sessionStore)(nil)
)

// NewSessionStore создаёт хранилище сессии поверх таблицы cart_sessions.
// ttl > 0 задаёт срок жизни ключа с момента последней записи.
func NewSessionStore(store *Store, ttl time.Duration) *sessionStore {
	return &sessionStore{db: store.DB(), ttl: ttl}
}

func (s *sessionStore) Has(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, sessionOpTimeout)
	defer cancel()

	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM cart_sessions
			WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())
		)
	`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check session key: %w", err)
	}
	return exists, nil
}

func (s *sessionStore) Get(ctx context.Context, key string) (domain.SessionEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, sessionOpTimeout)
	defer cancel()

	var entry domain.SessionEntry
	err := s.db.QueryRowContext(ctx, `
		SELECT data, version, updated_at
		FROM cart_sessions
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`, key).Scan(&entry.Data, &entry.Version, &entry.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SessionEntry{}, domain.ErrSessionKeyNotFound
	}
	if err != nil {
		return domain.SessionEntry{}, fmt.Errorf("select session key: %w", err)
	}
	return entry, nil
}

// Put перезаписывает ключ безусловно, версия при этом всё равно растёт.
func (s *sessionStore) Put(ctx context.Context, key string, data []byte) error {
	if strings.TrimSpace(key) == "" {
		return domain.ErrNamespaceRequired
	}

	ctx, cancel := context.WithTimeout(ctx, sessionOpTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_sessions (key, data, version, updated_at, expires_at)
		VALUES ($1, $2::jsonb, 1, NOW(), $3)
		ON CONFLICT (key) DO UPDATE SET
			data = EXCLUDED.data,
			version = CASE
				WHEN cart_sessions.expires_at IS NOT NULL AND cart_sessions.expires_at <= NOW() THEN 1
				ELSE cart_sessions.version + 1
			END,
			updated_at = EXCLUDED.updated_at,
			expires_at = EXCLUDED.expires_at
	`, key, string(data), s.expiresAt())
	if err != nil {
		return fmt.Errorf("upsert session key: %w", err)
	}
	return nil
}

// PutIfVersion пишет ключ, только если его версия не изменилась с момента чтения.
// version=0 означает, что ключа ещё нет.
func (s *sessionStore) PutIfVersion(ctx context.Context, key string, data []byte, version int64) (int64, error) {
	if strings.TrimSpace(key) == "" {
		return 0, domain.ErrNamespaceRequired
	}

	ctx, cancel := context.WithTimeout(ctx, sessionOpTimeout)
	defer cancel()

	if version == 0 {
		return s.insert(ctx, key, data)
	}

	var next int64
	err := s.db.QueryRowContext(ctx, `
		UPDATE cart_sessions
		SET data = $2::jsonb, version = version + 1, updated_at = NOW(), expires_at = $4
		WHERE key = $1 AND version = $3 AND (expires_at IS NULL OR expires_at > NOW())
		RETURNING version
	`, key, string(data), version, s.expiresAt()).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrSessionVersionConflict
	}
	if err != nil {
		return 0, fmt.Errorf("update session key: %w", err)
	}
	return next, nil
}

// insert создаёт ключ. Просроченная строка считается отсутствующей и перезаписывается.
func (s *sessionStore) insert(ctx context.Context, key string, data []byte) (int64, error) {
	var next int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO cart_sessions (key, data, version, updated_at, expires_at)
		VALUES ($1, $2::jsonb, 1, NOW(), $3)
		ON CONFLICT (key) DO UPDATE SET
			data = EXCLUDED.data,
			version = 1,
			updated_at = EXCLUDED.updated_at,
			expires_at = EXCLUDED.expires_at
		WHERE cart_sessions.expires_at IS NOT NULL AND cart_sessions.expires_at <= NOW()
		RETURNING version
	`, key, string(data), s.expiresAt()).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
		return 0, domain.ErrSessionVersionConflict
	}
	if err != nil {
		return 0, fmt.Errorf("insert session key: %w", err)
	}
	return next, nil
}

func (s *sessionStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, sessionOpTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

// DeleteExpired удаляет до limit просроченных ключей за один запрос.
func (s *sessionStore) DeleteExpired(ctx context.Context, limit int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, sessionOpTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM cart_sessions
		WHERE key IN (
			SELECT key FROM cart_sessions
			WHERE expires_at IS NOT NULL AND expires_at <= NOW()
			LIMIT $1
		)
	`, limit)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted sessions: %w", err)
	}
	return int(affected), nil
}

func (s *sessionStore) expiresAt() sql.NullTime {
	if s.ttl <= 0 {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: time.Now().UTC().Add(s.ttl), Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
