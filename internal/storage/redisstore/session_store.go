package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

const (
	keyPrefix      = "cart:session:"
	opTimeout      = 3 * time.Second
	defaultTimeout = 5 * time.Second
)

// envelope хранится в redis как значение ключа: данные сессии плюс версия для CAS.
type envelope struct {
	Version   int64           `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
	Data      json.RawMessage `json:"data"`
}

type sessionStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var (
	_ domain.VersionedSessionStore = (*sessionStore)(nil)
	_ domain.Pinger                = (*sessionStore)(nil)
)

// Open подключается к redis по адресу addr и проверяет соединение.
func Open(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

// NewSessionStore создаёт хранилище сессии поверх redis.
// ttl > 0 продлевается при каждой записи; истечение выполняет сам redis.
func NewSessionStore(client redis.UniversalClient, ttl time.Duration) *sessionStore {
	return &sessionStore{client: client, ttl: ttl}
}

func (s *sessionStore) Has(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := s.client.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

func (s *sessionStore) Get(ctx context.Context, key string) (domain.SessionEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	env, err := readEnvelope(ctx, s.client, keyPrefix+key)
	if err != nil {
		return domain.SessionEntry{}, err
	}
	if env.Version == 0 {
		return domain.SessionEntry{}, domain.ErrSessionKeyNotFound
	}
	return domain.SessionEntry{Data: []byte(env.Data), Version: env.Version, UpdatedAt: env.UpdatedAt}, nil
}

// Put перезаписывает ключ без проверки версии; версия всё равно увеличивается.
func (s *sessionStore) Put(ctx context.Context, key string, data []byte) error {
	if strings.TrimSpace(key) == "" {
		return domain.ErrNamespaceRequired
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.update(ctx, key, data, func(int64) bool { return true })
	return err
}

// PutIfVersion выполняет WATCH/MULTI: запись проходит, только если версия совпала
// и ключ не изменили параллельно.
func (s *sessionStore) PutIfVersion(ctx context.Context, key string, data []byte, version int64) (int64, error) {
	if strings.TrimSpace(key) == "" {
		return 0, domain.ErrNamespaceRequired
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.update(ctx, key, data, func(current int64) bool { return current == version })
}

func (s *sessionStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

func (s *sessionStore) update(ctx context.Context, key string, data []byte, allowed func(current int64) bool) (int64, error) {
	if !json.Valid(data) {
		return 0, fmt.Errorf("session value for %s is not valid json", key)
	}

	redisKey := keyPrefix + key
	var next int64

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readEnvelope(ctx, tx, redisKey)
		if err != nil && !errors.Is(err, domain.ErrSessionKeyNotFound) {
			return err
		}
		if !allowed(current.Version) {
			return domain.ErrSessionVersionConflict
		}

		next = current.Version + 1
		payload, err := json.Marshal(envelope{
			Version:   next,
			UpdatedAt: time.Now().UTC(),
			Data:      json.RawMessage(data),
		})
		if err != nil {
			return fmt.Errorf("encode session envelope: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, redisKey, payload, s.ttl)
			return nil
		})
		return err
	}, redisKey)

	switch {
	case errors.Is(err, redis.TxFailedErr):
		return 0, domain.ErrSessionVersionConflict
	case errors.Is(err, domain.ErrSessionVersionConflict):
		return 0, err
	case err != nil:
		return 0, fmt.Errorf("redis write session key %s: %w", key, err)
	}
	return next, nil
}

// readEnvelope возвращает пустой конверт вместе с ErrSessionKeyNotFound, если ключа нет.
func readEnvelope(ctx context.Context, cmd redis.Cmdable, redisKey string) (envelope, error) {
	raw, err := cmd.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return envelope{}, domain.ErrSessionKeyNotFound
	}
	if err != nil {
		return envelope{}, fmt.Errorf("redis get: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, fmt.Errorf("decode session envelope: %w", err)
	}
	return env, nil
}
