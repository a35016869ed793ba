package redisstore

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

func openIntegrationStore(t *testing.T, ttl time.Duration) *sessionStore {
	t.Helper()

	addr := strings.TrimSpace(os.Getenv("CART_REDIS_TEST_ADDR"))
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Open(ctx, addr)
	if err != nil {
		t.Skipf("redis is not available for integration tests: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client, ttl)
}

// uniqueKey изолирует тесты друг от друга без FLUSHDB.
func uniqueKey(suffix string) string {
	return uuid.NewString() + "_" + suffix
}

func TestSessionStore_PutGetHas(t *testing.T) {
	store := openIntegrationStore(t, time.Minute)
	ctx := context.Background()
	key := uniqueKey("laracart_cart")

	has, err := store.Has(ctx, key)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = store.Get(ctx, key)
	require.ErrorIs(t, err, domain.ErrSessionKeyNotFound)

	require.NoError(t, store.Put(ctx, key, []byte(`[]`)))
	require.NoError(t, store.Put(ctx, key, []byte(`[{"key":"1","value":{"id":"1"}}]`)))

	entry, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(2), entry.Version)
	assert.JSONEq(t, `[{"key":"1","value":{"id":"1"}}]`, string(entry.Data))

	has, err = store.Has(ctx, key)
	require.NoError(t, err)
	assert.True(t, has)

	require.Error(t, store.Put(ctx, key, []byte(`not json`)))
}

func TestSessionStore_PutIfVersion(t *testing.T) {
	store := openIntegrationStore(t, time.Minute)
	ctx := context.Background()
	key := uniqueKey("laracart_coupons")

	version, err := store.PutIfVersion(ctx, key, []byte(`[]`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = store.PutIfVersion(ctx, key, []byte(`[]`), 0)
	require.ErrorIs(t, err, domain.ErrSessionVersionConflict)

	version, err = store.PutIfVersion(ctx, key, []byte(`[1]`), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	_, err = store.PutIfVersion(ctx, key, []byte(`[2]`), 1)
	require.ErrorIs(t, err, domain.ErrSessionVersionConflict)
}

func TestSessionStore_TTL(t *testing.T) {
	store := openIntegrationStore(t, 100*time.Millisecond)
	ctx := context.Background()
	key := uniqueKey("laracart_other_charges")

	require.NoError(t, store.Put(ctx, key, []byte(`[]`)))
	time.Sleep(300 * time.Millisecond)

	has, err := store.Has(ctx, key)
	require.NoError(t, err)
	assert.False(t, has)
}
