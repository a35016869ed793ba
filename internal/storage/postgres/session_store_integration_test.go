package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

func TestSessionStore_PutGetHas(t *testing.T) {
	store := openMigratedStore(t)
	sessions := NewSessionStore(store, 0)
	ctx := context.Background()

	has, err := sessions.Has(ctx, "s1_laracart_cart")
	require.NoError(t, err)
	assert.False(t, has)

	_, err = sessions.Get(ctx, "s1_laracart_cart")
	require.ErrorIs(t, err, domain.ErrSessionKeyNotFound)

	require.NoError(t, sessions.Put(ctx, "s1_laracart_cart", []byte(`[]`)))
	require.NoError(t, sessions.Put(ctx, "s1_laracart_cart", []byte(`[{"key":"1","value":{"id":"1"}}]`)))

	entry, err := sessions.Get(ctx, "s1_laracart_cart")
	require.NoError(t, err)
	assert.Equal(t, int64(2), entry.Version)
	assert.JSONEq(t, `[{"key":"1","value":{"id":"1"}}]`, string(entry.Data))

	has, err = sessions.Has(ctx, "s1_laracart_cart")
	require.NoError(t, err)
	assert.True(t, has)

	require.ErrorIs(t, sessions.Put(ctx, " ", []byte(`[]`)), domain.ErrNamespaceRequired)
}

func TestSessionStore_PutIfVersion(t *testing.T) {
	store := openMigratedStore(t)
	sessions := NewSessionStore(store, 0)
	ctx := context.Background()

	version, err := sessions.PutIfVersion(ctx, "k", []byte(`[]`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = sessions.PutIfVersion(ctx, "k", []byte(`[]`), 0)
	require.ErrorIs(t, err, domain.ErrSessionVersionConflict)

	version, err = sessions.PutIfVersion(ctx, "k", []byte(`[1]`), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	_, err = sessions.PutIfVersion(ctx, "k", []byte(`[2]`), 1)
	require.ErrorIs(t, err, domain.ErrSessionVersionConflict)

	entry, err := sessions.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `[1]`, string(entry.Data))
}

func TestSessionStore_TTL(t *testing.T) {
	store := openMigratedStore(t)
	sessions := NewSessionStore(store, 50*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, sessions.Put(ctx, "short", []byte(`[]`)))
	time.Sleep(100 * time.Millisecond)

	has, err := sessions.Has(ctx, "short")
	require.NoError(t, err)
	assert.False(t, has)

	// Просроченный ключ можно создать заново с версии 1.
	version, err := sessions.PutIfVersion(ctx, "short", []byte(`[]`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	time.Sleep(100 * time.Millisecond)
	removed, err := sessions.DeleteExpired(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}
