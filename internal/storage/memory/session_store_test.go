package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

func TestSessionStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(0)

	if ok, err := store.Has(ctx, "k"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, domain.ErrSessionKeyNotFound) {
		t.Fatalf("expected ErrSessionKeyNotFound, got %v", err)
	}

	if err := store.Put(ctx, "k", []byte(`[]`)); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	entry, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(entry.Data) != `[]` {
		t.Fatalf("unexpected data %q", entry.Data)
	}
	if entry.Version != 1 {
		t.Fatalf("expected version 1, got %d", entry.Version)
	}

	// Мутация полученных байтов не должна влиять на хранилище.
	entry.Data[0] = 'x'
	again, _ := store.Get(ctx, "k")
	if string(again.Data) != `[]` {
		t.Fatalf("stored data was mutated: %q", again.Data)
	}
}

func TestSessionStore_PutIfVersion(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(0)

	version, err := store.PutIfVersion(ctx, "k", []byte(`[]`), 0)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected version 1, got %d", version)
	}

	if _, err := store.PutIfVersion(ctx, "k", []byte(`[1]`), 0); !errors.Is(err, domain.ErrSessionVersionConflict) {
		t.Fatalf("expected conflict on stale create, got %v", err)
	}

	version, err = store.PutIfVersion(ctx, "k", []byte(`[2]`), 1)
	if err != nil {
		t.Fatalf("conditional put failed: %v", err)
	}
	if version != 2 {
		t.Fatalf("expected version 2, got %d", version)
	}

	if _, err := store.PutIfVersion(ctx, "k", []byte(`[3]`), 1); !errors.Is(err, domain.ErrSessionVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}
}

func TestSessionStore_EmptyKey(t *testing.T) {
	store := NewSessionStore(0)
	if err := store.Put(context.Background(), " ", nil); !errors.Is(err, domain.ErrNamespaceRequired) {
		t.Fatalf("expected ErrNamespaceRequired, got %v", err)
	}
}

func TestSessionStore_TTL(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Minute)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	if err := store.Put(ctx, "k", []byte(`[]`)); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 live key, got %d", store.Len())
	}

	now = now.Add(2 * time.Minute)

	if ok, _ := store.Has(ctx, "k"); ok {
		t.Fatal("expected key to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected 0 live keys, got %d", store.Len())
	}

	// После истечения ключ создаётся заново с версии 1.
	version, err := store.PutIfVersion(ctx, "k", []byte(`[]`), 0)
	if err != nil {
		t.Fatalf("recreate failed: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected version 1 after expiry, got %d", version)
	}
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Minute)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	for _, key := range []string{"a", "b", "c"} {
		if err := store.Put(ctx, key, []byte(`[]`)); err != nil {
			t.Fatalf("put %s failed: %v", key, err)
		}
	}

	if deleted, _ := store.DeleteExpired(ctx, 10); deleted != 0 {
		t.Fatalf("expected nothing to delete, got %d", deleted)
	}

	now = now.Add(2 * time.Minute)

	deleted, err := store.DeleteExpired(ctx, 2)
	if err != nil {
		t.Fatalf("delete expired failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected batch of 2, got %d", deleted)
	}
	deleted, _ = store.DeleteExpired(ctx, 2)
	if deleted != 1 {
		t.Fatalf("expected remaining 1, got %d", deleted)
	}
	if len(store.items) != 0 {
		t.Fatalf("expected empty map, got %d records", len(store.items))
	}
}
