package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

// Суффиксы ключей сессии; префиксом служит namespace корзины.
const (
	ItemsKeySuffix        = "laracart_cart"
	CouponsKeySuffix      = "laracart_coupons"
	OtherChargesKeySuffix = "laracart_other_charges"
)

// Keys перечисляет три ключа сессии, которыми владеет одна корзина.
type Keys struct {
	Items        string
	Coupons      string
	OtherCharges string
}

// KeysFor выводит ключи сессии из namespace (cookie сессии).
func KeysFor(namespace string) Keys {
	return Keys{
		Items:        namespace + ItemsKeySuffix,
		Coupons:      namespace + CouponsKeySuffix,
		OtherCharges: namespace + OtherChargesKeySuffix,
	}
}

// NamespaceFor строит namespace из имени cookie сессии и её идентификатора.
func NamespaceFor(cookie, sessionID string) string {
	return cookie + ":" + sessionID + ":"
}

func (k Keys) all() []string {
	return []string{k.Items, k.Coupons, k.OtherCharges}
}

var emptyCollection = []byte("[]")

// collections читает и пишет три упорядоченные коллекции через хранилище сессии.
// Каждая мутация выполняет полный цикл read-modify-write одного ключа, без кеша между вызовами.
type collections struct {
	store     domain.SessionStore
	versioned domain.VersionedSessionStore
	keys      Keys
}

func newCollections(store domain.SessionStore, keys Keys) *collections {
	c := &collections{store: store, keys: keys}
	if versioned, ok := store.(domain.VersionedSessionStore); ok {
		c.versioned = versioned
	}
	return c
}

// ensure создаёт пустые коллекции для ключей, которых ещё нет в сессии.
func (c *collections) ensure(ctx context.Context) error {
	for _, key := range c.keys.all() {
		has, err := c.store.Has(ctx, key)
		if err != nil {
			return fmt.Errorf("check session key %s: %w", key, err)
		}
		if has {
			continue
		}
		if _, err := c.create(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// reset безусловно перезаписывает ключ пустой коллекцией.
func (c *collections) reset(ctx context.Context, key string) error {
	if err := c.store.Put(ctx, key, emptyCollection); err != nil {
		return fmt.Errorf("reset session key %s: %w", key, err)
	}
	return nil
}

// create записывает пустую коллекцию и возвращает её версию.
// Если ключ успели создать параллельно, версия перечитывается.
func (c *collections) create(ctx context.Context, key string) (int64, error) {
	if c.versioned == nil {
		if err := c.store.Put(ctx, key, emptyCollection); err != nil {
			return 0, fmt.Errorf("init session key %s: %w", key, err)
		}
		return 0, nil
	}

	version, err := c.versioned.PutIfVersion(ctx, key, emptyCollection, 0)
	if err == nil {
		return version, nil
	}
	if !errors.Is(err, domain.ErrSessionVersionConflict) {
		return 0, fmt.Errorf("init session key %s: %w", key, err)
	}
	entry, err := c.store.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("get session key %s: %w", key, err)
	}
	return entry.Version, nil
}

// loadCollection возвращает коллекцию и версию, под которой её прочитали.
// Отсутствующий ключ инициализируется пустой коллекцией.
func loadCollection[T any](ctx context.Context, c *collections, key string) (*domain.Collection[T], int64, error) {
	entry, err := c.store.Get(ctx, key)
	if errors.Is(err, domain.ErrSessionKeyNotFound) {
		version, err := c.create(ctx, key)
		if err != nil {
			return nil, 0, err
		}
		return domain.NewCollection[T](), version, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("get session key %s: %w", key, err)
	}

	coll := domain.NewCollection[T]()
	if len(entry.Data) > 0 {
		if err := json.Unmarshal(entry.Data, coll); err != nil {
			return nil, 0, fmt.Errorf("decode session key %s: %w", key, err)
		}
	}
	return coll, entry.Version, nil
}

// storeCollection перезаписывает коллекцию одной записью.
// Для версионируемых хранилищ запись условна: version должна совпасть с прочитанной.
func storeCollection[T any](ctx context.Context, c *collections, key string, coll *domain.Collection[T], version int64) error {
	data, err := json.Marshal(coll)
	if err != nil {
		return fmt.Errorf("encode session key %s: %w", key, err)
	}

	if c.versioned != nil {
		if _, err := c.versioned.PutIfVersion(ctx, key, data, version); err != nil {
			return fmt.Errorf("put session key %s: %w", key, err)
		}
		return nil
	}

	if err := c.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("put session key %s: %w", key, err)
	}
	return nil
}
