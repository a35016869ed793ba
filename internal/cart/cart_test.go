package cart_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cart/internal/cart"
	"github.com/vladislavdragonenkov/cart/internal/domain"
	"github.com/vladislavdragonenkov/cart/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/cart/internal/storage/memory"
)

const testNamespace = "cartsvc_"

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func openCart(t *testing.T, store domain.SessionStore, opts cart.Options) *cart.Cart {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = loggerForTests()
	}
	c, err := cart.Open(context.Background(), store, testNamespace, opts)
	require.NoError(t, err)
	return c
}

func widget(quantity int) domain.LineItem {
	return domain.LineItem{
		ID:       "1",
		Name:     "Widget",
		Quantity: quantity,
		Price:    10,
		Tax:      "10%",
		Discount: "-10%",
	}
}

// plainStore не умеет условную запись (last write wins).
type plainStore struct {
	mu   sync.Mutex
	data map[string][]byte
	puts int
}

func newPlainStore() *plainStore {
	return &plainStore{data: make(map[string][]byte)}
}

func (s *plainStore) Has(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok, nil
}

func (s *plainStore) Get(_ context.Context, key string) (domain.SessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[key]
	if !ok {
		return domain.SessionEntry{}, domain.ErrSessionKeyNotFound
	}
	return domain.SessionEntry{Data: append([]byte(nil), data...)}, nil
}

func (s *plainStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	s.puts++
	return nil
}

type stubPublisher struct {
	mu     sync.Mutex
	events []*kafka.CartEvent
	err    error
}

func (p *stubPublisher) PublishEvent(topic string, key string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if topic != kafka.TopicCartEvents || key != testNamespace {
		return errors.New("unexpected topic or key")
	}
	p.events = append(p.events, event.(*kafka.CartEvent))
	return p.err
}

func (p *stubPublisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	result := make([]kafka.EventType, 0, len(p.events))
	for _, e := range p.events {
		result = append(result, e.EventType)
	}
	return result
}

type stubRecorder struct {
	mu        sync.Mutex
	results   map[string][]error
	totals    []float64
	conflicts int
}

func newStubRecorder() *stubRecorder {
	return &stubRecorder{results: make(map[string][]error)}
}

func (r *stubRecorder) RecordOperation(op string, err error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[op] = append(r.results[op], err)
}

func (r *stubRecorder) RecordTotalDue(v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals = append(r.totals, v)
}

func (r *stubRecorder) RecordVersionConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts++
}

func TestOpen_InitializesEmptyCollections(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore(0)

	c := openCart(t, store, cart.Options{})

	for _, key := range []string{
		testNamespace + "laracart_cart",
		testNamespace + "laracart_coupons",
		testNamespace + "laracart_other_charges",
	} {
		entry, err := store.Get(ctx, key)
		require.NoError(t, err, key)
		assert.JSONEq(t, `[]`, string(entry.Data))
	}
	assert.Equal(t, testNamespace+"laracart_cart", c.Keys().Items)

	// Повторное открытие не затирает существующие данные.
	require.NoError(t, c.Add(ctx, widget(1)))
	again := openCart(t, store, cart.Options{})
	count, err := again.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpen_EmptyNamespace(t *testing.T) {
	_, err := cart.Open(context.Background(), memory.NewSessionStore(0), " ", cart.Options{})
	assert.ErrorIs(t, err, domain.ErrNamespaceRequired)
}

func TestAdd_SameIDSumsQuantities(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{})

	require.NoError(t, c.Add(ctx, widget(2)))

	second := widget(3)
	second.Price = 99
	second.Name = "Ignored"
	require.NoError(t, c.Add(ctx, second))

	items, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	// Поля сохранённой записи, кроме количества, не меняются.
	assert.Equal(t, 10.0, items[0].Price)
	assert.Equal(t, "Widget", items[0].Name)
}

func TestAdd_AppliesDefaults(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{})

	require.NoError(t, c.Add(ctx, domain.LineItem{ID: "2", Name: "Plain", Quantity: 1, Price: 5}))

	items, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.DefaultTax, items[0].Tax)
	assert.Equal(t, domain.DefaultDiscount, items[0].Discount)

	// Запись с дефолтами можно отправить обратно в Update без ошибок валидации.
	items[0].Quantity = 4
	require.NoError(t, c.Update(ctx, items[0]))
}

func TestAdd_InvalidLeavesCartUntouched(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{})
	require.NoError(t, c.Add(ctx, widget(1)))

	bad := widget(5)
	bad.Tax = "ten percent"
	err := c.Add(ctx, bad)
	require.ErrorIs(t, err, domain.ErrValidation)

	items, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{})

	err := c.Update(ctx, widget(1))
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, c.Add(ctx, widget(2)))

	replacement := domain.LineItem{ID: "1", Name: "Gadget", Quantity: 7, Price: 3.5, Tax: "5%"}
	require.NoError(t, c.Update(ctx, replacement))

	items, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Gadget", items[0].Name)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, 3.5, items[0].Price)
	assert.Equal(t, "5%", items[0].Tax)
	assert.Equal(t, domain.DefaultDiscount, items[0].Discount)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := newPlainStore()
	c := openCart(t, store, cart.Options{})

	require.ErrorIs(t, c.Remove(ctx, "1"), domain.ErrNotFound)

	require.NoError(t, c.Add(ctx, widget(3)))
	require.NoError(t, c.Remove(ctx, "1"))

	// Удаление сохранено: новая корзина поверх того же хранилища видит пустой список.
	fresh := openCart(t, store, cart.Options{})
	items, err := fresh.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveQuantity(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{})

	require.ErrorIs(t, c.RemoveQuantity(ctx, "1", 1), domain.ErrNotFound)

	require.NoError(t, c.Add(ctx, widget(5)))

	require.NoError(t, c.RemoveQuantity(ctx, "1", 2))
	items, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	err = c.RemoveQuantity(ctx, "1", 4)
	require.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	var qtyErr *domain.InsufficientQuantityError
	require.ErrorAs(t, err, &qtyErr)
	assert.Equal(t, 1, qtyErr.Shortfall())

	items, err = c.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity, "failed removal must not change quantity")

	require.NoError(t, c.RemoveQuantity(ctx, "1", 3))
	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.ErrorIs(t, c.RemoveQuantity(ctx, "1", -1), domain.ErrValidation)
}

func TestCoupons(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{})

	require.ErrorIs(t, c.AddCoupon(ctx, domain.Coupon{ID: "c1", Name: "Spring", Code: "S5", Discount: "5%"}), domain.ErrValidation)

	require.NoError(t, c.AddCoupon(ctx, domain.Coupon{ID: "c1", Name: "Spring", Code: "S5", Discount: "-5%"}))
	require.NoError(t, c.AddCoupon(ctx, domain.Coupon{ID: "c2", Name: "Loyal", Code: "L1", Discount: "-1%"}))
	require.NoError(t, c.AddCoupon(ctx, domain.Coupon{ID: "c1", Name: "Spring", Code: "S6", Discount: "-6%"}))

	coupons, err := c.Coupons(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 2)
	assert.Equal(t, "c1", coupons[0].ID)
	assert.Equal(t, "S6", coupons[0].Code)

	require.NoError(t, c.RemoveCoupon(ctx, "c1"))
	require.ErrorIs(t, c.RemoveCoupon(ctx, "c1"), domain.ErrNotFound)

	coupons, err = c.Coupons(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "c2", coupons[0].ID)
}

func TestOtherCharges(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{})

	require.ErrorIs(t, c.AddOtherCharge(ctx, domain.OtherCharge{ID: "s", Name: "Shipping", Amount: "free"}), domain.ErrValidation)
	require.NoError(t, c.AddOtherCharge(ctx, domain.OtherCharge{ID: "s", Name: "Shipping", Amount: "15.00"}))

	charges, err := c.OtherCharges(ctx)
	require.NoError(t, err)
	require.Len(t, charges, 1)

	require.NoError(t, c.RemoveOtherCharge(ctx, "s"))
	require.ErrorIs(t, c.RemoveOtherCharge(ctx, "s"), domain.ErrNotFound)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{})

	require.NoError(t, c.Add(ctx, widget(2)))
	require.NoError(t, c.AddCoupon(ctx, domain.Coupon{ID: "c1", Name: "Spring", Code: "S5", Discount: "-5%"}))
	require.NoError(t, c.AddOtherCharge(ctx, domain.OtherCharge{ID: "s", Name: "Shipping", Amount: "5"}))

	require.NoError(t, c.Clear(ctx))

	items, err := c.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	coupons, err := c.Coupons(ctx)
	require.NoError(t, err)
	assert.Empty(t, coupons)

	total, err := c.Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCount_DistinctEntries(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{})

	require.NoError(t, c.Add(ctx, widget(10)))
	require.NoError(t, c.Add(ctx, domain.LineItem{ID: "2", Name: "Bolt", Quantity: 3, Price: 1}))

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	items, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
}

func TestEventsPublished(t *testing.T) {
	ctx := context.Background()
	publisher := &stubPublisher{}
	c := openCart(t, memory.NewSessionStore(0), cart.Options{Publisher: publisher})

	require.NoError(t, c.Add(ctx, widget(2)))
	require.NoError(t, c.RemoveQuantity(ctx, "1", 1))
	require.NoError(t, c.RemoveQuantity(ctx, "1", 1))
	require.NoError(t, c.AddCoupon(ctx, domain.Coupon{ID: "c1", Name: "Spring", Code: "S5", Discount: "-5%"}))
	require.NoError(t, c.Clear(ctx))
	// Неудачная операция не публикует событий.
	require.Error(t, c.Remove(ctx, "missing"))

	assert.Equal(t, []kafka.EventType{
		kafka.EventTypeItemAdded,
		kafka.EventTypeItemDecremented,
		kafka.EventTypeItemRemoved,
		kafka.EventTypeCouponAdded,
		kafka.EventTypeCartCleared,
	}, publisher.types())
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	publisher := &stubPublisher{err: errors.New("kafka down")}
	c := openCart(t, memory.NewSessionStore(0), cart.Options{Publisher: publisher})

	require.NoError(t, c.Add(ctx, widget(1)))

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	recorder := newStubRecorder()
	c := openCart(t, memory.NewSessionStore(0), cart.Options{Recorder: recorder})

	require.NoError(t, c.Add(ctx, widget(2)))
	require.Error(t, c.Update(ctx, domain.LineItem{ID: "x", Name: "x"}))
	_, err := c.Total(ctx)
	require.NoError(t, err)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	require.Len(t, recorder.results[cart.OpAdd], 1)
	assert.NoError(t, recorder.results[cart.OpAdd][0])
	require.Len(t, recorder.results[cart.OpUpdate], 1)
	assert.ErrorIs(t, recorder.results[cart.OpUpdate][0], domain.ErrNotFound)
	require.Len(t, recorder.totals, 1)
	assert.InDelta(t, 19.8, recorder.totals[0], 1e-9)
}
