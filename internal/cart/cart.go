package cart

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/domain"
	"github.com/vladislavdragonenkov/cart/internal/messaging/kafka"
)

const defaultMaxRetries = 3

// Имена операций для метрик и логов.
const (
	OpAdd               = "add"
	OpUpdate            = "update"
	OpRemove            = "remove"
	OpRemoveQuantity    = "remove_quantity"
	OpAddCoupon         = "add_coupon"
	OpRemoveCoupon      = "remove_coupon"
	OpAddOtherCharge    = "add_other_charge"
	OpRemoveOtherCharge = "remove_other_charge"
	OpClear             = "clear"
	OpAll               = "all"
	OpCoupons           = "coupons"
	OpOtherCharges      = "other_charges"
	OpCount             = "count"
	OpTotal             = "total"
)

// EventPublisher публикует события корзины (kafka.Producer).
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}

// Recorder собирает метрики операций (metrics.CartMetrics).
type Recorder interface {
	RecordOperation(operation string, err error, duration time.Duration)
	RecordTotalDue(totalDue float64)
	RecordVersionConflict()
}

// Options содержит необязательные зависимости корзины.
type Options struct {
	Logger    *log.Entry
	Publisher EventPublisher
	Recorder  Recorder
	// MaxRetries ограничивает повторы read-modify-write при конфликте версий (0 означает значение по умолчанию).
	MaxRetries int
}

// Cart выполняет операции над корзиной одной сессии.
// Экземпляр рассчитан на один запрос; между вызовами состояние в памяти не кешируется.
type Cart struct {
	namespace  string
	keys       Keys
	colls      *collections
	logger     *log.Entry
	publisher  EventPublisher
	recorder   Recorder
	maxRetries int
}

// Open привязывает корзину к namespace и создаёт пустые коллекции для ещё не записанных ключей.
func Open(ctx context.Context, store domain.SessionStore, namespace string, opts Options) (*Cart, error) {
	if strings.TrimSpace(namespace) == "" {
		return nil, domain.ErrNamespaceRequired
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "cart")
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = noopRecorder{}
	}
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	keys := KeysFor(namespace)
	c := &Cart{
		namespace:  namespace,
		keys:       keys,
		colls:      newCollections(store, keys),
		logger:     logger.WithField("namespace", namespace),
		publisher:  opts.Publisher,
		recorder:   recorder,
		maxRetries: maxRetries,
	}

	if err := c.colls.ensure(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Namespace возвращает префикс ключей сессии.
func (c *Cart) Namespace() string { return c.namespace }

// Keys возвращает ключи сессии, которыми владеет корзина.
func (c *Cart) Keys() Keys { return c.keys }

// Add добавляет позицию. Если позиция с таким id уже есть, увеличивается только её количество,
// остальные поля сохранённой записи не меняются.
func (c *Cart) Add(ctx context.Context, item domain.LineItem) (err error) {
	defer c.observe(OpAdd, time.Now(), &err)

	item, err = domain.ValidateItem(item)
	if err != nil {
		return err
	}

	var quantity int
	err = c.withRetry(ctx, OpAdd, func(ctx context.Context) error {
		items, version, err := loadCollection[domain.LineItem](ctx, c.colls, c.keys.Items)
		if err != nil {
			return err
		}

		stored := item
		if existing, ok := items.Get(item.ID); ok {
			existing.Quantity += item.Quantity
			stored = existing
		}
		items.Put(item.ID, stored)
		quantity = stored.Quantity

		return storeCollection(ctx, c.colls, c.keys.Items, items, version)
	})
	if err != nil {
		return err
	}

	c.publish(kafka.EventTypeItemAdded, item.ID, quantity, map[string]interface{}{"added": item.Quantity})
	return nil
}

// Update полностью заменяет существующую позицию, включая количество.
func (c *Cart) Update(ctx context.Context, item domain.LineItem) (err error) {
	defer c.observe(OpUpdate, time.Now(), &err)

	item, err = domain.ValidateItem(item)
	if err != nil {
		return err
	}

	err = c.withRetry(ctx, OpUpdate, func(ctx context.Context) error {
		items, version, err := loadCollection[domain.LineItem](ctx, c.colls, c.keys.Items)
		if err != nil {
			return err
		}
		if !items.Has(item.ID) {
			return domain.NewNotFoundError("item", item.ID)
		}
		items.Put(item.ID, item)
		return storeCollection(ctx, c.colls, c.keys.Items, items, version)
	})
	if err != nil {
		return err
	}

	c.publish(kafka.EventTypeItemUpdated, item.ID, item.Quantity, nil)
	return nil
}

// Remove удаляет позицию целиком.
func (c *Cart) Remove(ctx context.Context, itemID string) (err error) {
	defer c.observe(OpRemove, time.Now(), &err)

	err = c.withRetry(ctx, OpRemove, func(ctx context.Context) error {
		items, version, err := loadCollection[domain.LineItem](ctx, c.colls, c.keys.Items)
		if err != nil {
			return err
		}
		if !items.Has(itemID) {
			return domain.NewNotFoundError("item", itemID)
		}
		items.Forget(itemID)
		return storeCollection(ctx, c.colls, c.keys.Items, items, version)
	})
	if err != nil {
		return err
	}

	c.publish(kafka.EventTypeItemRemoved, itemID, 0, nil)
	return nil
}

// RemoveQuantity списывает quantity единиц позиции. Если списывается ровно остаток,
// позиция удаляется; если больше остатка, возвращается *domain.InsufficientQuantityError
// и корзина не меняется.
func (c *Cart) RemoveQuantity(ctx context.Context, itemID string, quantity int) (err error) {
	defer c.observe(OpRemoveQuantity, time.Now(), &err)

	if quantity < 0 {
		return domain.NewValidationError("quantity to remove must be non-negative")
	}

	var (
		left    int
		removed bool
	)
	err = c.withRetry(ctx, OpRemoveQuantity, func(ctx context.Context) error {
		items, version, err := loadCollection[domain.LineItem](ctx, c.colls, c.keys.Items)
		if err != nil {
			return err
		}
		item, ok := items.Get(itemID)
		if !ok {
			return domain.NewNotFoundError("item", itemID)
		}

		switch {
		case item.Quantity > quantity:
			item.Quantity -= quantity
			items.Put(itemID, item)
			left, removed = item.Quantity, false
		case item.Quantity == quantity:
			items.Forget(itemID)
			left, removed = 0, true
		default:
			return &domain.InsufficientQuantityError{
				ItemID:    itemID,
				Requested: quantity,
				Available: item.Quantity,
			}
		}
		return storeCollection(ctx, c.colls, c.keys.Items, items, version)
	})
	if err != nil {
		return err
	}

	if removed {
		c.publish(kafka.EventTypeItemRemoved, itemID, 0, map[string]interface{}{"removed": quantity})
	} else {
		c.publish(kafka.EventTypeItemDecremented, itemID, left, map[string]interface{}{"removed": quantity})
	}
	return nil
}

// AddCoupon добавляет купон или заменяет купон с тем же id.
func (c *Cart) AddCoupon(ctx context.Context, coupon domain.Coupon) (err error) {
	defer c.observe(OpAddCoupon, time.Now(), &err)

	coupon, err = domain.ValidateCoupon(coupon)
	if err != nil {
		return err
	}

	err = c.withRetry(ctx, OpAddCoupon, func(ctx context.Context) error {
		coupons, version, err := loadCollection[domain.Coupon](ctx, c.colls, c.keys.Coupons)
		if err != nil {
			return err
		}
		coupons.Put(coupon.ID, coupon)
		return storeCollection(ctx, c.colls, c.keys.Coupons, coupons, version)
	})
	if err != nil {
		return err
	}

	c.publish(kafka.EventTypeCouponAdded, coupon.ID, 0, map[string]interface{}{"code": coupon.Code})
	return nil
}

// RemoveCoupon удаляет купон.
func (c *Cart) RemoveCoupon(ctx context.Context, couponID string) (err error) {
	defer c.observe(OpRemoveCoupon, time.Now(), &err)

	err = c.withRetry(ctx, OpRemoveCoupon, func(ctx context.Context) error {
		coupons, version, err := loadCollection[domain.Coupon](ctx, c.colls, c.keys.Coupons)
		if err != nil {
			return err
		}
		if !coupons.Has(couponID) {
			return domain.NewNotFoundError("coupon", couponID)
		}
		coupons.Forget(couponID)
		return storeCollection(ctx, c.colls, c.keys.Coupons, coupons, version)
	})
	if err != nil {
		return err
	}

	c.publish(kafka.EventTypeCouponRemoved, couponID, 0, nil)
	return nil
}

// AddOtherCharge добавляет сбор или заменяет сбор с тем же id.
func (c *Cart) AddOtherCharge(ctx context.Context, charge domain.OtherCharge) (err error) {
	defer c.observe(OpAddOtherCharge, time.Now(), &err)

	charge, err = domain.ValidateOtherCharge(charge)
	if err != nil {
		return err
	}

	err = c.withRetry(ctx, OpAddOtherCharge, func(ctx context.Context) error {
		charges, version, err := loadCollection[domain.OtherCharge](ctx, c.colls, c.keys.OtherCharges)
		if err != nil {
			return err
		}
		charges.Put(charge.ID, charge)
		return storeCollection(ctx, c.colls, c.keys.OtherCharges, charges, version)
	})
	if err != nil {
		return err
	}

	c.publish(kafka.EventTypeOtherChargeAdded, charge.ID, 0, map[string]interface{}{"amount": charge.Amount})
	return nil
}

// RemoveOtherCharge удаляет сбор.
func (c *Cart) RemoveOtherCharge(ctx context.Context, chargeID string) (err error) {
	defer c.observe(OpRemoveOtherCharge, time.Now(), &err)

	err = c.withRetry(ctx, OpRemoveOtherCharge, func(ctx context.Context) error {
		charges, version, err := loadCollection[domain.OtherCharge](ctx, c.colls, c.keys.OtherCharges)
		if err != nil {
			return err
		}
		if !charges.Has(chargeID) {
			return domain.NewNotFoundError("other charge", chargeID)
		}
		charges.Forget(chargeID)
		return storeCollection(ctx, c.colls, c.keys.OtherCharges, charges, version)
	})
	if err != nil {
		return err
	}

	c.publish(kafka.EventTypeOtherChargeRemoved, chargeID, 0, nil)
	return nil
}

// Clear безусловно сбрасывает все три коллекции.
func (c *Cart) Clear(ctx context.Context) (err error) {
	defer c.observe(OpClear, time.Now(), &err)

	for _, key := range c.keys.all() {
		if err := c.colls.reset(ctx, key); err != nil {
			return err
		}
	}

	c.publish(kafka.EventTypeCartCleared, "", 0, nil)
	return nil
}

// All возвращает позиции в порядке добавления.
func (c *Cart) All(ctx context.Context) (_ []domain.LineItem, err error) {
	defer c.observe(OpAll, time.Now(), &err)

	items, _, err := loadCollection[domain.LineItem](ctx, c.colls, c.keys.Items)
	if err != nil {
		return nil, err
	}
	return items.Values(), nil
}

// Coupons возвращает купоны в порядке добавления.
func (c *Cart) Coupons(ctx context.Context) (_ []domain.Coupon, err error) {
	defer c.observe(OpCoupons, time.Now(), &err)

	coupons, _, err := loadCollection[domain.Coupon](ctx, c.colls, c.keys.Coupons)
	if err != nil {
		return nil, err
	}
	return coupons.Values(), nil
}

// OtherCharges возвращает сборы в порядке добавления.
func (c *Cart) OtherCharges(ctx context.Context) (_ []domain.OtherCharge, err error) {
	defer c.observe(OpOtherCharges, time.Now(), &err)

	charges, _, err := loadCollection[domain.OtherCharge](ctx, c.colls, c.keys.OtherCharges)
	if err != nil {
		return nil, err
	}
	return charges.Values(), nil
}

// Count возвращает количество различных позиций (не сумму количеств).
func (c *Cart) Count(ctx context.Context) (_ int, err error) {
	defer c.observe(OpCount, time.Now(), &err)

	items, _, err := loadCollection[domain.LineItem](ctx, c.colls, c.keys.Items)
	if err != nil {
		return 0, err
	}
	return items.Len(), nil
}

// Total возвращает итог к оплате.
func (c *Cart) Total(ctx context.Context) (float64, error) {
	summary, err := c.Summary(ctx)
	if err != nil {
		return 0, err
	}
	return summary.TotalDue, nil
}

// Summary возвращает полную разбивку итога.
func (c *Cart) Summary(ctx context.Context) (_ domain.Summary, err error) {
	defer c.observe(OpTotal, time.Now(), &err)

	items, _, err := loadCollection[domain.LineItem](ctx, c.colls, c.keys.Items)
	if err != nil {
		return domain.Summary{}, err
	}
	coupons, _, err := loadCollection[domain.Coupon](ctx, c.colls, c.keys.Coupons)
	if err != nil {
		return domain.Summary{}, err
	}
	charges, _, err := loadCollection[domain.OtherCharge](ctx, c.colls, c.keys.OtherCharges)
	if err != nil {
		return domain.Summary{}, err
	}

	summary, err := computeSummary(items.Values(), coupons.Values(), charges.Values())
	if err != nil {
		return domain.Summary{}, err
	}
	c.recorder.RecordTotalDue(summary.TotalDue)
	return summary, nil
}

// withRetry повторяет read-modify-write, если ключ изменили между чтением и записью.
func (c *Cart) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil || !domain.IsVersionConflict(err) {
			return err
		}
		c.recorder.RecordVersionConflict()
		if attempt >= c.maxRetries {
			c.logger.WithError(err).WithFields(log.Fields{
				"operation": op,
				"attempts":  attempt,
			}).Warn("session key kept changing, giving up")
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.WithFields(log.Fields{
			"operation": op,
			"attempt":   attempt,
		}).Debug("session version conflict, retrying")
	}
}

func (c *Cart) observe(op string, start time.Time, errp *error) {
	err := *errp
	c.recorder.RecordOperation(op, err, time.Since(start))
	if err != nil {
		c.logger.WithError(err).WithField("operation", op).Debug("cart operation failed")
	}
}

// publish отправляет событие, если producer настроен. Мутация к этому моменту уже
// сохранена, поэтому ошибка публикации только логируется.
func (c *Cart) publish(eventType kafka.EventType, entityID string, quantity int, metadata map[string]interface{}) {
	if c.publisher == nil {
		return
	}

	event := kafka.NewCartEvent(eventType, c.namespace, entityID, quantity, metadata)
	if err := c.publisher.PublishEvent(kafka.TopicCartEvents, c.namespace, event); err != nil {
		c.logger.WithError(err).WithFields(log.Fields{
			"event_type": eventType,
			"entity_id":  entityID,
		}).Warn("failed to publish cart event to kafka")
	}
}

type noopRecorder struct{}

func (noopRecorder) RecordOperation(string, error, time.Duration) {}
func (noopRecorder) RecordTotalDue(float64) {}
func (noopRecorder) RecordVersionConflict() {}
