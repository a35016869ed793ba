package kafka

import "time"

// EventType определяет тип события корзины
type EventType string

const (
	// Позиции
	EventTypeItemAdded       EventType = "cart.item_added"
	EventTypeItemUpdated     EventType = "cart.item_updated"
	EventTypeItemRemoved     EventType = "cart.item_removed"
	EventTypeItemDecremented EventType = "cart.item_decremented"

	// Купоны и сборы
	EventTypeCouponAdded        EventType = "cart.coupon_added"
	EventTypeCouponRemoved      EventType = "cart.coupon_removed"
	EventTypeOtherChargeAdded   EventType = "cart.other_charge_added"
	EventTypeOtherChargeRemoved EventType = "cart.other_charge_removed"

	EventTypeCartCleared EventType = "cart.cleared"
)

// TopicCartEvents получает все изменения корзин.
const TopicCartEvents = "cart.events"

// CartEvent представляет изменение одной корзины
type CartEvent struct {
	EventType EventType              `json:"event_type"`
	Namespace string                 `json:"namespace"`
	EntityID  string                 `json:"entity_id,omitempty"`
	Quantity  int                    `json:"quantity,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewCartEvent создает новое событие корзины
func NewCartEvent(eventType EventType, namespace, entityID string, quantity int, metadata map[string]interface{}) *CartEvent {
	return &CartEvent{
		EventType: eventType,
		Namespace: namespace,
		EntityID:  entityID,
		Quantity:  quantity,
		Timestamp: time.Now().UTC(),
		Metadata:  metadata,
	}
}
