package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role         domain.Role `json:"role"`
	CustomerID   *uuid.UUID  `json:"customer_id,omitempty"`
	RestaurantID *uuid.UUID  `json:"restaurant_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        uuid.UUID   `json:"id"`
	Type      EventType   `json:"type"`
	OrderID   uuid.UUID   `json:"order_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	CustomerID   uuid.UUID `json:"customer_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	FoodID       uuid.UUID `json:"food_id"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}
