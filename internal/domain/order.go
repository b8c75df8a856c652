package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates lifecycle states for orders.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus validates a wire value against the status enum.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	switch OrderStatus(value) {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(value), true
	default:
		return "", false
	}
}

// Order ties a customer, a restaurant and a single food item together.
// Food is populated whenever the order is loaded from the repository.
type Order struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	RestaurantID uuid.UUID
	FoodID       uuid.UUID
	Food         *Food
	Status       OrderStatus
	CreatedAt    time.Time
}
