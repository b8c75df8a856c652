package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateOrderRequest payload for order placement. The customer id is taken
// from the session, not the body.
type CreateOrderRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
	FoodID       string `json:"food_id" validate:"required,uuid"`
}

// UpdateOrderStatusRequest payload for fulfillment updates.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing ready delivered cancelled"`
}

// OrderResponse is the public projection of an order.
type OrderResponse struct {
	ID           uuid.UUID    `json:"id"`
	CustomerID   uuid.UUID    `json:"customer_id"`
	RestaurantID uuid.UUID    `json:"restaurant_id"`
	FoodID       uuid.UUID    `json:"food_id"`
	Status       string       `json:"status"`
	Food         FoodResponse `json:"food"`
	CreatedAt    time.Time    `json:"created_at"`
}
