package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateRestaurantRequest carries a partial profile update.
type UpdateRestaurantRequest struct {
	RestaurantName *string `json:"restaurant_name" validate:"omitempty,min=2,max=128"`
	AvgWaitTime    *int    `json:"avg_wait_time" validate:"omitempty,min=1"`
}

// CreateFoodRequest payload for adding a menu item.
type CreateFoodRequest struct {
	Title string  `json:"title" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Image string  `json:"image" validate:"required"`
}

// FoodResponse is the public projection of a menu item.
type FoodResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Price float64   `json:"price"`
	Image string    `json:"image"`
}

// RestaurantPublicResponse is what customers see of a restaurant.
type RestaurantPublicResponse struct {
	ID             uuid.UUID      `json:"id"`
	RestaurantName string         `json:"restaurant_name"`
	AvgWaitTime    int            `json:"avg_wait_time"`
	Menu           []FoodResponse `json:"menu"`
}

// RestaurantDetailResponse is the restaurant's own projection. It never
// carries the password hash or the session token.
type RestaurantDetailResponse struct {
	RestaurantPublicResponse
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Orders    []OrderResponse `json:"orders"`
	CreatedAt time.Time       `json:"created_at"`
}
