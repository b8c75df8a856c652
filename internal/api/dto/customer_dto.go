package dto

import "github.com/google/uuid"

// ToggleLikeRequest payload for liking or unliking a restaurant.
type ToggleLikeRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
}

// CustomerResponse is the public projection of a customer.
type CustomerResponse struct {
	ID               uuid.UUID                  `json:"id"`
	Username         string                     `json:"username"`
	Email            string                     `json:"email"`
	Orders           []OrderResponse            `json:"orders"`
	LikedRestaurants []RestaurantPublicResponse `json:"liked_restaurants"`
}
