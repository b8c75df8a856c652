package service

import "github.com/ibrahimhozhun/food-ordering-app/internal/domain"

// RestaurantView pairs a restaurant with its menu. It backs the public
// restaurant projection.
type RestaurantView struct {
	Restaurant domain.Restaurant
	Menu       []domain.Food
}

// RestaurantDetail adds the order book for the restaurant's own view.
type RestaurantDetail struct {
	RestaurantView
	Orders []domain.Order
}

// CustomerProfile bundles a customer with their orders and liked restaurants.
type CustomerProfile struct {
	Customer         domain.Customer
	Orders           []domain.Order
	LikedRestaurants []RestaurantView
}
