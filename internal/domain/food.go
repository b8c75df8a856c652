package domain

import "github.com/google/uuid"

// Food is a single menu item offered by a restaurant.
type Food struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Title        string
	Price        float64
	Image        string
}
