package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAvgWaitTime is the wait-time estimate assigned to new restaurants.
const DefaultAvgWaitTime = 25

// Restaurant models an establishment that manages a menu and fulfills orders.
type Restaurant struct {
	ID             uuid.UUID
	Username       string
	Email          string
	PasswordHash   string
	RestaurantName string
	AvgWaitTime    int
	CreatedAt      time.Time
}
