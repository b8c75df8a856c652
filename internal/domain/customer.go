package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the domain model for end-users who place orders.
type Customer struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
