package domain

import "fmt"

// Role is the fixed kind of an authenticated principal. It is bound at
// signup and never changes.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleRestaurant Role = "RESTAURANT"
)

// ParseRole maps a wire value onto the closed role enum. Unknown values are
// rejected so that callers never fall through to a guessed kind.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleRestaurant:
		return RoleRestaurant, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

// Valid reports whether the role is a member of the enum.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleRestaurant:
		return true
	default:
		return false
	}
}
