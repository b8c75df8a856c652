package dto

// SignupRequest payload for new users of either kind. RestaurantName is
// optional here; the RESTAURANT role enforces it downstream.
type SignupRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=64"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	RestaurantName string `json:"restaurant_name" validate:"omitempty,min=2,max=128"`
}

// SigninRequest payload for signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
