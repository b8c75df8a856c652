package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
	apperrors "github.com/ibrahimhozhun/food-ordering-app/pkg/util"
)

const forbiddenMessage = "You are not authorized to perform this action"

// RequireCustomer ensures an authenticated customer. The identity is known
// at this point, so a wrong kind is 403 rather than 401.
func RequireCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != domain.RoleCustomer || principal.Customer == nil {
			return apperrors.NewForbidden(forbiddenMessage)
		}
		return c.Next()
	}
}

// RequireRestaurant ensures an authenticated restaurant.
func RequireRestaurant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != domain.RoleRestaurant || principal.Restaurant == nil {
			return apperrors.NewForbidden(forbiddenMessage)
		}
		return c.Next()
	}
}
