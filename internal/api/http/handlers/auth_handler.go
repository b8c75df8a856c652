package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ibrahimhozhun/food-ordering-app/internal/api/dto"
	"github.com/ibrahimhozhun/food-ordering-app/internal/auth"
	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
	"github.com/ibrahimhozhun/food-ordering-app/internal/service"
	apperrors "github.com/ibrahimhozhun/food-ordering-app/pkg/util"
)

// AuthHandler exposes signup/signin/signout and the current-user endpoint.
// The session token travels only through the cookie manager; response
// bodies carry the public user projection and nothing else.
type AuthHandler struct {
	auth        *service.AuthService
	customers   *service.CustomerService
	restaurants *service.RestaurantService
	cookies     *auth.CookieManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, customerService *service.CustomerService, restaurantService *service.RestaurantService, cookies *auth.CookieManager) *AuthHandler {
	return &AuthHandler{
		auth:        authService,
		customers:   customerService,
		restaurants: restaurantService,
		cookies:     cookies,
	}
}

// Signup handles POST /auth/signup/:role.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	role, err := domain.ParseRole(c.Params("role"))
	if err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}

	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}
	if errs := apperrors.ValidateStruct(req); errs != nil {
		return apperrors.NewValidationError("Invalid data", toDetails(errs))
	}
	if err := apperrors.ValidatePassword(req.Password); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	input := service.SignupInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		RestaurantName: req.RestaurantName,
	}

	switch role {
	case domain.RoleCustomer:
		customer, token, _, err := h.auth.SignupCustomer(c.Context(), input)
		if err != nil {
			return err
		}
		h.cookies.Issue(c, token)
		return c.Status(http.StatusCreated).JSON(customerResponse(&service.CustomerProfile{Customer: *customer}))
	case domain.RoleRestaurant:
		restaurant, token, _, err := h.auth.SignupRestaurant(c.Context(), input)
		if err != nil {
			return err
		}
		h.cookies.Issue(c, token)
		return c.Status(http.StatusCreated).JSON(restaurantDetailResponse(&service.RestaurantDetail{
			RestaurantView: service.RestaurantView{Restaurant: *restaurant},
		}))
	default:
		return apperrors.NewValidationError("Invalid data", nil)
	}
}

// Signin handles POST /auth/signin/:role.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	role, err := domain.ParseRole(c.Params("role"))
	if err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}

	var req dto.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}
	if errs := apperrors.ValidateStruct(req); errs != nil {
		return apperrors.NewValidationError("Invalid data", toDetails(errs))
	}

	switch role {
	case domain.RoleCustomer:
		customer, token, _, err := h.auth.SigninCustomer(c.Context(), req.Email, req.Password)
		if err != nil {
			return err
		}
		profile, err := h.customers.Profile(c.Context(), customer.ID)
		if err != nil {
			return err
		}
		h.cookies.Issue(c, token)
		return c.JSON(customerResponse(profile))
	case domain.RoleRestaurant:
		restaurant, token, _, err := h.auth.SigninRestaurant(c.Context(), req.Email, req.Password)
		if err != nil {
			return err
		}
		detail, err := h.restaurants.Detail(c.Context(), restaurant.ID)
		if err != nil {
			return err
		}
		h.cookies.Issue(c, token)
		return c.JSON(restaurantDetailResponse(detail))
	default:
		return apperrors.NewValidationError("Invalid data", nil)
	}
}

// Signout handles POST /auth/signout.
func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return c.JSON(fiber.Map{"message": "Successfully signed out"})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Invalid authentication credentials")
	}

	switch principal.Role {
	case domain.RoleCustomer:
		profile, err := h.customers.Profile(c.Context(), principal.Customer.ID)
		if err != nil {
			return err
		}
		return c.JSON(customerResponse(profile))
	case domain.RoleRestaurant:
		detail, err := h.restaurants.Detail(c.Context(), principal.Restaurant.ID)
		if err != nil {
			return err
		}
		return c.JSON(restaurantDetailResponse(detail))
	default:
		return apperrors.NewUnauthorized("Invalid authentication credentials")
	}
}

func toDetails(errs map[string]string) map[string]any {
	details := make(map[string]any, len(errs))
	for field, msg := range errs {
		details[field] = msg
	}
	return details
}
