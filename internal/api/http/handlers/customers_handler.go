package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ibrahimhozhun/food-ordering-app/internal/api/dto"
	"github.com/ibrahimhozhun/food-ordering-app/internal/auth"
	"github.com/ibrahimhozhun/food-ordering-app/internal/service"
	apperrors "github.com/ibrahimhozhun/food-ordering-app/pkg/util"
)

// CustomersHandler exposes customer profile endpoints.
type CustomersHandler struct {
	service *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{service: customerService}
}

// List handles GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	profiles, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CustomerResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, customerResponse(&profiles[i]))
	}
	return c.JSON(items)
}

// Me handles GET /customers/me.
func (h *CustomersHandler) Me(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	profile, err := h.service.Profile(c.Context(), principal.Customer.ID)
	if err != nil {
		return err
	}
	return c.JSON(customerResponse(profile))
}

// Get handles GET /customers/:id, available to restaurants only.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	customerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}
	profile, err := h.service.Profile(c.Context(), customerID)
	if err != nil {
		return err
	}
	return c.JSON(customerResponse(profile))
}

// ToggleLike handles PATCH /customers/me/liked-restaurants.
func (h *CustomersHandler) ToggleLike(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.ToggleLikeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}
	if errs := apperrors.ValidateStruct(req); errs != nil {
		return apperrors.NewValidationError("Invalid data", toDetails(errs))
	}
	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}

	profile, err := h.service.ToggleLike(c.Context(), principal.Customer.ID, restaurantID)
	if err != nil {
		return err
	}
	return c.JSON(customerResponse(profile))
}
