package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ibrahimhozhun/food-ordering-app/internal/api/dto"
	"github.com/ibrahimhozhun/food-ordering-app/internal/auth"
	"github.com/ibrahimhozhun/food-ordering-app/internal/service"
	apperrors "github.com/ibrahimhozhun/food-ordering-app/pkg/util"
)

// RestaurantsHandler exposes restaurant browsing and self-management.
type RestaurantsHandler struct {
	service *service.RestaurantService
}

// NewRestaurantsHandler constructs handler.
func NewRestaurantsHandler(restaurantService *service.RestaurantService) *RestaurantsHandler {
	return &RestaurantsHandler{service: restaurantService}
}

// List handles GET /restaurants.
func (h *RestaurantsHandler) List(c *fiber.Ctx) error {
	views, err := h.service.ListPublic(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.RestaurantPublicResponse, 0, len(views))
	for i := range views {
		items = append(items, restaurantPublicResponse(&views[i]))
	}
	return c.JSON(items)
}

// Get handles GET /restaurants/:id.
func (h *RestaurantsHandler) Get(c *fiber.Ctx) error {
	restaurantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}
	view, err := h.service.GetPublic(c.Context(), restaurantID)
	if err != nil {
		return err
	}
	return c.JSON(restaurantPublicResponse(view))
}

// Me handles GET /restaurants/me.
func (h *RestaurantsHandler) Me(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	detail, err := h.service.Detail(c.Context(), principal.Restaurant.ID)
	if err != nil {
		return err
	}
	return c.JSON(restaurantDetailResponse(detail))
}

// UpdateMe handles PATCH /restaurants/me.
func (h *RestaurantsHandler) UpdateMe(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.UpdateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}
	if errs := apperrors.ValidateStruct(req); errs != nil {
		return apperrors.NewValidationError("Invalid data", toDetails(errs))
	}

	detail, err := h.service.UpdateProfile(c.Context(), principal.Restaurant.ID, service.UpdateRestaurantInput{
		RestaurantName: req.RestaurantName,
		AvgWaitTime:    req.AvgWaitTime,
	})
	if err != nil {
		return err
	}
	return c.JSON(restaurantDetailResponse(detail))
}

// AddMenuItem handles POST /restaurants/me/menu.
func (h *RestaurantsHandler) AddMenuItem(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.CreateFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}
	if errs := apperrors.ValidateStruct(req); errs != nil {
		return apperrors.NewValidationError("Invalid data", toDetails(errs))
	}

	food, err := h.service.AddMenuItem(c.Context(), principal.Restaurant.ID, service.FoodInput{
		Title: req.Title,
		Price: req.Price,
		Image: req.Image,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(foodResponse(food))
}
