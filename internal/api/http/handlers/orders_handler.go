package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ibrahimhozhun/food-ordering-app/internal/api/dto"
	"github.com/ibrahimhozhun/food-ordering-app/internal/auth"
	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
	"github.com/ibrahimhozhun/food-ordering-app/internal/service"
	apperrors "github.com/ibrahimhozhun/food-ordering-app/pkg/util"
)

// OrdersHandler exposes order placement, lookup and fulfillment.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// Create handles POST /orders/new-order.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.CreateOrderRequest
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
	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}

	order, err := h.service.Create(c.Context(), principal.Customer.ID, service.CreateOrderInput{
		RestaurantID: restaurantID,
		FoodID:       foodID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(orderResponse(order))
}

// Get handles GET /orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Invalid authentication credentials")
	}
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}

	order, err := h.service.Get(c.Context(), principal.Role, principal.ID(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(orderResponse(order))
}

// UpdateStatus handles PATCH /orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid data", nil)
	}
	if errs := apperrors.ValidateStruct(req); errs != nil {
		return apperrors.NewValidationError("Invalid data", toDetails(errs))
	}
	status, valid := domain.ParseOrderStatus(req.Status)
	if !valid {
		return apperrors.NewValidationError("Invalid data", nil)
	}

	order, err := h.service.UpdateStatus(c.Context(), principal.Restaurant.ID, orderID, status)
	if err != nil {
		return err
	}
	return c.JSON(orderResponse(order))
}
