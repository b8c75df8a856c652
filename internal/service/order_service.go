package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
	"github.com/ibrahimhozhun/food-ordering-app/internal/events"
	"github.com/ibrahimhozhun/food-ordering-app/internal/repository"
	apperrors "github.com/ibrahimhozhun/food-ordering-app/pkg/util"
)

const notAuthorizedMessage = "You are not authorized to perform this action"

// OrderService coordinates order placement and fulfillment.
type OrderService struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	foods       repository.FoodRepository
	dispatcher  events.Dispatcher
}

// OrderDependencies bundles repositories for order service.
type OrderDependencies struct {
	OrderRepo      repository.OrderRepository
	RestaurantRepo repository.RestaurantRepository
	FoodRepo       repository.FoodRepository
	Dispatcher     events.Dispatcher
}

// CreateOrderInput describes order placement.
type CreateOrderInput struct {
	RestaurantID uuid.UUID
	FoodID       uuid.UUID
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:      deps.OrderRepo,
		restaurants: deps.RestaurantRepo,
		foods:       deps.FoodRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// Create places an order for the authenticated customer. The customer id
// comes from the session, never from the payload, and the food must belong
// to the target restaurant.
func (s *OrderService) Create(ctx context.Context, customerID uuid.UUID, input CreateOrderInput) (*domain.Order, error) {
	if _, err := s.restaurants.GetByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Restaurant", nil)
		}
		return nil, err
	}

	food, err := s.foods.GetByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Food", nil)
		}
		return nil, err
	}
	if food.RestaurantID != input.RestaurantID {
		return nil, apperrors.NewValidationError(invalidDataMessage, nil)
	}

	order := &domain.Order{
		CustomerID:   customerID,
		RestaurantID: input.RestaurantID,
		FoodID:       input.FoodID,
		Status:       domain.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	order.Food = food

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:      uuid.New(),
		Type:    events.EventOrderCreated,
		OrderID: order.ID,
		Actor: events.Actor{
			Role:       domain.RoleCustomer,
			CustomerID: &customerID,
		},
		Timestamp: time.Now(),
		Payload: events.OrderCreatedPayload{
			CustomerID:   customerID,
			RestaurantID: order.RestaurantID,
			FoodID:       order.FoodID,
		},
	})

	return order, nil
}

// Get loads an order visible to the caller: the customer who placed it or
// the restaurant fulfilling it. Anyone else is refused even though the
// order exists.
func (s *OrderService) Get(ctx context.Context, role domain.Role, callerID uuid.UUID, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Order", nil)
		}
		return nil, err
	}

	switch role {
	case domain.RoleCustomer:
		if order.CustomerID != callerID {
			return nil, apperrors.NewForbidden(notAuthorizedMessage)
		}
	case domain.RoleRestaurant:
		if order.RestaurantID != callerID {
			return nil, apperrors.NewForbidden(notAuthorizedMessage)
		}
	default:
		return nil, apperrors.NewForbidden(notAuthorizedMessage)
	}

	return order, nil
}

// UpdateStatus moves an order through its lifecycle. An order that does not
// exist and one owned by another restaurant are indistinguishable to the
// caller.
func (s *OrderService) UpdateStatus(ctx context.Context, restaurantID, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Order", nil)
		}
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, apperrors.NewNotFound("Order", nil)
	}

	oldStatus := order.Status
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Order", nil)
		}
		return nil, err
	}
	order.Status = status

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:      uuid.New(),
		Type:    events.EventOrderStatusChanged,
		OrderID: order.ID,
		Actor: events.Actor{
			Role:         domain.RoleRestaurant,
			RestaurantID: &restaurantID,
		},
		Timestamp: time.Now(),
		Payload: events.OrderStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})

	return order, nil
}
