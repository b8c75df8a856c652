package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
	"github.com/ibrahimhozhun/food-ordering-app/internal/repository"
	apperrors "github.com/ibrahimhozhun/food-ordering-app/pkg/util"
)

// RestaurantService manages restaurant profiles and menus.
type RestaurantService struct {
	restaurants repository.RestaurantRepository
	foods       repository.FoodRepository
	orders      repository.OrderRepository
}

// RestaurantDependencies bundles repositories for restaurant service.
type RestaurantDependencies struct {
	RestaurantRepo repository.RestaurantRepository
	FoodRepo       repository.FoodRepository
	OrderRepo      repository.OrderRepository
}

// UpdateRestaurantInput carries a partial profile update. Nil fields are
// left untouched.
type UpdateRestaurantInput struct {
	RestaurantName *string
	AvgWaitTime    *int
}

// FoodInput describes a new menu item.
type FoodInput struct {
	Title string
	Price float64
	Image string
}

// NewRestaurantService constructs the service.
func NewRestaurantService(deps RestaurantDependencies) *RestaurantService {
	return &RestaurantService{
		restaurants: deps.RestaurantRepo,
		foods:       deps.FoodRepo,
		orders:      deps.OrderRepo,
	}
}

// ListPublic returns the public projection of every restaurant.
func (s *RestaurantService) ListPublic(ctx context.Context) ([]RestaurantView, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RestaurantView, 0, len(restaurants))
	for i := range restaurants {
		menu, err := s.foods.ListByRestaurant(ctx, restaurants[i].ID)
		if err != nil {
			return nil, err
		}
		views = append(views, RestaurantView{Restaurant: restaurants[i], Menu: menu})
	}
	return views, nil
}

// GetPublic returns the public projection of a single restaurant.
func (s *RestaurantService) GetPublic(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	restaurant, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Restaurant", nil)
		}
		return nil, err
	}

	menu, err := s.foods.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}
	return &RestaurantView{Restaurant: *restaurant, Menu: menu}, nil
}

// Detail returns the restaurant's own view including its order book.
func (s *RestaurantService) Detail(ctx context.Context, id uuid.UUID) (*RestaurantDetail, error) {
	view, err := s.GetPublic(ctx, id)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetail{RestaurantView: *view, Orders: orders}, nil
}

// UpdateProfile applies a partial update to the restaurant's own profile.
func (s *RestaurantService) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateRestaurantInput) (*RestaurantDetail, error) {
	restaurant, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Restaurant", nil)
		}
		return nil, err
	}

	if input.RestaurantName != nil {
		restaurant.RestaurantName = *input.RestaurantName
	}
	if input.AvgWaitTime != nil {
		restaurant.AvgWaitTime = *input.AvgWaitTime
	}

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError(invalidDataMessage, nil)
		}
		return nil, err
	}

	return s.Detail(ctx, id)
}

// AddMenuItem adds a food item to the restaurant's menu.
func (s *RestaurantService) AddMenuItem(ctx context.Context, restaurantID uuid.UUID, input FoodInput) (*domain.Food, error) {
	food := &domain.Food{
		RestaurantID: restaurantID,
		Title:        input.Title,
		Price:        input.Price,
		Image:        input.Image,
	}
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}
