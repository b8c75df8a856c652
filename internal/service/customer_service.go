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

// CustomerService assembles customer profiles and manages liked restaurants.
type CustomerService struct {
	customers   repository.CustomerRepository
	restaurants repository.RestaurantRepository
	foods       repository.FoodRepository
	orders      repository.OrderRepository
	likes       repository.LikeRepository
}

// CustomerDependencies bundles repositories for customer service.
type CustomerDependencies struct {
	CustomerRepo   repository.CustomerRepository
	RestaurantRepo repository.RestaurantRepository
	FoodRepo       repository.FoodRepository
	OrderRepo      repository.OrderRepository
	LikeRepo       repository.LikeRepository
}

// NewCustomerService constructs the service.
func NewCustomerService(deps CustomerDependencies) *CustomerService {
	return &CustomerService{
		customers:   deps.CustomerRepo,
		restaurants: deps.RestaurantRepo,
		foods:       deps.FoodRepo,
		orders:      deps.OrderRepo,
		likes:       deps.LikeRepo,
	}
}

// Profile loads the full projection for one customer.
func (s *CustomerService) Profile(ctx context.Context, customerID uuid.UUID) (*CustomerProfile, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, err
	}
	return s.assembleProfile(ctx, customer)
}

// ToggleLike flips the liked state of a restaurant for the customer and
// returns the refreshed profile.
func (s *CustomerService) ToggleLike(ctx context.Context, customerID, restaurantID uuid.UUID) (*CustomerProfile, error) {
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Restaurant", nil)
		}
		return nil, err
	}

	liked, err := s.likes.Exists(ctx, customerID, restaurantID)
	if err != nil {
		return nil, err
	}
	if liked {
		err = s.likes.Remove(ctx, customerID, restaurantID)
	} else {
		err = s.likes.Add(ctx, customerID, restaurantID)
	}
	if err != nil {
		return nil, err
	}

	return s.Profile(ctx, customerID)
}

// List returns projections for every customer.
func (s *CustomerService) List(ctx context.Context) ([]CustomerProfile, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]CustomerProfile, 0, len(customers))
	for i := range customers {
		profile, err := s.assembleProfile(ctx, &customers[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (s *CustomerService) assembleProfile(ctx context.Context, customer *domain.Customer) (*CustomerProfile, error) {
	orders, err := s.orders.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	likedRestaurants, err := s.likes.ListLikedRestaurants(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	liked := make([]RestaurantView, 0, len(likedRestaurants))
	for i := range likedRestaurants {
		menu, err := s.foods.ListByRestaurant(ctx, likedRestaurants[i].ID)
		if err != nil {
			return nil, err
		}
		liked = append(liked, RestaurantView{Restaurant: likedRestaurants[i], Menu: menu})
	}

	return &CustomerProfile{
		Customer:         *customer,
		Orders:           orders,
		LikedRestaurants: liked,
	}, nil
}
