package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
)

// In-memory repository fakes used across the service tests.

type fakeCustomerRepo struct {
	records   map[uuid.UUID]*domain.Customer
	createErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{records: make(map[uuid.UUID]*domain.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now()
	clone := *customer
	f.records[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, ok := f.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *customer
	return &clone, nil
}

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, customer := range f.records {
		if customer.Email == email {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0, len(f.records))
	for _, customer := range f.records {
		customers = append(customers, *customer)
	}
	return customers, nil
}

type fakeRestaurantRepo struct {
	records   map[uuid.UUID]*domain.Restaurant
	createErr error
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{records: make(map[uuid.UUID]*domain.Restaurant)}
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) error {
	if f.createErr != nil {
		return f.createErr
	}
	restaurant.ID = uuid.New()
	restaurant.CreatedAt = time.Now()
	clone := *restaurant
	f.records[restaurant.ID] = &clone
	return nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, restaurant *domain.Restaurant) error {
	if _, ok := f.records[restaurant.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *restaurant
	f.records[restaurant.ID] = &clone
	return nil
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	restaurant, ok := f.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *restaurant
	return &clone, nil
}

func (f *fakeRestaurantRepo) GetByEmail(_ context.Context, email string) (*domain.Restaurant, error) {
	for _, restaurant := range f.records {
		if restaurant.Email == email {
			clone := *restaurant
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeRestaurantRepo) List(_ context.Context) ([]domain.Restaurant, error) {
	restaurants := make([]domain.Restaurant, 0, len(f.records))
	for _, restaurant := range f.records {
		restaurants = append(restaurants, *restaurant)
	}
	return restaurants, nil
}

type fakeFoodRepo struct {
	records map[uuid.UUID]*domain.Food
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{records: make(map[uuid.UUID]*domain.Food)}
}

func (f *fakeFoodRepo) Create(_ context.Context, food *domain.Food) error {
	food.ID = uuid.New()
	clone := *food
	f.records[food.ID] = &clone
	return nil
}

func (f *fakeFoodRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Food, error) {
	food, ok := f.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *food
	return &clone, nil
}

func (f *fakeFoodRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]domain.Food, error) {
	var foods []domain.Food
	for _, food := range f.records {
		if food.RestaurantID == restaurantID {
			foods = append(foods, *food)
		}
	}
	return foods, nil
}

type fakeOrderRepo struct {
	records map[uuid.UUID]*domain.Order
	foods   *fakeFoodRepo
}

func newFakeOrderRepo(foods *fakeFoodRepo) *fakeOrderRepo {
	return &fakeOrderRepo{records: make(map[uuid.UUID]*domain.Order), foods: foods}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	clone := *order
	f.records[order.ID] = &clone
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, ok := f.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *order
	if food, err := f.foods.GetByID(ctx, clone.FoodID); err == nil {
		clone.Food = food
	}
	return &clone, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) error {
	order, ok := f.records[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.Status = status
	return nil
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	for id, order := range f.records {
		if order.CustomerID == customerID {
			loaded, _ := f.GetByID(ctx, id)
			orders = append(orders, *loaded)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	for id, order := range f.records {
		if order.RestaurantID == restaurantID {
			loaded, _ := f.GetByID(ctx, id)
			orders = append(orders, *loaded)
		}
	}
	return orders, nil
}

type likeKey struct {
	customerID   uuid.UUID
	restaurantID uuid.UUID
}

type fakeLikeRepo struct {
	links       map[likeKey]struct{}
	restaurants *fakeRestaurantRepo
}

func newFakeLikeRepo(restaurants *fakeRestaurantRepo) *fakeLikeRepo {
	return &fakeLikeRepo{links: make(map[likeKey]struct{}), restaurants: restaurants}
}

func (f *fakeLikeRepo) Exists(_ context.Context, customerID, restaurantID uuid.UUID) (bool, error) {
	_, ok := f.links[likeKey{customerID, restaurantID}]
	return ok, nil
}

func (f *fakeLikeRepo) Add(_ context.Context, customerID, restaurantID uuid.UUID) error {
	f.links[likeKey{customerID, restaurantID}] = struct{}{}
	return nil
}

func (f *fakeLikeRepo) Remove(_ context.Context, customerID, restaurantID uuid.UUID) error {
	delete(f.links, likeKey{customerID, restaurantID})
	return nil
}

func (f *fakeLikeRepo) ListLikedRestaurants(_ context.Context, customerID uuid.UUID) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	for key := range f.links {
		if key.customerID != customerID {
			continue
		}
		if restaurant, ok := f.restaurants.records[key.restaurantID]; ok {
			restaurants = append(restaurants, *restaurant)
		}
	}
	return restaurants, nil
}
