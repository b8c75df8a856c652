package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
)

// FoodRepository defines persistence access for menu items.
type FoodRepository interface {
	Create(ctx context.Context, food *domain.Food) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Food, error)
}

type foodRepository struct {
	pool *pgxpool.Pool
}

// NewFoodRepository returns a Postgres-backed implementation.
func NewFoodRepository(pool *pgxpool.Pool) FoodRepository {
	return &foodRepository{pool: pool}
}

func (r *foodRepository) Create(ctx context.Context, food *domain.Food) error {
	const query = `
        INSERT INTO foods (restaurant_id, title, price, image)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		food.RestaurantID,
		food.Title,
		food.Price,
		food.Image,
	).Scan(&food.ID)
}

func (r *foodRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error) {
	const query = `
        SELECT id, restaurant_id, title, price, image
        FROM foods WHERE id=$1`

	var food domain.Food
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&food.ID,
		&food.RestaurantID,
		&food.Title,
		&food.Price,
		&food.Image,
	); err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Food, error) {
	const query = `
        SELECT id, restaurant_id, title, price, image
        FROM foods WHERE restaurant_id=$1 ORDER BY title`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []domain.Food
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(
			&food.ID,
			&food.RestaurantID,
			&food.Title,
			&food.Price,
			&food.Image,
		); err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return foods, nil
}
