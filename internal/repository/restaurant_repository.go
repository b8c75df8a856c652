package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
)

// RestaurantRepository defines persistence access for restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	GetByEmail(ctx context.Context, email string) (*domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
}

type restaurantRepository struct {
	pool *pgxpool.Pool
}

// NewRestaurantRepository returns a Postgres-backed implementation.
func NewRestaurantRepository(pool *pgxpool.Pool) RestaurantRepository {
	return &restaurantRepository{pool: pool}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	const query = `
        INSERT INTO restaurants (username, email, password_hash, restaurant_name, avg_wait_time)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		restaurant.Username,
		restaurant.Email,
		restaurant.PasswordHash,
		restaurant.RestaurantName,
		restaurant.AvgWaitTime,
	).Scan(&restaurant.ID, &restaurant.CreatedAt)
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	const query = `
        UPDATE restaurants SET restaurant_name=$1, avg_wait_time=$2
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		restaurant.RestaurantName,
		restaurant.AvgWaitTime,
		restaurant.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	const query = `
        SELECT id, username, email, password_hash, restaurant_name, avg_wait_time, created_at
        FROM restaurants WHERE id=$1`

	var restaurant domain.Restaurant
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.Username,
		&restaurant.Email,
		&restaurant.PasswordHash,
		&restaurant.RestaurantName,
		&restaurant.AvgWaitTime,
		&restaurant.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetByEmail(ctx context.Context, email string) (*domain.Restaurant, error) {
	const query = `
        SELECT id, username, email, password_hash, restaurant_name, avg_wait_time, created_at
        FROM restaurants WHERE email=$1`

	var restaurant domain.Restaurant
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&restaurant.ID,
		&restaurant.Username,
		&restaurant.Email,
		&restaurant.PasswordHash,
		&restaurant.RestaurantName,
		&restaurant.AvgWaitTime,
		&restaurant.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	const query = `
        SELECT id, username, email, password_hash, restaurant_name, avg_wait_time, created_at
        FROM restaurants ORDER BY restaurant_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var restaurant domain.Restaurant
		if err := rows.Scan(
			&restaurant.ID,
			&restaurant.Username,
			&restaurant.Email,
			&restaurant.PasswordHash,
			&restaurant.RestaurantName,
			&restaurant.AvgWaitTime,
			&restaurant.CreatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return restaurants, nil
}
