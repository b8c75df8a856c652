package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
)

// LikeRepository manages the customer/restaurant like links.
type LikeRepository interface {
	Exists(ctx context.Context, customerID, restaurantID uuid.UUID) (bool, error)
	Add(ctx context.Context, customerID, restaurantID uuid.UUID) error
	Remove(ctx context.Context, customerID, restaurantID uuid.UUID) error
	ListLikedRestaurants(ctx context.Context, customerID uuid.UUID) ([]domain.Restaurant, error)
}

type likeRepository struct {
	pool *pgxpool.Pool
}

// NewLikeRepository returns a Postgres-backed implementation.
func NewLikeRepository(pool *pgxpool.Pool) LikeRepository {
	return &likeRepository{pool: pool}
}

func (r *likeRepository) Exists(ctx context.Context, customerID, restaurantID uuid.UUID) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM customer_restaurant_likes
            WHERE customer_id=$1 AND restaurant_id=$2
        )`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, customerID, restaurantID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *likeRepository) Add(ctx context.Context, customerID, restaurantID uuid.UUID) error {
	const query = `
        INSERT INTO customer_restaurant_likes (customer_id, restaurant_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING`

	_, err := r.pool.Exec(ctx, query, customerID, restaurantID)
	return err
}

func (r *likeRepository) Remove(ctx context.Context, customerID, restaurantID uuid.UUID) error {
	const query = `
        DELETE FROM customer_restaurant_likes
        WHERE customer_id=$1 AND restaurant_id=$2`

	_, err := r.pool.Exec(ctx, query, customerID, restaurantID)
	return err
}

func (r *likeRepository) ListLikedRestaurants(ctx context.Context, customerID uuid.UUID) ([]domain.Restaurant, error) {
	const query = `
        SELECT r.id, r.username, r.email, r.password_hash, r.restaurant_name, r.avg_wait_time, r.created_at
        FROM restaurants r
        JOIN customer_restaurant_likes l ON l.restaurant_id = r.id
        WHERE l.customer_id=$1
        ORDER BY r.restaurant_name`

	rows, err := r.pool.Query(ctx, query, customerID)
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
