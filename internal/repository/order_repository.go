package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
)

// OrderRepository defines persistence access for orders. All reads join the
// ordered food so that projections never need a second lookup.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderSelect = `
    SELECT o.id, o.customer_id, o.restaurant_id, o.food_id, o.status, o.created_at,
           f.id, f.restaurant_id, f.title, f.price, f.image
    FROM orders o
    JOIN foods f ON f.id = o.food_id`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var food domain.Food
	if err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.RestaurantID,
		&order.FoodID,
		&order.Status,
		&order.CreatedAt,
		&food.ID,
		&food.RestaurantID,
		&food.Title,
		&food.Price,
		&food.Image,
	); err != nil {
		return nil, err
	}
	order.Food = &food
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (customer_id, restaurant_id, food_id, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		order.CustomerID,
		order.RestaurantID,
		order.FoodID,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return scanOrder(r.pool.QueryRow(ctx, orderSelect+` WHERE o.id=$1`, id))
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	return r.list(ctx, orderSelect+` WHERE o.customer_id=$1 ORDER BY o.created_at DESC`, customerID)
}

func (r *orderRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	return r.list(ctx, orderSelect+` WHERE o.restaurant_id=$1 ORDER BY o.created_at DESC`, restaurantID)
}

func (r *orderRepository) list(ctx context.Context, query string, arg any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
