package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/delivery-service/internal/domain"
)

// RestaurantRepository defines persistence access for restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Restaurant, error)
}

type restaurantRepository struct {
	pool *pgxpool.Pool
}

// NewRestaurantRepository returns a Postgres-backed implementation.
func NewRestaurantRepository(pool *pgxpool.Pool) RestaurantRepository {
	return &restaurantRepository{pool: pool}
}

const restaurantColumns = `id, category_id, name, description, image_url, address, phone,
        rating, delivery_fee, min_order_amount, open, created_at, updated_at`

func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	const query = `
        INSERT INTO restaurants
            (id, category_id, name, description, image_url, address, phone, rating, delivery_fee, min_order_amount, open)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING created_at, updated_at`

	restaurant.ID = uuid.NewString()
	return r.pool.QueryRow(ctx, query,
		restaurant.ID,
		restaurant.CategoryID,
		restaurant.Name,
		restaurant.Description,
		restaurant.ImageURL,
		restaurant.Address,
		restaurant.Phone,
		restaurant.Rating,
		restaurant.DeliveryFee,
		restaurant.MinOrderAmount,
		restaurant.Open,
	).Scan(&restaurant.CreatedAt, &restaurant.UpdatedAt)
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	const query = `
        UPDATE restaurants
        SET category_id=$1, name=$2, description=$3, image_url=$4, address=$5, phone=$6,
            rating=$7, delivery_fee=$8, min_order_amount=$9, open=$10, updated_at=NOW()
        WHERE id=$11
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		restaurant.CategoryID,
		restaurant.Name,
		restaurant.Description,
		restaurant.ImageURL,
		restaurant.Address,
		restaurant.Phone,
		restaurant.Rating,
		restaurant.DeliveryFee,
		restaurant.MinOrderAmount,
		restaurant.Open,
		restaurant.ID,
	).Scan(&restaurant.CreatedAt, &restaurant.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *restaurantRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM restaurants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id=$1`, id)

	var rest domain.Restaurant
	if err := scanRestaurant(row, &rest); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRestaurants(rows)
}

func (r *restaurantRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Restaurant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE category_id=$1 ORDER BY name`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRestaurants(rows)
}

func scanRestaurant(row pgx.Row, rest *domain.Restaurant) error {
	return row.Scan(
		&rest.ID,
		&rest.CategoryID,
		&rest.Name,
		&rest.Description,
		&rest.ImageURL,
		&rest.Address,
		&rest.Phone,
		&rest.Rating,
		&rest.DeliveryFee,
		&rest.MinOrderAmount,
		&rest.Open,
		&rest.CreatedAt,
		&rest.UpdatedAt,
	)
}

func collectRestaurants(rows pgx.Rows) ([]domain.Restaurant, error) {
	restaurants := make([]domain.Restaurant, 0)
	for rows.Next() {
		var rest domain.Restaurant
		if err := scanRestaurant(rows, &rest); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}
