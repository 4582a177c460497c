package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/delivery-service/internal/domain"
)

// SpecialOfferRepository defines persistence access for promotions.
type SpecialOfferRepository interface {
	Create(ctx context.Context, offer *domain.SpecialOffer) error
	Update(ctx context.Context, offer *domain.SpecialOffer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.SpecialOffer, error)
	List(ctx context.Context) ([]domain.SpecialOffer, error)
	ListActive(ctx context.Context) ([]domain.SpecialOffer, error)
}

type specialOfferRepository struct {
	pool *pgxpool.Pool
}

// NewSpecialOfferRepository returns a Postgres-backed implementation.
func NewSpecialOfferRepository(pool *pgxpool.Pool) SpecialOfferRepository {
	return &specialOfferRepository{pool: pool}
}

const offerColumns = `id, title, description, image_url, discount_percent, restaurant_id,
        active, starts_at, ends_at, created_at, updated_at`

func (r *specialOfferRepository) Create(ctx context.Context, offer *domain.SpecialOffer) error {
	const query = `
        INSERT INTO special_offers
            (id, title, description, image_url, discount_percent, restaurant_id, active, starts_at, ends_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at, updated_at`

	offer.ID = uuid.NewString()
	return r.pool.QueryRow(ctx, query,
		offer.ID,
		offer.Title,
		offer.Description,
		offer.ImageURL,
		offer.DiscountPercent,
		offer.RestaurantID,
		offer.Active,
		offer.StartsAt,
		offer.EndsAt,
	).Scan(&offer.CreatedAt, &offer.UpdatedAt)
}

func (r *specialOfferRepository) Update(ctx context.Context, offer *domain.SpecialOffer) error {
	const query = `
        UPDATE special_offers
        SET title=$1, description=$2, image_url=$3, discount_percent=$4, restaurant_id=$5,
            active=$6, starts_at=$7, ends_at=$8, updated_at=NOW()
        WHERE id=$9
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		offer.Title,
		offer.Description,
		offer.ImageURL,
		offer.DiscountPercent,
		offer.RestaurantID,
		offer.Active,
		offer.StartsAt,
		offer.EndsAt,
		offer.ID,
	).Scan(&offer.CreatedAt, &offer.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *specialOfferRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM special_offers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *specialOfferRepository) GetByID(ctx context.Context, id string) (*domain.SpecialOffer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM special_offers WHERE id=$1`, id)

	var offer domain.SpecialOffer
	if err := scanOffer(row, &offer); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *specialOfferRepository) List(ctx context.Context) ([]domain.SpecialOffer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+offerColumns+` FROM special_offers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOffers(rows)
}

func (r *specialOfferRepository) ListActive(ctx context.Context) ([]domain.SpecialOffer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+offerColumns+` FROM special_offers
         WHERE active AND starts_at <= NOW() AND ends_at > NOW()
         ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOffers(rows)
}

func scanOffer(row pgx.Row, offer *domain.SpecialOffer) error {
	return row.Scan(
		&offer.ID,
		&offer.Title,
		&offer.Description,
		&offer.ImageURL,
		&offer.DiscountPercent,
		&offer.RestaurantID,
		&offer.Active,
		&offer.StartsAt,
		&offer.EndsAt,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
}

func collectOffers(rows pgx.Rows) ([]domain.SpecialOffer, error) {
	offers := make([]domain.SpecialOffer, 0)
	for rows.Next() {
		var offer domain.SpecialOffer
		if err := scanOffer(rows, &offer); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
