package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/delivery-service/internal/domain"
)

// DriverRepository defines persistence access for drivers, who serve both
// as login credentials (keyed on phone) and as business entities.
type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	// CreateIfAbsent inserts the driver unless one with the same phone
	// already exists; used by bootstrap, never overwrites a stored hash.
	CreateIfAbsent(ctx context.Context, driver *domain.Driver) (bool, error)
	Update(ctx context.Context, driver *domain.Driver) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	ListAvailable(ctx context.Context) ([]domain.Driver, error)
}

type driverRepository struct {
	pool *pgxpool.Pool
}

// NewDriverRepository returns a Postgres-backed implementation.
func NewDriverRepository(pool *pgxpool.Pool) DriverRepository {
	return &driverRepository{pool: pool}
}

const driverColumns = `id, name, phone, password_hash, vehicle_type, available, active, created_at, updated_at`

func (r *driverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	const query = `
        INSERT INTO drivers (id, name, phone, password_hash, vehicle_type, available, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	driver.ID = uuid.NewString()
	return r.pool.QueryRow(ctx, query,
		driver.ID,
		driver.Name,
		driver.Phone,
		driver.PasswordHash,
		driver.VehicleType,
		driver.Available,
		driver.Active,
	).Scan(&driver.CreatedAt, &driver.UpdatedAt)
}

func (r *driverRepository) CreateIfAbsent(ctx context.Context, driver *domain.Driver) (bool, error) {
	const query = `
        INSERT INTO drivers (id, name, phone, password_hash, vehicle_type, available, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (phone) DO NOTHING`

	driver.ID = uuid.NewString()
	cmd, err := r.pool.Exec(ctx, query,
		driver.ID,
		driver.Name,
		driver.Phone,
		driver.PasswordHash,
		driver.VehicleType,
		driver.Available,
		driver.Active,
	)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *driverRepository) Update(ctx context.Context, driver *domain.Driver) error {
	const query = `
        UPDATE drivers
        SET name=$1, phone=$2, password_hash=$3, vehicle_type=$4, available=$5, active=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		driver.Name,
		driver.Phone,
		driver.PasswordHash,
		driver.VehicleType,
		driver.Available,
		driver.Active,
		driver.ID,
	).Scan(&driver.CreatedAt, &driver.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *driverRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM drivers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *driverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE id=$1`, id))
}

func (r *driverRepository) GetByPhone(ctx context.Context, phone string) (*domain.Driver, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE phone=$1`, phone))
}

func (r *driverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+driverColumns+` FROM drivers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *driverRepository) ListAvailable(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+driverColumns+` FROM drivers WHERE available AND active ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *driverRepository) collect(rows pgx.Rows) ([]domain.Driver, error) {
	drivers := make([]domain.Driver, 0)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Phone,
			&d.PasswordHash,
			&d.VehicleType,
			&d.Available,
			&d.Active,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (r *driverRepository) scanOne(row pgx.Row) (*domain.Driver, error) {
	var d domain.Driver
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Phone,
		&d.PasswordHash,
		&d.VehicleType,
		&d.Available,
		&d.Active,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
