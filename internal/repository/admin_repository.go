package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/delivery-service/internal/domain"
)

// AdminRepository defines persistence access for administrative operators.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminUser) error
	// CreateIfAbsent inserts the admin unless one with the same email
	// already exists. It never overwrites the stored hash and reports
	// whether a row was inserted, so bootstrap is idempotent and safe
	// under concurrent process starts.
	CreateIfAbsent(ctx context.Context, admin *domain.AdminUser) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.AdminUser) error {
	const query = `
        INSERT INTO admin_users (id, name, email, password_hash, active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	admin.ID = uuid.NewString()
	return r.pool.QueryRow(ctx, query,
		admin.ID,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.Active,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) CreateIfAbsent(ctx context.Context, admin *domain.AdminUser) (bool, error) {
	const query = `
        INSERT INTO admin_users (id, name, email, password_hash, active)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (email) DO NOTHING`

	admin.ID = uuid.NewString()
	cmd, err := r.pool.Exec(ctx, query,
		admin.ID,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.Active,
	)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	const query = `
        SELECT id, name, email, password_hash, active, created_at, updated_at
        FROM admin_users WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	const query = `
        SELECT id, name, email, password_hash, active, created_at, updated_at
        FROM admin_users WHERE email=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `
        UPDATE admin_users SET password_hash=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepository) scanOne(row pgx.Row) (*domain.AdminUser, error) {
	var admin domain.AdminUser
	if err := row.Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Active,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}
