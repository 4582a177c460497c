package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastbite/delivery-service/internal/domain"
)

// UISettingRepository defines persistence access for storefront settings.
type UISettingRepository interface {
	Get(ctx context.Context, key string) (*domain.UISetting, error)
	List(ctx context.Context) ([]domain.UISetting, error)
	// Upsert writes the value for a key, creating the row when missing.
	Upsert(ctx context.Context, setting *domain.UISetting) error
	Delete(ctx context.Context, key string) error
}

type uiSettingRepository struct {
	pool *pgxpool.Pool
}

// NewUISettingRepository returns a Postgres-backed implementation.
func NewUISettingRepository(pool *pgxpool.Pool) UISettingRepository {
	return &uiSettingRepository{pool: pool}
}

func (r *uiSettingRepository) Get(ctx context.Context, key string) (*domain.UISetting, error) {
	const query = `SELECT key, value, updated_at FROM ui_settings WHERE key=$1`

	var s domain.UISetting
	if err := r.pool.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *uiSettingRepository) List(ctx context.Context) ([]domain.UISetting, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value, updated_at FROM ui_settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make([]domain.UISetting, 0)
	for rows.Next() {
		var s domain.UISetting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *uiSettingRepository) Upsert(ctx context.Context, setting *domain.UISetting) error {
	const query = `
        INSERT INTO ui_settings (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query, setting.Key, setting.Value).Scan(&setting.UpdatedAt)
}

func (r *uiSettingRepository) Delete(ctx context.Context, key string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM ui_settings WHERE key=$1`, key)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
