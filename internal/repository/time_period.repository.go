package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/marketref/candle-admin/internal/entity"
)

type PostgresTimePeriodRepository struct {
	db *sqlx.DB
}

func NewPostgresTimePeriodRepository(db *sqlx.DB) *PostgresTimePeriodRepository {
	return &PostgresTimePeriodRepository{db: db}
}

func (r *PostgresTimePeriodRepository) GetByID(ctx context.Context, id int64) (*entity.TimePeriod, error) {
	var period entity.TimePeriod
	err := r.db.GetContext(ctx, &period, "SELECT * FROM time_periods WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &period, nil
}

// GetByNameOrMinutes matches by period name, or by bucket width when the
// caller parsed one out of the input (minutes <= 0 skips the width clause).
func (r *PostgresTimePeriodRepository) GetByNameOrMinutes(ctx context.Context, name string, minutes int32) (*entity.TimePeriod, error) {
	query := "SELECT * FROM time_periods WHERE name = $1 ORDER BY id LIMIT 1"
	args := []any{name}
	if minutes > 0 {
		query = "SELECT * FROM time_periods WHERE name = $1 OR minutes = $2 ORDER BY id LIMIT 1"
		args = append(args, minutes)
	}

	var period entity.TimePeriod
	err := r.db.GetContext(ctx, &period, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &period, nil
}

func (r *PostgresTimePeriodRepository) ListAll(ctx context.Context) ([]entity.TimePeriod, error) {
	var periods []entity.TimePeriod
	err := r.db.SelectContext(ctx, &periods, "SELECT * FROM time_periods ORDER BY minutes")
	if err != nil {
		return nil, err
	}

	return periods, nil
}
