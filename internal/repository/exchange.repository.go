package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/marketref/candle-admin/internal/entity"
)

type PostgresExchangeRepository struct {
	db *sqlx.DB
}

func NewPostgresExchangeRepository(db *sqlx.DB) *PostgresExchangeRepository {
	return &PostgresExchangeRepository{db: db}
}

func (r *PostgresExchangeRepository) GetByID(ctx context.Context, id int64) (*entity.Exchange, error) {
	var exchange entity.Exchange
	err := r.db.GetContext(ctx, &exchange, "SELECT * FROM exchanges WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &exchange, nil
}

// GetByCodeOrName matches by upper-cased code first, then by exact name.
// Only code carries a uniqueness constraint; ordering by id keeps the result
// stable should names ever collide.
func (r *PostgresExchangeRepository) GetByCodeOrName(ctx context.Context, input string) (*entity.Exchange, error) {
	var exchange entity.Exchange
	err := r.db.GetContext(ctx, &exchange,
		"SELECT * FROM exchanges WHERE code = $1 OR name = $2 ORDER BY id LIMIT 1",
		strings.ToUpper(input), input)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &exchange, nil
}

func (r *PostgresExchangeRepository) ListActive(ctx context.Context) ([]entity.Exchange, error) {
	var exchanges []entity.Exchange
	err := r.db.SelectContext(ctx, &exchanges, "SELECT * FROM exchanges WHERE is_active ORDER BY name")
	if err != nil {
		return nil, err
	}

	return exchanges, nil
}
