package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/marketref/candle-admin/internal/entity"
)

type PostgresSymbolRepository struct {
	db *sqlx.DB
}

func NewPostgresSymbolRepository(db *sqlx.DB) *PostgresSymbolRepository {
	return &PostgresSymbolRepository{db: db}
}

func (r *PostgresSymbolRepository) GetByTicker(ctx context.Context, ticker string) (*entity.Symbol, error) {
	var symbol entity.Symbol
	err := r.db.GetContext(ctx, &symbol, "SELECT * FROM symbols WHERE ticker = $1", ticker)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &symbol, nil
}
