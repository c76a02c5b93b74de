package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/marketref/candle-admin/internal/entity"
)

const currencyPairSelect = `
SELECT cp.id, cp.base_symbol_id, cp.quote_symbol_id, cp.kind, cp.is_active, cp.created_at, cp.updated_at,
       bs.ticker AS base_ticker, qs.ticker AS quote_ticker
FROM currency_pairs cp
JOIN symbols bs ON bs.id = cp.base_symbol_id
JOIN symbols qs ON qs.id = cp.quote_symbol_id`

type PostgresCurrencyPairRepository struct {
	db *sqlx.DB
}

func NewPostgresCurrencyPairRepository(db *sqlx.DB) *PostgresCurrencyPairRepository {
	return &PostgresCurrencyPairRepository{db: db}
}

func (r *PostgresCurrencyPairRepository) GetByID(ctx context.Context, id int64) (*entity.CurrencyPair, error) {
	var pair entity.CurrencyPair
	err := r.db.GetContext(ctx, &pair, currencyPairSelect+" WHERE cp.id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &pair, nil
}

// GetBySymbolIDs looks a pair up by its symbols alone. Kind is deliberately
// not part of the predicate; when a spot and a futures pair share the same
// symbols the lowest id wins, which keeps the pick stable across queries.
func (r *PostgresCurrencyPairRepository) GetBySymbolIDs(ctx context.Context, baseSymbolID, quoteSymbolID int64) (*entity.CurrencyPair, error) {
	var pair entity.CurrencyPair
	err := r.db.GetContext(ctx, &pair,
		currencyPairSelect+" WHERE cp.base_symbol_id = $1 AND cp.quote_symbol_id = $2 ORDER BY cp.id LIMIT 1",
		baseSymbolID, quoteSymbolID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &pair, nil
}

func (r *PostgresCurrencyPairRepository) ListActive(ctx context.Context) ([]entity.CurrencyPair, error) {
	var pairs []entity.CurrencyPair
	err := r.db.SelectContext(ctx, &pairs, currencyPairSelect+" WHERE cp.is_active ORDER BY cp.id")
	if err != nil {
		return nil, err
	}

	return pairs, nil
}
