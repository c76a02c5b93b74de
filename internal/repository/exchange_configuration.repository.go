package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/marketref/candle-admin/internal/entity"
)

const exchangeConfigurationSelect = `
SELECT ec.id, ec.exchange_id, ec.currency_pair_id, ec.time_period_id, ec.is_active,
       ec.additional_config, ec.created_at, ec.updated_at,
       e.name AS exchange_name, e.code AS exchange_code,
       bs.ticker AS base_ticker, qs.ticker AS quote_ticker, cp.kind AS pair_kind,
       tp.name AS period_name, tp.minutes AS period_minutes
FROM exchange_configurations ec
JOIN exchanges e ON e.id = ec.exchange_id
JOIN currency_pairs cp ON cp.id = ec.currency_pair_id
JOIN symbols bs ON bs.id = cp.base_symbol_id
JOIN symbols qs ON qs.id = cp.quote_symbol_id
JOIN time_periods tp ON tp.id = ec.time_period_id`

type PostgresExchangeConfigurationRepository struct {
	db *sqlx.DB
}

func NewPostgresExchangeConfigurationRepository(db *sqlx.DB) *PostgresExchangeConfigurationRepository {
	return &PostgresExchangeConfigurationRepository{db: db}
}

func (r *PostgresExchangeConfigurationRepository) ListActive(ctx context.Context) ([]entity.ExchangeConfiguration, error) {
	var configurations []entity.ExchangeConfiguration
	err := r.db.SelectContext(ctx, &configurations, exchangeConfigurationSelect+" WHERE ec.is_active ORDER BY ec.id")
	if err != nil {
		return nil, err
	}

	return configurations, nil
}
