package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/marketref/candle-admin/internal/entity"
)

type PostgresCandleRepository struct {
	db *sqlx.DB
}

func NewPostgresCandleRepository(db *sqlx.DB) *PostgresCandleRepository {
	return &PostgresCandleRepository{db: db}
}

func candleFilterConditions(builder sq.SelectBuilder, filter entity.CandleFilter) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{
		"currency_pair_id": filter.CurrencyPairID,
		"exchange_id":      filter.ExchangeID,
		"time_period_id":   filter.TimePeriodID,
	})

	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"open_time": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"open_time": *filter.To})
	}

	return builder
}

func (r *PostgresCandleRepository) List(ctx context.Context, filter entity.CandleFilter) ([]entity.Candle, error) {
	queryBuilder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(
			"id",
			"currency_pair_id",
			"exchange_id",
			"time_period_id",
			"open_time",
			"close_time",
			"open_price",
			"high_price",
			"low_price",
			"close_price",
			"volume",
			"quote_volume",
			"trades_count",
			"created_at",
			"updated_at",
		).
		From(entity.Candle{}.TableName()).
		OrderBy("open_time DESC")

	queryBuilder = candleFilterConditions(queryBuilder, filter)

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filter.Limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var candles []entity.Candle
	err = r.db.SelectContext(ctx, &candles, query, args...)
	if err != nil {
		return nil, err
	}

	return candles, nil
}

func (r *PostgresCandleRepository) Stats(ctx context.Context, filter entity.CandleFilter) (*entity.CandleStats, error) {
	queryBuilder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(
			"COUNT(*) AS total_candles",
			"MIN(open_time) AS earliest_time",
			"MAX(open_time) AS latest_time",
			"MIN(low_price) AS min_price",
			"MAX(high_price) AS max_price",
			"SUM(volume) AS total_volume",
		).
		From(entity.Candle{}.TableName())

	queryBuilder = candleFilterConditions(queryBuilder, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var stats entity.CandleStats
	err = r.db.GetContext(ctx, &stats, query, args...)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
