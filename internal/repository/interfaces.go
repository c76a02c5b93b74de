package repository

import (
	"context"

	"github.com/marketref/candle-admin/internal/entity"
)

// Lookup methods return (nil, nil) when no row matches; errors are reserved
// for store failures.

type SymbolRepository interface {
	GetByTicker(ctx context.Context, ticker string) (*entity.Symbol, error)
}

type CurrencyPairRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.CurrencyPair, error)
	GetBySymbolIDs(ctx context.Context, baseSymbolID, quoteSymbolID int64) (*entity.CurrencyPair, error)
	ListActive(ctx context.Context) ([]entity.CurrencyPair, error)
}

type ExchangeRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Exchange, error)
	GetByCodeOrName(ctx context.Context, input string) (*entity.Exchange, error)
	ListActive(ctx context.Context) ([]entity.Exchange, error)
}

type TimePeriodRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.TimePeriod, error)
	GetByNameOrMinutes(ctx context.Context, name string, minutes int32) (*entity.TimePeriod, error)
	ListAll(ctx context.Context) ([]entity.TimePeriod, error)
}

type ExchangeConfigurationRepository interface {
	ListActive(ctx context.Context) ([]entity.ExchangeConfiguration, error)
}

type CandleRepository interface {
	List(ctx context.Context, filter entity.CandleFilter) ([]entity.Candle, error)
	Stats(ctx context.Context, filter entity.CandleFilter) (*entity.CandleStats, error)
}
