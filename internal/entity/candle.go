package entity

import (
	"time"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

type Candle struct {
	ID             int64               `db:"id" json:"id"`
	CurrencyPairID int64               `db:"currency_pair_id" json:"currency_pair_id"`
	ExchangeID     int64               `db:"exchange_id" json:"exchange_id"`
	TimePeriodID   int64               `db:"time_period_id" json:"time_period_id"`
	OpenTime       time.Time           `db:"open_time" json:"open_time"`
	CloseTime      time.Time           `db:"close_time" json:"close_time"`
	OpenPrice      decimal.Decimal     `db:"open_price" json:"open_price"`
	HighPrice      decimal.Decimal     `db:"high_price" json:"high_price"`
	LowPrice       decimal.Decimal     `db:"low_price" json:"low_price"`
	ClosePrice     decimal.Decimal     `db:"close_price" json:"close_price"`
	Volume         decimal.Decimal     `db:"volume" json:"volume"`
	QuoteVolume    decimal.NullDecimal `db:"quote_volume" json:"quote_volume"`
	TradesCount    null.Int32          `db:"trades_count" json:"trades_count"`
	CreatedAt      time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `db:"updated_at" json:"updated_at"`
}

func (Candle) TableName() string {
	return "candles"
}

// CandleFilter is the shared predicate for candle listings and statistics.
// From and To are inclusive bounds on open_time. Limit <= 0 means no cap.
type CandleFilter struct {
	CurrencyPairID int64
	ExchangeID     int64
	TimePeriodID   int64
	From           *time.Time
	To             *time.Time
	Limit          int
}

// CandleStats is the single aggregate row over a filtered candle set.
// Min/max columns are null when no rows match.
type CandleStats struct {
	TotalCandles int64               `db:"total_candles"`
	EarliestTime null.Time           `db:"earliest_time"`
	LatestTime   null.Time           `db:"latest_time"`
	MinPrice     decimal.NullDecimal `db:"min_price"`
	MaxPrice     decimal.NullDecimal `db:"max_price"`
	TotalVolume  decimal.NullDecimal `db:"total_volume"`
}
