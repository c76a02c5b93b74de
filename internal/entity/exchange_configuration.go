package entity

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// ExchangeConfiguration marks a (exchange, pair, period) combination as
// tracked. Unique on the triple.
type ExchangeConfiguration struct {
	ID               int64          `db:"id" json:"id"`
	ExchangeID       int64          `db:"exchange_id" json:"exchange_id"`
	CurrencyPairID   int64          `db:"currency_pair_id" json:"currency_pair_id"`
	TimePeriodID     int64          `db:"time_period_id" json:"time_period_id"`
	Active           bool           `db:"is_active" json:"is_active"`
	AdditionalConfig types.JSONText `db:"additional_config" json:"additional_config"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`

	// joined projections for listings
	ExchangeName  string   `db:"exchange_name" json:"-"`
	ExchangeCode  string   `db:"exchange_code" json:"-"`
	BaseTicker    string   `db:"base_ticker" json:"-"`
	QuoteTicker   string   `db:"quote_ticker" json:"-"`
	PairKind      PairKind `db:"pair_kind" json:"-"`
	PeriodName    string   `db:"period_name" json:"-"`
	PeriodMinutes int32    `db:"period_minutes" json:"-"`
}

func (ExchangeConfiguration) TableName() string {
	return "exchange_configurations"
}

func (c ExchangeConfiguration) PairDisplayName() string {
	pair := CurrencyPair{BaseTicker: c.BaseTicker, QuoteTicker: c.QuoteTicker, Kind: c.PairKind}
	return pair.DisplayName()
}
