package entity

import (
	"strings"
	"time"
)

type PairKind string

const (
	PairKindSpot    PairKind = "spot"
	PairKindFutures PairKind = "futures"
)

type CurrencyPair struct {
	ID            int64     `db:"id" json:"id"`
	BaseSymbolID  int64     `db:"base_symbol_id" json:"base_symbol_id"`
	QuoteSymbolID int64     `db:"quote_symbol_id" json:"quote_symbol_id"`
	Kind          PairKind  `db:"kind" json:"kind"`
	Active        bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`

	// joined from symbols
	BaseTicker  string `db:"base_ticker" json:"base_ticker"`
	QuoteTicker string `db:"quote_ticker" json:"quote_ticker"`
}

func (CurrencyPair) TableName() string {
	return "currency_pairs"
}

// Symbol returns the canonical "BASE/QUOTE" form.
func (p CurrencyPair) Symbol() string {
	return p.BaseTicker + "/" + p.QuoteTicker
}

// DisplayName derives the human name on read; futures pairs carry the
// ":QUOTE" settlement suffix.
func (p CurrencyPair) DisplayName() string {
	if p.Kind == PairKindFutures {
		return p.BaseTicker + "/" + p.QuoteTicker + ":" + p.QuoteTicker
	}

	return p.BaseTicker + "/" + p.QuoteTicker
}

// SplitPairSymbol splits a "BASE/QUOTE" string into its tickers. Inputs with
// other than exactly one separator do not resolve.
func SplitPairSymbol(s string) (base, quote string, ok bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return "", "", false
	}

	return parts[0], parts[1], true
}
