package entity

import "time"

// CandleQuery is the validated input for candle listings and statistics.
// Time bounds are already parsed and ordered by the caller.
type CandleQuery struct {
	CurrencyPair Identifier
	Exchange     Identifier
	Timeframe    Identifier
	From         *time.Time
	To           *time.Time
	Limit        int
}

// CandleQueryResult carries the matching candles together with the resolved
// reference rows so presentation never re-fetches them.
type CandleQueryResult struct {
	Candles      []Candle
	CurrencyPair CurrencyPair
	Exchange     Exchange
	TimePeriod   TimePeriod
}

type CandleStatsResult struct {
	CurrencyPair CurrencyPair
	Exchange     Exchange
	TimePeriod   TimePeriod
	Stats        CandleStats
}

type CandleMeta struct {
	CurrencyPairs []CurrencyPair
	Exchanges     []Exchange
	TimePeriods   []TimePeriod
}
