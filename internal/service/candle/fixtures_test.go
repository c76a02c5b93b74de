package candle

import (
	"time"

	"github.com/guregu/null/v6"
	"github.com/marketref/candle-admin/internal/entity"
	"github.com/marketref/candle-admin/internal/repository/repositorytest"
	"github.com/shopspring/decimal"
)

var fixtureBaseTime = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// seededStore returns a store with one configured BTC/USDT spot market on
// Binance at 1h, a futures twin of the pair, an ETH/USDT pair and five
// hourly candles with ascending open times.
func seededStore() *repositorytest.MemoryStore {
	store := repositorytest.NewMemoryStore()

	store.Symbols = []entity.Symbol{
		{ID: 1, Name: "Bitcoin", Ticker: "BTC", Active: true},
		{ID: 2, Name: "Tether", Ticker: "USDT", Active: true},
		{ID: 3, Name: "Ethereum", Ticker: "ETH", Active: true},
	}

	store.CurrencyPairs = []entity.CurrencyPair{
		{ID: 1, BaseSymbolID: 1, QuoteSymbolID: 2, Kind: entity.PairKindSpot, Active: true, BaseTicker: "BTC", QuoteTicker: "USDT"},
		{ID: 2, BaseSymbolID: 1, QuoteSymbolID: 2, Kind: entity.PairKindFutures, Active: true, BaseTicker: "BTC", QuoteTicker: "USDT"},
		{ID: 3, BaseSymbolID: 3, QuoteSymbolID: 2, Kind: entity.PairKindSpot, Active: false, BaseTicker: "ETH", QuoteTicker: "USDT"},
	}

	store.Exchanges = []entity.Exchange{
		{ID: 1, Name: "Binance", Code: "BINANCE", Environment: entity.ExchangeEnvironmentProduction, Active: true},
		{ID: 2, Name: "Kraken Sandbox", Code: "KRAKEN", Environment: entity.ExchangeEnvironmentSandbox, Active: false},
	}

	store.TimePeriods = []entity.TimePeriod{
		{ID: 1, Name: "1h", Minutes: 60, Active: true},
		{ID: 2, Name: "4h", Minutes: 240, Active: true},
	}

	store.Configurations = []entity.ExchangeConfiguration{
		{
			ID: 1, ExchangeID: 1, CurrencyPairID: 1, TimePeriodID: 1, Active: true,
			ExchangeName: "Binance", ExchangeCode: "BINANCE",
			BaseTicker: "BTC", QuoteTicker: "USDT", PairKind: entity.PairKindSpot,
			PeriodName: "1h", PeriodMinutes: 60,
		},
	}

	for i := 0; i < 5; i++ {
		openTime := fixtureBaseTime.Add(time.Duration(i) * time.Hour)
		store.Candles = append(store.Candles, entity.Candle{
			ID:             int64(i + 1),
			CurrencyPairID: 1,
			ExchangeID:     1,
			TimePeriodID:   1,
			OpenTime:       openTime,
			CloseTime:      openTime.Add(time.Hour),
			OpenPrice:      decimal.NewFromInt(int64(50000 + i*100)),
			HighPrice:      decimal.NewFromInt(int64(50200 + i*100)),
			LowPrice:       decimal.NewFromInt(int64(49900 + i*100)),
			ClosePrice:     decimal.NewFromInt(int64(50100 + i*100)),
			Volume:         decimal.NewFromInt(10),
			QuoteVolume:    decimal.NewNullDecimal(decimal.NewFromInt(int64(500000 + i))),
			TradesCount:    null.Int32From(int32(1000 + i)),
		})
	}

	return store
}

func newTestService(store *repositorytest.MemoryStore) *CandleService {
	resolver := NewResolver(
		store,
		store,
		repositorytest.ExchangeStore{Store: store},
		repositorytest.TimePeriodStore{Store: store},
	)

	return NewCandleService(
		resolver,
		repositorytest.CandleStore{Store: store},
		store,
		repositorytest.ExchangeStore{Store: store},
		repositorytest.TimePeriodStore{Store: store},
		repositorytest.ConfigurationStore{Store: store},
	)
}
