// Package repositorytest provides slice-backed repository implementations
// for tests that exercise the resolution and query logic without a database.
package repositorytest

import (
	"context"
	"sort"
	"strings"

	"github.com/marketref/candle-admin/internal/entity"
)

type MemoryStore struct {
	Symbols        []entity.Symbol
	CurrencyPairs  []entity.CurrencyPair
	Exchanges      []entity.Exchange
	TimePeriods    []entity.TimePeriod
	Configurations []entity.ExchangeConfiguration
	Candles        []entity.Candle
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) GetByTicker(_ context.Context, ticker string) (*entity.Symbol, error) {
	for i := range s.Symbols {
		if s.Symbols[i].Ticker == ticker {
			symbol := s.Symbols[i]
			return &symbol, nil
		}
	}

	return nil, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id int64) (*entity.CurrencyPair, error) {
	for i := range s.CurrencyPairs {
		if s.CurrencyPairs[i].ID == id {
			pair := s.CurrencyPairs[i]
			return &pair, nil
		}
	}

	return nil, nil
}

func (s *MemoryStore) GetBySymbolIDs(_ context.Context, baseSymbolID, quoteSymbolID int64) (*entity.CurrencyPair, error) {
	var match *entity.CurrencyPair
	for i := range s.CurrencyPairs {
		pair := s.CurrencyPairs[i]
		if pair.BaseSymbolID != baseSymbolID || pair.QuoteSymbolID != quoteSymbolID {
			continue
		}
		if match == nil || pair.ID < match.ID {
			match = &pair
		}
	}

	return match, nil
}

func (s *MemoryStore) ListActive(ctx context.Context) ([]entity.CurrencyPair, error) {
	var pairs []entity.CurrencyPair
	for _, pair := range s.CurrencyPairs {
		if pair.Active {
			pairs = append(pairs, pair)
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].ID < pairs[j].ID })

	return pairs, nil
}

// ExchangeStore narrows MemoryStore to the exchange interface; GetByID
// signatures collide across repositories, so each reference store gets its
// own view type.
type ExchangeStore struct {
	Store *MemoryStore
}

func (s ExchangeStore) GetByID(_ context.Context, id int64) (*entity.Exchange, error) {
	for i := range s.Store.Exchanges {
		if s.Store.Exchanges[i].ID == id {
			exchange := s.Store.Exchanges[i]
			return &exchange, nil
		}
	}

	return nil, nil
}

func (s ExchangeStore) GetByCodeOrName(_ context.Context, input string) (*entity.Exchange, error) {
	code := strings.ToUpper(input)
	var match *entity.Exchange
	for i := range s.Store.Exchanges {
		exchange := s.Store.Exchanges[i]
		if exchange.Code != code && exchange.Name != input {
			continue
		}
		if match == nil || exchange.ID < match.ID {
			match = &exchange
		}
	}

	return match, nil
}

func (s ExchangeStore) ListActive(_ context.Context) ([]entity.Exchange, error) {
	var exchanges []entity.Exchange
	for _, exchange := range s.Store.Exchanges {
		if exchange.Active {
			exchanges = append(exchanges, exchange)
		}
	}
	sort.Slice(exchanges, func(i, j int) bool { return exchanges[i].Name < exchanges[j].Name })

	return exchanges, nil
}

type TimePeriodStore struct {
	Store *MemoryStore
}

func (s TimePeriodStore) GetByID(_ context.Context, id int64) (*entity.TimePeriod, error) {
	for i := range s.Store.TimePeriods {
		if s.Store.TimePeriods[i].ID == id {
			period := s.Store.TimePeriods[i]
			return &period, nil
		}
	}

	return nil, nil
}

func (s TimePeriodStore) GetByNameOrMinutes(_ context.Context, name string, minutes int32) (*entity.TimePeriod, error) {
	var match *entity.TimePeriod
	for i := range s.Store.TimePeriods {
		period := s.Store.TimePeriods[i]
		if period.Name != name && (minutes <= 0 || period.Minutes != minutes) {
			continue
		}
		if match == nil || period.ID < match.ID {
			match = &period
		}
	}

	return match, nil
}

func (s TimePeriodStore) ListAll(_ context.Context) ([]entity.TimePeriod, error) {
	periods := make([]entity.TimePeriod, len(s.Store.TimePeriods))
	copy(periods, s.Store.TimePeriods)
	sort.Slice(periods, func(i, j int) bool { return periods[i].Minutes < periods[j].Minutes })

	return periods, nil
}

type ConfigurationStore struct {
	Store *MemoryStore
}

func (s ConfigurationStore) ListActive(_ context.Context) ([]entity.ExchangeConfiguration, error) {
	var configurations []entity.ExchangeConfiguration
	for _, configuration := range s.Store.Configurations {
		if configuration.Active {
			configurations = append(configurations, configuration)
		}
	}
	sort.Slice(configurations, func(i, j int) bool { return configurations[i].ID < configurations[j].ID })

	return configurations, nil
}

type CandleStore struct {
	Store *MemoryStore
}

func (s CandleStore) matching(filter entity.CandleFilter) []entity.Candle {
	var candles []entity.Candle
	for _, candle := range s.Store.Candles {
		if candle.CurrencyPairID != filter.CurrencyPairID ||
			candle.ExchangeID != filter.ExchangeID ||
			candle.TimePeriodID != filter.TimePeriodID {
			continue
		}
		if filter.From != nil && candle.OpenTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && candle.OpenTime.After(*filter.To) {
			continue
		}
		candles = append(candles, candle)
	}

	return candles
}

func (s CandleStore) List(_ context.Context, filter entity.CandleFilter) ([]entity.Candle, error) {
	candles := s.matching(filter)
	sort.Slice(candles, func(i, j int) bool { return candles[i].OpenTime.After(candles[j].OpenTime) })

	if filter.Limit > 0 && len(candles) > filter.Limit {
		candles = candles[:filter.Limit]
	}

	return candles, nil
}

func (s CandleStore) Stats(_ context.Context, filter entity.CandleFilter) (*entity.CandleStats, error) {
	candles := s.matching(filter)

	stats := entity.CandleStats{TotalCandles: int64(len(candles))}
	for i, candle := range candles {
		if i == 0 || candle.OpenTime.Before(stats.EarliestTime.Time) {
			stats.EarliestTime.Time = candle.OpenTime
		}
		if i == 0 || candle.OpenTime.After(stats.LatestTime.Time) {
			stats.LatestTime.Time = candle.OpenTime
		}
		if i == 0 || candle.LowPrice.LessThan(stats.MinPrice.Decimal) {
			stats.MinPrice.Decimal = candle.LowPrice
		}
		if i == 0 || candle.HighPrice.GreaterThan(stats.MaxPrice.Decimal) {
			stats.MaxPrice.Decimal = candle.HighPrice
		}
		stats.TotalVolume.Decimal = stats.TotalVolume.Decimal.Add(candle.Volume)
	}

	if len(candles) > 0 {
		stats.EarliestTime.Valid = true
		stats.LatestTime.Valid = true
		stats.MinPrice.Valid = true
		stats.MaxPrice.Valid = true
		stats.TotalVolume.Valid = true
	}

	return &stats, nil
}
