package candle

import (
	"context"
	"errors"

	"github.com/marketref/candle-admin/internal/constant"
	"github.com/marketref/candle-admin/internal/entity"
	"github.com/marketref/candle-admin/internal/repository"
)

var (
	// ErrCombinationNotFound covers the candle listing: any of the three
	// identifying inputs missing or unresolved.
	ErrCombinationNotFound = errors.New("currency pair, exchange or timeframe not found")

	// Statistics distinguish which supplied input failed to resolve.
	ErrCurrencyPairNotFound = errors.New("currency pair not found")
	ErrExchangeNotFound     = errors.New("exchange not found")
	ErrTimeframeNotFound    = errors.New("timeframe not found")
	ErrStatsParamsRequired  = errors.New("currency_pair, exchange and timeframe are required for statistics")
)

type CandleService struct {
	resolver       *Resolver
	candleRepo     repository.CandleRepository
	pairRepo       repository.CurrencyPairRepository
	exchangeRepo   repository.ExchangeRepository
	timePeriodRepo repository.TimePeriodRepository
	configRepo     repository.ExchangeConfigurationRepository
}

func NewCandleService(
	resolver *Resolver,
	candleRepo repository.CandleRepository,
	pairRepo repository.CurrencyPairRepository,
	exchangeRepo repository.ExchangeRepository,
	timePeriodRepo repository.TimePeriodRepository,
	configRepo repository.ExchangeConfigurationRepository,
) *CandleService {
	return &CandleService{
		resolver:       resolver,
		candleRepo:     candleRepo,
		pairRepo:       pairRepo,
		exchangeRepo:   exchangeRepo,
		timePeriodRepo: timePeriodRepo,
		configRepo:     configRepo,
	}
}

// ListCandles returns time-ordered candles for a fully resolved
// (pair, exchange, period) triple, most recent first.
func (s *CandleService) ListCandles(ctx context.Context, query entity.CandleQuery) (*entity.CandleQueryResult, error) {
	pair, exchange, period, err := s.resolveAll(ctx, query)
	if err != nil {
		return nil, err
	}

	if pair == nil || exchange == nil || period == nil {
		return nil, ErrCombinationNotFound
	}

	candles, err := s.candleRepo.List(ctx, entity.CandleFilter{
		CurrencyPairID: pair.ID,
		ExchangeID:     exchange.ID,
		TimePeriodID:   period.ID,
		From:           query.From,
		To:             query.To,
		Limit:          normalizeLimit(query.Limit),
	})
	if err != nil {
		return nil, err
	}

	return &entity.CandleQueryResult{
		Candles:      candles,
		CurrencyPair: *pair,
		Exchange:     *exchange,
		TimePeriod:   *period,
	}, nil
}

// CandleStats aggregates over the same predicate as ListCandles, but all
// three identifying inputs are required. Validation order matters: a supplied
// input that fails to resolve wins over the all-required error.
func (s *CandleService) CandleStats(ctx context.Context, query entity.CandleQuery) (*entity.CandleStatsResult, error) {
	pair, exchange, period, err := s.resolveAll(ctx, query)
	if err != nil {
		return nil, err
	}

	switch {
	case !query.CurrencyPair.IsZero() && pair == nil:
		return nil, ErrCurrencyPairNotFound
	case !query.Exchange.IsZero() && exchange == nil:
		return nil, ErrExchangeNotFound
	case !query.Timeframe.IsZero() && period == nil:
		return nil, ErrTimeframeNotFound
	case pair == nil || exchange == nil || period == nil:
		return nil, ErrStatsParamsRequired
	}

	stats, err := s.candleRepo.Stats(ctx, entity.CandleFilter{
		CurrencyPairID: pair.ID,
		ExchangeID:     exchange.ID,
		TimePeriodID:   period.ID,
		From:           query.From,
		To:             query.To,
	})
	if err != nil {
		return nil, err
	}

	return &entity.CandleStatsResult{
		CurrencyPair: *pair,
		Exchange:     *exchange,
		TimePeriod:   *period,
		Stats:        *stats,
	}, nil
}

// Meta returns the reference data the chart front end needs to build its
// selectors: active pairs, active exchanges and all timeframes.
func (s *CandleService) Meta(ctx context.Context) (*entity.CandleMeta, error) {
	pairs, err := s.pairRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	exchanges, err := s.exchangeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	periods, err := s.timePeriodRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.CandleMeta{
		CurrencyPairs: pairs,
		Exchanges:     exchanges,
		TimePeriods:   periods,
	}, nil
}

// Configurations lists the active tracked (exchange, pair, period)
// combinations.
func (s *CandleService) Configurations(ctx context.Context) ([]entity.ExchangeConfiguration, error) {
	return s.configRepo.ListActive(ctx)
}

func (s *CandleService) resolveAll(ctx context.Context, query entity.CandleQuery) (*entity.CurrencyPair, *entity.Exchange, *entity.TimePeriod, error) {
	pair, err := s.resolver.ResolveCurrencyPair(ctx, query.CurrencyPair)
	if err != nil {
		return nil, nil, nil, err
	}

	exchange, err := s.resolver.ResolveExchange(ctx, query.Exchange)
	if err != nil {
		return nil, nil, nil, err
	}

	period, err := s.resolver.ResolveTimePeriod(ctx, query.Timeframe)
	if err != nil {
		return nil, nil, nil, err
	}

	return pair, exchange, period, nil
}

func normalizeLimit(limit int) int {
	switch {
	case limit < constant.MinCandleLimit:
		return constant.DefaultCandleLimit
	case limit > constant.MaxCandleLimit:
		return constant.MaxCandleLimit
	default:
		return limit
	}
}
