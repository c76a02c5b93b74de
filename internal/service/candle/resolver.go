package candle

import (
	"context"
	"strconv"

	"github.com/marketref/candle-admin/internal/entity"
	"github.com/marketref/candle-admin/internal/repository"
)

// Resolver maps user-supplied identifiers to reference-data rows. A miss is
// (nil, nil), never an error.
type Resolver struct {
	symbolRepo     repository.SymbolRepository
	pairRepo       repository.CurrencyPairRepository
	exchangeRepo   repository.ExchangeRepository
	timePeriodRepo repository.TimePeriodRepository
}

func NewResolver(
	symbolRepo repository.SymbolRepository,
	pairRepo repository.CurrencyPairRepository,
	exchangeRepo repository.ExchangeRepository,
	timePeriodRepo repository.TimePeriodRepository,
) *Resolver {
	return &Resolver{
		symbolRepo:     symbolRepo,
		pairRepo:       pairRepo,
		exchangeRepo:   exchangeRepo,
		timePeriodRepo: timePeriodRepo,
	}
}

// ResolveCurrencyPair accepts a primary key or a "BASE/QUOTE" symbol string.
// The string form requires both tickers to exist; the pair lookup ignores
// kind (see PostgresCurrencyPairRepository.GetBySymbolIDs).
func (r *Resolver) ResolveCurrencyPair(ctx context.Context, ident entity.Identifier) (*entity.CurrencyPair, error) {
	if ident.IsZero() {
		return nil, nil
	}

	if id, ok := ident.Numeric(); ok {
		return r.pairRepo.GetByID(ctx, id)
	}

	base, quote, ok := entity.SplitPairSymbol(ident.Value())
	if !ok {
		return nil, nil
	}

	baseSymbol, err := r.symbolRepo.GetByTicker(ctx, base)
	if err != nil {
		return nil, err
	}
	if baseSymbol == nil {
		return nil, nil
	}

	quoteSymbol, err := r.symbolRepo.GetByTicker(ctx, quote)
	if err != nil {
		return nil, err
	}
	if quoteSymbol == nil {
		return nil, nil
	}

	return r.pairRepo.GetBySymbolIDs(ctx, baseSymbol.ID, quoteSymbol.ID)
}

// ResolveExchange accepts a primary key, an exchange code (case-insensitive)
// or an exact name.
func (r *Resolver) ResolveExchange(ctx context.Context, ident entity.Identifier) (*entity.Exchange, error) {
	if ident.IsZero() {
		return nil, nil
	}

	if id, ok := ident.Numeric(); ok {
		return r.exchangeRepo.GetByID(ctx, id)
	}

	return r.exchangeRepo.GetByCodeOrName(ctx, ident.Value())
}

// ResolveTimePeriod treats numeric input as a primary key only. String input
// matches a period name, or a minutes value when it parses as one.
func (r *Resolver) ResolveTimePeriod(ctx context.Context, ident entity.Identifier) (*entity.TimePeriod, error) {
	if ident.IsZero() {
		return nil, nil
	}

	if id, ok := ident.Numeric(); ok {
		return r.timePeriodRepo.GetByID(ctx, id)
	}

	return r.timePeriodRepo.GetByNameOrMinutes(ctx, ident.Value(), leadingMinutes(ident.Value()))
}

// leadingMinutes extracts the integer prefix of an interval string, so "60m"
// can match a 60-minute period by width. Fully numeric input never reaches
// here; it is treated as an ID upstream.
func leadingMinutes(s string) int32 {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	minutes, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0
	}

	return int32(minutes)
}
