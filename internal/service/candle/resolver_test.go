package candle

import (
	"context"
	"testing"

	"github.com/marketref/candle-admin/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCurrencyPairByID(t *testing.T) {
	store := seededStore()
	service := newTestService(store)
	ctx := context.Background()

	pair, err := service.resolver.ResolveCurrencyPair(ctx, entity.ParseIdentifier("1"))
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, int64(1), pair.ID)

	missing, err := service.resolver.ResolveCurrencyPair(ctx, entity.ParseIdentifier("999"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestResolveCurrencyPairBySymbolString(t *testing.T) {
	store := seededStore()
	service := newTestService(store)
	ctx := context.Background()

	pair, err := service.resolver.ResolveCurrencyPair(ctx, entity.ParseIdentifier("BTC/USDT"))
	require.NoError(t, err)
	require.NotNil(t, pair)
	// spot and futures twins share the symbols; the lowest id wins
	assert.Equal(t, int64(1), pair.ID)
	assert.Equal(t, entity.PairKindSpot, pair.Kind)

	for _, input := range []string{"BTC", "BTC/USDT/ETH", "BTC/XXX", "DOGE/USDT"} {
		pair, err := service.resolver.ResolveCurrencyPair(ctx, entity.ParseIdentifier(input))
		require.NoError(t, err, input)
		assert.Nil(t, pair, input)
	}
}

func TestResolveCurrencyPairAbsentInput(t *testing.T) {
	service := newTestService(seededStore())

	pair, err := service.resolver.ResolveCurrencyPair(context.Background(), entity.ParseIdentifier(""))
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestResolveExchange(t *testing.T) {
	store := seededStore()
	service := newTestService(store)
	ctx := context.Background()

	byLowerCode, err := service.resolver.ResolveExchange(ctx, entity.ParseIdentifier("binance"))
	require.NoError(t, err)
	require.NotNil(t, byLowerCode)

	byUpperCode, err := service.resolver.ResolveExchange(ctx, entity.ParseIdentifier("BINANCE"))
	require.NoError(t, err)
	require.NotNil(t, byUpperCode)
	assert.Equal(t, byLowerCode.ID, byUpperCode.ID)

	byName, err := service.resolver.ResolveExchange(ctx, entity.ParseIdentifier("Binance"))
	require.NoError(t, err)
	require.NotNil(t, byName)

	byID, err := service.resolver.ResolveExchange(ctx, entity.ParseIdentifier("1"))
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "BINANCE", byID.Code)

	missing, err := service.resolver.ResolveExchange(ctx, entity.ParseIdentifier("bitfinex"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestResolveTimePeriod(t *testing.T) {
	store := seededStore()
	service := newTestService(store)
	ctx := context.Background()

	byName, err := service.resolver.ResolveTimePeriod(ctx, entity.ParseIdentifier("1h"))
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, int32(60), byName.Minutes)

	// numeric input is an ID, never a minutes value
	byID, err := service.resolver.ResolveTimePeriod(ctx, entity.ParseIdentifier("2"))
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "4h", byID.Name)

	missingID, err := service.resolver.ResolveTimePeriod(ctx, entity.ParseIdentifier("60"))
	require.NoError(t, err)
	assert.Nil(t, missingID)

	// interval strings fall back to their minute width
	byMinutes, err := service.resolver.ResolveTimePeriod(ctx, entity.ParseIdentifier("60m"))
	require.NoError(t, err)
	require.NotNil(t, byMinutes)
	assert.Equal(t, "1h", byMinutes.Name)

	missing, err := service.resolver.ResolveTimePeriod(ctx, entity.ParseIdentifier("7m"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}
