package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyPairDisplayName(t *testing.T) {
	spot := CurrencyPair{BaseTicker: "BTC", QuoteTicker: "USDT", Kind: PairKindSpot}
	assert.Equal(t, "BTC/USDT", spot.DisplayName())
	assert.Equal(t, "BTC/USDT", spot.Symbol())

	futures := CurrencyPair{BaseTicker: "BTC", QuoteTicker: "USDT", Kind: PairKindFutures}
	assert.Equal(t, "BTC/USDT:USDT", futures.DisplayName())
	assert.Equal(t, "BTC/USDT", futures.Symbol())
}

func TestSplitPairSymbol(t *testing.T) {
	base, quote, ok := SplitPairSymbol("BTC/USDT")
	assert.True(t, ok)
	assert.Equal(t, "BTC", base)
	assert.Equal(t, "USDT", quote)

	_, _, ok = SplitPairSymbol("BTC")
	assert.False(t, ok)

	_, _, ok = SplitPairSymbol("BTC/USDT/ETH")
	assert.False(t, ok)
}
