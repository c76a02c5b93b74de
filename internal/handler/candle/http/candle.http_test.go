package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/guregu/null/v6"
	"github.com/marketref/candle-admin/internal/entity"
	"github.com/marketref/candle-admin/internal/repository/repositorytest"
	"github.com/marketref/candle-admin/internal/service/candle"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBaseTime = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store := repositorytest.NewMemoryStore()
	store.Symbols = []entity.Symbol{
		{ID: 1, Name: "Bitcoin", Ticker: "BTC", Active: true},
		{ID: 2, Name: "Tether", Ticker: "USDT", Active: true},
	}
	store.CurrencyPairs = []entity.CurrencyPair{
		{ID: 1, BaseSymbolID: 1, QuoteSymbolID: 2, Kind: entity.PairKindSpot, Active: true, BaseTicker: "BTC", QuoteTicker: "USDT"},
	}
	store.Exchanges = []entity.Exchange{
		{ID: 1, Name: "Binance", Code: "BINANCE", Environment: entity.ExchangeEnvironmentProduction, Active: true},
	}
	store.TimePeriods = []entity.TimePeriod{
		{ID: 1, Name: "1h", Minutes: 60, Active: true},
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
		openTime := testBaseTime.Add(time.Duration(i) * time.Hour)
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
			TradesCount:    null.Int32From(int32(100 + i)),
		})
	}

	resolver := candle.NewResolver(
		store,
		store,
		repositorytest.ExchangeStore{Store: store},
		repositorytest.TimePeriodStore{Store: store},
	)
	service := candle.NewCandleService(
		resolver,
		repositorytest.CandleStore{Store: store},
		store,
		repositorytest.ExchangeStore{Store: store},
		repositorytest.TimePeriodStore{Store: store},
		repositorytest.ConfigurationStore{Store: store},
	)

	mux := http.NewServeMux()
	NewCandleHTTPHandler(service).Register(mux)

	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))

	return recorder
}

func TestListCandlesEndpoint(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, http.MethodGet, "/candles?currency_pair=BTC/USDT&exchange=BINANCE&timeframe=1h&limit=3")
	require.Equal(t, http.StatusOK, recorder.Code)

	var candles []CandleResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &candles))
	require.Len(t, candles, 3)

	// latest three, descending
	assert.Equal(t, testBaseTime.Add(4*time.Hour).UnixMilli(), candles[0].OpenTime)
	assert.Equal(t, testBaseTime.Add(3*time.Hour).UnixMilli(), candles[1].OpenTime)
	assert.Equal(t, testBaseTime.Add(2*time.Hour).UnixMilli(), candles[2].OpenTime)

	first := candles[0]
	assert.Equal(t, int64(5), first.ID)
	assert.Equal(t, "2025-06-01T04:00:00Z", first.OpenTimeReadable)
	assert.Equal(t, 50400.0, first.OHLCV.Open)
	assert.Equal(t, 50600.0, first.OHLCV.High)
	assert.Equal(t, 10.0, first.OHLCV.Volume)
	assert.Nil(t, first.QuoteVolume)
	require.NotNil(t, first.TradesCount)
	assert.Equal(t, int32(104), *first.TradesCount)
	assert.Equal(t, "BTC/USDT", first.CurrencyPair.Symbol)
	assert.Equal(t, "BINANCE", first.Exchange.Code)
	assert.Equal(t, int32(60), first.Timeframe.Minutes)
}

func TestListCandlesTimeWindow(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, http.MethodGet,
		"/candles?currency_pair=1&exchange=1&timeframe=1&from=2025-06-01T01:00:00Z&to=2025-06-01T03:00:00Z")
	require.Equal(t, http.StatusOK, recorder.Code)

	var candles []CandleResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &candles))
	// boundaries are inclusive
	require.Len(t, candles, 3)
	assert.Equal(t, testBaseTime.Add(3*time.Hour).UnixMilli(), candles[0].OpenTime)
	assert.Equal(t, testBaseTime.Add(1*time.Hour).UnixMilli(), candles[2].OpenTime)
}

func TestListCandlesBadRequest(t *testing.T) {
	mux := newTestMux(t)

	for _, target := range []string{
		"/candles?currency_pair=BTC/USDT&exchange=BINANCE&timeframe=1h&from=2025-06-02&to=2025-06-01",
		"/candles?currency_pair=BTC/USDT&exchange=BINANCE&timeframe=1h&from=yesterday",
		"/candles?currency_pair=BTC/USDT&exchange=BINANCE&timeframe=1h&limit=0",
		"/candles?currency_pair=BTC/USDT&exchange=BINANCE&timeframe=1h&limit=1001",
		"/candles?currency_pair=BTC/USDT&exchange=BINANCE&timeframe=1h&limit=ten",
	} {
		recorder := doRequest(t, mux, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, target)
	}
}

func TestListCandlesNotFound(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, http.MethodGet, "/candles?currency_pair=BTC/USDT&exchange=bitfinex&timeframe=1h")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "currency pair, exchange or timeframe not found", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestStatsEndpoint(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, http.MethodGet, "/candles/stats?currency_pair=BTC/USDT&exchange=BINANCE&timeframe=1h")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body StatsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "BTC/USDT", body.CurrencyPair)
	assert.Equal(t, "Binance", body.Exchange)
	assert.Equal(t, "1h", body.Timeframe)
	assert.Equal(t, int64(5), body.Statistics.TotalCandles)
	require.NotNil(t, body.Statistics.EarliestTime)
	assert.Equal(t, "2025-06-01T00:00:00Z", *body.Statistics.EarliestTime)
	require.NotNil(t, body.Statistics.LatestTime)
	assert.Equal(t, "2025-06-01T04:00:00Z", *body.Statistics.LatestTime)
	assert.Equal(t, 49900.0, body.Statistics.PriceRange.Min)
	assert.Equal(t, 50600.0, body.Statistics.PriceRange.Max)
	assert.Equal(t, 50.0, body.Statistics.TotalVolume)
}

func TestStatsEndpointEmptyWindow(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, http.MethodGet,
		"/candles/stats?currency_pair=BTC/USDT&exchange=BINANCE&timeframe=1h&from=2030-01-01")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body StatsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, int64(0), body.Statistics.TotalCandles)
	assert.Nil(t, body.Statistics.EarliestTime)
	assert.Nil(t, body.Statistics.LatestTime)
	assert.Equal(t, 0.0, body.Statistics.PriceRange.Min)
	assert.Equal(t, 0.0, body.Statistics.PriceRange.Max)
	assert.Equal(t, 0.0, body.Statistics.TotalVolume)
}

func TestStatsEndpointErrors(t *testing.T) {
	mux := newTestMux(t)

	cases := []struct {
		target string
		code   int
		errMsg string
	}{
		{"/candles/stats?currency_pair=DOGE/USDT&exchange=BINANCE&timeframe=1h", http.StatusNotFound, "currency pair not found"},
		{"/candles/stats?currency_pair=BTC/USDT&exchange=bitfinex&timeframe=1h", http.StatusNotFound, "exchange not found"},
		{"/candles/stats?currency_pair=BTC/USDT&exchange=BINANCE&timeframe=1w", http.StatusNotFound, "timeframe not found"},
		{"/candles/stats", http.StatusBadRequest, "statistics require parameters: currency_pair, exchange, timeframe"},
		{"/candles/stats?currency_pair=BTC/USDT", http.StatusBadRequest, "statistics require parameters: currency_pair, exchange, timeframe"},
	}

	for _, tc := range cases {
		recorder := doRequest(t, mux, http.MethodGet, tc.target)
		require.Equal(t, tc.code, recorder.Code, tc.target)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, tc.errMsg, body["error"], tc.target)
	}
}

func TestMetaEndpoint(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, http.MethodGet, "/candles/meta")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body MetaResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.CurrencyPairs, 1)
	assert.Equal(t, "BTC/USDT", body.CurrencyPairs[0].Symbol)
	assert.Equal(t, "BTC/USDT", body.CurrencyPairs[0].DisplayName)
	assert.Equal(t, entity.PairKindSpot, body.CurrencyPairs[0].Kind)
	require.Len(t, body.Exchanges, 1)
	assert.Equal(t, "Binance", body.Exchanges[0].Name)
	require.Len(t, body.Timeframes, 1)
	assert.Equal(t, int32(60), body.Timeframes[0].Minutes)
}

func TestConfigurationsEndpoint(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, http.MethodGet, "/candles/configurations")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body []ConfigurationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Binance - BTC/USDT - 1h", body[0].DisplayName)
	assert.Equal(t, "BINANCE", body[0].Exchange.Code)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)

	recorder := doRequest(t, mux, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["version"])
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	for _, target := range []string{"/candles", "/candles/meta", "/candles/stats", "/candles/configurations", "/health"} {
		recorder := doRequest(t, mux, http.MethodPost, target)
		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code, target)
	}
}
