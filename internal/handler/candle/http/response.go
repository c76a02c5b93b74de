package http

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/marketref/candle-admin/internal/entity"
)

type OHLCVResponse struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type CurrencyPairDescriptor struct {
	ID            int64  `json:"id"`
	Symbol        string `json:"symbol"`
	BaseCurrency  string `json:"base_currency"`
	QuoteCurrency string `json:"quote_currency"`
}

type ExchangeDescriptor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type TimeframeDescriptor struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Minutes int32  `json:"minutes"`
}

type CandleResponse struct {
	ID                int64                  `json:"id"`
	OpenTime          int64                  `json:"open_time"`
	CloseTime         int64                  `json:"close_time"`
	OpenTimeReadable  string                 `json:"open_time_readable"`
	CloseTimeReadable string                 `json:"close_time_readable"`
	OHLCV             OHLCVResponse          `json:"ohlcv"`
	QuoteVolume       *float64               `json:"quote_volume,omitempty"`
	TradesCount       *int32                 `json:"trades_count"`
	CurrencyPair      CurrencyPairDescriptor `json:"currency_pair"`
	Exchange          ExchangeDescriptor     `json:"exchange"`
	Timeframe         TimeframeDescriptor    `json:"timeframe"`
}

type PriceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type StatisticsResponse struct {
	TotalCandles int64              `json:"total_candles"`
	EarliestTime *string            `json:"earliest_time"`
	LatestTime   *string            `json:"latest_time"`
	PriceRange   PriceRangeResponse `json:"price_range"`
	TotalVolume  float64            `json:"total_volume"`
}

type StatsResponse struct {
	CurrencyPair string             `json:"currency_pair"`
	Exchange     string             `json:"exchange"`
	Timeframe    string             `json:"timeframe"`
	Statistics   StatisticsResponse `json:"statistics"`
}

type MetaCurrencyPair struct {
	ID            int64           `json:"id"`
	Symbol        string          `json:"symbol"`
	BaseCurrency  string          `json:"base_currency"`
	QuoteCurrency string          `json:"quote_currency"`
	Kind          entity.PairKind `json:"kind"`
	DisplayName   string          `json:"display_name"`
}

type MetaResponse struct {
	CurrencyPairs []MetaCurrencyPair    `json:"currency_pairs"`
	Exchanges     []ExchangeDescriptor  `json:"exchanges"`
	Timeframes    []TimeframeDescriptor `json:"timeframes"`
}

type ConfigurationResponse struct {
	ID               int64                  `json:"id"`
	Exchange         ExchangeDescriptor     `json:"exchange"`
	CurrencyPair     CurrencyPairDescriptor `json:"currency_pair"`
	Timeframe        TimeframeDescriptor    `json:"timeframe"`
	DisplayName      string                 `json:"display_name"`
	AdditionalConfig types.JSONText         `json:"additional_config,omitempty"`
}

func mapCandleToResponse(row entity.Candle, pair entity.CurrencyPair, exchange entity.Exchange, period entity.TimePeriod) CandleResponse {
	var quoteVolume *float64
	if row.QuoteVolume.Valid {
		v := row.QuoteVolume.Decimal.InexactFloat64()
		quoteVolume = &v
	}

	var tradesCount *int32
	if row.TradesCount.Valid {
		v := row.TradesCount.Int32
		tradesCount = &v
	}

	return CandleResponse{
		ID:                row.ID,
		OpenTime:          row.OpenTime.UnixMilli(),
		CloseTime:         row.CloseTime.UnixMilli(),
		OpenTimeReadable:  row.OpenTime.UTC().Format(time.RFC3339),
		CloseTimeReadable: row.CloseTime.UTC().Format(time.RFC3339),
		OHLCV: OHLCVResponse{
			Open:   row.OpenPrice.InexactFloat64(),
			High:   row.HighPrice.InexactFloat64(),
			Low:    row.LowPrice.InexactFloat64(),
			Close:  row.ClosePrice.InexactFloat64(),
			Volume: row.Volume.InexactFloat64(),
		},
		QuoteVolume:  quoteVolume,
		TradesCount:  tradesCount,
		CurrencyPair: mapPairDescriptor(pair),
		Exchange:     mapExchangeDescriptor(exchange),
		Timeframe:    mapTimeframeDescriptor(period),
	}
}

func mapStatsToResponse(result *entity.CandleStatsResult) StatsResponse {
	stats := result.Stats

	var earliest, latest *string
	if stats.EarliestTime.Valid {
		v := stats.EarliestTime.Time.UTC().Format(time.RFC3339)
		earliest = &v
	}
	if stats.LatestTime.Valid {
		v := stats.LatestTime.Time.UTC().Format(time.RFC3339)
		latest = &v
	}

	var minPrice, maxPrice, totalVolume float64
	if stats.MinPrice.Valid {
		minPrice = stats.MinPrice.Decimal.InexactFloat64()
	}
	if stats.MaxPrice.Valid {
		maxPrice = stats.MaxPrice.Decimal.InexactFloat64()
	}
	if stats.TotalVolume.Valid {
		totalVolume = stats.TotalVolume.Decimal.InexactFloat64()
	}

	return StatsResponse{
		CurrencyPair: result.CurrencyPair.DisplayName(),
		Exchange:     result.Exchange.Name,
		Timeframe:    result.TimePeriod.Name,
		Statistics: StatisticsResponse{
			TotalCandles: stats.TotalCandles,
			EarliestTime: earliest,
			LatestTime:   latest,
			PriceRange:   PriceRangeResponse{Min: minPrice, Max: maxPrice},
			TotalVolume:  totalVolume,
		},
	}
}

func mapMetaToResponse(meta *entity.CandleMeta) MetaResponse {
	pairs := make([]MetaCurrencyPair, 0, len(meta.CurrencyPairs))
	for _, pair := range meta.CurrencyPairs {
		pairs = append(pairs, MetaCurrencyPair{
			ID:            pair.ID,
			Symbol:        pair.Symbol(),
			BaseCurrency:  pair.BaseTicker,
			QuoteCurrency: pair.QuoteTicker,
			Kind:          pair.Kind,
			DisplayName:   pair.DisplayName(),
		})
	}

	exchanges := make([]ExchangeDescriptor, 0, len(meta.Exchanges))
	for _, exchange := range meta.Exchanges {
		exchanges = append(exchanges, mapExchangeDescriptor(exchange))
	}

	timeframes := make([]TimeframeDescriptor, 0, len(meta.TimePeriods))
	for _, period := range meta.TimePeriods {
		timeframes = append(timeframes, mapTimeframeDescriptor(period))
	}

	return MetaResponse{
		CurrencyPairs: pairs,
		Exchanges:     exchanges,
		Timeframes:    timeframes,
	}
}

func mapConfigurationsToResponse(configurations []entity.ExchangeConfiguration) []ConfigurationResponse {
	responses := make([]ConfigurationResponse, 0, len(configurations))
	for _, configuration := range configurations {
		responses = append(responses, ConfigurationResponse{
			ID: configuration.ID,
			Exchange: ExchangeDescriptor{
				ID:   configuration.ExchangeID,
				Name: configuration.ExchangeName,
				Code: configuration.ExchangeCode,
			},
			CurrencyPair: CurrencyPairDescriptor{
				ID:            configuration.CurrencyPairID,
				Symbol:        configuration.BaseTicker + "/" + configuration.QuoteTicker,
				BaseCurrency:  configuration.BaseTicker,
				QuoteCurrency: configuration.QuoteTicker,
			},
			Timeframe: TimeframeDescriptor{
				ID:      configuration.TimePeriodID,
				Name:    configuration.PeriodName,
				Minutes: configuration.PeriodMinutes,
			},
			DisplayName:      configuration.ExchangeName + " - " + configuration.PairDisplayName() + " - " + configuration.PeriodName,
			AdditionalConfig: configuration.AdditionalConfig,
		})
	}

	return responses
}

func mapPairDescriptor(pair entity.CurrencyPair) CurrencyPairDescriptor {
	return CurrencyPairDescriptor{
		ID:            pair.ID,
		Symbol:        pair.Symbol(),
		BaseCurrency:  pair.BaseTicker,
		QuoteCurrency: pair.QuoteTicker,
	}
}

func mapExchangeDescriptor(exchange entity.Exchange) ExchangeDescriptor {
	return ExchangeDescriptor{
		ID:   exchange.ID,
		Name: exchange.Name,
		Code: exchange.Code,
	}
}

func mapTimeframeDescriptor(period entity.TimePeriod) TimeframeDescriptor {
	return TimeframeDescriptor{
		ID:      period.ID,
		Name:    period.Name,
		Minutes: period.Minutes,
	}
}
