package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/marketref/candle-admin/internal/config"
	"github.com/marketref/candle-admin/internal/constant"
	"github.com/marketref/candle-admin/internal/entity"
	"github.com/marketref/candle-admin/internal/service/candle"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	candleService *candle.CandleService
}

func NewCandleHTTPHandler(candleService *candle.CandleService) *Handler {
	return &Handler{candleService: candleService}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/candles", h.ListCandles)
	mux.HandleFunc("/candles/meta", h.Meta)
	mux.HandleFunc("/candles/stats", h.Stats)
	mux.HandleFunc("/candles/configurations", h.Configurations)
	mux.HandleFunc("/health", h.Health)
}

func (h *Handler) ListCandles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}

	query, ok := parseCandleQuery(w, r, true)
	if !ok {
		return
	}

	result, err := h.candleService.ListCandles(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, candle.ErrCombinationNotFound):
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error":   "currency pair, exchange or timeframe not found",
				"message": "check the provided parameters",
			})
		default:
			writeInternalError(w, r, "failed to fetch candles", err)
		}
		return
	}

	candles := make([]CandleResponse, 0, len(result.Candles))
	for _, row := range result.Candles {
		candles = append(candles, mapCandleToResponse(row, result.CurrencyPair, result.Exchange, result.TimePeriod))
	}

	writeJSON(w, http.StatusOK, candles)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}

	query, ok := parseCandleQuery(w, r, false)
	if !ok {
		return
	}

	result, err := h.candleService.CandleStats(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, candle.ErrCurrencyPairNotFound):
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "currency pair not found"})
		case errors.Is(err, candle.ErrExchangeNotFound):
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "exchange not found"})
		case errors.Is(err, candle.ErrTimeframeNotFound):
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "timeframe not found"})
		case errors.Is(err, candle.ErrStatsParamsRequired):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": "statistics require parameters: currency_pair, exchange, timeframe",
			})
		default:
			writeInternalError(w, r, "failed to fetch statistics", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, mapStatsToResponse(result))
}

func (h *Handler) Meta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}

	meta, err := h.candleService.Meta(r.Context())
	if err != nil {
		writeInternalError(w, r, "failed to fetch metadata", err)
		return
	}

	writeJSON(w, http.StatusOK, mapMetaToResponse(meta))
}

func (h *Handler) Configurations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}

	configurations, err := h.candleService.Configurations(r.Context())
	if err != nil {
		writeInternalError(w, r, "failed to fetch configurations", err)
		return
	}

	writeJSON(w, http.StatusOK, mapConfigurationsToResponse(configurations))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}

	version := "1.0.0"
	if config.Env != nil && config.Env.Version != "" {
		version = config.Env.Version
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version,
	})
}

// parseCandleQuery validates the shared query parameters. withLimit is false
// for the stats endpoint, which takes no row cap.
func parseCandleQuery(w http.ResponseWriter, r *http.Request, withLimit bool) (entity.CandleQuery, bool) {
	params := r.URL.Query()

	query := entity.CandleQuery{
		CurrencyPair: entity.ParseIdentifier(params.Get("currency_pair")),
		Exchange:     entity.ParseIdentifier(params.Get("exchange")),
		Timeframe:    entity.ParseIdentifier(params.Get("timeframe")),
	}

	from, err := parseTimeParam(params.Get("from"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid 'from' date"})
		return entity.CandleQuery{}, false
	}

	to, err := parseTimeParam(params.Get("to"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid 'to' date"})
		return entity.CandleQuery{}, false
	}

	if from != nil && to != nil && to.Before(*from) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "'to' must be greater than or equal to 'from'"})
		return entity.CandleQuery{}, false
	}

	query.From = from
	query.To = to

	if withLimit {
		limit := constant.DefaultCandleLimit
		if raw := params.Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit < constant.MinCandleLimit || limit > constant.MaxCandleLimit {
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": "limit must be an integer between 1 and 1000"})
				return entity.CandleQuery{}, false
			}
		}
		query.Limit = limit
	}

	return query, true
}

var timeParamLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	for _, layout := range timeParamLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}

	return nil, errors.New("unsupported date format")
}

func writeInternalError(w http.ResponseWriter, r *http.Request, title string, err error) {
	logrus.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Errorf("%s: %v", title, err)

	message := "internal server error"
	if config.Env != nil && config.Env.Debug {
		message = err.Error()
	}

	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error":   title,
		"message": message,
	})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
