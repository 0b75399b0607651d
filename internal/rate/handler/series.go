package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"histrates/internal/currency"
	"histrates/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const maxTradesBodyBytes = 8 << 20

type TradeItem struct {
	Date string  `json:"date" validate:"required" example:"2014-01-25 05:44:38"`
	Rate float64 `json:"rate" validate:"gt=0" example:"0.0000015"`
}

type ImportTradesResponse struct {
	Inserted int64 `json:"inserted" example:"42"`
}

type SeriesResponse struct {
	Series []string `json:"series" example:"BTC/DOGE,BTC/USD"`
}

// ImportTrades godoc
// @Summary Import trades
// @Description Create the trade series for a pair if needed and append trades to it. Trades already recorded at the same time are skipped.
// @Tags Series
// @Accept json
// @Produce json
// @Param base path string true "Base currency"
// @Param quote path string true "Quote currency"
// @Param request body []TradeItem true "Trades"
// @Success 200 {object} ImportTradesResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /series/{base}/{quote}/trades [post]
func (h *Handler) ImportTrades(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimSpace(chi.URLParam(r, "base"))
	quote := strings.TrimSpace(chi.URLParam(r, "quote"))
	if !currency.IsSupported(base) || !currency.IsSupported(quote) {
		writeError(w, http.StatusBadRequest, domain.ErrUnknownCurrency.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTradesBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var items []TradeItem
	if err := dec.Decode(&items); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Var(items, "required,dive"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid trades: "+err.Error())
		return
	}

	trades := make([]domain.Trade, 0, len(items))
	for _, item := range items {
		at, err := domain.ParseTimestamp(item.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		trades = append(trades, domain.Trade{At: at, Rate: item.Rate})
	}

	fields := logrus.Fields{"handler": "ImportTrades", "base": base, "quote": quote}
	if err := h.series.EnsureSeries(r.Context(), base, quote); err != nil {
		msg := "ups, couldn't create trade series this time"
		logrus.WithError(err).WithFields(fields).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	inserted, err := h.series.InsertTrades(r.Context(), base, quote, trades)
	if err != nil {
		msg := "ups, couldn't import trades this time"
		logrus.WithError(err).WithFields(fields).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	logrus.WithFields(fields).WithField("inserted", inserted).Info("trades imported")
	writeJSON(w, http.StatusOK, ImportTradesResponse{Inserted: inserted})
}

// ListSeries godoc
// @Summary List trade series
// @Description List every pair that has a registered trade series
// @Tags Series
// @Produce json
// @Success 200 {object} SeriesResponse
// @Failure 500 {object} errorResponse
// @Router /series [get]
func (h *Handler) ListSeries(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.series.ListSeries(r.Context())
	if err != nil {
		msg := "ups, couldn't list trade series this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListSeries"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := SeriesResponse{Series: make([]string, 0, len(pairs))}
	for _, p := range pairs {
		res.Series = append(res.Series, p.String())
	}
	writeJSON(w, http.StatusOK, res)
}
