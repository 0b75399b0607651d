package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"histrates/internal/domain"

	"github.com/sirupsen/logrus"
)

const maxBatchItemBytes = 128

type BatchRateItem struct {
	Pair string `json:"pair" example:"BTC/DOGE"`
	Date string `json:"date" example:"2014-01-25T05:44:38"`
}

// GetBatchRate godoc
// @Summary Get historical rates in batch
// @Description Resolve many pair/date lookups at once. Results are returned in request order.
// @Tags Rates
// @Accept json
// @Produce json
// @Param request body []BatchRateItem true "Lookups"
// @Success 200 {array} RateResponse
// @Failure 400 {object} errorResponse
// @Router /batch_rate [post]
func (h *Handler) GetBatchRate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.maxBatch+1)*maxBatchItemBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var items []BatchRateItem
	if err := dec.Decode(&items); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// items are not validated here: a bad pair or date only fails its own entry
	if err := h.validate.Var(items, fmt.Sprintf("required,max=%d", h.maxBatch)); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid batch: %v", err))
		return
	}

	results := make([]RateResponse, len(items))
	requests := make([]domain.RateRequest, 0, len(items))
	positions := make([]int, 0, len(items))
	for i, item := range items {
		at, err := domain.ParseTimestamp(item.Date)
		if err != nil {
			results[i] = RateResponse{NoData: true, Error: err.Error()}
			continue
		}
		requests = append(requests, domain.RateRequest{Pair: item.Pair, At: at})
		positions = append(positions, i)
	}

	for j, outcome := range h.service.ResolveMany(r.Context(), requests) {
		results[positions[j]] = newRateResponse(outcome)
	}

	logrus.WithFields(logrus.Fields{"handler": "GetBatchRate", "size": len(items), "resolved": len(requests)}).Debug("batch served")
	writeJSON(w, http.StatusOK, results)
}
