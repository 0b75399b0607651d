package handler

import (
	"net/http"
	"strings"

	"histrates/internal/domain"

	"github.com/go-chi/chi/v5"
)

// GetRate godoc
// @Summary Get historical rate
// @Description Get the rate of the trade nearest to the given timestamp for a currency pair
// @Tags Rates
// @Produce json
// @Param base path string true "Base currency" example(BTC)
// @Param quote path string true "Quote currency" example(DOGE)
// @Param timestamp path string true "Naive UTC timestamp, YYYY-MM-DD HH:MM:SS" example(2014-01-25 05:44:38)
// @Success 200 {object} RateResponse
// @Failure 400 {object} errorResponse
// @Router /rate/{base}/{quote}/{timestamp} [get]
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimSpace(chi.URLParam(r, "base"))
	quote := strings.TrimSpace(chi.URLParam(r, "quote"))

	at, err := domain.ParseTimestamp(chi.URLParam(r, "timestamp"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome := h.service.Resolve(r.Context(), base+"/"+quote, at)
	if outcome.Status == domain.StatusInvalidPair {
		writeError(w, http.StatusBadRequest, outcome.Err.Error())
		return
	}

	writeJSON(w, http.StatusOK, newRateResponse(outcome))
}
