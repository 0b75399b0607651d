package handler

import (
	"net/http"

	"histrates/internal/currency"
)

type GetCurrenciesResponse struct {
	Codes []string `json:"codes" example:"BTC,DOGE,ETH,USD"`
	Fiat  []string `json:"fiat" example:"USD,EUR"`
}

// GetCurrencies godoc
// @Summary List supported currencies
// @Description Retrieve every recognized ticker symbol and the fiat subset
// @Tags Rates
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetCurrenciesResponse{
		Codes: currency.Codes(),
		Fiat:  currency.FiatCodes(),
	})
}
