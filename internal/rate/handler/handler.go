package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"histrates/internal/domain"

	"github.com/go-playground/validator/v10"
)

const defaultMaxBatch = 1000

type rateService interface {
	Resolve(ctx context.Context, pairText string, at time.Time) domain.Outcome
	ResolveMany(ctx context.Context, requests []domain.RateRequest) []domain.Outcome
}

type feedbackSender interface {
	Send(ctx context.Context, email string, message string) error
}

type seriesStore interface {
	EnsureSeries(ctx context.Context, base string, quote string) error
	InsertTrades(ctx context.Context, base string, quote string, trades []domain.Trade) (int64, error)
	ListSeries(ctx context.Context) ([]domain.Pair, error)
}

type Handler struct {
	service  rateService
	feedback feedbackSender
	series   seriesStore
	validate *validator.Validate
	maxBatch int
}

func NewRateHandler(service rateService, feedback feedbackSender, series seriesStore, maxBatch int) *Handler {
	if maxBatch <= 0 {
		maxBatch = defaultMaxBatch
	}
	return &Handler{
		service:  service,
		feedback: feedback,
		series:   series,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		maxBatch: maxBatch,
	}
}

// RateResponse mirrors a single lookup outcome. Rate is null when no trade was found.
type RateResponse struct {
	Rate   *float64 `json:"rate" example:"0.0000015"`
	NoData bool     `json:"no_data" example:"false"`
	Cached bool     `json:"cached" example:"true"`
	Error  string   `json:"error,omitempty"`
}

func newRateResponse(o domain.Outcome) RateResponse {
	res := RateResponse{NoData: o.Status != domain.StatusFound, Cached: o.Cached}
	if o.Status == domain.StatusFound {
		v := o.Rate
		res.Rate = &v
	}
	if o.Err != nil {
		res.Error = o.Err.Error()
	}
	return res
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
