package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"histrates/internal/domain"
	"histrates/internal/rate/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	gotPair string
	gotAt   time.Time
}

func (s *stubService) Resolve(_ context.Context, pairText string, at time.Time) domain.Outcome {
	s.gotPair, s.gotAt = pairText, at
	return domain.Found(2, false)
}

func (s *stubService) ResolveMany(_ context.Context, requests []domain.RateRequest) []domain.Outcome {
	return make([]domain.Outcome, len(requests))
}

func newTestRouter(t *testing.T, svc *stubService) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "histrates_test_total", Help: "test"}))
	return NewRouter(handler.NewRateHandler(svc, nil, nil, 10), reg, []string{"https://polotrack.example"})
}

func TestRouter_RateRouteDecodesTimestamp(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rate/BTC/DOGE/"+url.PathEscape("2014-01-25 05:44:38"), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "BTC/DOGE", svc.gotPair)
	require.Equal(t, time.Date(2014, 1, 25, 5, 44, 38, 0, time.UTC), svc.gotAt)
	require.JSONEq(t, `{"rate": 2, "no_data": false, "cached": false}`, rr.Body.String())
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, &stubService{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t, &stubService{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "histrates_test_total")
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, &stubService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/batch_rate", nil)
	req.Header.Set("Origin", "https://polotrack.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, "https://polotrack.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t, &stubService{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/rates/BTC/DOGE", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
}
