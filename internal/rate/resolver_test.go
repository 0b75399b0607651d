package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"histrates/internal/domain"
	"histrates/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) time.Time {
	t.Helper()
	at, err := domain.ParseTimestamp(raw)
	require.NoError(t, err)
	return at
}

func TestSearchRadius(t *testing.T) {
	require.Equal(t, 13, SearchRadius(domain.Pair{Base: "BTC", Quote: "USD"}))
	require.Equal(t, 13, SearchRadius(domain.Pair{Base: "BTC", Quote: "NOK"}))
	require.Equal(t, 4, SearchRadius(domain.Pair{Base: "BTC", Quote: "DOGE"}))
	require.Equal(t, 4, SearchRadius(domain.Pair{Base: "USD", Quote: "BTC"}))
	require.Equal(t, 4, SearchRadius(domain.Pair{Base: "BTC", Quote: "USDT"}))
}

func TestResolver_IdentityPairSkipsStore(t *testing.T) {
	store := new(MockTradeStore)
	r := NewResolver(store, 0, nil)

	for _, ts := range []string{"2010-01-01 00:00:00", "2017-06-30 23:59:59"} {
		obs, err := r.Resolve(context.Background(), domain.Pair{Base: "BTC", Quote: "BTC"}, mustParse(t, ts))
		require.NoError(t, err)
		require.NotNil(t, obs)
		require.Equal(t, 1.0, obs.Rate)
		require.Equal(t, IdentityAgeMinutes, obs.AgeMinutes)
	}
	store.AssertNotCalled(t, "QueryNearest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolver_PassesRadiusAndCenter(t *testing.T) {
	cases := []struct {
		pair   domain.Pair
		radius int
	}{
		{pair: domain.Pair{Base: "BTC", Quote: "EUR"}, radius: 13},
		{pair: domain.Pair{Base: "BTC", Quote: "ETH"}, radius: 4},
	}

	for _, tc := range cases {
		t.Run(tc.pair.String(), func(t *testing.T) {
			store := new(MockTradeStore)
			r := NewResolver(store, time.Second, nil)
			at := mustParse(t, "2016-02-03 04:05:06")

			store.On("QueryNearest", mock.Anything, tc.pair.Base, tc.pair.Quote, at, tc.radius).
				Return([]domain.Observation{{Rate: 0.5, AgeMinutes: 100}}, nil).Once()

			obs, err := r.Resolve(context.Background(), tc.pair, at)
			require.NoError(t, err)
			require.Equal(t, &domain.Observation{Rate: 0.5, AgeMinutes: 100}, obs)
			store.AssertExpectations(t)
		})
	}
}

func TestResolver_TakesFirstRow(t *testing.T) {
	store := new(MockTradeStore)
	r := NewResolver(store, 0, nil)

	store.On("QueryNearest", mock.Anything, "BTC", "ETH", mock.Anything, 4).
		Return([]domain.Observation{{Rate: 0.02, AgeMinutes: 70}, {Rate: 0.03, AgeMinutes: 80}}, nil).Once()

	obs, err := r.Resolve(context.Background(), domain.Pair{Base: "BTC", Quote: "ETH"}, mustParse(t, "2016-02-03 04:05:06"))
	require.NoError(t, err)
	require.Equal(t, 0.02, obs.Rate)
}

func TestResolver_NoRows(t *testing.T) {
	store := new(MockTradeStore)
	r := NewResolver(store, 0, nil)

	store.On("QueryNearest", mock.Anything, "BTC", "ETH", mock.Anything, 4).Return([]domain.Observation{}, nil).Once()

	obs, err := r.Resolve(context.Background(), domain.Pair{Base: "BTC", Quote: "ETH"}, mustParse(t, "2016-02-03 04:05:06"))
	require.NoError(t, err)
	require.Nil(t, obs)
}

func TestResolver_StoreErrorIsWrapped(t *testing.T) {
	store := new(MockTradeStore)
	m := metrics.New(prometheus.NewRegistry())
	r := NewResolver(store, 0, m)
	boom := errors.New("connection refused")
	pair := domain.Pair{Base: "BTC", Quote: "ETH"}
	at := mustParse(t, "2016-02-03 04:05:06")

	store.On("QueryNearest", mock.Anything, "BTC", "ETH", at, 4).Return(nil, boom).Once()

	obs, err := r.Resolve(context.Background(), pair, at)
	require.Nil(t, obs)
	require.ErrorIs(t, err, boom)

	var qErr *domain.QueryError
	require.ErrorAs(t, err, &qErr)
	require.Equal(t, pair, qErr.Pair)
	require.Contains(t, err.Error(), "BTC/ETH")
	require.Contains(t, err.Error(), "2016-02-03 04:05:06")
	require.Equal(t, 1.0, testutil.ToFloat64(m.StoreQueries.WithLabelValues("error")))
}

func TestResolver_AppliesQueryTimeout(t *testing.T) {
	store := new(MockTradeStore)
	r := NewResolver(store, 50*time.Millisecond, nil)

	store.On("QueryNearest", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), "BTC", "ETH", mock.Anything, 4).Return([]domain.Observation{}, nil).Once()

	_, err := r.Resolve(context.Background(), domain.Pair{Base: "BTC", Quote: "ETH"}, mustParse(t, "2016-02-03 04:05:06"))
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestNewResolver_NonPositiveTimeoutIsBounded(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		store := new(MockTradeStore)
		r := NewResolver(store, timeout, nil)
		require.Equal(t, DefaultQueryTimeout, r.queryTimeout)

		store.On("QueryNearest", mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) <= DefaultQueryTimeout
		}), "BTC", "ETH", mock.Anything, 4).Return([]domain.Observation{}, nil).Once()

		_, err := r.Resolve(context.WithoutCancel(context.Background()), domain.Pair{Base: "BTC", Quote: "ETH"}, mustParse(t, "2016-02-03 04:05:06"))
		require.NoError(t, err)
		store.AssertExpectations(t)
	}
}
