package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the canonical naive timestamp format accepted and produced by the API.
const TimestampLayout = "2006-01-02 15:04:05"

var timestampLayouts = []string{TimestampLayout, "2006-01-02T15:04:05"}

type Pair struct {
	Base  string
	Quote string
}

func (p Pair) String() string { return p.Base + "/" + p.Quote }

// Observation is the nearest recorded trade for a query. AgeMinutes is how old the
// trade is relative to the moment the query ran.
type Observation struct {
	Rate       float64
	AgeMinutes int
}

type Trade struct {
	At   time.Time
	Rate float64
}

// RateRequest is an unvalidated lookup as received from a caller.
type RateRequest struct {
	Pair string
	At   time.Time
}

// RateQuery is a validated (pair, timestamp) lookup. Equal queries always resolve to the
// same rate once a trade has been recorded, which is what makes them cacheable.
type RateQuery struct {
	Pair Pair
	At   time.Time
}

func NewRateQuery(pair Pair, at time.Time) RateQuery {
	return RateQuery{Pair: pair, At: NaiveTimestamp(at)}
}

func (q RateQuery) Key() string { return q.Pair.String() + "@" + q.At.Format(TimestampLayout) }

// CachedRate is a memoized lookup result; a nil Rate means the lookup found no trades.
type CachedRate struct {
	Rate *float64
}

// NaiveTimestamp keeps the wall clock of t at second precision and drops its location.
func NaiveTimestamp(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func ParseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q, expected format %q", ErrInvalidTimestamp, raw, TimestampLayout)
}

type PoolStats struct {
	AcquiredConns int32
	IdleConns     int32
	TotalConns    int32
}
