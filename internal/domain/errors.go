package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMalformedPair    = errors.New("malformed currency pair")
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// QueryError is returned when the trade store could not answer a nearest-trade query.
type QueryError struct {
	Pair Pair
	At   time.Time
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("nearest trade query for %s at %s failed: %+v", e.Pair, e.At.Format(TimestampLayout), e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
