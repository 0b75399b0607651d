package domain

type OutcomeStatus string

const (
	StatusFound       OutcomeStatus = "found"
	StatusNoData      OutcomeStatus = "no_data"
	StatusInvalidPair OutcomeStatus = "invalid_pair"
)

// Outcome is what a caller receives for a single lookup.
type Outcome struct {
	Status OutcomeStatus
	Rate   float64
	Cached bool
	Err    error // set for StatusInvalidPair
}

func Found(rate float64, cached bool) Outcome {
	return Outcome{Status: StatusFound, Rate: rate, Cached: cached}
}

func NoData(cached bool) Outcome {
	return Outcome{Status: StatusNoData, Cached: cached}
}

func InvalidPair(err error) Outcome {
	return Outcome{Status: StatusInvalidPair, Err: err}
}

func FromCached(c CachedRate) Outcome {
	if c.Rate == nil {
		return NoData(true)
	}
	return Found(*c.Rate, true)
}
