package rate

import (
	"fmt"
	"strings"

	"histrates/internal/currency"
	"histrates/internal/domain"
)

const (
	identitySymbol = "BTC"
	usdtSymbol     = "USDT"
	pairSeparator  = "/"
)

// Normalize parses "BASE/QUOTE" text into a validated pair.
func Normalize(text string) (domain.Pair, error) {
	tokens := strings.Split(text, pairSeparator)
	if len(tokens) < 2 || tokens[0] == "" || tokens[1] == "" {
		return domain.Pair{}, fmt.Errorf("%w: %q", domain.ErrMalformedPair, text)
	}

	pair := domain.Pair{Base: tokens[0], Quote: tokens[1]}
	if !currency.IsSupported(pair.Base) {
		return domain.Pair{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, pair.Base)
	}
	if !currency.IsSupported(pair.Quote) {
		return domain.Pair{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, pair.Quote)
	}

	return ApplyUSDTRule(pair), nil
}

// ApplyUSDTRule rewrites any pair with a USDT leg to BTC/USDT, the only USDT series
// that is recorded. The other leg of the request is dropped.
func ApplyUSDTRule(pair domain.Pair) domain.Pair {
	if pair.Base == usdtSymbol || pair.Quote == usdtSymbol {
		return domain.Pair{Base: identitySymbol, Quote: usdtSymbol}
	}
	return pair
}

// IsIdentity reports whether pair is BTC/BTC, which always has a rate of 1.
func IsIdentity(pair domain.Pair) bool {
	return pair.Base == identitySymbol && pair.Quote == identitySymbol
}
