package rate

import (
	"testing"

	"histrates/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestNormalize_Malformed(t *testing.T) {
	for _, text := range []string{"", "BTC", "BTCDOGE", "/", "BTC/", "/DOGE", "//"} {
		_, err := Normalize(text)
		require.ErrorIs(t, err, domain.ErrMalformedPair, text)
	}
}

func TestNormalize_UnknownCurrency(t *testing.T) {
	cases := []string{"BTC/ZZZ", "ZZZ/BTC", "btc/DOGE", "BTC/doge", "ETOK/BTC"}
	for _, text := range cases {
		_, err := Normalize(text)
		require.ErrorIs(t, err, domain.ErrUnknownCurrency, text)
		require.NotErrorIs(t, err, domain.ErrMalformedPair, text)
	}
}

func TestNormalize_ErrorNamesOffendingToken(t *testing.T) {
	_, err := Normalize("BTC/ZZZ")
	require.ErrorContains(t, err, `"ZZZ"`)
}

func TestNormalize_Valid(t *testing.T) {
	cases := map[string]domain.Pair{
		"BTC/DOGE": {Base: "BTC", Quote: "DOGE"},
		"BTC/USD":  {Base: "BTC", Quote: "USD"},
		"DOGE/BTC": {Base: "DOGE", Quote: "BTC"},
		"BTC/eTOK": {Base: "BTC", Quote: "eTOK"},
		"BTC/BTC":  {Base: "BTC", Quote: "BTC"},
	}
	for text, want := range cases {
		got, err := Normalize(text)
		require.NoError(t, err, text)
		require.Equal(t, want, got, text)
	}
}

func TestNormalize_IgnoresTokensAfterQuote(t *testing.T) {
	got, err := Normalize("BTC/ETH/extra")
	require.NoError(t, err)
	require.Equal(t, domain.Pair{Base: "BTC", Quote: "ETH"}, got)
}

func TestNormalize_USDTAlwaysBecomesBTCUSDT(t *testing.T) {
	for _, text := range []string{"BTC/USDT", "USDT/BTC", "ETH/USDT", "USDT/DOGE", "USDT/USDT", "USDT/USD"} {
		got, err := Normalize(text)
		require.NoError(t, err, text)
		require.Equal(t, domain.Pair{Base: "BTC", Quote: "USDT"}, got, text)
	}
}

func TestNormalize_USDTStillValidatesOtherLeg(t *testing.T) {
	_, err := Normalize("USDT/ZZZ")
	require.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestApplyUSDTRule_LeavesOtherPairsAlone(t *testing.T) {
	pair := domain.Pair{Base: "ETH", Quote: "XMR"}
	require.Equal(t, pair, ApplyUSDTRule(pair))
}

func TestIsIdentity(t *testing.T) {
	require.True(t, IsIdentity(domain.Pair{Base: "BTC", Quote: "BTC"}))
	require.False(t, IsIdentity(domain.Pair{Base: "ETH", Quote: "ETH"}))
	require.False(t, IsIdentity(domain.Pair{Base: "BTC", Quote: "ETH"}))
}
