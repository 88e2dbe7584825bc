package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraderIDFromString(t *testing.T) {
	id, err := TraderIDFromString("TESTER-000")
	require.NoError(t, err)
	assert.Equal(t, NewTraderID("TESTER", "000"), id)
	assert.Equal(t, "TESTER-000", id.String())
}

func TestTraderIDFromStringKeepsHyphenatedName(t *testing.T) {
	// Only the last hyphen separates the tag.
	id, err := TraderIDFromString("MULTI-NAME-000")
	require.NoError(t, err)
	assert.Equal(t, "MULTI-NAME", id.Name)
	assert.Equal(t, "000", id.Tag)
}

func TestTraderIDFromStringRejectsMalformed(t *testing.T) {
	for _, value := range []string{"", "TESTER", "TESTER-", "-000"} {
		_, err := TraderIDFromString(value)
		var malformed MalformedIdentifierError
		assert.ErrorAs(t, err, &malformed, "value %q", value)
		assert.Equal(t, "TraderId", malformed.Kind)
	}
}

func TestStrategyIDFromString(t *testing.T) {
	id, err := StrategyIDFromString("SCALPER-01")
	require.NoError(t, err)
	assert.Equal(t, NewStrategyID("SCALPER", "01"), id)
}

func TestAccountIDFromString(t *testing.T) {
	id, err := AccountIDFromString("FXCM-02851908-DEMO")
	require.NoError(t, err)
	assert.Equal(t, NewAccountID("FXCM", "02851908", AccountTypeDemo), id)
	assert.Equal(t, "FXCM-02851908-DEMO", id.String())
}

func TestAccountIDFromStringRejectsMalformed(t *testing.T) {
	for _, value := range []string{
		"",
		"FXCM",
		"FXCM-02851908",
		"FXCM-02851908-DEMO-EXTRA",
		"FXCM-02851908-PRETEND",
		"-02851908-DEMO",
	} {
		_, err := AccountIDFromString(value)
		var malformed MalformedIdentifierError
		assert.ErrorAs(t, err, &malformed, "value %q", value)
		assert.Equal(t, "AccountId", malformed.Kind)
	}
}

func TestSymbolFromString(t *testing.T) {
	symbol, err := SymbolFromString("AUDUSD.FXCM")
	require.NoError(t, err)
	assert.Equal(t, NewSymbol("AUDUSD", "FXCM"), symbol)
	assert.Equal(t, "AUDUSD.FXCM", symbol.String())
}

func TestSymbolFromStringRejectsMalformed(t *testing.T) {
	for _, value := range []string{"", "AUDUSD", "AUDUSD.", ".FXCM"} {
		_, err := SymbolFromString(value)
		var malformed MalformedIdentifierError
		assert.ErrorAs(t, err, &malformed, "value %q", value)
	}
}
