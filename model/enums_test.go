package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSideRoundTrip(t *testing.T) {
	for _, side := range []OrderSide{SideBuy, SideSell} {
		parsed, err := OrderSideFromString(side.String())
		require.NoError(t, err)
		assert.Equal(t, side, parsed)
	}
}

func TestOrderSideFromStringRejectsUnknown(t *testing.T) {
	_, err := OrderSideFromString("UPWARD")
	var unknown UnknownEnumValueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "OrderSide", unknown.Enum)
	assert.Equal(t, "UPWARD", unknown.Value)
}

func TestOrderTypeRoundTrip(t *testing.T) {
	for _, orderType := range []OrderType{
		OrderTypeMarket, OrderTypeLimit, OrderTypeStopMarket, OrderTypeStopLimit,
	} {
		parsed, err := OrderTypeFromString(orderType.String())
		require.NoError(t, err)
		assert.Equal(t, orderType, parsed)
	}
}

func TestOrderTypeRequiresPrice(t *testing.T) {
	assert.False(t, OrderTypeMarket.RequiresPrice())
	assert.True(t, OrderTypeLimit.RequiresPrice())
	assert.True(t, OrderTypeStopMarket.RequiresPrice())
	assert.True(t, OrderTypeStopLimit.RequiresPrice())
}

func TestTimeInForceRoundTrip(t *testing.T) {
	for _, tif := range []TimeInForce{TIFDay, TIFGTC, TIFIOC, TIFFOC, TIFGTD} {
		parsed, err := TimeInForceFromString(tif.String())
		require.NoError(t, err)
		assert.Equal(t, tif, parsed)
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	for _, currency := range []Currency{
		AUD, CAD, CHF, CNY, EUR, GBP, HKD, JPY, NZD, SGD, USD,
	} {
		parsed, err := CurrencyFromString(currency.String())
		require.NoError(t, err)
		assert.Equal(t, currency, parsed)
	}
}

func TestCurrencyFromStringRejectsUnknown(t *testing.T) {
	_, err := CurrencyFromString("DOGE")
	var unknown UnknownEnumValueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Currency", unknown.Enum)
}

func TestSecurityTypeRoundTrip(t *testing.T) {
	for _, securityType := range []SecurityType{
		SecurityTypeForex, SecurityTypeBond, SecurityTypeEquity,
		SecurityTypeFuture, SecurityTypeCFD, SecurityTypeOption,
	} {
		parsed, err := SecurityTypeFromString(securityType.String())
		require.NoError(t, err)
		assert.Equal(t, securityType, parsed)
	}
}

func TestAccountTypeRoundTrip(t *testing.T) {
	for _, accountType := range []AccountType{
		AccountTypeSimulated, AccountTypeDemo, AccountTypeReal,
	} {
		parsed, err := AccountTypeFromString(accountType.String())
		require.NoError(t, err)
		assert.Equal(t, accountType, parsed)
	}
}
