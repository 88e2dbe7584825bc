package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/DevRoss/nautilus-trader/model"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *Catalog
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) SetupTest() {
	suite.catalog = New()
}

func (suite *CatalogTestSuite) instrument(code, venue string) model.Instrument {
	return model.Instrument{
		Symbol:               model.NewSymbol(code, venue),
		BrokerSymbol:         code,
		QuoteCurrency:        model.USD,
		SecurityType:         model.SecurityTypeForex,
		TickPrecision:        5,
		TickSize:             decimal.RequireFromString("0.00001"),
		RoundLotSize:         1000,
		MinTradeSize:         1,
		MaxTradeSize:         50000000,
		RolloverInterestBuy:  decimal.RequireFromString("1.1"),
		RolloverInterestSell: decimal.RequireFromString("-1.1"),
		Timestamp:            time.Unix(0, 0).UTC(),
	}
}

func (suite *CatalogTestSuite) TestAddAndGet() {
	instrument := suite.instrument("AUDUSD", "FXCM")
	suite.NoError(suite.catalog.Add(instrument))

	got, err := suite.catalog.Get(instrument.Symbol)
	suite.NoError(err)
	suite.Equal(instrument, got)
	suite.Equal(1, suite.catalog.Len())
}

func (suite *CatalogTestSuite) TestGetUnknownSymbol() {
	_, err := suite.catalog.Get(model.NewSymbol("GBPUSD", "FXCM"))
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *CatalogTestSuite) TestIdenticalReAddIsNoOp() {
	instrument := suite.instrument("AUDUSD", "FXCM")
	suite.NoError(suite.catalog.Add(instrument))
	suite.NoError(suite.catalog.Add(instrument))
	suite.Equal(1, suite.catalog.Len())
}

func (suite *CatalogTestSuite) TestNumericallyEqualDecimalIsNotAConflict() {
	instrument := suite.instrument("AUDUSD", "FXCM")
	suite.NoError(suite.catalog.Add(instrument))

	rescaled := instrument
	rescaled.RolloverInterestBuy = decimal.RequireFromString("1.10")
	suite.NoError(suite.catalog.Add(rescaled))
	suite.Equal(1, suite.catalog.Len())
}

func (suite *CatalogTestSuite) TestConflictingReAddRejected() {
	instrument := suite.instrument("AUDUSD", "FXCM")
	suite.NoError(suite.catalog.Add(instrument))

	changed := instrument
	changed.TickPrecision = 3
	suite.ErrorIs(suite.catalog.Add(changed), ErrConflict)

	// The original definition survives.
	got, err := suite.catalog.Get(instrument.Symbol)
	suite.NoError(err)
	suite.Equal(int32(5), got.TickPrecision)
}

func (suite *CatalogTestSuite) TestVenueScanOrderedBySymbol() {
	for _, code := range []string{"GBPUSD", "AUDUSD", "EURUSD"} {
		suite.NoError(suite.catalog.Add(suite.instrument(code, "FXCM")))
	}
	suite.NoError(suite.catalog.Add(suite.instrument("AUDUSD", "SIM")))

	instruments := suite.catalog.Venue("FXCM")
	suite.Len(instruments, 3)
	suite.Equal("AUDUSD", instruments[0].Symbol.Code)
	suite.Equal("EURUSD", instruments[1].Symbol.Code)
	suite.Equal("GBPUSD", instruments[2].Symbol.Code)
}

func (suite *CatalogTestSuite) TestAllOrderedBySymbol() {
	suite.NoError(suite.catalog.Add(suite.instrument("EURUSD", "FXCM")))
	suite.NoError(suite.catalog.Add(suite.instrument("AUDUSD", "FXCM")))

	all := suite.catalog.All()
	suite.Len(all, 2)
	suite.Equal("AUDUSD.FXCM", all[0].Symbol.String())
	suite.Equal("EURUSD.FXCM", all[1].Symbol.String())
}
