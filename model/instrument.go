package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Instrument is a static venue/product definition: created once, read many,
// immutable once serialized.
type Instrument struct {
	Symbol                Symbol
	BrokerSymbol          string
	QuoteCurrency         Currency
	SecurityType          SecurityType
	TickPrecision         int32
	TickSize              decimal.Decimal
	RoundLotSize          Quantity
	MinStopDistanceEntry  int32
	MinStopDistance       int32
	MinLimitDistanceEntry int32
	MinLimitDistance      int32
	MinTradeSize          Quantity
	MaxTradeSize          Quantity
	RolloverInterestBuy   decimal.Decimal
	RolloverInterestSell  decimal.Decimal
	Timestamp             time.Time
}

// ID is the instrument's identifier, derived from its symbol.
func (i Instrument) ID() InstrumentID {
	return InstrumentID(i.Symbol.String())
}
