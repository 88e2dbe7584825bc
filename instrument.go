package serialization

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/DevRoss/nautilus-trader/model"
)

// instrumentVariant names the document kind in decode errors.
const instrumentVariant = "Instrument"

// BSONInstrumentSerializer encodes instrument definitions as BSON
// documents. Instruments are attribute-heavy and read by external tooling
// that expects a document shape, so they use a different framing from the
// tagged MsgPack envelopes. Decimal fields follow the same
// decimal-string rule as every other codec.
type BSONInstrumentSerializer struct{}

// NewBSONInstrumentSerializer creates an instrument serializer.
func NewBSONInstrumentSerializer() *BSONInstrumentSerializer {
	return &BSONInstrumentSerializer{}
}

// Serialize encodes the given instrument.
func (s *BSONInstrumentSerializer) Serialize(instrument model.Instrument) ([]byte, error) {
	doc := bson.D{
		{Key: "symbol", Value: instrument.Symbol.String()},
		{Key: "broker_symbol", Value: instrument.BrokerSymbol},
		{Key: "quote_currency", Value: instrument.QuoteCurrency.String()},
		{Key: "security_type", Value: instrument.SecurityType.String()},
		{Key: "tick_precision", Value: instrument.TickPrecision},
		{Key: "tick_size", Value: instrument.TickSize.String()},
		{Key: "round_lot_size", Value: int64(instrument.RoundLotSize)},
		{Key: "min_stop_distance_entry", Value: instrument.MinStopDistanceEntry},
		{Key: "min_stop_distance", Value: instrument.MinStopDistance},
		{Key: "min_limit_distance_entry", Value: instrument.MinLimitDistanceEntry},
		{Key: "min_limit_distance", Value: instrument.MinLimitDistance},
		{Key: "min_trade_size", Value: int64(instrument.MinTradeSize)},
		{Key: "max_trade_size", Value: int64(instrument.MaxTradeSize)},
		{Key: "rollover_interest_buy", Value: instrument.RolloverInterestBuy.String()},
		{Key: "rollover_interest_sell", Value: instrument.RolloverInterestSell.String()},
		{Key: "timestamp", Value: formatTimestamp(instrument.Timestamp)},
	}
	return bson.Marshal(doc)
}

// Deserialize decodes an instrument document.
func (s *BSONInstrumentSerializer) Deserialize(data []byte) (model.Instrument, error) {
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return model.Instrument{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}

	symbolStr, err := docString(doc, "symbol")
	if err != nil {
		return model.Instrument{}, err
	}
	symbol, err := model.SymbolFromString(symbolStr)
	if err != nil {
		return model.Instrument{}, err
	}
	brokerSymbol, err := docString(doc, "broker_symbol")
	if err != nil {
		return model.Instrument{}, err
	}
	currencyStr, err := docString(doc, "quote_currency")
	if err != nil {
		return model.Instrument{}, err
	}
	quoteCurrency, err := model.CurrencyFromString(currencyStr)
	if err != nil {
		return model.Instrument{}, err
	}
	securityStr, err := docString(doc, "security_type")
	if err != nil {
		return model.Instrument{}, err
	}
	securityType, err := model.SecurityTypeFromString(securityStr)
	if err != nil {
		return model.Instrument{}, err
	}

	instrument := model.Instrument{
		Symbol:        symbol,
		BrokerSymbol:  brokerSymbol,
		QuoteCurrency: quoteCurrency,
		SecurityType:  securityType,
	}

	// Integer fields round-trip exactly; zero is a value, never the
	// absent sentinel.
	for _, field := range []struct {
		key string
		dst *int32
	}{
		{"tick_precision", &instrument.TickPrecision},
		{"min_stop_distance_entry", &instrument.MinStopDistanceEntry},
		{"min_stop_distance", &instrument.MinStopDistance},
		{"min_limit_distance_entry", &instrument.MinLimitDistanceEntry},
		{"min_limit_distance", &instrument.MinLimitDistance},
	} {
		v, err := docInt64(doc, field.key)
		if err != nil {
			return model.Instrument{}, err
		}
		*field.dst = int32(v)
	}
	for _, field := range []struct {
		key string
		dst *model.Quantity
	}{
		{"round_lot_size", &instrument.RoundLotSize},
		{"min_trade_size", &instrument.MinTradeSize},
		{"max_trade_size", &instrument.MaxTradeSize},
	} {
		v, err := docInt64(doc, field.key)
		if err != nil {
			return model.Instrument{}, err
		}
		quantity, err := model.QuantityFromInt64(v)
		if err != nil {
			return model.Instrument{}, err
		}
		*field.dst = quantity
	}

	tickSize, err := docDecimal(doc, "tick_size")
	if err != nil {
		return model.Instrument{}, err
	}
	instrument.TickSize = tickSize
	rolloverBuy, err := docDecimal(doc, "rollover_interest_buy")
	if err != nil {
		return model.Instrument{}, err
	}
	instrument.RolloverInterestBuy = rolloverBuy
	rolloverSell, err := docDecimal(doc, "rollover_interest_sell")
	if err != nil {
		return model.Instrument{}, err
	}
	instrument.RolloverInterestSell = rolloverSell

	timestampStr, err := docString(doc, "timestamp")
	if err != nil {
		return model.Instrument{}, err
	}
	timestamp, err := parseTimestamp(timestampStr)
	if err != nil {
		return model.Instrument{}, MalformedValueError{
			Field: "timestamp",
			Value: timestampStr,
			Err:   err,
		}
	}
	instrument.Timestamp = timestamp
	return instrument, nil
}

func docString(doc bson.M, key string) (string, error) {
	raw, ok := doc[key]
	if !ok {
		return "", MissingRequiredFieldError{Field: key, Variant: instrumentVariant}
	}
	s, ok := raw.(string)
	if !ok {
		return "", MalformedValueError{
			Field: key,
			Value: fmt.Sprint(raw),
			Err:   fmt.Errorf("expected string, got %T", raw),
		}
	}
	return s, nil
}

func docInt64(doc bson.M, key string) (int64, error) {
	raw, ok := doc[key]
	if !ok {
		return 0, MissingRequiredFieldError{Field: key, Variant: instrumentVariant}
	}
	switch v := raw.(type) {
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, MalformedValueError{
			Field: key,
			Value: fmt.Sprint(raw),
			Err:   fmt.Errorf("expected integer, got %T", raw),
		}
	}
}

func docDecimal(doc bson.M, key string) (decimal.Decimal, error) {
	s, err := docString(doc, key)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, MalformedValueError{Field: key, Value: s, Err: err}
	}
	return d, nil
}
