package serialization

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/DevRoss/nautilus-trader/model"
)

type InstrumentSerializerTestSuite struct {
	suite.Suite
	serializer *BSONInstrumentSerializer
}

func TestInstrumentSerializerTestSuite(t *testing.T) {
	suite.Run(t, &InstrumentSerializerTestSuite{
		serializer: NewBSONInstrumentSerializer(),
	})
}

func (s *InstrumentSerializerTestSuite) audusd() model.Instrument {
	return model.Instrument{
		Symbol:                audusdFXCM(),
		BrokerSymbol:          "AUD/USD",
		QuoteCurrency:         model.USD,
		SecurityType:          model.SecurityTypeForex,
		TickPrecision:         5,
		TickSize:              mustDecimal(s.T(), "0.00001"),
		RoundLotSize:          1000,
		MinStopDistanceEntry:  0,
		MinStopDistance:       0,
		MinLimitDistanceEntry: 1,
		MinLimitDistance:      1,
		MinTradeSize:          1,
		MaxTradeSize:          50000000,
		RolloverInterestBuy:   mustDecimal(s.T(), "1.1"),
		RolloverInterestSell:  mustDecimal(s.T(), "-1.1"),
		Timestamp:             unixEpoch(),
	}
}

func (s *InstrumentSerializerTestSuite) TestRoundTrip() {
	instrument := s.audusd()

	data, err := s.serializer.Serialize(instrument)
	s.NoError(err)

	decoded, err := s.serializer.Deserialize(data)
	s.NoError(err)
	s.Equal(instrument, decoded)
	s.Equal(model.InstrumentID("AUDUSD.FXCM"), decoded.ID())
}

func (s *InstrumentSerializerTestSuite) TestDecimalScalePreserved() {
	instrument := s.audusd()
	instrument.TickSize = mustDecimal(s.T(), "0.00100")

	data, err := s.serializer.Serialize(instrument)
	s.NoError(err)

	decoded, err := s.serializer.Deserialize(data)
	s.NoError(err)
	s.Equal("0.00100", decoded.TickSize.String())
}

func (s *InstrumentSerializerTestSuite) TestDocumentShape() {
	data, err := s.serializer.Serialize(s.audusd())
	s.NoError(err)

	var doc bson.M
	s.Require().NoError(bson.Unmarshal(data, &doc))
	s.Equal("AUDUSD.FXCM", doc["symbol"])
	s.Equal("AUD/USD", doc["broker_symbol"])
	s.Equal("USD", doc["quote_currency"])
	s.Equal("FOREX", doc["security_type"])
	s.Equal(int32(5), doc["tick_precision"])
	s.Equal("0.00001", doc["tick_size"])
	s.Equal(int64(1000), doc["round_lot_size"])
	s.Equal(int32(0), doc["min_stop_distance_entry"])
	s.Equal("1.1", doc["rollover_interest_buy"])
	s.Equal("-1.1", doc["rollover_interest_sell"])
	s.Equal("1970-01-01T00:00:00.000Z", doc["timestamp"])
}

func (s *InstrumentSerializerTestSuite) TestMissingFieldRejected() {
	data, err := s.serializer.Serialize(s.audusd())
	s.NoError(err)

	var doc bson.M
	s.Require().NoError(bson.Unmarshal(data, &doc))
	delete(doc, "tick_size")
	mutated, err := bson.Marshal(doc)
	s.Require().NoError(err)

	_, err = s.serializer.Deserialize(mutated)
	var missing MissingRequiredFieldError
	s.ErrorAs(err, &missing)
	s.Equal("tick_size", missing.Field)
}

func (s *InstrumentSerializerTestSuite) TestMalformedDecimalRejected() {
	data, err := s.serializer.Serialize(s.audusd())
	s.NoError(err)

	var doc bson.M
	s.Require().NoError(bson.Unmarshal(data, &doc))
	doc["tick_size"] = "not-a-number"
	mutated, err := bson.Marshal(doc)
	s.Require().NoError(err)

	_, err = s.serializer.Deserialize(mutated)
	var malformed MalformedValueError
	s.ErrorAs(err, &malformed)
	s.Equal("tick_size", malformed.Field)
}

func (s *InstrumentSerializerTestSuite) TestNegativeTradeSizeRejected() {
	data, err := s.serializer.Serialize(s.audusd())
	s.NoError(err)

	var doc bson.M
	s.Require().NoError(bson.Unmarshal(data, &doc))
	doc["min_trade_size"] = int64(-1)
	mutated, err := bson.Marshal(doc)
	s.Require().NoError(err)

	_, err = s.serializer.Deserialize(mutated)
	var negative model.NegativeQuantityError
	s.ErrorAs(err, &negative)
}

func (s *InstrumentSerializerTestSuite) TestGarbageDocumentRejected() {
	_, err := s.serializer.Deserialize([]byte{0x01, 0x02, 0x03})
	s.ErrorIs(err, ErrMalformedFrame)
}
