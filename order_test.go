package serialization

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/DevRoss/nautilus-trader/model"
)

type OrderSerializerTestSuite struct {
	suite.Suite
	serializer *MsgPackOrderSerializer
}

func TestOrderSerializerTestSuite(t *testing.T) {
	suite.Run(t, &OrderSerializerTestSuite{serializer: NewMsgPackOrderSerializer()})
}

func unixEpoch() time.Time {
	return time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
}

func audusdFXCM() model.Symbol {
	return model.NewSymbol("AUDUSD", "FXCM")
}

func mustPrice(t *testing.T, value string) *model.Price {
	t.Helper()
	p, err := model.PriceFromString(value)
	if err != nil {
		t.Fatalf("bad price fixture %q: %v", value, err)
	}
	return &p
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// rawMap decodes a payload into a plain map for field-presence checks
// and for building mutated payloads.
func rawMap(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	return m
}

// mutatePayload re-frames a payload after applying fn to its field map.
// The re-framed map has arbitrary key order, which decoders must accept.
func mutatePayload(t *testing.T, data []byte, fn func(map[string]any)) []byte {
	t.Helper()
	m := rawMap(t, data)
	fn(m)
	out, err := msgpack.Marshal(m)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return out
}

func (s *OrderSerializerTestSuite) marketOrder() model.Order {
	return model.Order{
		ID:          "O-123456",
		Symbol:      audusdFXCM(),
		Label:       "U1_E",
		Side:        model.SideBuy,
		Type:        model.OrderTypeMarket,
		Quantity:    100000,
		Timestamp:   unixEpoch(),
		TimeInForce: model.TIFDay,
	}
}

func (s *OrderSerializerTestSuite) limitOrder() model.Order {
	return model.Order{
		ID:          "O-123456",
		Symbol:      audusdFXCM(),
		Label:       "S1_SL",
		Side:        model.SideBuy,
		Type:        model.OrderTypeLimit,
		Quantity:    100000,
		Timestamp:   unixEpoch(),
		Price:       mustPrice(s.T(), "1.00000"),
		TimeInForce: model.TIFDay,
	}
}

func (s *OrderSerializerTestSuite) TestMarketOrderRoundTrip() {
	order := s.marketOrder()

	data, err := s.serializer.Serialize(order)
	s.NoError(err)

	decoded, err := s.serializer.Deserialize(data)
	s.NoError(err)
	s.Equal(order, decoded)
}

func (s *OrderSerializerTestSuite) TestMarketOrderOmitsPrice() {
	data, err := s.serializer.Serialize(s.marketOrder())
	s.NoError(err)

	fields := rawMap(s.T(), data)
	_, present := fields["Price"]
	s.False(present)
}

func (s *OrderSerializerTestSuite) TestLimitOrderRoundTrip() {
	order := s.limitOrder()

	data, err := s.serializer.Serialize(order)
	s.NoError(err)

	decoded, err := s.serializer.Deserialize(data)
	s.NoError(err)
	s.Equal(order, decoded)
}

func (s *OrderSerializerTestSuite) TestLimitOrderWithExpireTimeRoundTrip() {
	order := s.limitOrder()
	order.Label = ""
	order.TimeInForce = model.TIFGTD
	order.ExpireTime = timePtr(unixEpoch().Add(time.Hour))

	data, err := s.serializer.Serialize(order)
	s.NoError(err)

	decoded, err := s.serializer.Deserialize(data)
	s.NoError(err)
	s.Equal(order, decoded)
}

func (s *OrderSerializerTestSuite) TestStopLimitOrderRoundTrip() {
	order := s.limitOrder()
	order.Type = model.OrderTypeStopLimit
	order.Price = mustPrice(s.T(), "1.00000")

	data, err := s.serializer.Serialize(order)
	s.NoError(err)

	decoded, err := s.serializer.Deserialize(data)
	s.NoError(err)
	s.Equal(order, decoded)
}

func (s *OrderSerializerTestSuite) TestNonGTDOrderEmitsExpireSentinel() {
	data, err := s.serializer.Serialize(s.limitOrder())
	s.NoError(err)

	fields := rawMap(s.T(), data)
	s.Equal("NONE", fields["ExpireTime"])
}

func (s *OrderSerializerTestSuite) TestTrailingZerosPreservedThroughRoundTrip() {
	order := s.limitOrder()

	data, err := s.serializer.Serialize(order)
	s.NoError(err)

	decoded, err := s.serializer.Deserialize(data)
	s.NoError(err)
	s.Equal("1.00000", decoded.Price.String())
	s.Equal(int32(5), decoded.Price.Precision())
}

func (s *OrderSerializerTestSuite) TestMinimalScaleAlsoPreserved() {
	order := s.limitOrder()
	order.Price = mustPrice(s.T(), "1")

	data, err := s.serializer.Serialize(order)
	s.NoError(err)

	decoded, err := s.serializer.Deserialize(data)
	s.NoError(err)
	s.Equal("1", decoded.Price.String())
	s.Equal(int32(0), decoded.Price.Precision())
}

func (s *OrderSerializerTestSuite) TestLabelAbsenceEqualsSentinel() {
	order := s.marketOrder()
	order.Label = ""

	data, err := s.serializer.Serialize(order)
	s.NoError(err)
	withSentinel, err := s.serializer.Deserialize(data)
	s.NoError(err)

	withoutKey, err := s.serializer.Deserialize(mutatePayload(s.T(), data, func(m map[string]any) {
		delete(m, "Label")
	}))
	s.NoError(err)
	s.Equal(withSentinel, withoutKey)
}

func (s *OrderSerializerTestSuite) TestNilLabelEqualsSentinel() {
	order := s.marketOrder()
	order.Label = ""

	data, err := s.serializer.Serialize(order)
	s.NoError(err)
	withSentinel, err := s.serializer.Deserialize(data)
	s.NoError(err)

	// An explicit nil value reads the same as absence or the sentinel.
	withNil, err := s.serializer.Deserialize(mutatePayload(s.T(), data, func(m map[string]any) {
		m["Label"] = nil
	}))
	s.NoError(err)
	s.Equal(withSentinel, withNil)
}

func (s *OrderSerializerTestSuite) TestNilExpireTimeEqualsSentinel() {
	data, err := s.serializer.Serialize(s.limitOrder())
	s.NoError(err)

	decoded, err := s.serializer.Deserialize(mutatePayload(s.T(), data, func(m map[string]any) {
		m["ExpireTime"] = nil
	}))
	s.NoError(err)
	s.Nil(decoded.ExpireTime)
}

func (s *OrderSerializerTestSuite) TestDeserializeMissingExpireTimeForGTD() {
	order := s.limitOrder()
	order.TimeInForce = model.TIFGTD
	order.ExpireTime = timePtr(unixEpoch().Add(time.Hour))

	data, err := s.serializer.Serialize(order)
	s.NoError(err)

	_, err = s.serializer.Deserialize(mutatePayload(s.T(), data, func(m map[string]any) {
		m["ExpireTime"] = "NONE"
	}))
	var missing MissingRequiredFieldError
	s.ErrorAs(err, &missing)
	s.Equal("ExpireTime", missing.Field)
}

func (s *OrderSerializerTestSuite) TestDeserializeRejectsExpireTimeOutsideGTD() {
	data, err := s.serializer.Serialize(s.limitOrder())
	s.NoError(err)

	_, err = s.serializer.Deserialize(mutatePayload(s.T(), data, func(m map[string]any) {
		m["ExpireTime"] = "1970-01-01T01:00:00.000Z"
	}))
	var malformed MalformedValueError
	s.ErrorAs(err, &malformed)
	s.Equal("ExpireTime", malformed.Field)
}

func (s *OrderSerializerTestSuite) TestSerializeRejectsLimitOrderWithoutPrice() {
	order := s.limitOrder()
	order.Price = nil

	_, err := s.serializer.Serialize(order)
	s.Error(err)
}

func (s *OrderSerializerTestSuite) TestDeserializeMissingPriceForLimit() {
	data, err := s.serializer.Serialize(s.limitOrder())
	s.NoError(err)

	_, err = s.serializer.Deserialize(mutatePayload(s.T(), data, func(m map[string]any) {
		delete(m, "Price")
	}))
	var missing MissingRequiredFieldError
	s.ErrorAs(err, &missing)
	s.Equal("Price", missing.Field)
	s.Equal("LIMIT", missing.Variant)
}

func (s *OrderSerializerTestSuite) TestDeserializeNegativeQuantity() {
	data, err := s.serializer.Serialize(s.marketOrder())
	s.NoError(err)

	_, err = s.serializer.Deserialize(mutatePayload(s.T(), data, func(m map[string]any) {
		m["Quantity"] = -5
	}))
	var negative model.NegativeQuantityError
	s.ErrorAs(err, &negative)
	s.Equal(int64(-5), negative.Value)
}

func (s *OrderSerializerTestSuite) TestDeserializeUnknownOrderSide() {
	data, err := s.serializer.Serialize(s.marketOrder())
	s.NoError(err)

	_, err = s.serializer.Deserialize(mutatePayload(s.T(), data, func(m map[string]any) {
		m["OrderSide"] = "UPWARD"
	}))
	var unknown model.UnknownEnumValueError
	s.ErrorAs(err, &unknown)
	s.Equal("OrderSide", unknown.Enum)
	s.Equal("UPWARD", unknown.Value)
}

func (s *OrderSerializerTestSuite) TestDeserializeMalformedTimestamp() {
	data, err := s.serializer.Serialize(s.marketOrder())
	s.NoError(err)

	_, err = s.serializer.Deserialize(mutatePayload(s.T(), data, func(m map[string]any) {
		m["Timestamp"] = "1970-01-01 00:00:00"
	}))
	var malformed MalformedValueError
	s.ErrorAs(err, &malformed)
	s.Equal("Timestamp", malformed.Field)
}

func (s *OrderSerializerTestSuite) TestDeserializeGarbageFrame() {
	_, err := s.serializer.Deserialize([]byte{0x01, 0x02, 0x03})
	s.True(errors.Is(err, ErrMalformedFrame))
}
