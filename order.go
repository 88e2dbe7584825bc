package serialization

import (
	"fmt"

	"github.com/DevRoss/nautilus-trader/model"
)

// MsgPackOrderSerializer encodes orders as flat MsgPack field-maps. A
// MARKET order never emits a Price field; LIMIT and STOP variants always
// do. ExpireTime is populated only for GTD orders.
type MsgPackOrderSerializer struct{}

// NewMsgPackOrderSerializer creates an order serializer.
func NewMsgPackOrderSerializer() *MsgPackOrderSerializer {
	return &MsgPackOrderSerializer{}
}

// Serialize encodes the given order.
func (s *MsgPackOrderSerializer) Serialize(order model.Order) ([]byte, error) {
	return packOrder(order)
}

// Deserialize decodes an order payload.
func (s *MsgPackOrderSerializer) Deserialize(data []byte) (model.Order, error) {
	return unpackOrder(data)
}

func packOrder(order model.Order) ([]byte, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	p := newPacker()
	p.putString("OrderId", string(order.ID))
	p.putString("Symbol", order.Symbol.String())
	label := sentinelNone
	if order.Label != "" {
		label = string(order.Label)
	}
	p.putString("Label", label)
	p.putString("OrderSide", order.Side.String())
	p.putString("OrderType", order.Type.String())
	p.putUint("Quantity", uint64(order.Quantity))
	p.putString("Timestamp", formatTimestamp(order.Timestamp))
	if order.Price != nil {
		p.putString("Price", order.Price.String())
	}
	p.putString("TimeInForce", order.TimeInForce.String())
	p.putString("ExpireTime", formatOptionalTimestamp(order.ExpireTime))
	return p.bytes()
}

func unpackOrder(data []byte) (model.Order, error) {
	f, err := decodeFieldMap(data)
	if err != nil {
		return model.Order{}, err
	}
	// The order type decides which optional fields are mandatory, so it
	// is read before anything else.
	orderType, err := f.orderType("OrderType")
	if err != nil {
		return model.Order{}, err
	}
	f.setVariant(orderType.String())

	id, err := f.str("OrderId")
	if err != nil {
		return model.Order{}, err
	}
	symbol, err := f.symbol("Symbol")
	if err != nil {
		return model.Order{}, err
	}
	label, err := f.label("Label")
	if err != nil {
		return model.Order{}, err
	}
	side, err := f.orderSide("OrderSide")
	if err != nil {
		return model.Order{}, err
	}
	quantity, err := f.quantity("Quantity")
	if err != nil {
		return model.Order{}, err
	}
	timestamp, err := f.timestamp("Timestamp")
	if err != nil {
		return model.Order{}, err
	}

	var price *model.Price
	if orderType.RequiresPrice() {
		p, err := f.optPrice("Price")
		if err != nil {
			return model.Order{}, err
		}
		if p == nil {
			return model.Order{}, f.missing("Price")
		}
		price = p
	}

	timeInForce, err := f.timeInForce("TimeInForce")
	if err != nil {
		return model.Order{}, err
	}
	expireTime, err := f.optTimestamp("ExpireTime")
	if err != nil {
		return model.Order{}, err
	}
	if timeInForce == model.TIFGTD && expireTime == nil {
		return model.Order{}, f.missing("ExpireTime")
	}
	// An expire time outside GTD breaks the order invariant; dropping
	// the value here would hide the disagreement from the producer.
	if timeInForce != model.TIFGTD && expireTime != nil {
		return model.Order{}, MalformedValueError{
			Field: "ExpireTime",
			Value: formatOptionalTimestamp(expireTime),
			Err:   fmt.Errorf("unexpected for %s time in force", timeInForce),
		}
	}

	return model.Order{
		ID:          model.OrderID(id),
		Symbol:      symbol,
		Label:       label,
		Side:        side,
		Type:        orderType,
		Quantity:    quantity,
		Timestamp:   timestamp,
		Price:       price,
		TimeInForce: timeInForce,
		ExpireTime:  expireTime,
	}, nil
}
