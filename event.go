package serialization

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DevRoss/nautilus-trader/model"
)

// Event discriminant tags shared with peer implementations.
const (
	tagOrderInitialized     = "OrderInitialized"
	tagOrderInvalid         = "OrderInvalid"
	tagOrderDenied          = "OrderDenied"
	tagOrderSubmitted       = "OrderSubmitted"
	tagOrderAccepted        = "OrderAccepted"
	tagOrderRejected        = "OrderRejected"
	tagOrderWorking         = "OrderWorking"
	tagOrderCancelled       = "OrderCancelled"
	tagOrderCancelReject    = "OrderCancelReject"
	tagOrderModified        = "OrderModified"
	tagOrderExpired         = "OrderExpired"
	tagOrderPartiallyFilled = "OrderPartiallyFilled"
	tagOrderFilled          = "OrderFilled"
	tagAccountStateEvent    = "AccountStateEvent"
)

var eventDecoders = map[string]func(*fieldMap, model.EventHeader) (model.Event, error){
	tagOrderInitialized:     decodeOrderInitialized,
	tagOrderInvalid:         decodeOrderInvalid,
	tagOrderDenied:          decodeOrderDenied,
	tagOrderSubmitted:       decodeOrderSubmitted,
	tagOrderAccepted:        decodeOrderAccepted,
	tagOrderRejected:        decodeOrderRejected,
	tagOrderWorking:         decodeOrderWorking,
	tagOrderCancelled:       decodeOrderCancelled,
	tagOrderCancelReject:    decodeOrderCancelReject,
	tagOrderModified:        decodeOrderModified,
	tagOrderExpired:         decodeOrderExpired,
	tagOrderPartiallyFilled: decodeOrderPartiallyFilled,
	tagOrderFilled:          decodeOrderFilled,
	tagAccountStateEvent:    decodeAccountState,
}

// MsgPackEventSerializer encodes lifecycle and account events as tagged
// MsgPack envelopes.
type MsgPackEventSerializer struct{}

// NewMsgPackEventSerializer creates an event serializer.
func NewMsgPackEventSerializer() *MsgPackEventSerializer {
	return &MsgPackEventSerializer{}
}

// Serialize encodes the given event.
func (s *MsgPackEventSerializer) Serialize(event model.Event) ([]byte, error) {
	p := newPacker()
	switch e := event.(type) {
	case model.OrderInitialized:
		putEnvelope(p, tagOrderInitialized, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("Symbol", e.Symbol.String())
		label := sentinelNone
		if e.Label != "" {
			label = string(e.Label)
		}
		p.putString("Label", label)
		p.putString("OrderSide", e.Side.String())
		p.putString("OrderType", e.Type.String())
		p.putUint("Quantity", uint64(e.Quantity))
		if e.Price != nil {
			p.putString("Price", e.Price.String())
		}
		p.putString("TimeInForce", e.TimeInForce.String())
		p.putString("ExpireTime", formatOptionalTimestamp(e.ExpireTime))
	case model.OrderInvalid:
		putEnvelope(p, tagOrderInvalid, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("InvalidReason", string(e.InvalidReason))
	case model.OrderDenied:
		putEnvelope(p, tagOrderDenied, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("DeniedReason", string(e.DeniedReason))
	case model.OrderSubmitted:
		putEnvelope(p, tagOrderSubmitted, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("AccountId", e.AccountID.String())
		p.putString("SubmittedTime", formatTimestamp(e.SubmittedTime))
	case model.OrderAccepted:
		putEnvelope(p, tagOrderAccepted, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("AccountId", e.AccountID.String())
		p.putString("AcceptedTime", formatTimestamp(e.AcceptedTime))
	case model.OrderRejected:
		putEnvelope(p, tagOrderRejected, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("AccountId", e.AccountID.String())
		p.putString("RejectedTime", formatTimestamp(e.RejectedTime))
		p.putString("RejectedReason", string(e.RejectedReason))
	case model.OrderWorking:
		putEnvelope(p, tagOrderWorking, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("OrderIdBroker", string(e.OrderIDBroker))
		p.putString("AccountId", e.AccountID.String())
		p.putString("Symbol", e.Symbol.String())
		label := sentinelNone
		if e.Label != "" {
			label = string(e.Label)
		}
		p.putString("Label", label)
		p.putString("OrderSide", e.Side.String())
		p.putString("OrderType", e.Type.String())
		p.putUint("Quantity", uint64(e.Quantity))
		p.putString("Price", e.Price.String())
		p.putString("TimeInForce", e.TimeInForce.String())
		p.putString("ExpireTime", formatOptionalTimestamp(e.ExpireTime))
		p.putString("WorkingTime", formatTimestamp(e.WorkingTime))
	case model.OrderCancelled:
		putEnvelope(p, tagOrderCancelled, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("AccountId", e.AccountID.String())
		p.putString("CancelledTime", formatTimestamp(e.CancelledTime))
	case model.OrderCancelReject:
		putEnvelope(p, tagOrderCancelReject, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("AccountId", e.AccountID.String())
		p.putString("RejectedTime", formatTimestamp(e.RejectedTime))
		p.putString("RejectedResponseTo", string(e.RejectedResponseTo))
		p.putString("RejectedReason", string(e.RejectedReason))
	case model.OrderModified:
		putEnvelope(p, tagOrderModified, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("OrderIdBroker", string(e.OrderIDBroker))
		p.putString("AccountId", e.AccountID.String())
		p.putString("ModifiedPrice", e.ModifiedPrice.String())
		p.putString("ModifiedTime", formatTimestamp(e.ModifiedTime))
	case model.OrderExpired:
		putEnvelope(p, tagOrderExpired, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("AccountId", e.AccountID.String())
		p.putString("ExpiredTime", formatTimestamp(e.ExpiredTime))
	case model.OrderPartiallyFilled:
		putEnvelope(p, tagOrderPartiallyFilled, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("AccountId", e.AccountID.String())
		p.putString("ExecutionId", string(e.ExecutionID))
		p.putString("ExecutionTicket", string(e.ExecutionTicket))
		p.putString("Symbol", e.Symbol.String())
		p.putString("OrderSide", e.Side.String())
		p.putUint("FilledQuantity", uint64(e.FilledQuantity))
		p.putUint("LeavesQuantity", uint64(e.LeavesQuantity))
		p.putString("AveragePrice", e.AveragePrice.String())
		p.putString("ExecutionTime", formatTimestamp(e.ExecutionTime))
	case model.OrderFilled:
		putEnvelope(p, tagOrderFilled, e.ID, e.Timestamp)
		p.putString("OrderId", string(e.OrderID))
		p.putString("AccountId", e.AccountID.String())
		p.putString("ExecutionId", string(e.ExecutionID))
		p.putString("ExecutionTicket", string(e.ExecutionTicket))
		p.putString("Symbol", e.Symbol.String())
		p.putString("OrderSide", e.Side.String())
		p.putUint("FilledQuantity", uint64(e.FilledQuantity))
		p.putString("AveragePrice", e.AveragePrice.String())
		p.putString("ExecutionTime", formatTimestamp(e.ExecutionTime))
	case model.AccountStateEvent:
		putEnvelope(p, tagAccountStateEvent, e.ID, e.Timestamp)
		p.putString("AccountId", e.AccountID.String())
		p.putString("Currency", e.Currency.String())
		p.putString("CashBalance", e.CashBalance.String())
		p.putString("CashStartDay", e.CashStartDay.String())
		p.putString("CashActivityDay", e.CashActivityDay.String())
		p.putString("MarginUsedLiquidation", e.MarginUsedLiquidation.String())
		p.putString("MarginUsedMaintenance", e.MarginUsedMaintenance.String())
		p.putString("MarginRatio", e.MarginRatio.String())
		p.putString("MarginCallStatus", e.MarginCallStatus)
	default:
		return nil, fmt.Errorf("cannot serialize event type %T", event)
	}
	return p.bytes()
}

// Deserialize decodes an event payload, dispatching on its tag.
func (s *MsgPackEventSerializer) Deserialize(data []byte) (model.Event, error) {
	f, err := decodeFieldMap(data)
	if err != nil {
		return nil, err
	}
	tag, err := f.str("Type")
	if err != nil {
		return nil, err
	}
	decode, ok := eventDecoders[tag]
	if !ok {
		return nil, UnknownVariantTagError{Tag: tag}
	}
	f.setVariant(tag)
	id, err := f.guid("Id")
	if err != nil {
		return nil, err
	}
	timestamp, err := f.timestamp("Timestamp")
	if err != nil {
		return nil, err
	}
	return decode(f, model.EventHeader{ID: id, Timestamp: timestamp})
}

func decodeOrderInitialized(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, err := f.str("OrderId")
	if err != nil {
		return nil, err
	}
	symbol, err := f.symbol("Symbol")
	if err != nil {
		return nil, err
	}
	label, err := f.label("Label")
	if err != nil {
		return nil, err
	}
	side, err := f.orderSide("OrderSide")
	if err != nil {
		return nil, err
	}
	orderType, err := f.orderType("OrderType")
	if err != nil {
		return nil, err
	}
	quantity, err := f.quantity("Quantity")
	if err != nil {
		return nil, err
	}
	var price *model.Price
	if orderType.RequiresPrice() {
		price, err = f.optPrice("Price")
		if err != nil {
			return nil, err
		}
		if price == nil {
			return nil, f.missing("Price")
		}
	}
	timeInForce, err := f.timeInForce("TimeInForce")
	if err != nil {
		return nil, err
	}
	expireTime, err := f.optTimestamp("ExpireTime")
	if err != nil {
		return nil, err
	}
	if timeInForce == model.TIFGTD && expireTime == nil {
		return nil, f.missing("ExpireTime")
	}
	return model.OrderInitialized{
		EventHeader: header,
		OrderID:     model.OrderID(orderID),
		Symbol:      symbol,
		Label:       label,
		Side:        side,
		Type:        orderType,
		Quantity:    quantity,
		Price:       price,
		TimeInForce: timeInForce,
		ExpireTime:  expireTime,
	}, nil
}

func decodeOrderInvalid(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, err := f.str("OrderId")
	if err != nil {
		return nil, err
	}
	reason, err := f.validString("InvalidReason")
	if err != nil {
		return nil, err
	}
	return model.OrderInvalid{
		EventHeader:   header,
		OrderID:       model.OrderID(orderID),
		InvalidReason: reason,
	}, nil
}

func decodeOrderDenied(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, err := f.str("OrderId")
	if err != nil {
		return nil, err
	}
	reason, err := f.validString("DeniedReason")
	if err != nil {
		return nil, err
	}
	return model.OrderDenied{
		EventHeader:  header,
		OrderID:      model.OrderID(orderID),
		DeniedReason: reason,
	}, nil
}

func decodeOrderSubmitted(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, accountID, err := readOrderAccount(f)
	if err != nil {
		return nil, err
	}
	submittedTime, err := f.timestamp("SubmittedTime")
	if err != nil {
		return nil, err
	}
	return model.OrderSubmitted{
		EventHeader:   header,
		OrderID:       orderID,
		AccountID:     accountID,
		SubmittedTime: submittedTime,
	}, nil
}

func decodeOrderAccepted(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, accountID, err := readOrderAccount(f)
	if err != nil {
		return nil, err
	}
	acceptedTime, err := f.timestamp("AcceptedTime")
	if err != nil {
		return nil, err
	}
	return model.OrderAccepted{
		EventHeader:  header,
		OrderID:      orderID,
		AccountID:    accountID,
		AcceptedTime: acceptedTime,
	}, nil
}

func decodeOrderRejected(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, accountID, err := readOrderAccount(f)
	if err != nil {
		return nil, err
	}
	rejectedTime, err := f.timestamp("RejectedTime")
	if err != nil {
		return nil, err
	}
	reason, err := f.validString("RejectedReason")
	if err != nil {
		return nil, err
	}
	return model.OrderRejected{
		EventHeader:    header,
		OrderID:        orderID,
		AccountID:      accountID,
		RejectedTime:   rejectedTime,
		RejectedReason: reason,
	}, nil
}

func decodeOrderWorking(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, accountID, err := readOrderAccount(f)
	if err != nil {
		return nil, err
	}
	brokerID, err := f.str("OrderIdBroker")
	if err != nil {
		return nil, err
	}
	symbol, err := f.symbol("Symbol")
	if err != nil {
		return nil, err
	}
	label, err := f.label("Label")
	if err != nil {
		return nil, err
	}
	side, err := f.orderSide("OrderSide")
	if err != nil {
		return nil, err
	}
	orderType, err := f.orderType("OrderType")
	if err != nil {
		return nil, err
	}
	quantity, err := f.quantity("Quantity")
	if err != nil {
		return nil, err
	}
	price, err := f.price("Price")
	if err != nil {
		return nil, err
	}
	timeInForce, err := f.timeInForce("TimeInForce")
	if err != nil {
		return nil, err
	}
	// The venue reports the expire time independently of the
	// time-in-force, so a populated value is kept as-is. GTD still
	// requires one.
	expireTime, err := f.optTimestamp("ExpireTime")
	if err != nil {
		return nil, err
	}
	if timeInForce == model.TIFGTD && expireTime == nil {
		return nil, f.missing("ExpireTime")
	}
	workingTime, err := f.timestamp("WorkingTime")
	if err != nil {
		return nil, err
	}
	return model.OrderWorking{
		EventHeader:   header,
		OrderID:       orderID,
		OrderIDBroker: model.OrderIDBroker(brokerID),
		AccountID:     accountID,
		Symbol:        symbol,
		Label:         label,
		Side:          side,
		Type:          orderType,
		Quantity:      quantity,
		Price:         price,
		TimeInForce:   timeInForce,
		ExpireTime:    expireTime,
		WorkingTime:   workingTime,
	}, nil
}

func decodeOrderCancelled(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, accountID, err := readOrderAccount(f)
	if err != nil {
		return nil, err
	}
	cancelledTime, err := f.timestamp("CancelledTime")
	if err != nil {
		return nil, err
	}
	return model.OrderCancelled{
		EventHeader:   header,
		OrderID:       orderID,
		AccountID:     accountID,
		CancelledTime: cancelledTime,
	}, nil
}

func decodeOrderCancelReject(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, accountID, err := readOrderAccount(f)
	if err != nil {
		return nil, err
	}
	rejectedTime, err := f.timestamp("RejectedTime")
	if err != nil {
		return nil, err
	}
	responseTo, err := f.validString("RejectedResponseTo")
	if err != nil {
		return nil, err
	}
	reason, err := f.validString("RejectedReason")
	if err != nil {
		return nil, err
	}
	return model.OrderCancelReject{
		EventHeader:        header,
		OrderID:            orderID,
		AccountID:          accountID,
		RejectedTime:       rejectedTime,
		RejectedResponseTo: responseTo,
		RejectedReason:     reason,
	}, nil
}

func decodeOrderModified(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, accountID, err := readOrderAccount(f)
	if err != nil {
		return nil, err
	}
	brokerID, err := f.str("OrderIdBroker")
	if err != nil {
		return nil, err
	}
	price, err := f.price("ModifiedPrice")
	if err != nil {
		return nil, err
	}
	modifiedTime, err := f.timestamp("ModifiedTime")
	if err != nil {
		return nil, err
	}
	return model.OrderModified{
		EventHeader:   header,
		OrderID:       orderID,
		OrderIDBroker: model.OrderIDBroker(brokerID),
		AccountID:     accountID,
		ModifiedPrice: price,
		ModifiedTime:  modifiedTime,
	}, nil
}

func decodeOrderExpired(f *fieldMap, header model.EventHeader) (model.Event, error) {
	orderID, accountID, err := readOrderAccount(f)
	if err != nil {
		return nil, err
	}
	expiredTime, err := f.timestamp("ExpiredTime")
	if err != nil {
		return nil, err
	}
	return model.OrderExpired{
		EventHeader: header,
		OrderID:     orderID,
		AccountID:   accountID,
		ExpiredTime: expiredTime,
	}, nil
}

func decodeOrderPartiallyFilled(f *fieldMap, header model.EventHeader) (model.Event, error) {
	fill, err := readFill(f)
	if err != nil {
		return nil, err
	}
	// Leaves quantity is carried on the wire, never derived from the
	// filled quantity.
	leaves, err := f.quantity("LeavesQuantity")
	if err != nil {
		return nil, err
	}
	return model.OrderPartiallyFilled{
		EventHeader:     header,
		OrderID:         fill.orderID,
		AccountID:       fill.accountID,
		ExecutionID:     fill.executionID,
		ExecutionTicket: fill.executionTicket,
		Symbol:          fill.symbol,
		Side:            fill.side,
		FilledQuantity:  fill.filledQuantity,
		LeavesQuantity:  leaves,
		AveragePrice:    fill.averagePrice,
		ExecutionTime:   fill.executionTime,
	}, nil
}

func decodeOrderFilled(f *fieldMap, header model.EventHeader) (model.Event, error) {
	fill, err := readFill(f)
	if err != nil {
		return nil, err
	}
	return model.OrderFilled{
		EventHeader:     header,
		OrderID:         fill.orderID,
		AccountID:       fill.accountID,
		ExecutionID:     fill.executionID,
		ExecutionTicket: fill.executionTicket,
		Symbol:          fill.symbol,
		Side:            fill.side,
		FilledQuantity:  fill.filledQuantity,
		AveragePrice:    fill.averagePrice,
		ExecutionTime:   fill.executionTime,
	}, nil
}

func decodeAccountState(f *fieldMap, header model.EventHeader) (model.Event, error) {
	accountID, err := f.accountID("AccountId")
	if err != nil {
		return nil, err
	}
	currency, err := f.currency("Currency")
	if err != nil {
		return nil, err
	}
	event := model.AccountStateEvent{
		EventHeader: header,
		AccountID:   accountID,
		Currency:    currency,
	}
	for _, field := range []struct {
		key string
		dst *decimal.Decimal
	}{
		{"CashBalance", &event.CashBalance},
		{"CashStartDay", &event.CashStartDay},
		{"CashActivityDay", &event.CashActivityDay},
		{"MarginUsedLiquidation", &event.MarginUsedLiquidation},
		{"MarginUsedMaintenance", &event.MarginUsedMaintenance},
		{"MarginRatio", &event.MarginRatio},
	} {
		d, err := f.decimalField(field.key)
		if err != nil {
			return nil, err
		}
		*field.dst = d
	}
	// Venue free text, may legitimately be empty.
	status, err := f.str("MarginCallStatus")
	if err != nil {
		return nil, err
	}
	event.MarginCallStatus = status
	return event, nil
}

type fill struct {
	orderID         model.OrderID
	accountID       model.AccountID
	executionID     model.ExecutionID
	executionTicket model.ExecutionTicket
	symbol          model.Symbol
	side            model.OrderSide
	filledQuantity  model.Quantity
	averagePrice    model.Price
	executionTime   time.Time
}

func readFill(f *fieldMap) (fill, error) {
	orderID, accountID, err := readOrderAccount(f)
	if err != nil {
		return fill{}, err
	}
	executionID, err := f.str("ExecutionId")
	if err != nil {
		return fill{}, err
	}
	ticket, err := f.str("ExecutionTicket")
	if err != nil {
		return fill{}, err
	}
	symbol, err := f.symbol("Symbol")
	if err != nil {
		return fill{}, err
	}
	side, err := f.orderSide("OrderSide")
	if err != nil {
		return fill{}, err
	}
	quantity, err := f.quantity("FilledQuantity")
	if err != nil {
		return fill{}, err
	}
	price, err := f.price("AveragePrice")
	if err != nil {
		return fill{}, err
	}
	executionTime, err := f.timestamp("ExecutionTime")
	if err != nil {
		return fill{}, err
	}
	return fill{
		orderID:         orderID,
		accountID:       accountID,
		executionID:     model.ExecutionID(executionID),
		executionTicket: model.ExecutionTicket(ticket),
		symbol:          symbol,
		side:            side,
		filledQuantity:  quantity,
		averagePrice:    price,
		executionTime:   executionTime,
	}, nil
}

func readOrderAccount(f *fieldMap) (model.OrderID, model.AccountID, error) {
	orderID, err := f.str("OrderId")
	if err != nil {
		return "", model.AccountID{}, err
	}
	accountID, err := f.accountID("AccountId")
	if err != nil {
		return "", model.AccountID{}, err
	}
	return model.OrderID(orderID), accountID, nil
}
