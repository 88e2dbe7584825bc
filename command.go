package serialization

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DevRoss/nautilus-trader/model"
)

// Command discriminant tags. These are wire identifiers shared with peer
// implementations and must not change.
const (
	tagAccountInquiry    = "AccountInquiry"
	tagSubmitOrder       = "SubmitOrder"
	tagSubmitAtomicOrder = "SubmitAtomicOrder"
	tagCancelOrder       = "CancelOrder"
	tagModifyOrder       = "ModifyOrder"
)

// commandDecoders is the static tag dispatch table, built once and never
// mutated.
var commandDecoders = map[string]func(*fieldMap, model.CommandHeader) (model.Command, error){
	tagAccountInquiry:    decodeAccountInquiry,
	tagSubmitOrder:       decodeSubmitOrder,
	tagSubmitAtomicOrder: decodeSubmitAtomicOrder,
	tagCancelOrder:       decodeCancelOrder,
	tagModifyOrder:       decodeModifyOrder,
}

// MsgPackCommandSerializer encodes commands as tagged MsgPack envelopes.
// Order payloads are embedded as nested binary fields rather than merged
// into the command map, so order identity fields cannot collide with
// command identity fields.
type MsgPackCommandSerializer struct{}

// NewMsgPackCommandSerializer creates a command serializer.
func NewMsgPackCommandSerializer() *MsgPackCommandSerializer {
	return &MsgPackCommandSerializer{}
}

// Serialize encodes the given command.
func (s *MsgPackCommandSerializer) Serialize(command model.Command) ([]byte, error) {
	p := newPacker()
	switch cmd := command.(type) {
	case model.AccountInquiry:
		putEnvelope(p, tagAccountInquiry, cmd.ID, cmd.Timestamp)
		p.putString("AccountId", cmd.AccountID.String())
	case model.SubmitOrder:
		putEnvelope(p, tagSubmitOrder, cmd.ID, cmd.Timestamp)
		p.putString("TraderId", cmd.TraderID.String())
		p.putString("StrategyId", cmd.StrategyID.String())
		p.putString("AccountId", cmd.AccountID.String())
		p.putString("PositionId", string(cmd.PositionID))
		orderBytes, err := packOrder(cmd.Order)
		if err != nil {
			return nil, err
		}
		p.putBytes("Order", orderBytes)
	case model.SubmitAtomicOrder:
		putEnvelope(p, tagSubmitAtomicOrder, cmd.ID, cmd.Timestamp)
		p.putString("TraderId", cmd.TraderID.String())
		p.putString("StrategyId", cmd.StrategyID.String())
		p.putString("AccountId", cmd.AccountID.String())
		p.putString("PositionId", string(cmd.PositionID))
		if err := putAtomicOrder(p, cmd.AtomicOrder); err != nil {
			return nil, err
		}
	case model.CancelOrder:
		putEnvelope(p, tagCancelOrder, cmd.ID, cmd.Timestamp)
		p.putString("TraderId", cmd.TraderID.String())
		p.putString("StrategyId", cmd.StrategyID.String())
		p.putString("AccountId", cmd.AccountID.String())
		p.putString("OrderId", string(cmd.OrderID))
		p.putString("CancelReason", string(cmd.CancelReason))
	case model.ModifyOrder:
		putEnvelope(p, tagModifyOrder, cmd.ID, cmd.Timestamp)
		p.putString("TraderId", cmd.TraderID.String())
		p.putString("StrategyId", cmd.StrategyID.String())
		p.putString("AccountId", cmd.AccountID.String())
		p.putString("OrderId", string(cmd.OrderID))
		p.putString("ModifiedPrice", cmd.ModifiedPrice.String())
	default:
		return nil, fmt.Errorf("cannot serialize command type %T", command)
	}
	return p.bytes()
}

// Deserialize decodes a command payload, dispatching on its tag.
func (s *MsgPackCommandSerializer) Deserialize(data []byte) (model.Command, error) {
	f, err := decodeFieldMap(data)
	if err != nil {
		return nil, err
	}
	tag, err := f.str("Type")
	if err != nil {
		return nil, err
	}
	decode, ok := commandDecoders[tag]
	if !ok {
		return nil, UnknownVariantTagError{Tag: tag}
	}
	f.setVariant(tag)
	header, err := readEnvelope(f)
	if err != nil {
		return nil, err
	}
	return decode(f, header)
}

func putEnvelope(p *packer, tag string, id uuid.UUID, timestamp time.Time) {
	p.putString("Type", tag)
	p.putString("Id", id.String())
	p.putString("Timestamp", formatTimestamp(timestamp))
}

func readEnvelope(f *fieldMap) (model.CommandHeader, error) {
	id, err := f.guid("Id")
	if err != nil {
		return model.CommandHeader{}, err
	}
	timestamp, err := f.timestamp("Timestamp")
	if err != nil {
		return model.CommandHeader{}, err
	}
	return model.CommandHeader{ID: id, Timestamp: timestamp}, nil
}

// putAtomicOrder writes the three legs with explicit presence flags. A
// missing leg is not the same as a present-but-cancelled one upstream, so
// presence is never inferred from payload length.
func putAtomicOrder(p *packer, atomic model.AtomicOrder) error {
	entry, err := packOrder(atomic.Entry)
	if err != nil {
		return err
	}
	p.putBytes("Entry", entry)
	p.putBool("HasStopLoss", atomic.HasStopLoss())
	stopLoss := []byte{}
	if atomic.HasStopLoss() {
		if stopLoss, err = packOrder(*atomic.StopLoss); err != nil {
			return err
		}
	}
	p.putBytes("StopLoss", stopLoss)
	p.putBool("HasTakeProfit", atomic.HasTakeProfit())
	takeProfit := []byte{}
	if atomic.HasTakeProfit() {
		if takeProfit, err = packOrder(*atomic.TakeProfit); err != nil {
			return err
		}
	}
	p.putBytes("TakeProfit", takeProfit)
	return nil
}

func readAtomicOrder(f *fieldMap) (model.AtomicOrder, error) {
	entryBytes, err := f.bytesField("Entry")
	if err != nil {
		return model.AtomicOrder{}, err
	}
	entry, err := unpackOrder(entryBytes)
	if err != nil {
		return model.AtomicOrder{}, err
	}
	atomic := model.AtomicOrder{Entry: entry}

	hasStopLoss, err := f.boolField("HasStopLoss")
	if err != nil {
		return model.AtomicOrder{}, err
	}
	if hasStopLoss {
		stopLossBytes, err := f.bytesField("StopLoss")
		if err != nil {
			return model.AtomicOrder{}, err
		}
		stopLoss, err := unpackOrder(stopLossBytes)
		if err != nil {
			return model.AtomicOrder{}, err
		}
		atomic.StopLoss = &stopLoss
	}

	hasTakeProfit, err := f.boolField("HasTakeProfit")
	if err != nil {
		return model.AtomicOrder{}, err
	}
	if hasTakeProfit {
		takeProfitBytes, err := f.bytesField("TakeProfit")
		if err != nil {
			return model.AtomicOrder{}, err
		}
		takeProfit, err := unpackOrder(takeProfitBytes)
		if err != nil {
			return model.AtomicOrder{}, err
		}
		atomic.TakeProfit = &takeProfit
	}
	return atomic, nil
}

func decodeAccountInquiry(f *fieldMap, header model.CommandHeader) (model.Command, error) {
	accountID, err := f.accountID("AccountId")
	if err != nil {
		return nil, err
	}
	return model.AccountInquiry{CommandHeader: header, AccountID: accountID}, nil
}

func decodeSubmitOrder(f *fieldMap, header model.CommandHeader) (model.Command, error) {
	identity, err := readCommandIdentity(f)
	if err != nil {
		return nil, err
	}
	positionID, err := f.str("PositionId")
	if err != nil {
		return nil, err
	}
	orderBytes, err := f.bytesField("Order")
	if err != nil {
		return nil, err
	}
	order, err := unpackOrder(orderBytes)
	if err != nil {
		return nil, err
	}
	return model.SubmitOrder{
		CommandHeader: header,
		TraderID:      identity.trader,
		StrategyID:    identity.strategy,
		AccountID:     identity.account,
		PositionID:    model.PositionID(positionID),
		Order:         order,
	}, nil
}

func decodeSubmitAtomicOrder(f *fieldMap, header model.CommandHeader) (model.Command, error) {
	identity, err := readCommandIdentity(f)
	if err != nil {
		return nil, err
	}
	positionID, err := f.str("PositionId")
	if err != nil {
		return nil, err
	}
	atomic, err := readAtomicOrder(f)
	if err != nil {
		return nil, err
	}
	return model.SubmitAtomicOrder{
		CommandHeader: header,
		TraderID:      identity.trader,
		StrategyID:    identity.strategy,
		AccountID:     identity.account,
		PositionID:    model.PositionID(positionID),
		AtomicOrder:   atomic,
	}, nil
}

func decodeCancelOrder(f *fieldMap, header model.CommandHeader) (model.Command, error) {
	identity, err := readCommandIdentity(f)
	if err != nil {
		return nil, err
	}
	orderID, err := f.str("OrderId")
	if err != nil {
		return nil, err
	}
	reason, err := f.validString("CancelReason")
	if err != nil {
		return nil, err
	}
	return model.CancelOrder{
		CommandHeader: header,
		TraderID:      identity.trader,
		StrategyID:    identity.strategy,
		AccountID:     identity.account,
		OrderID:       model.OrderID(orderID),
		CancelReason:  reason,
	}, nil
}

func decodeModifyOrder(f *fieldMap, header model.CommandHeader) (model.Command, error) {
	identity, err := readCommandIdentity(f)
	if err != nil {
		return nil, err
	}
	orderID, err := f.str("OrderId")
	if err != nil {
		return nil, err
	}
	price, err := f.price("ModifiedPrice")
	if err != nil {
		return nil, err
	}
	return model.ModifyOrder{
		CommandHeader: header,
		TraderID:      identity.trader,
		StrategyID:    identity.strategy,
		AccountID:     identity.account,
		OrderID:       model.OrderID(orderID),
		ModifiedPrice: price,
	}, nil
}

type commandIdentity struct {
	trader   model.TraderID
	strategy model.StrategyID
	account  model.AccountID
}

func readCommandIdentity(f *fieldMap) (commandIdentity, error) {
	trader, err := f.traderID("TraderId")
	if err != nil {
		return commandIdentity{}, err
	}
	strategy, err := f.strategyID("StrategyId")
	if err != nil {
		return commandIdentity{}, err
	}
	account, err := f.accountID("AccountId")
	if err != nil {
		return commandIdentity{}, err
	}
	return commandIdentity{trader: trader, strategy: strategy, account: account}, nil
}
