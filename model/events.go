package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is a system-emitted notification about order or account lifecycle.
type Event interface {
	EventID() uuid.UUID
	EventTimestamp() time.Time
	isEvent()
}

// EventHeader holds the envelope fields shared by all events.
type EventHeader struct {
	ID        uuid.UUID
	Timestamp time.Time
}

func (h EventHeader) EventID() uuid.UUID { return h.ID }

func (h EventHeader) EventTimestamp() time.Time { return h.Timestamp }

func (h EventHeader) isEvent() {}

// OrderInitialized notifies that an order was created locally.
type OrderInitialized struct {
	EventHeader
	OrderID     OrderID
	Symbol      Symbol
	Label       Label
	Side        OrderSide
	Type        OrderType
	Quantity    Quantity
	Price       *Price
	TimeInForce TimeInForce
	ExpireTime  *time.Time
}

// OrderInvalid notifies that an order failed local validation.
type OrderInvalid struct {
	EventHeader
	OrderID       OrderID
	InvalidReason ValidString
}

// OrderDenied notifies that an order was denied by pre-trade risk.
type OrderDenied struct {
	EventHeader
	OrderID      OrderID
	DeniedReason ValidString
}

// OrderSubmitted notifies that an order was sent to the broker.
type OrderSubmitted struct {
	EventHeader
	OrderID       OrderID
	AccountID     AccountID
	SubmittedTime time.Time
}

// OrderAccepted notifies that the broker accepted an order.
type OrderAccepted struct {
	EventHeader
	OrderID      OrderID
	AccountID    AccountID
	AcceptedTime time.Time
}

// OrderRejected notifies that the broker rejected an order. The reason is
// venue-specific free text, validated but otherwise opaque.
type OrderRejected struct {
	EventHeader
	OrderID        OrderID
	AccountID      AccountID
	RejectedTime   time.Time
	RejectedReason ValidString
}

// OrderWorking notifies that an order is live on the venue's book.
type OrderWorking struct {
	EventHeader
	OrderID       OrderID
	OrderIDBroker OrderIDBroker
	AccountID     AccountID
	Symbol        Symbol
	Label         Label
	Side          OrderSide
	Type          OrderType
	Quantity      Quantity
	Price         Price
	TimeInForce   TimeInForce
	ExpireTime    *time.Time
	WorkingTime   time.Time
}

// OrderCancelled notifies that a working order was cancelled.
type OrderCancelled struct {
	EventHeader
	OrderID       OrderID
	AccountID     AccountID
	CancelledTime time.Time
}

// OrderCancelReject notifies that a cancel request was rejected.
type OrderCancelReject struct {
	EventHeader
	OrderID            OrderID
	AccountID          AccountID
	RejectedTime       time.Time
	RejectedResponseTo ValidString
	RejectedReason     ValidString
}

// OrderModified notifies that a working order's price was modified.
type OrderModified struct {
	EventHeader
	OrderID       OrderID
	OrderIDBroker OrderIDBroker
	AccountID     AccountID
	ModifiedPrice Price
	ModifiedTime  time.Time
}

// OrderExpired notifies that a GTD order expired at the venue.
type OrderExpired struct {
	EventHeader
	OrderID     OrderID
	AccountID   AccountID
	ExpiredTime time.Time
}

// OrderPartiallyFilled notifies a partial execution. FilledQuantity and
// LeavesQuantity are both carried on the wire; neither is derived from
// the other.
type OrderPartiallyFilled struct {
	EventHeader
	OrderID         OrderID
	AccountID       AccountID
	ExecutionID     ExecutionID
	ExecutionTicket ExecutionTicket
	Symbol          Symbol
	Side            OrderSide
	FilledQuantity  Quantity
	LeavesQuantity  Quantity
	AveragePrice    Price
	ExecutionTime   time.Time
}

// OrderFilled notifies a complete execution.
type OrderFilled struct {
	EventHeader
	OrderID         OrderID
	AccountID       AccountID
	ExecutionID     ExecutionID
	ExecutionTicket ExecutionTicket
	Symbol          Symbol
	Side            OrderSide
	FilledQuantity  Quantity
	AveragePrice    Price
	ExecutionTime   time.Time
}

// AccountStateEvent carries an account's cash and margin figures. It is the
// only event without an order id. MarginCallStatus is venue free text and
// may be empty.
type AccountStateEvent struct {
	EventHeader
	AccountID             AccountID
	Currency              Currency
	CashBalance           decimal.Decimal
	CashStartDay          decimal.Decimal
	CashActivityDay       decimal.Decimal
	MarginUsedLiquidation decimal.Decimal
	MarginUsedMaintenance decimal.Decimal
	MarginRatio           decimal.Decimal
	MarginCallStatus      string
}
