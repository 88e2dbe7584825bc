package model

import (
	"time"

	"github.com/google/uuid"
)

// Command is a trader-initiated instruction to the system. Every command
// carries its own correlation id and timestamp, distinct from any business
// timestamp inside its payload.
type Command interface {
	CommandID() uuid.UUID
	CommandTimestamp() time.Time
	isCommand()
}

// CommandHeader holds the envelope fields shared by all commands.
type CommandHeader struct {
	ID        uuid.UUID
	Timestamp time.Time
}

func (h CommandHeader) CommandID() uuid.UUID { return h.ID }

func (h CommandHeader) CommandTimestamp() time.Time { return h.Timestamp }

func (h CommandHeader) isCommand() {}

// AccountInquiry requests the current state of an account.
type AccountInquiry struct {
	CommandHeader
	AccountID AccountID
}

// SubmitOrder submits a single order for execution.
type SubmitOrder struct {
	CommandHeader
	TraderID   TraderID
	StrategyID StrategyID
	AccountID  AccountID
	PositionID PositionID
	Order      Order
}

// SubmitAtomicOrder submits an atomic order bundle for execution.
type SubmitAtomicOrder struct {
	CommandHeader
	TraderID    TraderID
	StrategyID  StrategyID
	AccountID   AccountID
	PositionID  PositionID
	AtomicOrder AtomicOrder
}

// CancelOrder requests cancellation of a working order.
type CancelOrder struct {
	CommandHeader
	TraderID     TraderID
	StrategyID   StrategyID
	AccountID    AccountID
	OrderID      OrderID
	CancelReason ValidString
}

// ModifyOrder requests a price modification of a working order.
type ModifyOrder struct {
	CommandHeader
	TraderID      TraderID
	StrategyID    StrategyID
	AccountID     AccountID
	OrderID       OrderID
	ModifiedPrice Price
}
