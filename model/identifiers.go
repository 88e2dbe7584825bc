package model

import (
	"fmt"
	"strings"
)

// OrderID is the system-assigned identifier of an order.
type OrderID string

// OrderIDBroker is the broker-assigned identifier of a working order,
// distinct from the system OrderID.
type OrderIDBroker string

// PositionID identifies a position on the trader's account.
type PositionID string

// ExecutionID identifies a single execution at the venue.
type ExecutionID string

// ExecutionTicket is the venue's ticket for an execution.
type ExecutionTicket string

// InstrumentID identifies an instrument definition. It equals the string
// form of the instrument's symbol.
type InstrumentID string

// TraderID identifies a trader as NAME-TAG.
type TraderID struct {
	Name string
	Tag  string
}

// NewTraderID builds a trader identifier from its name and order tag.
func NewTraderID(name, tag string) TraderID {
	return TraderID{Name: name, Tag: tag}
}

func (id TraderID) String() string {
	return id.Name + "-" + id.Tag
}

// TraderIDFromString parses the NAME-TAG wire form of a trader identifier.
func TraderIDFromString(value string) (TraderID, error) {
	name, tag, ok := splitNameTag(value)
	if !ok {
		return TraderID{}, MalformedIdentifierError{Kind: "TraderId", Value: value}
	}
	return TraderID{Name: name, Tag: tag}, nil
}

// StrategyID identifies a strategy as NAME-TAG.
type StrategyID struct {
	Name string
	Tag  string
}

// NewStrategyID builds a strategy identifier from its name and order tag.
func NewStrategyID(name, tag string) StrategyID {
	return StrategyID{Name: name, Tag: tag}
}

func (id StrategyID) String() string {
	return id.Name + "-" + id.Tag
}

// StrategyIDFromString parses the NAME-TAG wire form of a strategy identifier.
func StrategyIDFromString(value string) (StrategyID, error) {
	name, tag, ok := splitNameTag(value)
	if !ok {
		return StrategyID{}, MalformedIdentifierError{Kind: "StrategyId", Value: value}
	}
	return StrategyID{Name: name, Tag: tag}, nil
}

func splitNameTag(value string) (string, string, bool) {
	i := strings.LastIndex(value, "-")
	if i <= 0 || i == len(value)-1 {
		return "", "", false
	}
	return value[:i], value[i+1:], true
}

// AccountID identifies a brokerage account as BROKER-NUMBER-TYPE.
type AccountID struct {
	Broker string
	Number string
	Type   AccountType
}

// NewAccountID builds an account identifier from its parts.
func NewAccountID(broker, number string, accountType AccountType) AccountID {
	return AccountID{Broker: broker, Number: number, Type: accountType}
}

func (id AccountID) String() string {
	return fmt.Sprintf("%s-%s-%s", id.Broker, id.Number, id.Type)
}

// AccountIDFromString parses the BROKER-NUMBER-TYPE wire form of an
// account identifier.
func AccountIDFromString(value string) (AccountID, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return AccountID{}, MalformedIdentifierError{Kind: "AccountId", Value: value}
	}
	accountType, err := AccountTypeFromString(parts[2])
	if err != nil {
		return AccountID{}, MalformedIdentifierError{Kind: "AccountId", Value: value}
	}
	return AccountID{Broker: parts[0], Number: parts[1], Type: accountType}, nil
}
