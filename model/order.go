package model

import (
	"fmt"
	"time"
)

// Order is an immutable order entity. Price is present if and only if the
// order type requires one, and ExpireTime is present if and only if the
// time-in-force is GTD.
type Order struct {
	ID          OrderID
	Symbol      Symbol
	Label       Label
	Side        OrderSide
	Type        OrderType
	Quantity    Quantity
	Timestamp   time.Time
	Price       *Price
	TimeInForce TimeInForce
	ExpireTime  *time.Time
}

// NewOrder builds an order and checks its structural invariants.
func NewOrder(
	id OrderID,
	symbol Symbol,
	label Label,
	side OrderSide,
	orderType OrderType,
	quantity Quantity,
	timestamp time.Time,
	price *Price,
	timeInForce TimeInForce,
	expireTime *time.Time,
) (Order, error) {
	order := Order{
		ID:          id,
		Symbol:      symbol,
		Label:       label,
		Side:        side,
		Type:        orderType,
		Quantity:    quantity,
		Timestamp:   timestamp,
		Price:       price,
		TimeInForce: timeInForce,
		ExpireTime:  expireTime,
	}
	if err := order.Validate(); err != nil {
		return Order{}, err
	}
	return order, nil
}

// Validate checks the price and expire-time invariants.
func (o Order) Validate() error {
	if o.Type.RequiresPrice() && o.Price == nil {
		return fmt.Errorf("%s order %s has no price", o.Type, o.ID)
	}
	if !o.Type.RequiresPrice() && o.Price != nil {
		return fmt.Errorf("%s order %s cannot carry a price", o.Type, o.ID)
	}
	if o.TimeInForce == TIFGTD && o.ExpireTime == nil {
		return fmt.Errorf("GTD order %s has no expire time", o.ID)
	}
	if o.TimeInForce != TIFGTD && o.ExpireTime != nil {
		return fmt.Errorf("%s order %s cannot carry an expire time", o.TimeInForce, o.ID)
	}
	return nil
}

// AtomicOrder bundles an entry order with optional linked stop-loss and
// take-profit legs submitted as one unit. A nil leg was never created,
// which is not the same as a present-but-cancelled leg upstream.
type AtomicOrder struct {
	Entry      Order
	StopLoss   *Order
	TakeProfit *Order
}

// HasStopLoss reports whether a stop-loss leg is present.
func (a AtomicOrder) HasStopLoss() bool {
	return a.StopLoss != nil
}

// HasTakeProfit reports whether a take-profit leg is present.
func (a AtomicOrder) HasTakeProfit() bool {
	return a.TakeProfit != nil
}
