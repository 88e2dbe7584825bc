// Package catalog stores decoded instrument definitions. Instruments are
// created once and read many times, so the catalog rejects conflicting
// re-definitions instead of updating in place.
package catalog

import (
	"errors"
	"sync"

	"github.com/huandu/skiplist"

	"github.com/DevRoss/nautilus-trader/model"
)

var (
	ErrConflict = errors.New("instrument already defined with different attributes")
	ErrNotFound = errors.New("instrument not found")
)

// Catalog is an instrument store ordered by symbol. It is safe for
// concurrent use; reads take a shared lock.
type Catalog struct {
	mu   sync.RWMutex
	list *skiplist.SkipList
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		list: skiplist.New(skiplist.String),
	}
}

// Add registers an instrument definition. Re-adding an identical
// definition is a no-op; a conflicting definition for the same symbol is
// rejected.
func (c *Catalog) Add(instrument model.Instrument) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := instrument.Symbol.String()
	if el := c.list.Get(key); el != nil {
		existing, _ := el.Value.(model.Instrument)
		if equalInstruments(existing, instrument) {
			return nil
		}
		logger.Warn("conflicting instrument definition rejected", "symbol", key)
		return ErrConflict
	}
	c.list.Set(key, instrument)
	return nil
}

// Get returns the instrument for a symbol.
func (c *Catalog) Get(symbol model.Symbol) (model.Instrument, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	el := c.list.Get(symbol.String())
	if el == nil {
		return model.Instrument{}, ErrNotFound
	}
	instrument, _ := el.Value.(model.Instrument)
	return instrument, nil
}

// Venue returns all instruments for a venue, ordered by symbol.
func (c *Catalog) Venue(venue string) []model.Instrument {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []model.Instrument
	for el := c.list.Front(); el != nil; el = el.Next() {
		instrument, _ := el.Value.(model.Instrument)
		if instrument.Symbol.Venue == venue {
			result = append(result, instrument)
		}
	}
	return result
}

// All returns every instrument, ordered by symbol.
func (c *Catalog) All() []model.Instrument {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]model.Instrument, 0, c.list.Len())
	for el := c.list.Front(); el != nil; el = el.Next() {
		instrument, _ := el.Value.(model.Instrument)
		result = append(result, instrument)
	}
	return result
}

// Len returns the number of instruments in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.list.Len()
}

// equalInstruments compares definitions by value. Decimal fields compare
// numerically, so re-adding "1.10" over "1.1" is not a conflict.
func equalInstruments(a, b model.Instrument) bool {
	return a.Symbol == b.Symbol &&
		a.BrokerSymbol == b.BrokerSymbol &&
		a.QuoteCurrency == b.QuoteCurrency &&
		a.SecurityType == b.SecurityType &&
		a.TickPrecision == b.TickPrecision &&
		a.TickSize.Equal(b.TickSize) &&
		a.RoundLotSize == b.RoundLotSize &&
		a.MinStopDistanceEntry == b.MinStopDistanceEntry &&
		a.MinStopDistance == b.MinStopDistance &&
		a.MinLimitDistanceEntry == b.MinLimitDistanceEntry &&
		a.MinLimitDistance == b.MinLimitDistance &&
		a.MinTradeSize == b.MinTradeSize &&
		a.MaxTradeSize == b.MaxTradeSize &&
		a.RolloverInterestBuy.Equal(b.RolloverInterestBuy) &&
		a.RolloverInterestSell.Equal(b.RolloverInterestSell) &&
		a.Timestamp.Equal(b.Timestamp)
}
