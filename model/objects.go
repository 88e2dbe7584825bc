package model

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Symbol is a venue-qualified instrument code, rendered as CODE.VENUE.
type Symbol struct {
	Code  string
	Venue string
}

// NewSymbol builds a symbol from its code and venue.
func NewSymbol(code, venue string) Symbol {
	return Symbol{Code: code, Venue: venue}
}

func (s Symbol) String() string {
	return s.Code + "." + s.Venue
}

// SymbolFromString parses the CODE.VENUE wire form of a symbol.
func SymbolFromString(value string) (Symbol, error) {
	i := strings.LastIndex(value, ".")
	if i <= 0 || i == len(value)-1 {
		return Symbol{}, MalformedIdentifierError{Kind: "Symbol", Value: value}
	}
	return Symbol{Code: value[:i], Venue: value[i+1:]}, nil
}

// Price is an order or execution price. The decimal scale parsed from the
// wire is retained, so "1.00000" re-encodes with five decimal places.
type Price struct {
	decimal.Decimal
}

// NewPrice wraps an exact decimal as a price.
func NewPrice(value decimal.Decimal) Price {
	return Price{Decimal: value}
}

// PriceFromString parses a decimal price string, preserving its scale.
func PriceFromString(value string) (Price, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, err
	}
	return Price{Decimal: d}, nil
}

// Precision is the number of decimal places carried by the price.
func (p Price) Precision() int32 {
	return -p.Exponent()
}

// Quantity is a non-negative order lot size.
type Quantity uint64

// QuantityFromInt64 validates a wire integer as a quantity.
func QuantityFromInt64(value int64) (Quantity, error) {
	if value < 0 {
		return 0, NegativeQuantityError{Value: value}
	}
	return Quantity(value), nil
}

// Label is an optional human-readable order label. The zero value means
// no label was given.
type Label string

// ValidString is a non-empty printable string used for open-ended reason
// and response vocabularies.
type ValidString string

// NewValidString validates reason text at construction.
func NewValidString(value string) (ValidString, error) {
	if value == "" {
		return "", MalformedIdentifierError{Kind: "ValidString", Value: value}
	}
	for _, r := range value {
		if !unicode.IsPrint(r) {
			return "", MalformedIdentifierError{Kind: "ValidString", Value: value}
		}
	}
	return ValidString(value), nil
}
