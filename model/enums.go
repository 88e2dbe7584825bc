package model

// OrderSide is the market side of an order.
type OrderSide uint8

const (
	SideBuy OrderSide = iota + 1
	SideSell
)

func (s OrderSide) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNDEFINED"
	}
}

// OrderSideFromString parses the wire name of an order side.
func OrderSideFromString(value string) (OrderSide, error) {
	switch value {
	case "BUY":
		return SideBuy, nil
	case "SELL":
		return SideSell, nil
	default:
		return 0, UnknownEnumValueError{Enum: "OrderSide", Value: value}
	}
}

// OrderType identifies the execution semantics of an order.
type OrderType uint8

const (
	OrderTypeMarket OrderType = iota + 1
	OrderTypeLimit
	OrderTypeStopMarket
	OrderTypeStopLimit
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeStopMarket:
		return "STOP_MARKET"
	case OrderTypeStopLimit:
		return "STOP_LIMIT"
	default:
		return "UNDEFINED"
	}
}

// RequiresPrice reports whether orders of this type carry a price.
func (t OrderType) RequiresPrice() bool {
	return t == OrderTypeLimit || t == OrderTypeStopMarket || t == OrderTypeStopLimit
}

// OrderTypeFromString parses the wire name of an order type.
func OrderTypeFromString(value string) (OrderType, error) {
	switch value {
	case "MARKET":
		return OrderTypeMarket, nil
	case "LIMIT":
		return OrderTypeLimit, nil
	case "STOP_MARKET":
		return OrderTypeStopMarket, nil
	case "STOP_LIMIT":
		return OrderTypeStopLimit, nil
	default:
		return 0, UnknownEnumValueError{Enum: "OrderType", Value: value}
	}
}

// TimeInForce constrains how long an order remains active.
type TimeInForce uint8

const (
	TIFDay TimeInForce = iota + 1
	TIFGTC
	TIFIOC
	TIFFOC
	TIFGTD
)

func (t TimeInForce) String() string {
	switch t {
	case TIFDay:
		return "DAY"
	case TIFGTC:
		return "GTC"
	case TIFIOC:
		return "IOC"
	case TIFFOC:
		return "FOC"
	case TIFGTD:
		return "GTD"
	default:
		return "UNDEFINED"
	}
}

// TimeInForceFromString parses the wire name of a time-in-force.
func TimeInForceFromString(value string) (TimeInForce, error) {
	switch value {
	case "DAY":
		return TIFDay, nil
	case "GTC":
		return TIFGTC, nil
	case "IOC":
		return TIFIOC, nil
	case "FOC":
		return TIFFOC, nil
	case "GTD":
		return TIFGTD, nil
	default:
		return 0, UnknownEnumValueError{Enum: "TimeInForce", Value: value}
	}
}

// Currency is the ISO 4217 code of a quote or account currency.
type Currency uint8

const (
	AUD Currency = iota + 1
	CAD
	CHF
	CNY
	EUR
	GBP
	HKD
	JPY
	NZD
	SGD
	USD
)

var currencyNames = map[Currency]string{
	AUD: "AUD",
	CAD: "CAD",
	CHF: "CHF",
	CNY: "CNY",
	EUR: "EUR",
	GBP: "GBP",
	HKD: "HKD",
	JPY: "JPY",
	NZD: "NZD",
	SGD: "SGD",
	USD: "USD",
}

func (c Currency) String() string {
	if name, ok := currencyNames[c]; ok {
		return name
	}
	return "UNDEFINED"
}

// CurrencyFromString parses the wire name of a currency.
func CurrencyFromString(value string) (Currency, error) {
	for c, name := range currencyNames {
		if name == value {
			return c, nil
		}
	}
	return 0, UnknownEnumValueError{Enum: "Currency", Value: value}
}

// SecurityType classifies the product behind an instrument.
type SecurityType uint8

const (
	SecurityTypeForex SecurityType = iota + 1
	SecurityTypeBond
	SecurityTypeEquity
	SecurityTypeFuture
	SecurityTypeCFD
	SecurityTypeOption
)

func (t SecurityType) String() string {
	switch t {
	case SecurityTypeForex:
		return "FOREX"
	case SecurityTypeBond:
		return "BOND"
	case SecurityTypeEquity:
		return "EQUITY"
	case SecurityTypeFuture:
		return "FUTURE"
	case SecurityTypeCFD:
		return "CFD"
	case SecurityTypeOption:
		return "OPTION"
	default:
		return "UNDEFINED"
	}
}

// SecurityTypeFromString parses the wire name of a security type.
func SecurityTypeFromString(value string) (SecurityType, error) {
	switch value {
	case "FOREX":
		return SecurityTypeForex, nil
	case "BOND":
		return SecurityTypeBond, nil
	case "EQUITY":
		return SecurityTypeEquity, nil
	case "FUTURE":
		return SecurityTypeFuture, nil
	case "CFD":
		return SecurityTypeCFD, nil
	case "OPTION":
		return SecurityTypeOption, nil
	default:
		return 0, UnknownEnumValueError{Enum: "SecurityType", Value: value}
	}
}

// AccountType distinguishes live accounts from practice ones.
type AccountType uint8

const (
	AccountTypeSimulated AccountType = iota + 1
	AccountTypeDemo
	AccountTypeReal
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeSimulated:
		return "SIMULATED"
	case AccountTypeDemo:
		return "DEMO"
	case AccountTypeReal:
		return "REAL"
	default:
		return "UNDEFINED"
	}
}

// AccountTypeFromString parses the wire name of an account type.
func AccountTypeFromString(value string) (AccountType, error) {
	switch value {
	case "SIMULATED":
		return AccountTypeSimulated, nil
	case "DEMO":
		return AccountTypeDemo, nil
	case "REAL":
		return AccountTypeReal, nil
	default:
		return 0, UnknownEnumValueError{Enum: "AccountType", Value: value}
	}
}
