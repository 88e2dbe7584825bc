package serialization

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/DevRoss/nautilus-trader/model"
)

// fieldMap is a decoded MsgPack map. Lookup is by key only, so payloads
// from producers that order keys differently or use different container
// framings decode identically. Absent keys, explicit nils and the NONE
// sentinel are interchangeable for every optional accessor.
type fieldMap struct {
	variant string
	fields  map[string]any
}

// decodeFieldMap reads a whole MsgPack map from data.
func decodeFieldMap(data []byte) (*fieldMap, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	fields := make(map[string]any, n)
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		value, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		fields[key] = value
	}
	return &fieldMap{fields: fields}, nil
}

// setVariant records the discriminant for error context in later lookups.
func (f *fieldMap) setVariant(variant string) {
	f.variant = variant
}

func (f *fieldMap) missing(key string) error {
	return MissingRequiredFieldError{Field: key, Variant: f.variant}
}

// str returns a required string field.
func (f *fieldMap) str(key string) (string, error) {
	raw, ok := f.fields[key]
	if !ok {
		return "", f.missing(key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", MalformedValueError{
			Field: key,
			Value: fmt.Sprint(raw),
			Err:   fmt.Errorf("expected string, got %T", raw),
		}
	}
	return s, nil
}

// optString returns an optional string field. Absence, an explicit nil
// and the NONE sentinel all report not-present.
func (f *fieldMap) optString(key string) (string, bool, error) {
	raw, ok := f.fields[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, MalformedValueError{
			Field: key,
			Value: fmt.Sprint(raw),
			Err:   fmt.Errorf("expected string, got %T", raw),
		}
	}
	if s == sentinelNone {
		return "", false, nil
	}
	return s, true, nil
}

// timestamp returns a required canonical-format timestamp field.
func (f *fieldMap) timestamp(key string) (time.Time, error) {
	s, err := f.str(key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return time.Time{}, MalformedValueError{Field: key, Value: s, Err: err}
	}
	return t, nil
}

// optTimestamp returns an optional timestamp field, nil when absent or
// set to the sentinel.
func (f *fieldMap) optTimestamp(key string) (*time.Time, error) {
	s, present, err := f.optString(key)
	if err != nil || !present {
		return nil, err
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return nil, MalformedValueError{Field: key, Value: s, Err: err}
	}
	return &t, nil
}

// quantity returns a required non-negative integer field.
func (f *fieldMap) quantity(key string) (model.Quantity, error) {
	raw, ok := f.fields[key]
	if !ok {
		return 0, f.missing(key)
	}
	switch v := raw.(type) {
	case int64:
		return model.QuantityFromInt64(v)
	case uint64:
		return model.Quantity(v), nil
	default:
		return 0, MalformedValueError{
			Field: key,
			Value: fmt.Sprint(raw),
			Err:   fmt.Errorf("expected integer, got %T", raw),
		}
	}
}

// price returns a required decimal-string field, preserving its scale.
func (f *fieldMap) price(key string) (model.Price, error) {
	s, err := f.str(key)
	if err != nil {
		return model.Price{}, err
	}
	p, err := model.PriceFromString(s)
	if err != nil {
		return model.Price{}, MalformedValueError{Field: key, Value: s, Err: err}
	}
	return p, nil
}

// optPrice returns an optional decimal-string field.
func (f *fieldMap) optPrice(key string) (*model.Price, error) {
	s, present, err := f.optString(key)
	if err != nil || !present {
		return nil, err
	}
	p, err := model.PriceFromString(s)
	if err != nil {
		return nil, MalformedValueError{Field: key, Value: s, Err: err}
	}
	return &p, nil
}

// decimalField returns a required decimal-string field.
func (f *fieldMap) decimalField(key string) (decimal.Decimal, error) {
	s, err := f.str(key)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, MalformedValueError{Field: key, Value: s, Err: err}
	}
	return d, nil
}

// guid returns a required canonical GUID string field.
func (f *fieldMap) guid(key string) (uuid.UUID, error) {
	s, err := f.str(key)
	if err != nil {
		return uuid.UUID{}, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, MalformedValueError{Field: key, Value: s, Err: err}
	}
	return id, nil
}

// bytesField returns a required binary field. Producers that frame bytes
// as str are accepted.
func (f *fieldMap) bytesField(key string) ([]byte, error) {
	raw, ok := f.fields[key]
	if !ok {
		return nil, f.missing(key)
	}
	switch v := raw.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, MalformedValueError{
			Field: key,
			Value: fmt.Sprint(raw),
			Err:   fmt.Errorf("expected bytes, got %T", raw),
		}
	}
}

// boolField returns an optional bool field, defaulting to false when
// absent or nil.
func (f *fieldMap) boolField(key string) (bool, error) {
	raw, ok := f.fields[key]
	if !ok || raw == nil {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, MalformedValueError{
			Field: key,
			Value: fmt.Sprint(raw),
			Err:   fmt.Errorf("expected bool, got %T", raw),
		}
	}
	return b, nil
}

// stringMap returns a required string-to-string map field, passed through
// verbatim.
func (f *fieldMap) stringMap(key string) (map[string]string, error) {
	raw, ok := f.fields[key]
	if !ok {
		return nil, f.missing(key)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, MalformedValueError{
			Field: key,
			Value: fmt.Sprint(raw),
			Err:   fmt.Errorf("expected map, got %T", raw),
		}
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, MalformedValueError{
				Field: key + "." + k,
				Value: fmt.Sprint(v),
				Err:   fmt.Errorf("expected string, got %T", v),
			}
		}
		out[k] = s
	}
	return out, nil
}

// Identifier and enum accessors. Parse failures surface the typed model
// errors unchanged, so callers can tell which enum or identifier failed.

func (f *fieldMap) orderSide(key string) (model.OrderSide, error) {
	s, err := f.str(key)
	if err != nil {
		return 0, err
	}
	return model.OrderSideFromString(s)
}

func (f *fieldMap) orderType(key string) (model.OrderType, error) {
	s, err := f.str(key)
	if err != nil {
		return 0, err
	}
	return model.OrderTypeFromString(s)
}

func (f *fieldMap) timeInForce(key string) (model.TimeInForce, error) {
	s, err := f.str(key)
	if err != nil {
		return 0, err
	}
	return model.TimeInForceFromString(s)
}

func (f *fieldMap) currency(key string) (model.Currency, error) {
	s, err := f.str(key)
	if err != nil {
		return 0, err
	}
	return model.CurrencyFromString(s)
}

func (f *fieldMap) symbol(key string) (model.Symbol, error) {
	s, err := f.str(key)
	if err != nil {
		return model.Symbol{}, err
	}
	return model.SymbolFromString(s)
}

func (f *fieldMap) traderID(key string) (model.TraderID, error) {
	s, err := f.str(key)
	if err != nil {
		return model.TraderID{}, err
	}
	return model.TraderIDFromString(s)
}

func (f *fieldMap) strategyID(key string) (model.StrategyID, error) {
	s, err := f.str(key)
	if err != nil {
		return model.StrategyID{}, err
	}
	return model.StrategyIDFromString(s)
}

func (f *fieldMap) accountID(key string) (model.AccountID, error) {
	s, err := f.str(key)
	if err != nil {
		return model.AccountID{}, err
	}
	return model.AccountIDFromString(s)
}

func (f *fieldMap) validString(key string) (model.ValidString, error) {
	s, err := f.str(key)
	if err != nil {
		return "", err
	}
	v, err := model.NewValidString(s)
	if err != nil {
		return "", MalformedValueError{Field: key, Value: s, Err: err}
	}
	return v, nil
}

// label returns an optional label field, empty when absent or sentinel.
func (f *fieldMap) label(key string) (model.Label, error) {
	s, present, err := f.optString(key)
	if err != nil || !present {
		return "", err
	}
	return model.Label(s), nil
}
