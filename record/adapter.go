package record

import (
	"encoding/json"
	"fmt"
	"math"
)

// FromAny converts a Go scalar into a typed Value.
//
// This exists as an adapter layer for decoded JSON and other untyped input.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("record: invalid number %q: %w", x.String(), err)
		}
		return Float(f), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint(x)
	case fmt.Stringer:
		return String(x.String()), nil
	default:
		return Value{}, fmt.Errorf("record: unsupported value type %T", v)
	}
}

func fromUint(x uint64) (Value, error) {
	if x > math.MaxInt64 {
		// Avoid silently wrapping large values.
		return Value{}, fmt.Errorf("record: uint64 out of range: %d", x)
	}
	return Int(int64(x)), nil
}

// RecordFromAny converts an untyped map into a Record.
func RecordFromAny(m map[string]any) (Record, error) {
	r := make(Record, len(m))
	for k, v := range m {
		vv, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		r[k] = vv
	}
	return r, nil
}

// RecordsFromAny converts a slice of untyped maps into Records.
func RecordsFromAny(rows []map[string]any) ([]Record, error) {
	out := make([]Record, len(rows))
	for i, row := range rows {
		r, err := RecordFromAny(row)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// MustRecord is like RecordFromAny but panics on error.
// It is intended for fixtures and examples.
func MustRecord(m map[string]any) Record {
	r, err := RecordFromAny(m)
	if err != nil {
		panic(err)
	}
	return r
}
