package record

import (
	"encoding/json"
	"math"
	"strconv"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindNull represents a null or missing value.
	KindNull Kind = iota
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a typed scalar cell value.
//
// The zero Value is Null.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    unique.Handle[string]
	B    bool
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value. Strings are interned.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// IsEmpty reports whether v is null or the empty string.
func (v Value) IsEmpty() bool {
	return v.Kind == KindNull || (v.Kind == KindString && v.s.Value() == "")
}

// IsNumber reports whether v holds an int or a float.
func (v Value) IsNumber() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the numeric value of an int or float Value.
func (v Value) AsFloat64() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.I64), true
	case KindFloat:
		return v.F64, true
	default:
		return 0, false
	}
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// Text returns the canonical textual representation of v.
//
// Integral floats render without a fraction so that Float(2) prints the same
// as Int(2).
func (v Value) Text() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		if v.F64 == math.Trunc(v.F64) && math.Abs(v.F64) < 1e15 {
			return strconv.FormatInt(int64(v.F64), 10)
		}
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case KindString:
		return v.s.Value()
	case KindBool:
		return strconv.FormatBool(v.B)
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (v Value) String() string { return v.Text() }

// Equal reports whether a and b have the same textual form.
// Null equals only Null.
func Equal(a, b Value) bool {
	if a.Kind == KindNull || b.Kind == KindNull {
		return a.Kind == b.Kind
	}
	if a.Kind == KindString && b.Kind == KindString {
		return a.s == b.s
	}
	return a.Text() == b.Text()
}

// MarshalJSON encodes v as a plain JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindInt:
		return json.Marshal(v.I64)
	case KindFloat:
		if math.IsNaN(v.F64) || math.IsInf(v.F64, 0) {
			return json.Marshal(v.Text())
		}
		return json.Marshal(v.F64)
	case KindString:
		return json.Marshal(v.s.Value())
	case KindBool:
		return json.Marshal(v.B)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a plain JSON scalar into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	vv, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = vv
	return nil
}
