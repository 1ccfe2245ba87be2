// Package sorter orders records by a single field.
//
// Ordering is total for every pair of Values:
//
//   - Kinds are ranked first: Null < number < bool < string. A missing field
//     reads as Null.
//   - Numbers compare numerically; ints and floats compare exactly, and NaN
//     sorts before every other number.
//   - Booleans compare false < true.
//   - Strings compare by ordinal (byte-wise) order. Locale-aware collation is
//     not applied.
//
// Sorting is stable: records with equal keys keep their relative order in
// both directions, which keeps pagination reproducible.
package sorter

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hupe1980/tabview/record"
)

// Direction is the sort direction.
type Direction uint8

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first.
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "asc", "ascending":
		*d = Ascending
	case "desc", "descending":
		*d = Descending
	default:
		return fmt.Errorf("sorter: invalid direction %q", text)
	}
	return nil
}

// Key selects the sort field and direction. An empty Field means no sort.
type Key struct {
	Field     string    `json:"field,omitempty"`
	Direction Direction `json:"direction"`
}

// Active reports whether k selects a field.
func (k Key) Active() bool {
	return k.Field != ""
}

// Toggle applies a header click on field.
//
// Selecting the active field flips the direction; selecting any other field
// makes it active in ascending order.
func (k Key) Toggle(field string) Key {
	if k.Field == field && field != "" {
		return Key{Field: field, Direction: k.Direction.Flip()}
	}
	return Key{Field: field, Direction: Ascending}
}

// Comparator compares two values of one field and returns -1, 0 or 1.
type Comparator func(a, b record.Value) int

// CompareValues is the default total order over Values.
func CompareValues(a, b record.Value) int {
	if ra, rb := kindRank(a), kindRank(b); ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch a.Kind {
	case record.KindNull:
		return 0
	case record.KindInt, record.KindFloat:
		return compareNumbers(a, b)
	case record.KindBool:
		switch {
		case a.B == b.B:
			return 0
		case !a.B:
			return -1
		default:
			return 1
		}
	default:
		return strings.Compare(a.Text(), b.Text())
	}
}

func kindRank(v record.Value) int {
	switch v.Kind {
	case record.KindNull:
		return 0
	case record.KindInt, record.KindFloat:
		return 1
	case record.KindBool:
		return 2
	default:
		return 3
	}
}

func compareNumbers(a, b record.Value) int {
	switch {
	case a.Kind == record.KindInt && b.Kind == record.KindInt:
		return cmp.Compare(a.I64, b.I64)
	case a.Kind == record.KindInt:
		return compareIntFloat(a.I64, b.F64)
	case b.Kind == record.KindInt:
		return -compareIntFloat(b.I64, a.F64)
	default:
		return cmp.Compare(a.F64, b.F64)
	}
}

// compareIntFloat compares i and f without rounding i through float64.
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f >= math.MaxInt64:
		return -1
	case f < math.MinInt64:
		return 1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(i, int64(t)); c != 0 {
		return c
	}
	return cmp.Compare(t, f)
}

// Compare compares the field values of a and b in the given direction.
// A nil cmp uses CompareValues.
func Compare(a, b record.Record, field string, dir Direction, c Comparator) int {
	if c == nil {
		c = CompareValues
	}
	r := sign(c(a.Get(field), b.Get(field)))
	if dir == Descending {
		return -r
	}
	return r
}

// Sort returns a stably sorted copy of recs. An inactive key returns an
// unchanged copy.
func Sort(recs []record.Record, k Key, c Comparator) []record.Record {
	out := slices.Clone(recs)
	if !k.Active() {
		return out
	}
	slices.SortStableFunc(out, func(a, b record.Record) int {
		return Compare(a, b, k.Field, k.Direction, c)
	})
	return out
}

// sign clamps custom comparator results to -1, 0, 1.
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
