// Package filter implements per-column equality constraints.
//
// A Set maps field names to required values. Constraints with an empty value
// (Null or "") impose no restriction; all remaining constraints must hold
// (logical AND). Values are compared by their canonical text, so the number 1
// satisfies the constraint "1".
package filter

import (
	"maps"

	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/store"
)

// Set is a mapping of field -> required value.
type Set map[string]record.Value

// With returns a copy of s with field constrained to v.
// An empty v removes the constraint.
func (s Set) With(field string, v record.Value) Set {
	out := maps.Clone(s)
	if out == nil {
		out = make(Set, 1)
	}
	if v.IsEmpty() {
		delete(out, field)
	} else {
		out[field] = v
	}
	return out
}

// Active returns the non-empty constraints keyed by field, as text.
func (s Set) Active() map[string]string {
	out := make(map[string]string, len(s))
	for f, v := range s {
		if v.IsEmpty() {
			continue
		}
		out[f] = v.Text()
	}
	return out
}

// Len returns the number of active constraints.
func (s Set) Len() int {
	n := 0
	for _, v := range s {
		if !v.IsEmpty() {
			n++
		}
	}
	return n
}

// Matches reports whether rec satisfies every active constraint.
// A record lacking a constrained field does not match.
func (s Set) Matches(rec record.Record) bool {
	for f, want := range s {
		if want.IsEmpty() {
			continue
		}
		got := rec.Get(f)
		if got.IsNull() || got.Text() != want.Text() {
			return false
		}
	}
	return true
}

// split separates the active constraints of s into those resolved by the
// store index (as text) and the residual ones checked per record.
func split(st *store.Store, s Set) (map[string]string, Set) {
	idx := st.Index()

	indexed := make(map[string]string)
	var residual Set
	for f, text := range s.Active() {
		if idx.Has(f) {
			indexed[f] = text
			continue
		}
		if residual == nil {
			residual = make(Set)
		}
		residual[f] = s[f]
	}
	return indexed, residual
}

// Rows returns the positions in st that satisfy s, in load order.
//
// Constraints on indexed fields are intersected as bitmaps first, so only
// their surviving rows are visited; any remaining constraints are checked
// per record.
func Rows(st *store.Store, s Set) []int {
	indexed, residual := split(st, s)

	rows := st.Index().Evaluate(indexed)
	if rows == nil {
		out := make([]int, 0, st.Len())
		for i, rec := range st.All() {
			if residual == nil || residual.Matches(rec) {
				out = append(out, i)
			}
		}
		return out
	}

	out := make([]int, 0, rows.Cardinality())
	for id := range rows.All() {
		i := int(id)
		if residual == nil || residual.Matches(st.At(i)) {
			out = append(out, i)
		}
	}
	return out
}
