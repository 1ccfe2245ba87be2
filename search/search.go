// Package search implements free-text matching of records.
package search

import (
	"strings"

	"github.com/hupe1980/tabview/record"
)

// Matcher tests records against a free-text query.
//
// The query is normalized once; a Matcher is cheap to build per render.
type Matcher struct {
	needle string
	fields record.Schema
}

// NewMatcher creates a matcher for query.
//
// When fields is nil, every field of a record is searched. Otherwise only the
// listed fields are, which keeps matching deterministic for records that lack
// some schema fields.
func NewMatcher(query string, fields record.Schema) *Matcher {
	return &Matcher{
		needle: strings.ToLower(query),
		fields: fields,
	}
}

// Empty reports whether the matcher accepts every record.
func (m *Matcher) Empty() bool {
	return m.needle == ""
}

// Match reports whether any field value of rec contains the query,
// ignoring case. Numbers and booleans are matched by their textual form.
func (m *Matcher) Match(rec record.Record) bool {
	if m.needle == "" {
		return true
	}

	if m.fields == nil {
		for _, v := range rec {
			if m.matchValue(v) {
				return true
			}
		}
		return false
	}

	for _, f := range m.fields {
		if m.matchValue(rec.Get(f)) {
			return true
		}
	}
	return false
}

func (m *Matcher) matchValue(v record.Value) bool {
	if v.IsNull() {
		return false
	}
	return strings.Contains(strings.ToLower(v.Text()), m.needle)
}

// Matches reports whether rec matches query across all of its fields.
func Matches(rec record.Record, query string) bool {
	return NewMatcher(query, nil).Match(rec)
}
