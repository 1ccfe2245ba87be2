package store

import (
	"iter"
	"slices"

	"github.com/hupe1980/tabview/internal/index"
	"github.com/hupe1980/tabview/record"
)

type options struct {
	schema  record.Schema
	indexed []string
}

// Option configures a Store.
type Option func(*options)

// WithSchema sets the ordered field names explicitly.
//
// Without it the schema is derived from the first record. Because records are
// maps, the derived order is lexical; sources that know the column order
// (e.g. JSON documents) pass it here.
func WithSchema(fields ...string) Option {
	return func(o *options) {
		o.schema = slices.Clone(record.Schema(fields))
	}
}

// WithIndexedFields restricts the equality index to the given fields.
// By default every schema field is indexed.
func WithIndexedFields(fields ...string) Option {
	return func(o *options) {
		o.indexed = slices.Clone(fields)
	}
}

// Store is an immutable collection of uniformly-shaped records.
type Store struct {
	records []record.Record
	schema  record.Schema
	idx     *index.Index
}

// New creates a store from records. The records are copied.
func New(records []record.Record, optFns ...Option) (*Store, error) {
	var o options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	schema := o.schema
	if schema == nil && len(records) > 0 {
		schema = record.SchemaOf(records[0])
	}

	recs := make([]record.Record, len(records))
	for i, r := range records {
		recs[i] = r.Clone()
	}

	indexed := o.indexed
	if indexed == nil {
		indexed = schema
	}

	idx, err := index.Build(recs, indexed)
	if err != nil {
		return nil, err
	}

	return &Store{
		records: recs,
		schema:  schema,
		idx:     idx,
	}, nil
}

// FromAny creates a store from untyped rows.
func FromAny(rows []map[string]any, optFns ...Option) (*Store, error) {
	recs, err := record.RecordsFromAny(rows)
	if err != nil {
		return nil, err
	}
	return New(recs, optFns...)
}

// MustNew is like New but panics on error.
func MustNew(records []record.Record, optFns ...Option) *Store {
	s, err := New(records, optFns...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Schema returns a copy of the ordered field names.
func (s *Store) Schema() record.Schema {
	return slices.Clone(s.schema)
}

// At returns the record at position i.
// Callers must not modify the returned record.
func (s *Store) At(i int) record.Record {
	return s.records[i]
}

// All iterates over the records in load order.
func (s *Store) All() iter.Seq2[int, record.Record] {
	return func(yield func(int, record.Record) bool) {
		for i, r := range s.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Index returns the equality index of the store.
func (s *Store) Index() *index.Index {
	return s.idx
}

// DistinctValues returns the distinct non-empty values of field across the
// whole store, in first-appearance order.
//
// The result never depends on any query: filter options must not disappear
// as filters narrow a view.
func (s *Store) DistinctValues(field string) []record.Value {
	if vals := s.idx.Distinct(field); vals != nil {
		return vals
	}

	// Field is not indexed; scan.
	seen := make(map[string]struct{})
	var out []record.Value
	for _, r := range s.records {
		v := r.Get(field)
		if v.IsEmpty() {
			continue
		}
		key := v.Text()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
