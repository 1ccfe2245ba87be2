package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Record is a single row: a mapping from field name to Value.
//
// Records are treated as immutable once loaded into a store.
type Record map[string]Value

// Get returns the value of field, or Null if the record lacks it.
func (r Record) Get(field string) Value {
	if v, ok := r[field]; ok {
		return v
	}
	return Null()
}

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// Texts returns the textual form of the record's values in schema order.
func (r Record) Texts(s Schema) []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = r.Get(f).Text()
	}
	return out
}

// Schema is the ordered list of field names shared by all records of a store.
type Schema []string

// Has reports whether field is part of the schema.
func (s Schema) Has(field string) bool {
	return slices.Contains(s, field)
}

// Index returns the position of field, or -1.
func (s Schema) Index(field string) int {
	return slices.Index(s, field)
}

// SchemaOf returns the fields of r in sorted order.
//
// Maps carry no key order; callers that know the source order should prefer
// FieldOrder or an explicit Schema.
func SchemaOf(r Record) Schema {
	s := make(Schema, 0, len(r))
	for k := range r {
		s = append(s, k)
	}
	slices.Sort(s)
	return s
}

// FieldOrder returns the keys of the JSON object obj in document order.
func FieldOrder(obj []byte) (Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(obj))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("record: expected JSON object, got %v", tok)
	}

	var s Schema
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("record: unexpected token %v", tok)
		}
		s = append(s, key)

		// Skip the value; nested values are consumed whole.
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return s, nil
}
