package index

import (
	"fmt"
	"math"

	"github.com/hupe1980/tabview/record"
)

type postings struct {
	// values holds the first Value seen for each text, in first-appearance order.
	values []record.Value
	byText map[string]*Bitmap
}

// Index maps field -> text -> bitmap of rows.
type Index struct {
	fields map[string]*postings
}

// Build indexes the given fields of records.
// Row ids are positions in records.
func Build(records []record.Record, fields []string) (*Index, error) {
	if uint64(len(records)) > math.MaxUint32 {
		return nil, fmt.Errorf("index: %d records exceed the row id space", len(records))
	}

	idx := &Index{
		fields: make(map[string]*postings, len(fields)),
	}
	for _, f := range fields {
		idx.fields[f] = &postings{byText: make(map[string]*Bitmap)}
	}

	for i, rec := range records {
		id := uint32(i)
		for _, f := range fields {
			v := rec.Get(f)
			if v.IsEmpty() {
				continue
			}
			p := idx.fields[f]
			key := v.Text()
			b, ok := p.byText[key]
			if !ok {
				b = NewBitmap()
				p.byText[key] = b
				p.values = append(p.values, v)
			}
			b.Add(id)
		}
	}

	return idx, nil
}

// Has reports whether field is indexed.
func (idx *Index) Has(field string) bool {
	_, ok := idx.fields[field]
	return ok
}

// Lookup returns the rows whose field has the given text.
// The returned bitmap must not be modified.
func (idx *Index) Lookup(field, text string) (*Bitmap, bool) {
	p, ok := idx.fields[field]
	if !ok {
		return nil, false
	}
	b, ok := p.byText[text]
	return b, ok
}

// Distinct returns the distinct non-empty values of field in first-appearance order.
func (idx *Index) Distinct(field string) []record.Value {
	p, ok := idx.fields[field]
	if !ok {
		return nil
	}
	out := make([]record.Value, len(p.values))
	copy(out, p.values)
	return out
}

// Evaluate intersects the postings of every constraint (field -> text).
//
// Empty texts impose no restriction. A nil result means every row matches;
// a non-nil empty bitmap means none do.
func (idx *Index) Evaluate(constraints map[string]string) *Bitmap {
	var result *Bitmap

	for field, text := range constraints {
		if text == "" {
			continue
		}

		b, ok := idx.Lookup(field, text)
		if !ok {
			return NewBitmap() // No match for this constraint
		}

		if result == nil {
			result = b.Clone()
		} else {
			result.And(b)
		}

		if result.IsEmpty() {
			return result
		}
	}

	return result
}
