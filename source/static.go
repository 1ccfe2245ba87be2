package source

import (
	"context"
	"slices"

	"github.com/hupe1980/tabview/record"
)

// Static is a Source over records already in memory.
type Static struct {
	records []record.Record
	schema  record.Schema
}

// NewStatic creates a static source. The records are served as given.
func NewStatic(records []record.Record, schema ...string) *Static {
	return &Static{
		records: records,
		schema:  record.Schema(schema),
	}
}

// StaticFromAny creates a static source from untyped rows.
func StaticFromAny(rows []map[string]any, schema ...string) (*Static, error) {
	recs, err := record.RecordsFromAny(rows)
	if err != nil {
		return nil, err
	}
	return NewStatic(recs, schema...), nil
}

// Load returns the records.
func (s *Static) Load(ctx context.Context) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}
	return Table{
		Records: slices.Clone(s.records),
		Schema:  slices.Clone(s.schema),
	}, nil
}
