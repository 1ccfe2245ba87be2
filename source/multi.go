package source

import (
	"context"
	"fmt"

	"github.com/hupe1980/tabview/record"
	"golang.org/x/sync/errgroup"
)

// Multi loads several sources in parallel and concatenates their records in
// source order.
//
// The schema is the first source's schema followed by any fields the later
// sources add.
type Multi struct {
	sources []Source
	limit   int
}

// NewMulti creates a Multi over sources.
func NewMulti(sources ...Source) *Multi {
	return &Multi{sources: sources, limit: 8}
}

// WithLimit sets the maximum number of concurrent loads.
// n <= 0 means no limit.
func (m *Multi) WithLimit(n int) *Multi {
	m.limit = n
	return m
}

// Load loads all sources. The first error cancels the remaining loads.
func (m *Multi) Load(ctx context.Context) (Table, error) {
	tables := make([]Table, len(m.sources))

	g, gctx := errgroup.WithContext(ctx)
	if m.limit > 0 {
		g.SetLimit(m.limit)
	}

	for i, src := range m.sources {
		g.Go(func() error {
			t, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			tables[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Table{}, err
	}

	var out Table
	for _, t := range tables {
		out.Records = append(out.Records, t.Records...)
		out.Schema = mergeSchema(out.Schema, schemaOf(t))
	}
	return out, nil
}

func schemaOf(t Table) record.Schema {
	if len(t.Schema) > 0 {
		return t.Schema
	}
	if len(t.Records) > 0 {
		return record.SchemaOf(t.Records[0])
	}
	return nil
}

func mergeSchema(dst, src record.Schema) record.Schema {
	for _, f := range src {
		if !dst.Has(f) {
			dst = append(dst, f)
		}
	}
	return dst
}
