package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/store"
)

// ErrUnsupportedValue is returned when a source field cannot be represented as
// a scalar record.Value.
var ErrUnsupportedValue = errors.New("source: unsupported value")

// Table is the result of loading a Source.
type Table struct {
	Records []record.Record
	// Schema is the column order. It may be nil, in which case the store
	// derives it from the first record.
	Schema record.Schema
}

// Source loads a Table.
type Source interface {
	Load(ctx context.Context) (Table, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (Table, error)

// Load calls f(ctx).
func (f SourceFunc) Load(ctx context.Context) (Table, error) { return f(ctx) }

// Open loads src and builds a store from the result.
// Options are applied after the table's schema, so WithSchema overrides it.
func Open(ctx context.Context, src Source, optFns ...store.Option) (*store.Store, error) {
	t, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	opts := make([]store.Option, 0, len(optFns)+1)
	if len(t.Schema) > 0 {
		opts = append(opts, store.WithSchema(t.Schema...))
	}
	opts = append(opts, optFns...)

	st, err := store.New(t.Records, opts...)
	if err != nil {
		return nil, fmt.Errorf("source: build store: %w", err)
	}
	return st, nil
}

// keepLiteral returns v when its text is lit and the string lit otherwise,
// so typing a value never changes its text.
func keepLiteral(lit string, v record.Value) record.Value {
	if v.Text() == lit {
		return v
	}
	return record.String(lit)
}

// numberValue types a JSON or DynamoDB number literal.
func numberValue(n json.Number) record.Value {
	v, err := record.FromAny(n)
	if err != nil {
		return record.String(n.String())
	}
	return keepLiteral(n.String(), v)
}
