package source

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/tabview/record"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Finder is the subset of *mongo.Collection used by Mongo.
type Finder interface {
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
}

var _ Finder = (*mongo.Collection)(nil)

// Mongo loads the documents of a collection matching a filter.
//
// Field order is taken from the first document; fields that only appear in
// later documents are appended. Scalar BSON types, ObjectIDs and DateTimes
// are supported; embedded documents and arrays fail with ErrUnsupportedValue.
type Mongo struct {
	coll       Finder
	filter     any
	projection any
	sort       any
	batchSize  int32
}

// NewMongo creates a source over coll. A nil filter selects every document.
func NewMongo(coll Finder, filter any) *Mongo {
	if filter == nil {
		filter = bson.D{}
	}
	return &Mongo{coll: coll, filter: filter, batchSize: 500}
}

// WithProjection limits the returned fields.
func (m *Mongo) WithProjection(projection any) *Mongo {
	m.projection = projection
	return m
}

// WithSort sets the server-side document order, which becomes the load order.
func (m *Mongo) WithSort(sort any) *Mongo {
	m.sort = sort
	return m
}

// Load runs the find and decodes every document.
func (m *Mongo) Load(ctx context.Context) (Table, error) {
	opts := options.Find().SetBatchSize(m.batchSize)
	if m.projection != nil {
		opts.SetProjection(m.projection)
	}
	if m.sort != nil {
		opts.SetSort(m.sort)
	}

	cursor, err := m.coll.Find(ctx, m.filter, opts)
	if err != nil {
		return Table{}, fmt.Errorf("find: %w", err)
	}
	defer cursor.Close(ctx)

	var t Table
	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return Table{}, fmt.Errorf("decode: %w", err)
		}

		r := make(record.Record, len(doc))
		for _, elem := range doc {
			v, err := bsonValue(elem.Value)
			if err != nil {
				return Table{}, fmt.Errorf("document %d: field %q: %w", len(t.Records), elem.Key, err)
			}
			r[elem.Key] = v
			if !t.Schema.Has(elem.Key) {
				t.Schema = append(t.Schema, elem.Key)
			}
		}
		t.Records = append(t.Records, r)
	}
	if err := cursor.Err(); err != nil {
		return Table{}, fmt.Errorf("cursor error: %w", err)
	}
	return t, nil
}

func bsonValue(v any) (record.Value, error) {
	switch x := v.(type) {
	case bson.ObjectID:
		return record.String(x.Hex()), nil
	case bson.DateTime:
		return record.String(x.Time().UTC().Format(time.RFC3339)), nil
	case bson.Null, bson.Undefined:
		return record.Null(), nil
	case bson.D, bson.M, bson.A, []any, map[string]any:
		return record.Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	default:
		return record.FromAny(v)
	}
}
