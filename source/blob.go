package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/hupe1980/tabview/blobstore"
	"github.com/hupe1980/tabview/codec"
	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/resource"
)

type blobOptions struct {
	codec       codec.Codec
	compression Compression
	format      Format
	comma       rune
	controller  *resource.Controller
	schema      record.Schema
}

// BlobOption configures a Blob source.
type BlobOption func(*blobOptions)

// WithCodec sets the codec used to decode the document.
// Defaults to codec.Default.
func WithCodec(c codec.Codec) BlobOption {
	return func(o *blobOptions) {
		o.codec = c
	}
}

// WithCompression overrides compression detection.
func WithCompression(c Compression) BlobOption {
	return func(o *blobOptions) {
		o.compression = c
	}
}

// WithFormat overrides format detection.
func WithFormat(f Format) BlobOption {
	return func(o *blobOptions) {
		o.format = f
	}
}

// WithDelimiter sets the CSV field delimiter (default ',').
func WithDelimiter(r rune) BlobOption {
	return func(o *blobOptions) {
		o.comma = r
	}
}

// WithController limits the load through a resource controller.
func WithController(c *resource.Controller) BlobOption {
	return func(o *blobOptions) {
		o.controller = c
	}
}

// WithFields sets the column order instead of reading it from the first object.
func WithFields(fields ...string) BlobOption {
	return func(o *blobOptions) {
		o.schema = record.Schema(fields)
	}
}

// Blob loads a document from a blob store: a JSON array of flat objects or
// a CSV file with a header row.
type Blob struct {
	store blobstore.BlobStore
	name  string
	opts  blobOptions
}

// NewBlob creates a source reading name from store.
func NewBlob(store blobstore.BlobStore, name string, optFns ...BlobOption) *Blob {
	opts := blobOptions{
		codec:       codec.Default,
		compression: CompressionAuto,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.compression == CompressionAuto {
		opts.compression = DetectCompression(name)
	}
	if opts.format == FormatAuto {
		opts.format = DetectFormat(name)
	}
	return &Blob{store: store, name: name, opts: opts}
}

// Load reads and decodes the blob.
//
// With a controller, buffer memory is reserved before reading when the
// store reports the blob size. A blob that decompresses beyond that size has
// its reservation replaced by one covering the whole document before it is
// decoded.
func (b *Blob) Load(ctx context.Context) (Table, error) {
	rc := b.opts.controller

	if err := rc.AcquireLoad(ctx); err != nil {
		return Table{}, err
	}
	defer rc.ReleaseLoad()

	f, err := b.store.Open(ctx, b.name)
	if err != nil {
		return Table{}, fmt.Errorf("source: open %s: %w", b.name, err)
	}
	defer f.Close()

	size := blobstore.SizeOf(f)
	reserved, err := rc.ReserveBuffer(ctx, size)
	if err != nil {
		return Table{}, err
	}
	defer func() { rc.ReleaseBuffer(reserved) }()

	data, err := b.read(ctx, f, size)
	if err != nil {
		return Table{}, err
	}

	if n := int64(len(data)); n > reserved {
		// Release first so concurrent loads never wait while holding memory.
		rc.ReleaseBuffer(reserved)
		reserved = 0
		if reserved, err = rc.ReserveBuffer(ctx, n); err != nil {
			return Table{}, err
		}
	}

	var t Table
	switch b.opts.format {
	case FormatCSV:
		t, err = DecodeCSV(data, b.opts.comma)
	default:
		t, err = Decode(data, b.opts.codec)
	}
	if err != nil {
		return Table{}, fmt.Errorf("source: decode %s: %w", b.name, err)
	}
	if b.opts.schema != nil {
		t.Schema = b.opts.schema
	}
	return t, nil
}

func (b *Blob) read(ctx context.Context, f io.Reader, size int64) ([]byte, error) {
	var r io.Reader = f
	if b.opts.controller != nil {
		r = resource.NewRateLimitedReader(ctx, r, b.opts.controller)
	}

	r, release, err := decompress(r, b.opts.compression)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", b.name, err)
	}
	defer release()

	var buf bytes.Buffer
	if size > 0 && b.opts.compression == CompressionNone {
		buf.Grow(int(size) + bytes.MinRead)
	}
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("source: read %s: %w", b.name, err)
	}
	return buf.Bytes(), nil
}

// Decode parses a JSON array of flat objects.
//
// The schema is the key order of the first object. Nested arrays and objects
// are rejected with ErrUnsupportedValue. A number keeps its literal text: it
// becomes a string when its typed form would print differently, as with
// 1.50 or integers beyond the int64 range.
func Decode(data []byte, c codec.Codec) (Table, error) {
	if c == nil {
		c = codec.Default
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Table{}, nil
	}

	var raws []json.RawMessage
	if err := c.Unmarshal(data, &raws); err != nil {
		return Table{}, err
	}

	t := Table{Records: make([]record.Record, 0, len(raws))}
	for i, raw := range raws {
		var m map[string]any
		if err := c.Unmarshal(raw, &m); err != nil {
			return Table{}, fmt.Errorf("record %d: %w", i, err)
		}

		for k, v := range m {
			switch x := v.(type) {
			case map[string]any, []any:
				return Table{}, fmt.Errorf("record %d: field %q: %w", i, k, ErrUnsupportedValue)
			case json.Number:
				m[k] = numberValue(x)
			}
		}

		r, err := record.RecordFromAny(m)
		if err != nil {
			return Table{}, fmt.Errorf("record %d: %w", i, err)
		}
		t.Records = append(t.Records, r)

		if i == 0 && m != nil {
			schema, err := record.FieldOrder(raw)
			if err != nil {
				return Table{}, fmt.Errorf("record %d: %w", i, err)
			}
			t.Schema = schema
		}
	}
	return t, nil
}
