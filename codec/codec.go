// Package codec centralizes the decoding of record documents.
//
// Sources decode raw blobs (JSON arrays of objects) through a Codec, so the
// JSON implementation can be swapped without touching the loaders.
package codec

import (
	"errors"
	"fmt"
	"io"
)

// ErrTrailingData is returned when a document is followed by more input.
var ErrTrailingData = errors.New("codec: trailing data after document")

// Codec decodes record documents.
//
// Numbers decoded into interface values are json.Number, never float64, so
// the literal text of every number survives decoding.
// Implementations must be safe for concurrent use.
type Codec interface {
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the default codec used by sources.
var Default Codec = GoJSON{}

type streamDecoder interface {
	Decode(v any) error
}

// decodeOne decodes exactly one value from dec.
func decodeOne(dec streamDecoder, v any) error {
	if err := dec.Decode(v); err != nil {
		return err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTrailingData, err)
		}
		return ErrTrailingData
	}
	return nil
}
