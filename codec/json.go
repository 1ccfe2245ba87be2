package codec

import (
	"bytes"
	"encoding/json"
)

// JSON is the standard-library JSON codec.
type JSON struct{}

// Unmarshal decodes a single JSON document into v, keeping numbers as
// json.Number.
func (JSON) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeOne(dec, v)
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
