package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/tabview/record"
)

// Format identifies the document format of a blob.
type Format uint8

const (
	// FormatAuto detects the format from the blob name: ".csv" (before any
	// compression suffix) selects CSV, anything else JSON.
	FormatAuto Format = iota
	// FormatJSON is a JSON array of flat objects.
	FormatJSON
	// FormatCSV is comma separated values with a header row.
	FormatCSV
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// DetectFormat returns the format implied by a blob name.
func DetectFormat(name string) Format {
	for _, ext := range []string{".zst", ".zstd", ".lz4"} {
		name = strings.TrimSuffix(name, ext)
	}
	if strings.HasSuffix(strings.ToLower(name), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

// DecodeCSV parses CSV with a header row. The header is the schema.
//
// Cells are typed by inference: empty cells are Null, integers and finite
// floats become numbers, "true"/"false" become booleans, everything else is
// text. A cell is only typed when the typed value prints exactly as the cell,
// so "02134", "+5" and "NaN" stay strings.
func DecodeCSV(data []byte, comma rune) (Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	if comma != 0 {
		reader.Comma = comma
	}
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}

	headers := record.Schema(rows[0])
	t := Table{Schema: headers, Records: make([]record.Record, 0, len(rows)-1)}

	for _, row := range rows[1:] {
		r := make(record.Record, len(headers))
		for j, h := range headers {
			if j < len(row) {
				r[h] = inferCSVValue(row[j])
			}
		}
		t.Records = append(t.Records, r)
	}
	return t, nil
}

func inferCSVValue(s string) record.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return record.Null()
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return keepLiteral(s, record.Int(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return keepLiteral(s, record.Float(f))
	}

	switch s {
	case "true":
		return record.Bool(true)
	case "false":
		return record.Bool(false)
	}

	return record.String(s)
}
