// Package record provides the typed scalar model shared by every stage of the
// view pipeline.
//
// A Record maps field names to Values. Values are small tagged scalars (null,
// int, float, string, bool); they never require reflection to compare or to
// render.
//
//	rec := record.Record{
//	    "id":   record.Int(1),
//	    "name": record.String("John Doe"),
//	}
//
// Use RecordFromAny or RecordsFromAny to ingest untyped map[string]any data,
// for example rows decoded from JSON.
//
// # Coercion
//
// Text is the canonical textual form of a Value. Search and filtering operate
// on it, so the number 1 and the string "1" are interchangeable wherever
// values are matched as text.
//
// A missing field reads as Null. Null renders as the empty string and orders
// before every other value.
package record
