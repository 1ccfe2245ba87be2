// Package index implements the equality index behind filter evaluation.
//
// # Architecture
//
//	Postings: map[field]map[text]*Bitmap   - O(1) equality lookup
//	Distinct: map[field][]Value            - first-appearance order
//
// Values are keyed by their canonical text (record.Value.Text), which is the
// same coercion the record-level filter uses, so both paths agree.
//
// Null and empty-string values are not indexed: an empty constraint never
// restricts rows, and a non-empty constraint never matches them.
//
// An Index is built once and never mutated, so it is safe for concurrent reads.
package index
