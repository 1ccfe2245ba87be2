package tabview

import (
	"fmt"

	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/sorter"
)

// Result is everything the rendering boundary needs for one pass.
//
// All counts describe the same pass as Rows, so a view never shows a total
// that disagrees with the rendered page.
type Result struct {
	// Rows are the records of the current page.
	Rows []record.Record
	// Schema is the column order.
	Schema record.Schema
	// TotalRecords counts records after search and filters, before paging.
	TotalRecords int
	// TotalPages is ceil(TotalRecords/PageSize); 0 when there are no records.
	TotalPages int
	// PageIndex is the zero-based page actually rendered.
	PageIndex int
	PageSize  int
	// Start and End are the 1-based positions shown ("showing Start to End
	// of TotalRecords"); both are 0 for an empty result.
	Start int
	End   int
	Sort  sorter.Key
	// Err is set when the pass degraded after a contained failure.
	Err error
}

// HasPrevious reports whether a previous page exists.
func (r Result) HasPrevious() bool {
	return r.PageIndex > 0
}

// HasNext reports whether a next page exists.
func (r Result) HasNext() bool {
	return r.PageIndex < r.TotalPages-1
}

// Summary returns the "Showing X to Y of Z entries" line.
func (r Result) Summary() string {
	return fmt.Sprintf("Showing %d to %d of %d entries", r.Start, r.End, r.TotalRecords)
}

// SortIndicator returns "↑" or "↓" for the active sort field and "" otherwise.
func (r Result) SortIndicator(field string) string {
	if !r.Sort.Active() || r.Sort.Field != field {
		return ""
	}
	if r.Sort.Direction == sorter.Descending {
		return "↓"
	}
	return "↑"
}
