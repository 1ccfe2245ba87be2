package tabview

import (
	"maps"

	"github.com/hupe1980/tabview/filter"
	"github.com/hupe1980/tabview/sorter"
)

// QueryState is the complete mutable state of one view.
//
// It is a plain value: pipelines take it as input and return updated copies,
// and it round-trips through JSON so a session can be saved and restored.
type QueryState struct {
	SearchText string     `json:"search,omitempty"`
	Filters    filter.Set `json:"filters,omitempty"`
	Sort       sorter.Key `json:"sort"`
	PageIndex  int        `json:"page"`
	PageSize   int        `json:"page_size"`
}

// clone returns a copy that shares no maps with q.
func (q QueryState) clone() QueryState {
	out := q
	out.Filters = maps.Clone(q.Filters)
	return out
}
