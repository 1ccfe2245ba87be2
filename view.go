package tabview

import (
	"sync"

	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/store"
)

// View is a single interactive session over a store.
//
// It owns one QueryState and exposes the control surface of a data table.
// Every control operation recomputes the pipeline synchronously and leaves
// the state normalized, so the page index never points outside the current
// result. View is safe for concurrent use; each call observes one store
// snapshot.
type View struct {
	mu    sync.Mutex
	p     *Pipeline
	state QueryState
}

// NewView creates a view over st with the default query state.
func NewView(st *store.Store, optFns ...Option) (*View, error) {
	p, err := New(st, optFns...)
	if err != nil {
		return nil, err
	}
	return &View{
		p:     p,
		state: p.DefaultState(),
	}, nil
}

// Pipeline returns the pipeline backing the view.
func (v *View) Pipeline() *Pipeline {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.p
}

// State returns a copy of the current query state.
func (v *View) State() QueryState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.clone()
}

// Restore replaces the query state, e.g. with one saved earlier.
// The state is normalized against the current store.
func (v *View) Restore(q QueryState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = v.p.Normalize(q)
	v.record("restore", true, nil)
}

// Render runs the pipeline for the current state.
func (v *View) Render() Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.p.Render(v.state)
}

// SetSearchText updates the free-text query.
func (v *View) SetSearchText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = v.p.SetSearchText(v.state, text)
	v.record("set_search_text", true, nil)
}

// SetFilter constrains field to value; an empty value clears the constraint.
func (v *View) SetFilter(field string, value record.Value) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	q, err := v.p.SetFilter(v.state, field, value)
	v.record("set_filter", err == nil, err)
	if err != nil {
		return err
	}
	v.state = q
	return nil
}

// ClearFilters removes all filter constraints.
func (v *View) ClearFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = v.p.ClearFilters(v.state)
	v.record("clear_filters", true, nil)
}

// SetSortField toggles sorting on field.
func (v *View) SetSortField(field string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	q, err := v.p.SetSortField(v.state, field)
	v.record("set_sort_field", err == nil, err)
	if err != nil {
		return err
	}
	v.state = q
	return nil
}

// SetPageSize changes the page size and returns to the first page.
// Sizes outside the allowed set are rejected with ErrInvalidPageSize.
func (v *View) SetPageSize(size int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	q, err := v.p.SetPageSize(v.state, size)
	v.record("set_page_size", err == nil, err)
	if err != nil {
		return err
	}
	v.state = q
	return nil
}

// GoToPage selects page index. It reports false and changes nothing when
// index is out of range.
func (v *View) GoToPage(index int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	q, ok := v.p.GoToPage(v.state, index)
	v.state = q
	v.record("go_to_page", ok, nil)
	return ok
}

// NextPage advances one page if possible.
func (v *View) NextPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	q, ok := v.p.NextPage(v.state)
	v.state = q
	v.record("next_page", ok, nil)
	return ok
}

// PreviousPage goes back one page if possible.
func (v *View) PreviousPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	q, ok := v.p.PreviousPage(v.state)
	v.state = q
	v.record("previous_page", ok, nil)
	return ok
}

// DistinctValues returns the filter options of field from the whole store.
func (v *View) DistinctValues(field string) []record.Value {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.p.DistinctValues(field)
}

// FilterOptions returns DistinctValues for each of fields.
func (v *View) FilterOptions(fields ...string) map[string][]record.Value {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string][]record.Value, len(fields))
	for _, f := range fields {
		out[f] = v.p.DistinctValues(f)
	}
	return out
}

// ReplaceStore swaps the underlying data. The query state is kept and
// normalized against the new store.
func (v *View) ReplaceStore(st *store.Store) error {
	if st == nil {
		return ErrNilStore
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.p = v.p.WithStore(st)
	v.state = v.p.Normalize(v.state)
	v.record("replace_store", true, nil)
	return nil
}

func (v *View) record(op string, applied bool, err error) {
	v.p.opts.metricsCollector.RecordControl(op, applied)
	v.p.opts.logger.LogControl(op, applied, err)
}
