package tabview

import (
	"slices"
	"time"

	"github.com/hupe1980/tabview/filter"
	"github.com/hupe1980/tabview/paginate"
	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/search"
	"github.com/hupe1980/tabview/sorter"
	"github.com/hupe1980/tabview/store"
)

// Pipeline derives views of a store: search -> filter -> sort -> paginate.
//
// A Pipeline is immutable. Every method is a pure function of the store and
// the QueryState passed in; state changes are returned as new values.
type Pipeline struct {
	store *store.Store
	opts  options
}

// New creates a pipeline over st.
func New(st *store.Store, optFns ...Option) (*Pipeline, error) {
	if st == nil {
		return nil, ErrNilStore
	}
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	return &Pipeline{store: st, opts: o}, nil
}

// Store returns the underlying store.
func (p *Pipeline) Store() *store.Store {
	return p.store
}

// WithStore returns a pipeline with the same options over st.
func (p *Pipeline) WithStore(st *store.Store) *Pipeline {
	return &Pipeline{store: st, opts: p.opts}
}

// PageSizes returns the allowed page sizes.
func (p *Pipeline) PageSizes() []int {
	return slices.Clone(p.opts.pageSizes)
}

// DefaultState returns the initial query state: empty search, no filters,
// no sort, first page, default page size.
func (p *Pipeline) DefaultState() QueryState {
	return QueryState{PageSize: p.opts.defaultPageSize}
}

// Filtered returns the records matching the search text and filters of q,
// in store order.
func (p *Pipeline) Filtered(q QueryState) []record.Record {
	m := search.NewMatcher(q.SearchText, nil)
	rows := filter.Rows(p.store, q.Filters)

	out := make([]record.Record, 0, len(rows))
	for _, i := range rows {
		rec := p.store.At(i)
		if !m.Empty() && !m.Match(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Ordered returns the filtered records in the sort order of q.
func (p *Pipeline) Ordered(q QueryState) []record.Record {
	ordered, _ := p.order(p.Filtered(q), p.sortKey(q))
	return ordered
}

// Render runs the full pipeline for q.
//
// q is normalized first; the page index is always clamped into the range of
// the current result. Failures in the derive step are contained, logged and
// reported in Result.Err.
func (p *Pipeline) Render(q QueryState) Result {
	start := time.Now()

	res := p.render(q)

	p.opts.metricsCollector.RecordRender(time.Since(start), len(res.Rows), res.Err)
	p.opts.logger.LogRender(q, res)

	return res
}

func (p *Pipeline) render(q QueryState) (res Result) {
	q = p.normalizeStatic(q)

	defer func() {
		if r := recover(); r != nil {
			err := newErrDerive("render", r)
			p.opts.logger.LogRecovered(err.Stage, err)
			res = p.emptyResult(q, err)
		}
	}()

	key := p.sortKey(q)
	ordered, err := p.order(p.Filtered(q), key)
	if err != nil {
		// Degrade to the unsorted order rather than blank the view.
		key = sorter.Key{}
	}

	total := len(ordered)
	page := paginate.Clamp(q.PageIndex, total, q.PageSize)
	first, last := paginate.Window(page, q.PageSize, total)

	res = Result{
		Rows:         slices.Clone(paginate.Slice(ordered, page, q.PageSize)),
		Schema:       p.store.Schema(),
		TotalRecords: total,
		TotalPages:   paginate.TotalPages(total, q.PageSize),
		PageIndex:    page,
		PageSize:     q.PageSize,
		Start:        first,
		End:          last,
		Sort:         key,
		Err:          err,
	}
	return res
}

func (p *Pipeline) emptyResult(q QueryState, err error) Result {
	return Result{
		Rows:     []record.Record{},
		Schema:   p.store.Schema(),
		PageSize: q.PageSize,
		Err:      err,
	}
}

// order sorts recs by k. A panic raised while comparing is contained and
// returned as *ErrDerive together with the unsorted input.
func (p *Pipeline) order(recs []record.Record, k sorter.Key) (out []record.Record, err error) {
	if !k.Active() {
		return recs, nil
	}

	defer func() {
		if r := recover(); r != nil {
			e := newErrDerive("sort", r)
			p.opts.logger.LogRecovered(e.Stage, e)
			out, err = recs, e
		}
	}()

	return sorter.Sort(recs, k, p.opts.comparators[k.Field]), nil
}

// sortKey drops sort fields the schema does not know.
func (p *Pipeline) sortKey(q QueryState) sorter.Key {
	if !q.Sort.Active() {
		return sorter.Key{}
	}
	if schema := p.store.Schema(); len(schema) > 0 && !schema.Has(q.Sort.Field) {
		return sorter.Key{}
	}
	return q.Sort
}

// normalizeStatic fixes the parts of q that do not depend on the data.
func (p *Pipeline) normalizeStatic(q QueryState) QueryState {
	q = q.clone()
	if !slices.Contains(p.opts.pageSizes, q.PageSize) {
		q.PageSize = p.opts.defaultPageSize
	}
	if q.PageIndex < 0 {
		q.PageIndex = 0
	}
	q.Sort = p.sortKey(q)
	return q
}

// Normalize returns q with an allowed page size, a known sort field and a
// page index inside the current result.
func (p *Pipeline) Normalize(q QueryState) QueryState {
	q = p.normalizeStatic(q)
	q.PageIndex = paginate.Clamp(q.PageIndex, p.count(q), q.PageSize)
	return q
}

func (p *Pipeline) count(q QueryState) int {
	return len(p.Filtered(q))
}

// SetSearchText returns q with a new search text.
func (p *Pipeline) SetSearchText(q QueryState, text string) QueryState {
	q = q.clone()
	q.SearchText = text
	if p.opts.resetPageOnQueryChange {
		q.PageIndex = 0
	}
	return p.Normalize(q)
}

// SetFilter returns q with field constrained to value. An empty value
// removes the constraint.
func (p *Pipeline) SetFilter(q QueryState, field string, value record.Value) (QueryState, error) {
	if err := p.checkField(field); err != nil {
		return q, err
	}
	q = q.clone()
	q.Filters = q.Filters.With(field, value)
	if p.opts.resetPageOnQueryChange {
		q.PageIndex = 0
	}
	return p.Normalize(q), nil
}

// ClearFilters returns q without any filter constraints.
func (p *Pipeline) ClearFilters(q QueryState) QueryState {
	q = q.clone()
	q.Filters = nil
	if p.opts.resetPageOnQueryChange {
		q.PageIndex = 0
	}
	return p.Normalize(q)
}

// SetSortField returns q after a sort toggle on field: the active field flips
// direction, any other field becomes active in ascending order.
func (p *Pipeline) SetSortField(q QueryState, field string) (QueryState, error) {
	if err := p.checkField(field); err != nil {
		return q, err
	}
	q = q.clone()
	q.Sort = q.Sort.Toggle(field)
	return p.Normalize(q), nil
}

// SetPageSize returns q with a new page size and the first page selected.
func (p *Pipeline) SetPageSize(q QueryState, size int) (QueryState, error) {
	if !slices.Contains(p.opts.pageSizes, size) {
		return q, invalidPageSize(size)
	}
	q = q.clone()
	q.PageSize = size
	q.PageIndex = 0
	return p.Normalize(q), nil
}

// GoToPage returns q on page index. Out-of-range targets are rejected:
// q is returned normalized but otherwise unchanged, and ok is false.
func (p *Pipeline) GoToPage(q QueryState, index int) (QueryState, bool) {
	q = p.Normalize(q)
	target, ok := paginate.GoTo(index, p.count(q), q.PageSize)
	if !ok {
		return q, false
	}
	q.PageIndex = target
	return q, true
}

// NextPage returns q on the following page, if any.
func (p *Pipeline) NextPage(q QueryState) (QueryState, bool) {
	q = p.Normalize(q)
	return p.GoToPage(q, q.PageIndex+1)
}

// PreviousPage returns q on the preceding page, if any.
func (p *Pipeline) PreviousPage(q QueryState) (QueryState, bool) {
	q = p.Normalize(q)
	return p.GoToPage(q, q.PageIndex-1)
}

// DistinctValues returns the filter options of field, computed from the
// whole store and never from the filtered view.
func (p *Pipeline) DistinctValues(field string) []record.Value {
	return p.store.DistinctValues(field)
}

func (p *Pipeline) checkField(field string) error {
	schema := p.store.Schema()
	if len(schema) == 0 || schema.Has(field) {
		return nil
	}
	return unknownField(field)
}

// Render is a convenience for New(st, optFns...).Render(q).
func Render(st *store.Store, q QueryState, optFns ...Option) (Result, error) {
	p, err := New(st, optFns...)
	if err != nil {
		return Result{}, err
	}
	return p.Render(q), nil
}
