// Package tabview provides an in-memory tabular data view engine for Go.
//
// A view combines an immutable record store with a small query state and
// derives the page to display through a fixed pipeline:
//
//	store -> search -> filter -> sort -> paginate -> page
//
// # Quick Start
//
//	st, _ := store.FromAny(rows, store.WithSchema("id", "name", "role", "status"))
//	v, _ := tabview.NewView(st, tabview.WithPageSizes(2, 5, 10, 25))
//
//	v.SetSearchText("john")
//	_ = v.SetFilter("role", record.String("Admin"))
//	_ = v.SetSortField("name") // ascending; call again for descending
//
//	res := v.Render()
//	fmt.Println(res.Summary()) // Showing 1 to 2 of 2 entries
//
// # Pure Pipeline
//
// View is a thin, lock-protected session around Pipeline. Pipeline methods
// are pure functions of (store, QueryState), which makes them easy to test
// and to drive from any UI:
//
//	p, _ := tabview.New(st)
//	q := p.DefaultState()
//	q = p.SetSearchText(q, "inactive")
//	res := p.Render(q)
//
// # Invariants
//
//   - The rendered page index is always within the current result; a filter
//     that shrinks the result clamps the page instead of rendering an empty
//     out-of-range page.
//   - Navigation outside the valid range is a no-op, never an error.
//   - An empty result renders an empty page with TotalPages == 0.
//   - Filter options (DistinctValues) come from the whole store.
//   - A failing comparator degrades the pass to the unsorted order and is
//     reported in Result.Err; the view keeps working.
//
// # Data Sources
//
// The source package loads records from static slices, JSON and CSV blobs
// (local files, memory, S3, MinIO; optionally zstd or lz4 compressed), SQL
// queries, MongoDB collections and DynamoDB tables. The reload package keeps
// a view current as its source changes.
package tabview
