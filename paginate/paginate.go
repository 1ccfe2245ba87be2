// Package paginate slices ordered sequences into fixed-size pages.
//
// Page indices are zero-based. An empty sequence has zero pages, but index 0
// stays valid and addresses a single empty page, so a view can always render.
package paginate

// TotalPages returns ceil(count/size), or 0 when count or size is not positive.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// LastIndex returns the highest valid page index.
func LastIndex(count, size int) int {
	if n := TotalPages(count, size); n > 0 {
		return n - 1
	}
	return 0
}

// Valid reports whether index addresses a page of a sequence of count items.
func Valid(index, count, size int) bool {
	return index >= 0 && index <= LastIndex(count, size)
}

// Clamp forces index into the valid range.
func Clamp(index, count, size int) int {
	if index < 0 {
		return 0
	}
	if last := LastIndex(count, size); index > last {
		return last
	}
	return index
}

// Bounds returns the half-open item range [start, end) of page index,
// clipped to the sequence.
func Bounds(index, count, size int) (start, end int) {
	if index < 0 || size <= 0 || count <= 0 {
		return 0, 0
	}
	start = index * size
	if start > count {
		start = count
	}
	end = start + size
	if end > count {
		end = count
	}
	return start, end
}

// Slice returns page index of items. It never panics; an out-of-range
// index yields an empty page.
func Slice[T any](items []T, index, size int) []T {
	start, end := Bounds(index, len(items), size)
	return items[start:end]
}

// Window returns the 1-based positions of the first and last item shown on
// page index ("showing first to last of count"). Both are 0 when count is 0.
func Window(index, size, count int) (first, last int) {
	if count <= 0 || size <= 0 || index < 0 {
		return 0, 0
	}
	first = min(index*size+1, count)
	last = min((index+1)*size, count)
	return first, last
}

// Next returns the index after index, or false if there is none.
func Next(index, count, size int) (int, bool) {
	return GoTo(index+1, count, size)
}

// Previous returns the index before index, or false if there is none.
func Previous(index, count, size int) (int, bool) {
	return GoTo(index-1, count, size)
}

// GoTo returns target if it is a valid page index.
func GoTo(target, count, size int) (int, bool) {
	if !Valid(target, count, size) {
		return 0, false
	}
	return target, true
}
