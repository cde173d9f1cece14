package table

// DefaultPageSize is the number of rows shown per page
const DefaultPageSize = 10

// PageCount returns ceil(total/size), never less than 1.
func PageCount(total, size int) int {
	if size < 1 {
		size = 1
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// ClampPage moves page into [1, PageCount(total, size)].
func ClampPage(page, total, size int) int {
	if page < 1 {
		return 1
	}
	if last := PageCount(total, size); page > last {
		return last
	}
	return page
}

// PageSlice returns the items of the 1-based page, i.e. the window
// [(page-1)*size, page*size) clipped to the slice. Out-of-range pages are
// clamped first.
func PageSlice[T any](items []T, page, size int) []T {
	if size < 1 {
		size = 1
	}
	page = ClampPage(page, len(items), size)
	start := (page - 1) * size
	if start >= len(items) {
		return items[:0:0]
	}
	end := min(start+size, len(items))
	return items[start:end:end]
}
