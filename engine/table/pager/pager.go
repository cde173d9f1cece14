// Package pager computes the items of a page-number control: first and
// last shortcuts, previous and next, boundary pages at both ends, sibling
// pages around the current one, and ellipses for the gaps.
package pager

// Kind is the type of a control item
type Kind int

const (
	First Kind = iota
	Previous
	Page
	StartEllipsis
	EndEllipsis
	Next
	Last
)

func (k Kind) String() string {
	switch k {
	case First:
		return "first"
	case Previous:
		return "previous"
	case Page:
		return "page"
	case StartEllipsis:
		return "start-ellipsis"
	case EndEllipsis:
		return "end-ellipsis"
	case Next:
		return "next"
	case Last:
		return "last"
	default:
		return "unknown"
	}
}

// Item is one element of the control. Page is the page the item navigates
// to; it is zero for ellipses.
type Item struct {
	Kind     Kind
	Page     int
	Selected bool
	Disabled bool
}

// Options shape the control
type Options struct {
	BoundaryCount int
	SiblingCount  int
	ShowFirst     bool
	ShowLast      bool
	HidePrevious  bool
	HideNext      bool
}

// DefaultOptions matches the table's pager: two boundary and two sibling
// pages with first/last shortcuts.
func DefaultOptions() Options {
	return Options{
		BoundaryCount: 2,
		SiblingCount:  2,
		ShowFirst:     true,
		ShowLast:      true,
	}
}

// Items lists the control items for count pages with page selected.
func Items(count, page int, opts Options) []Item {
	boundary := max(opts.BoundaryCount, 0)
	sibling := max(opts.SiblingCount, 0)

	startPages := span(1, min(boundary, count))
	endPages := span(max(count-boundary+1, boundary+1), count)

	siblingsStart := max(
		min(page-sibling, count-boundary-sibling*2-1),
		boundary+2,
	)
	upper := count - 1
	if len(endPages) > 0 {
		upper = endPages[0] - 2
	}
	siblingsEnd := min(
		max(page+sibling, boundary+sibling*2+2),
		upper,
	)

	var items []Item
	if opts.ShowFirst {
		items = append(items, Item{Kind: First, Page: 1, Disabled: page <= 1})
	}
	if !opts.HidePrevious {
		items = append(items, Item{Kind: Previous, Page: max(page-1, 1), Disabled: page <= 1})
	}
	items = appendPages(items, startPages, page)

	switch {
	case siblingsStart > boundary+2:
		items = append(items, Item{Kind: StartEllipsis})
	case boundary+1 < count-boundary:
		items = appendPages(items, []int{boundary + 1}, page)
	}

	items = appendPages(items, span(siblingsStart, siblingsEnd), page)

	switch {
	case siblingsEnd < count-boundary-1:
		items = append(items, Item{Kind: EndEllipsis})
	case count-boundary > boundary:
		items = appendPages(items, []int{count - boundary}, page)
	}

	items = appendPages(items, endPages, page)
	if !opts.HideNext {
		items = append(items, Item{Kind: Next, Page: min(page+1, max(count, 1)), Disabled: page >= count})
	}
	if opts.ShowLast {
		items = append(items, Item{Kind: Last, Page: max(count, 1), Disabled: page >= count})
	}
	return items
}

func appendPages(items []Item, pages []int, current int) []Item {
	for _, p := range pages {
		items = append(items, Item{Kind: Page, Page: p, Selected: p == current})
	}
	return items
}

// span returns start..end inclusive, or nothing when end < start.
func span(start, end int) []int {
	if end < start {
		return nil
	}
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}
