package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/compozy/members/cli/tui/styles"
	"github.com/compozy/members/engine/table/pager"
)

var pagerLabels = map[pager.Kind]string{
	pager.First:         "«",
	pager.Previous:      "‹",
	pager.StartEllipsis: "…",
	pager.EndEllipsis:   "…",
	pager.Next:          "›",
	pager.Last:          "»",
}

// RenderPager draws the page-number control for count pages
func RenderPager(count, page int, opts pager.Options) string {
	items := pager.Items(count, page, opts)
	cells := make([]string, 0, len(items))
	for _, item := range items {
		cells = append(cells, renderPagerItem(item))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func renderPagerItem(item pager.Item) string {
	label, ok := pagerLabels[item.Kind]
	if !ok {
		label = strconv.Itoa(item.Page)
	}
	switch {
	case item.Selected:
		return styles.CurrentPageStyle.Render(label)
	case item.Disabled:
		return styles.DisabledPageStyle.Render(label)
	default:
		return styles.PageStyle.Render(label)
	}
}
