package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"

	"github.com/compozy/members/cli/tui/styles"
)

// RenderBanner renders the tool name as ASCII art, shown while the feed loads
func RenderBanner(width int) string {
	logo := figure.NewFigure("members", "standard", true)
	style := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(logo.String())
}
