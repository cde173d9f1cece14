package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette
var (
	Primary   = lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#7D71F5"}
	Highlight = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#F5F5F5"}
	Surface   = lipgloss.AdaptiveColor{Light: "#E8E6FB", Dark: "#2D2A4A"}
	Border    = lipgloss.AdaptiveColor{Light: "#C4C4C4", Dark: "#4A4A4A"}
	Muted     = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#7A7A7A"}
	Success   = lipgloss.AdaptiveColor{Light: "#2E9E5B", Dark: "#50FA7B"}
	Warning   = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F1FA8C"}
	Danger    = lipgloss.AdaptiveColor{Light: "#D63031", Dark: "#FF6B6B"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Primary)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)

	PaginationStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	SearchStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	SearchFocusedStyle = SearchStyle.
				BorderForeground(Primary)
)

// Pager styles
var (
	PageStyle = lipgloss.NewStyle().
			Foreground(Highlight).
			Padding(0, 1)

	CurrentPageStyle = lipgloss.NewStyle().
				Foreground(Highlight).
				Background(Primary).
				Bold(true).
				Padding(0, 1)

	DisabledPageStyle = lipgloss.NewStyle().
				Foreground(Border).
				Padding(0, 1)
)

// Row decorations
var (
	CheckedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	EditingStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true)

	DeleteButtonStyle = lipgloss.NewStyle().
				Foreground(Highlight).
				Background(Danger).
				Bold(true).
				Padding(0, 1)

	DeleteButtonDisabledStyle = lipgloss.NewStyle().
					Foreground(Muted).
					Background(Surface).
					Padding(0, 1)
)

// DisableColor strips colour from every style rendered afterwards
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
