package style

import "github.com/charmbracelet/lipgloss"

var (
	base     = lipgloss.Color("#1e1e2e")
	overlay  = lipgloss.Color("#6c7086")
	mauve    = lipgloss.Color("#cba6f7")
	lavender = lipgloss.Color("#b4befe")
	peach    = lipgloss.Color("#fab387")
)

var (
	// AccentColor marks the focused component.
	AccentColor = mauve
	// FaintColor is used for secondary text such as episode descriptions.
	FaintColor = overlay

	// ShowsTitle and SeasonsTitle color the headers of the two TUI lists.
	ShowsTitle   = Colored(base, lavender).Padding(0, 1)
	SeasonsTitle = Colored(base, peach).Padding(0, 1)
)
