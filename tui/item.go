package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vodo-app/vodo/icon"
	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/season"
	"github.com/vodo-app/vodo/style"
	"github.com/vodo-app/vodo/util"
)

// listItem wraps a show, a season header or an episode for the list component.
type listItem struct {
	internal interface{}
	// expanded is only meaningful for season headers.
	expanded bool
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *media.Show:
		title = e.Name
	case *season.Season:
		mark := icon.Get(icon.Collapsed)
		if t.expanded {
			mark = icon.Get(icon.Expanded)
		}
		title = lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s Season %d", mark, e.Number))
	case *media.Episode:
		title = fmt.Sprintf("  %s %s", style.Faint(e.Code()), e.Name)
	default:
		title = t.FilterValue()
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *media.Show:
		summary := e.PlainSummary()
		if i := strings.IndexByte(summary, '\n'); i >= 0 {
			summary = summary[:i]
		}
		description = summary
	case *season.Season:
		description = util.Quantify(len(e.Episodes), "episode", "episodes")
	case *media.Episode:
		parts := []string{fmt.Sprintf("  Episode %d", e.Number), fmt.Sprintf("%d min", e.Runtime)}
		if e.Airdate != "" {
			parts = append(parts, e.Airdate)
		}
		description = lipgloss.NewStyle().Foreground(style.FaintColor).Render(strings.Join(parts, " • "))
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *media.Show:
		return e.Name
	case *season.Season:
		return fmt.Sprintf("Season %d", e.Number)
	case *media.Episode:
		return e.Name
	default:
		return ""
	}
}
