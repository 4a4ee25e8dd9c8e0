package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/vodo-app/vodo/color"
	"github.com/vodo-app/vodo/icon"
	"github.com/vodo-app/vodo/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case searchState:
		return b.viewSearch()
	case showsState:
		return listExtraPaddingStyle.Render(b.showsC.View())
	case episodesState:
		return listExtraPaddingStyle.Render(b.episodesC.View())
	case episodeState:
		return b.viewEpisode()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewSearch() string {
	return b.renderLines(true, []string{
		style.Title("Search Shows"),
		"",
		b.inputC.View(),
	})
}

func (b *statefulBubble) viewEpisode() string {
	if b.detail == nil {
		return b.renderLines(true, nil)
	}

	episode := b.detail.Episode
	meta := fmt.Sprintf("Episode %d | %d min", episode.Number, episode.Runtime)
	if episode.Airdate != "" {
		meta += " | " + episode.Airdate
	}

	lines := []string{
		style.Title(b.selectedShowName()),
		"",
		style.Bold(style.Fg(color.Purple)(episode.Name)),
		style.Faint(episode.Code() + "  " + meta),
		"",
	}

	if summary := episode.PlainSummary(); summary != "" {
		lines = append(lines, strings.Split(wordwrap.String(summary, b.width), "\n")...)
		lines = append(lines, "")
	}

	var nav []string
	if previous, ok := b.detail.Previous.Get(); ok {
		nav = append(nav, fmt.Sprintf("%s %s", icon.Get(icon.Previous), previous.Name))
	}
	if next, ok := b.detail.Next.Get(); ok {
		nav = append(nav, fmt.Sprintf("%s %s", next.Name, icon.Get(icon.Next)))
	}
	if len(nav) > 0 {
		lines = append(lines, style.Truncate(b.width)(strings.Join(nav, "    ")))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) selectedShowName() string {
	if b.selectedShow == nil {
		return "Episode"
	}
	return b.selectedShow.Name
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
