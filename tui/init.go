package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/query"
)

func (b *statefulBubble) Init() tea.Cmd {
	if search := strings.TrimSpace(b.options.Query); search != "" {
		if err := query.Remember(search, 1); err != nil {
			log.Warnf("remember query: %s", err)
		}

		b.inputC.SetValue(search)
		b.startLoading("Searching for " + search)
		return tea.Batch(b.spinnerC.Tick, b.searchShows(search))
	}

	return textinput.Blink
}
