package tui

import (
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/query"
	"github.com/vodo-app/vodo/season"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			switch b.state {
			case searchState:
				b.inputC.SetValue("")
				return b, nil
			case loadingState:
				b.stopLoading()
			case showsState:
				b.showsC.ResetSelected()
			case episodesState:
				b.episodesC.ResetSelected()
				b.expanded = season.NewSelection()
			}

			b.previousState()
			return b, nil
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case searchState:
		return b.updateSearch(msg)
	case showsState:
		return b.updateShows(msg)
	case episodesState:
		return b.updateEpisodes(msg)
	case episodeState:
		return b.updateEpisode(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case showsFoundMsg:
		b.stopLoading()
		items := lo.Map(msg, func(s *media.Show, _ int) list.Item {
			return &listItem{internal: s}
		})
		cmd = b.showsC.SetItems(items)
		b.showsC.Title = "Shows matching " + b.inputC.Value()
		b.setState(showsState)
		return b, cmd
	case showLoadedMsg:
		b.stopLoading()
		b.selectedShow = msg
		b.seasons = season.Organize(b.selectedShow.Episodes())
		b.expanded = season.NewSelection()
		b.episodesC.Title = b.selectedShow.Name
		cmd = b.episodesC.SetItems(b.seasonItems())
		b.episodesC.ResetSelected()
		b.setState(episodesState)
		return b, cmd
	case episodeLoadedMsg:
		b.stopLoading()
		b.detail = msg
		b.setState(episodeState)
		return b, nil
	}

	if !b.loading {
		return b, nil
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		search := strings.TrimSpace(b.inputC.Value())
		if search == "" {
			return b, nil
		}

		if err := query.Remember(search, 1); err != nil {
			log.Warnf("remember query: %s", err)
		}

		b.startLoading("Searching for " + search)
		return b, tea.Batch(b.spinnerC.Tick, b.searchShows(search))
	}

	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateShows(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		item, ok := b.showsC.SelectedItem().(*listItem)
		if !ok {
			return b, nil
		}

		show := item.internal.(*media.Show)
		b.startLoading("Loading episodes of " + show.Name)
		return b, tea.Batch(b.spinnerC.Tick, b.loadShow(show.Key()))
	}

	b.showsC, cmd = b.showsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.toggle) {
		item, ok := b.episodesC.SelectedItem().(*listItem)
		if !ok {
			return b, nil
		}

		switch e := item.internal.(type) {
		case *season.Season:
			return b, b.toggleSeason(e)
		case *media.Episode:
			b.startLoading("Loading " + e.Name)
			return b, tea.Batch(b.spinnerC.Tick, b.loadEpisode(e))
		}

		return b, nil
	}

	b.episodesC, cmd = b.episodesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateEpisode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || b.detail == nil {
		return b, nil
	}

	var target *media.Episode
	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return b, tea.Quit
	case bubblesKey.Matches(keyMsg, b.keymap.previous):
		target = b.detail.Previous.OrEmpty()
	case bubblesKey.Matches(keyMsg, b.keymap.next):
		target = b.detail.Next.OrEmpty()
	}

	if target == nil {
		return b, nil
	}

	// Stepping between episodes replaces the current one instead of stacking views.
	b.setState(loadingState)
	b.loading = true
	b.progressStatus = "Loading " + target.Name
	return b, tea.Batch(b.spinnerC.Tick, b.loadEpisode(target))
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return b, tea.Quit
	}

	return b, nil
}
