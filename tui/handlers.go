package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vodo-app/vodo/adjacent"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/season"
)

type (
	showsFoundMsg    []*media.Show
	showLoadedMsg    *media.Show
	episodeLoadedMsg *adjacent.Detail
)

func (b *statefulBubble) searchShows(query string) tea.Cmd {
	return func() tea.Msg {
		log.Info("searching for " + query)
		shows, err := b.catalog.SearchShows(b.ctx, query)
		if err != nil {
			return err
		}
		return showsFoundMsg(shows)
	}
}

func (b *statefulBubble) loadShow(id string) tea.Cmd {
	return func() tea.Msg {
		show, err := b.catalog.ShowByID(b.ctx, id)
		if err != nil {
			return err
		}
		return showLoadedMsg(show)
	}
}

// loadEpisode resolves the neighbours of an episode that is already known.
func (b *statefulBubble) loadEpisode(episode *media.Episode) tea.Cmd {
	showID := b.selectedShow.Key()
	return func() tea.Msg {
		adj, err := adjacent.Resolve(b.ctx, b.catalog, showID, episode)
		if err != nil {
			return err
		}
		return episodeLoadedMsg(&adjacent.Detail{Episode: episode, Adjacent: adj})
	}
}

// seasonItems lists every season header followed by its episodes when it is expanded.
func (b *statefulBubble) seasonItems() []list.Item {
	var items []list.Item
	for i := range b.seasons {
		s := &b.seasons[i]
		expanded := b.expanded.Contains(s.Number)
		items = append(items, &listItem{internal: s, expanded: expanded})

		if expanded {
			for _, e := range s.Episodes {
				items = append(items, &listItem{internal: e})
			}
		}
	}
	return items
}

// toggleSeason expands or collapses s and keeps the cursor on its header.
func (b *statefulBubble) toggleSeason(s *season.Season) tea.Cmd {
	b.expanded = b.expanded.Toggle(s.Number)
	items := b.seasonItems()
	cmd := b.episodesC.SetItems(items)

	for i, item := range items {
		if item.(*listItem).internal == s {
			b.episodesC.Select(i)
			break
		}
	}

	return cmd
}
