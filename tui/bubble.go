package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/adjacent"
	"github.com/vodo-app/vodo/constant"
	"github.com/vodo-app/vodo/key"
	"github.com/vodo-app/vodo/media"
	"github.com/vodo-app/vodo/query"
	"github.com/vodo-app/vodo/season"
	"github.com/vodo-app/vodo/style"
	"github.com/vodo-app/vodo/util"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	showsC    list.Model
	episodesC list.Model
	helpC     help.Model

	ctx     context.Context
	catalog media.Catalog

	selectedShow *media.Show
	seasons      []season.Season
	expanded     season.Selection
	detail       *adjacent.Detail

	progressStatus string
	lastError      error

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.loading = false
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s and remembers the current state for going back.
// Loading and error screens are never returned to.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.showsC.SetSize(listWidth, listHeight)
	b.showsC.Help.Width = listWidth

	b.episodesC.SetSize(listWidth, listHeight)
	b.episodesC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading(status string) {
	b.loading = true
	b.progressStatus = status
	b.newState(loadingState)
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.progressStatus = ""
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		ctx:           ctx,
		catalog:       options.Catalog,
		options:       options,
		expanded:      season.NewSelection(),
	}

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search Shows (v%s)", constant.Version)
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)
	bubble.inputC.ShowSuggestions = true
	bubble.inputC.SetSuggestions(query.SuggestMany(""))

	bubble.showsC = makeList("Shows", true, &listOptions{
		TitleStyle: mo.Some(style.ShowsTitle),
	})
	bubble.showsC.SetStatusBarItemName("show", "shows")

	bubble.episodesC = makeList("Seasons", true, &listOptions{
		TitleStyle: mo.Some(style.SeasonsTitle),
	})
	bubble.episodesC.SetStatusBarItemName("episode", "episodes")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()
	bubble.setState(searchState)

	return &bubble
}
