package tui

type state int

const (
	loadingState state = iota
	errorState
	searchState
	showsState
	episodesState
	episodeState
)
