// Package tui provides the interactive terminal browser.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vodo-app/vodo/media"
)

// Options configures the terminal browser.
type Options struct {
	Catalog media.Catalog
	// Query, when set, is searched right away instead of prompting for one.
	Query string
}

// Run starts the terminal browser and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
