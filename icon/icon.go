// Package icon renders the symbols used in CLI and TUI output.
//
// Every symbol exists in several variants (emoji, nerd-font glyphs, plain ASCII, kaomoji and
// Unicode squares) and icons.variant picks one.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) variant(name string) (string, bool) {
	switch name {
	case emoji:
		return d.emoji, true
	case nerd:
		return d.nerd, true
	case plain:
		return d.plain, true
	case kaomoji:
		return d.kaomoji, true
	case squares:
		return d.squares, true
	}
	return "", false
}

// Get returns the symbol for i in the configured variant.
// An unknown variant renders nothing, so output stays readable.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}

	symbol, _ := def.variant(viper.GetString(key.IconsVariant))
	return symbol
}
