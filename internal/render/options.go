// Package render provides markdown rendering and color palettes for
// terminal output.
package render

import "fmt"

// Glamour built-in styles accepted without a theme file.
const (
	StyleDark    = "dark"
	StyleLight   = "light"
	StyleDracula = "dracula"
	StyleNoTTY   = "notty"
	StyleASCII   = "ascii"
)

// Options configures the markdown renderer.
type Options struct {
	// Width is the word-wrap column (default: 80)
	Width int

	// Style is a glamour built-in style name or a path to a JSON style file
	Style string

	// EnableEmoji converts :emoji: to unicode characters
	EnableEmoji bool

	// PreserveNewLines keeps single line breaks from the source
	PreserveNewLines bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            StyleDark,
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

func (o Options) key() string {
	return fmt.Sprintf("%s:%d:%t:%t", o.Style, o.Width, o.EnableEmoji, o.PreserveNewLines)
}

// IsBuiltinStyle reports whether style is one of glamour's built-in names.
func IsBuiltinStyle(style string) bool {
	switch style {
	case StyleDark, StyleLight, StyleDracula, StyleNoTTY, StyleASCII:
		return true
	default:
		return false
	}
}
