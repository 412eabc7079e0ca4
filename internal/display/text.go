package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 60

// Wrap word-wraps text to DefaultWidth.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Rule returns the horizontal divider used between text block sections.
func Rule() string {
	return strings.Repeat("=", DefaultWidth)
}
