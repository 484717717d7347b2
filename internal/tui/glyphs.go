package tui

import (
	"os"
	"strings"
)

// Terminal apps can't change the user's font; instead we pick between Unicode
// and ASCII glyphs for twisties and markers, for fonts that render some
// glyphs poorly.

var asciiGlyphs bool

func applyGlyphPreference() {
	asciiGlyphs = strings.EqualFold(strings.TrimSpace(os.Getenv("ROADMAP_TUI_GLYPHS")), "ascii")
}

func glyphTwistyCollapsed() string {
	if asciiGlyphs {
		return ">"
	}
	return "▸"
}

func glyphTwistyExpanded() string {
	if asciiGlyphs {
		return "v"
	}
	return "▾"
}

func glyphTodayMarker() string {
	if asciiGlyphs {
		return "|"
	}
	return "┆"
}
