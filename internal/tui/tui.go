// Package tui renders the roadmap as an interactive timeline: a horizontal
// day axis, one bar per group and per item, mouse-driven drag/resize, and a
// keyboard-driven detail panel.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"roadmap-cli/internal/roadmap"
	"roadmap-cli/internal/store"
)

// Run opens (or seeds) the persisted roadmap and starts the timeline UI.
// Mouse all-motion reporting is required for drag gestures.
func Run(s store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	rm, err := roadmap.Open(s)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newAppModel(rm), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
