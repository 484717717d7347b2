package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roadmap-cli/internal/roadmap"
)

func textinputBlink() tea.Cmd { return textinput.Blink }
func textareaBlink() tea.Cmd  { return textarea.Blink }

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.modalID = ""
	m.input.Blur()
	m.notes.Blur()
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalConfirmDeleteItem:
		switch msg.String() {
		case "y", "enter":
			id := m.modalID
			m.closeModal()
			if err := m.rm.DeleteItem(id); err != nil {
				m.errMsg = err.Error()
			}
			m.afterMutation()
			return m, m.ackTick()
		case "n", "esc":
			m.closeModal()
		}
		return m, nil

	case modalConfirmDeleteGroup:
		switch msg.String() {
		case "y", "enter":
			id := m.modalID
			m.closeModal()
			if err := m.rm.DeleteGroup(id); err != nil {
				m.errMsg = err.Error()
			}
			m.afterMutation()
			return m, m.ackTick()
		case "n", "esc":
			m.closeModal()
		}
		return m, nil

	case modalEditNotes:
		switch msg.String() {
		case "esc":
			m.closeModal()
			return m, nil
		case "ctrl+s":
			v := m.notes.Value()
			id := m.modalID
			m.closeModal()
			err := m.rm.UpdateItem(id, roadmap.ItemPatch{Notes: &v}, "Edited item notes")
			if err != nil {
				m.errMsg = err.Error()
			}
			m.buildRows()
			return m, m.ackTick()
		}
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		return m, cmd
	}

	// Single-line input modals.
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "enter":
		v := strings.TrimSpace(m.input.Value())
		kind, id := m.modal, m.modalID
		m.closeModal()
		if v == "" {
			return m, nil
		}
		switch kind {
		case modalNewGroup:
			if err := m.rm.AddGroup(v); err != nil {
				m.errMsg = err.Error()
			}
		case modalRenameItem:
			err := m.rm.UpdateItem(id, roadmap.ItemPatch{Title: &v}, fmt.Sprintf("Renamed item to %q", v))
			if err != nil {
				m.errMsg = err.Error()
			}
		case modalRenameGroup:
			if err := m.rm.UpdateGroup(id, roadmap.GroupPatch{Title: &v}); err != nil {
				m.errMsg = err.Error()
			}
		}
		m.afterMutation()
		return m, m.ackTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) renderModal() string {
	title := ""
	body := ""
	help := "enter save · esc cancel"

	switch m.modal {
	case modalNewGroup:
		title = "New group"
		body = m.input.View()
	case modalRenameItem:
		title = "Rename item"
		body = m.input.View()
	case modalRenameGroup:
		title = "Rename group"
		body = m.input.View()
	case modalEditNotes:
		title = "Notes (markdown)"
		body = m.notes.View()
		help = "ctrl+s save · esc cancel"
	case modalConfirmDeleteItem:
		title = "Delete item?"
		body = lipgloss.NewStyle().Foreground(colorDangerFg).Render("This also removes it from its group.")
		help = "y delete · n keep"
	case modalConfirmDeleteGroup:
		title = "Delete group?"
		body = lipgloss.NewStyle().Foreground(colorDangerFg).Render("All of the group's items are deleted with it.")
		help = "y delete · n keep"
	}

	content := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(title) +
		"\n\n" + body + "\n\n" + styleMuted().Render(help)

	return lipgloss.NewStyle().
		Background(colorControlBg).
		Padding(1, 2).
		Render(content)
}
