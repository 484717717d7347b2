package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roadmap-cli/internal/roadmap"
	"roadmap-cli/internal/store"
	"roadmap-cli/internal/timeline"
)

// updateDetailKey handles keys scoped to the open detail panel. The third
// return reports whether the key was consumed.
func (m appModel) updateDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if m.picking {
		return m.updatePickerKey(msg)
	}

	switch m.detail {
	case detailItem:
		it, ok := m.rm.State().FindItem(m.detailID)
		if !ok {
			m.closeDetail()
			return m, nil, true
		}
		switch msg.String() {
		case "r":
			m.modal = modalRenameItem
			m.modalID = it.ID
			m.input.SetValue(it.Title)
			m.input.Placeholder = "Item title"
			m.input.Focus()
			return m, textinputBlink(), true
		case "a":
			if len(m.rm.State().People) > 0 {
				m.picking = true
				m.pickingIdx = 0
			}
			return m, nil, true
		case "n":
			m.modal = modalEditNotes
			m.modalID = it.ID
			m.notes.SetValue(it.Notes)
			m.notes.SetWidth(60)
			m.notes.SetHeight(10)
			m.notes.Focus()
			return m, textareaBlink(), true
		case ",":
			return m.shiftItemDate(true, -1)
		case ".":
			return m.shiftItemDate(true, 1)
		case "<":
			return m.shiftItemDate(false, -1)
		case ">":
			return m.shiftItemDate(false, 1)
		case "d":
			m.modal = modalConfirmDeleteItem
			m.modalID = it.ID
			return m, nil, true
		}

	case detailGroup:
		g, ok := m.rm.State().FindGroup(m.detailID)
		if !ok {
			m.closeDetail()
			return m, nil, true
		}
		switch msg.String() {
		case "r":
			m.modal = modalRenameGroup
			m.modalID = g.ID
			m.input.SetValue(g.Title)
			m.input.Placeholder = "Group title"
			m.input.Focus()
			return m, textinputBlink(), true
		case "c":
			next := nextGroupColor(g.Color)
			if err := m.rm.UpdateGroup(g.ID, roadmap.GroupPatch{Color: &next}); err != nil {
				m.errMsg = err.Error()
			}
			m.buildRows()
			return m, nil, true
		case "a":
			if err := m.rm.AddItem(g.ID); err != nil {
				m.errMsg = err.Error()
			}
			m.afterMutation()
			return m, m.ackTick(), true
		case "d":
			m.modal = modalConfirmDeleteGroup
			m.modalID = g.ID
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) updatePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	people := m.rm.State().People
	switch msg.String() {
	case "esc", "a":
		m.picking = false
		return m, nil, true
	case "up", "k":
		if m.pickingIdx > 0 {
			m.pickingIdx--
		}
		return m, nil, true
	case "down", "j":
		if m.pickingIdx < len(people)-1 {
			m.pickingIdx++
		}
		return m, nil, true
	case " ", "enter":
		it, ok := m.rm.State().FindItem(m.detailID)
		if !ok || m.pickingIdx >= len(people) {
			return m, nil, true
		}
		ids := togglePerson(it.AssigneeIDs, people[m.pickingIdx].ID)
		err := m.rm.UpdateItem(it.ID, roadmap.ItemPatch{AssigneeIDs: &ids}, "Updated assignees")
		if err != nil {
			m.errMsg = err.Error()
		}
		m.buildRows()
		return m, m.ackTick(), true
	}
	return m, nil, true
}

// shiftItemDate nudges one endpoint by whole days as a described mutation. A
// shift that would invert the interval is rejected by the engine and surfaced
// as an error; the item is left unchanged.
func (m appModel) shiftItemDate(startField bool, days int) (tea.Model, tea.Cmd, bool) {
	it, ok := m.rm.State().FindItem(m.detailID)
	if !ok {
		return m, nil, true
	}
	var patch roadmap.ItemPatch
	var desc string
	if startField {
		v := timeline.AddDays(it.StartDate, days)
		patch.StartDate = &v
		desc = "Changed item start date"
	} else {
		v := timeline.AddDays(it.EndDate, days)
		patch.EndDate = &v
		desc = "Changed item end date"
	}
	if err := m.rm.UpdateItem(it.ID, patch, desc); err != nil {
		m.errMsg = err.Error()
		return m, nil, true
	}
	m.buildRows()
	return m, m.ackTick(), true
}

func togglePerson(ids []string, personID string) []string {
	out := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == personID {
			removed = true
			continue
		}
		out = append(out, id)
	}
	if !removed {
		out = append(out, personID)
	}
	return out
}

func nextGroupColor(current string) string {
	for i, c := range store.GroupColors {
		if c == current {
			return store.GroupColors[(i+1)%len(store.GroupColors)]
		}
	}
	return store.GroupColors[0]
}

func (m appModel) renderDetail() string {
	inner := detailPanelW - 3 // border + padding
	var lines []string

	switch m.detail {
	case detailItem:
		lines = m.renderItemDetail(inner)
	case detailGroup:
		lines = m.renderGroupDetail(inner)
	}

	body := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorMuted).
		Padding(0, 1).
		Width(detailPanelW - 1).
		Height(m.height).
		Render(body)
}

func (m appModel) renderItemDetail(w int) []string {
	it, ok := m.rm.State().FindItem(m.detailID)
	if !ok {
		return nil
	}
	var lines []string
	if g, ok := m.rm.State().FindGroup(it.GroupID); ok {
		lines = append(lines, styleMuted().Render(g.Title))
	}
	lines = append(lines,
		lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(it.Title),
		"",
		fmt.Sprintf("%s %s  %s",
			styleMuted().Render("start"), it.StartDate, styleMuted().Render(",/. adjust")),
		fmt.Sprintf("%s   %s  %s",
			styleMuted().Render("end"), it.EndDate, styleMuted().Render("</> adjust")),
		fmt.Sprintf("%s  %d days", styleMuted().Render("span"), timeline.DaysBetween(it.StartDate, it.EndDate)+1),
		"",
		styleMuted().Render("assignees"),
	)
	lines = append(lines, m.renderAssigneeList(it.AssigneeIDs)...)

	if strings.TrimSpace(it.Notes) != "" {
		lines = append(lines, "", styleMuted().Render("notes"))
		lines = append(lines, strings.Split(renderMarkdown(it.Notes, w), "\n")...)
	}

	lines = append(lines, "",
		styleMuted().Render("r rename · a assignees · n notes"),
		styleMuted().Render("d delete · esc close"))
	return lines
}

func (m appModel) renderAssigneeList(assigned []string) []string {
	assignedSet := map[string]bool{}
	for _, id := range assigned {
		assignedSet[id] = true
	}

	var lines []string
	if m.picking {
		for i, p := range m.rm.State().People {
			cursor := "  "
			if i == m.pickingIdx {
				cursor = lipgloss.NewStyle().Foreground(colorAccent).Render("> ")
			}
			mark := "[ ]"
			if assignedSet[p.ID] {
				mark = "[x]"
			}
			lines = append(lines, cursor+mark+" "+p.Name)
		}
		lines = append(lines, styleMuted().Render("  space toggle · esc done"))
		return lines
	}

	if len(assigned) == 0 {
		return []string{styleMuted().Render("  none")}
	}
	for _, id := range assigned {
		if p, ok := m.rm.State().FindPerson(id); ok {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")
			lines = append(lines, "  "+swatch+" "+p.Name)
		}
	}
	return lines
}

func (m appModel) renderGroupDetail(w int) []string {
	g, ok := m.rm.State().FindGroup(m.detailID)
	if !ok {
		return nil
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Color)).Render("■")
	var lines []string
	lines = append(lines,
		swatch+" "+lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(g.Title),
		"")

	if rng, ok := m.rm.GroupRange(g.ID); ok {
		lines = append(lines, fmt.Sprintf("%s %s – %s",
			styleMuted().Render("range"), rng.Start, rng.End))
	} else {
		lines = append(lines, styleMuted().Render("range")+" "+styleMuted().Render("no schedule yet"))
	}

	items := m.rm.State().ItemsOfGroup(g.ID)
	lines = append(lines, fmt.Sprintf("%s %d", styleMuted().Render("items"), len(items)), "")
	for _, it := range items {
		lines = append(lines, "  "+ansiTrunc(it.Title, w-16)+
			styleMuted().Render("  "+it.StartDate))
	}

	if ids := m.rm.GroupAssignees(g.ID); len(ids) > 0 {
		lines = append(lines, "", styleMuted().Render("assignees"))
		for _, id := range ids {
			if p, ok := m.rm.State().FindPerson(id); ok {
				dot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")
				lines = append(lines, "  "+dot+" "+p.Name)
			}
		}
	}

	lines = append(lines, "",
		styleMuted().Render("r rename · c color · a add item"),
		styleMuted().Render("d delete · esc close"))
	return lines
}
