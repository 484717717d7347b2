package tui

import (
	"roadmap-cli/internal/timeline"
)

// Rendering and mouse hit-testing must agree on geometry, so both consume the
// same row layout, rebuilt whenever state, scroll, or collapse changes.

const (
	headerLines = 3 // title, weekday row, day-of-month row
	footerLines = 1
	// resizeHandleW is the width (cells) of the grab zones at a bar's edges.
	resizeHandleW = 2
	detailPanelW  = 42
	placeholderDays = 14
)

type rowKind int

const (
	rowGroupBar rowKind = iota
	rowItemBar
	rowAddItem
	rowSpacer
)

type hitZone int

const (
	zoneNone hitZone = iota
	zoneMove
	zoneResizeStart
	zoneResizeEnd
	zoneTwisty
	zoneAddItem
)

// timelineRow is one content row: a group bar, an item bar, an add-item
// action row, or a spacer. Bar coordinates are screen cells (scroll already
// applied); bars may extend past either edge and are clipped at render time.
type timelineRow struct {
	kind    rowKind
	groupID string
	itemID  string

	barStart int // inclusive
	barEnd   int // exclusive
	label    string
	color    string
	dim      bool // placeholder bar for a group with no schedule yet
}

// zoneAt resolves which grab zone a screen column hits on this row.
func (r timelineRow) zoneAt(x int) hitZone {
	switch r.kind {
	case rowAddItem:
		if x >= r.barStart && x < r.barEnd {
			return zoneAddItem
		}
		return zoneNone
	case rowSpacer:
		return zoneNone
	}
	if x < r.barStart || x >= r.barEnd {
		return zoneNone
	}

	width := r.barEnd - r.barStart
	moveOnly := width < 2*resizeHandleW+2

	if r.kind == rowGroupBar {
		if x == r.barStart {
			return zoneTwisty
		}
		if moveOnly {
			return zoneMove
		}
		if x < r.barStart+1+resizeHandleW {
			return zoneResizeStart
		}
		if x >= r.barEnd-resizeHandleW {
			return zoneResizeEnd
		}
		return zoneMove
	}

	if moveOnly {
		return zoneMove
	}
	if x < r.barStart+resizeHandleW {
		return zoneResizeStart
	}
	if x >= r.barEnd-resizeHandleW {
		return zoneResizeEnd
	}
	return zoneMove
}

// contentWidth is the timeline's usable width; the detail panel, when open,
// claims the right-hand columns.
func (m *appModel) contentWidth() int {
	w := m.width
	if m.detail != detailNone {
		w -= detailPanelW
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *appModel) contentHeight() int {
	h := m.height - headerLines - footerLines
	if h < 4 {
		h = 4
	}
	return h
}

// buildRows recomputes the full row layout from the current document. Group
// order, ranges, and assignee sets are derived fresh on every rebuild; the
// layout itself caches nothing across mutations.
func (m *appModel) buildRows() {
	var rows []timelineRow

	for _, g := range m.rm.SortedGroups() {
		row := timelineRow{
			kind:    rowGroupBar,
			groupID: g.ID,
			color:   g.Color,
		}
		if rng, ok := m.rm.GroupRange(g.ID); ok {
			row.barStart = m.axis.OffsetOf(rng.Start) - m.scrollX
			row.barEnd = m.axis.OffsetOf(rng.End) + timeline.DayWidth - m.scrollX
		} else {
			// No schedule yet: a dim placeholder spanning two weeks from the
			// current month's first day.
			start := m.axis.OffsetOf(timeline.FormatDate(m.axis.Current))
			row.barStart = start - m.scrollX
			row.barEnd = start + placeholderDays*timeline.DayWidth - m.scrollX
			row.dim = true
		}
		twisty := glyphTwistyExpanded()
		if m.collapsed[g.ID] {
			twisty = glyphTwistyCollapsed()
		}
		row.label = twisty + " " + g.Title + initialsSuffix(m.rm.State(), m.rm.GroupAssignees(g.ID))
		rows = append(rows, row)

		if !m.collapsed[g.ID] {
			for _, it := range m.rm.State().ItemsOfGroup(g.ID) {
				rows = append(rows, timelineRow{
					kind:     rowItemBar,
					groupID:  g.ID,
					itemID:   it.ID,
					barStart: m.axis.OffsetOf(it.StartDate) - m.scrollX,
					barEnd:   m.axis.OffsetOf(it.EndDate) + timeline.DayWidth - m.scrollX,
					label:    it.Title + initialsSuffix(m.rm.State(), it.AssigneeIDs),
					color:    g.Color,
				})
			}
			rows = append(rows, timelineRow{
				kind:     rowAddItem,
				groupID:  g.ID,
				barStart: row.barStart,
				barEnd:   row.barStart + 12,
				label:    "+ add item",
			})
		}
		rows = append(rows, timelineRow{kind: rowSpacer})
	}

	m.rows = rows
	m.clampScrollY()
}

func (m *appModel) clampScrollY() {
	max := len(m.rows) - m.contentHeight()
	if max < 0 {
		max = 0
	}
	if m.scrollY > max {
		m.scrollY = max
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
}

// rowAtScreenY maps a screen row back to a layout row, honoring the vertical
// scroll offset.
func (m *appModel) rowAtScreenY(y int) (timelineRow, bool) {
	idx := y - headerLines + m.scrollY
	if idx < 0 || idx >= len(m.rows) {
		return timelineRow{}, false
	}
	return m.rows[idx], true
}
