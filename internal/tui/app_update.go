package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"roadmap-cli/internal/timeline"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.buildRows()
		return m, nil

	case ackExpireMsg:
		m.rm.ExpireAck(msg.seq)
		return m, nil

	case tea.KeyMsg:
		m.errMsg = ""
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m.updateKey(msg)

	case tea.MouseMsg:
		if m.modal != modalNone {
			return m, nil
		}
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A live gesture owns the keyboard for exactly one key: escape aborts it.
	if m.gesture != nil {
		if msg.String() == "esc" {
			if err := m.gesture.cancel(m.rm); err != nil {
				m.errMsg = err.Error()
			}
			m.gesture = nil
			m.buildRows()
		}
		return m, nil
	}

	if m.detail != detailNone {
		if next, cmd, handled := m.updateDetailKey(msg); handled {
			return next, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.detail != detailNone {
			m.closeDetail()
		}
		return m, nil

	case "u":
		if err := m.rm.Undo(); err != nil {
			m.errMsg = err.Error()
		}
		m.afterMutation()
		return m, nil

	case "g":
		m.modal = modalNewGroup
		m.input.SetValue("")
		m.input.Placeholder = "Group title"
		m.input.Focus()
		return m, textinputBlink()

	case "left", "h":
		m.scrollX -= timeline.DayWidth
		m.recenter()
		return m, nil
	case "right", "l":
		m.scrollX += timeline.DayWidth
		m.recenter()
		return m, nil
	case "H", "shift+left":
		m.scrollX -= 7 * timeline.DayWidth
		m.recenter()
		return m, nil
	case "L", "shift+right":
		m.scrollX += 7 * timeline.DayWidth
		m.recenter()
		return m, nil

	case "[":
		m.jumpMonths(-1)
		return m, nil
	case "]":
		m.jumpMonths(1)
		return m, nil
	case "t":
		m.jumpToDate(timeline.Today())
		return m, nil

	case "up", "k":
		m.scrollY--
		m.clampScrollY()
		return m, nil
	case "down", "j":
		m.scrollY++
		m.clampScrollY()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress && m.gesture == nil {
			m.scrollX -= timeline.DayWidth
			m.recenter()
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress && m.gesture == nil {
			m.scrollX += timeline.DayWidth
			m.recenter()
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.gesture != nil {
			return m, nil
		}
		return m.mouseDown(msg.X, msg.Y)

	case tea.MouseActionMotion:
		// While a gesture is live it consumes every motion frame, wherever
		// the pointer is.
		if m.gesture == nil {
			return m, nil
		}
		if err := m.gesture.motion(m.rm, msg.X, msg.Y); err != nil {
			m.errMsg = err.Error()
		}
		m.buildRows()
		return m, nil

	case tea.MouseActionRelease:
		if m.gesture == nil {
			return m, nil
		}
		g := m.gesture
		m.gesture = nil
		if g.release() {
			if g.itemID != "" {
				m.openDetail(detailItem, g.itemID)
			} else {
				m.openDetail(detailGroup, g.groupID)
			}
		}
		m.buildRows()
		return m, nil
	}
	return m, nil
}

func (m appModel) mouseDown(x, y int) (tea.Model, tea.Cmd) {
	if m.detail != detailNone && x >= m.contentWidth() {
		return m, nil // panel is keyboard-driven
	}
	row, ok := m.rowAtScreenY(y)
	if !ok {
		return m, nil
	}

	switch row.zoneAt(x) {
	case zoneTwisty:
		m.collapsed[row.groupID] = !m.collapsed[row.groupID]
		m.buildRows()
		return m, nil

	case zoneAddItem:
		if err := m.rm.AddItem(row.groupID); err != nil {
			m.errMsg = err.Error()
		}
		m.afterMutation()
		return m, m.ackTick()

	case zoneMove, zoneResizeStart, zoneResizeEnd:
		kind := dragMove
		switch row.zoneAt(x) {
		case zoneResizeStart:
			kind = dragResizeStart
		case zoneResizeEnd:
			kind = dragResizeEnd
		}
		if row.kind == rowItemBar {
			if it, ok := m.rm.State().FindItem(row.itemID); ok {
				m.gesture = newItemGesture(*it, kind, x, y)
			}
		} else {
			m.gesture = newGroupGesture(m.rm.State(), row.groupID, kind, x, y)
			if m.gesture == nil {
				// A group with no items has nothing to drag; the press is a
				// plain click on its placeholder bar.
				m.openDetail(detailGroup, row.groupID)
			}
		}
		return m, nil
	}
	return m, nil
}

// jumpMonths moves the window a whole month and snaps the viewport to the new
// current month's first day.
func (m *appModel) jumpMonths(n int) {
	m.axis = m.axis.ShiftMonths(n)
	m.scrollX = m.axis.OffsetOf(timeline.FormatDate(m.axis.Current))
	m.buildRows()
}

func (m *appModel) jumpToDate(date string) {
	m.axis = timeline.NewAxisForDate(date)
	m.scrollX = m.axis.OffsetOf(date) - m.contentWidth()/2
	m.buildRows()
}

// afterMutation refreshes derived view state after the document changed, and
// drops a detail panel whose target no longer exists.
func (m *appModel) afterMutation() {
	switch m.detail {
	case detailItem:
		if _, ok := m.rm.State().FindItem(m.detailID); !ok {
			m.closeDetail()
		}
	case detailGroup:
		if _, ok := m.rm.State().FindGroup(m.detailID); !ok {
			m.closeDetail()
		}
	}
	m.buildRows()
}
