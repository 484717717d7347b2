package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"roadmap-cli/internal/timeline"
)

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.modal != modalNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())
	}

	cw := m.contentWidth()
	var lines []string
	lines = append(lines, m.renderTitleLine(cw))
	wd, dom := m.renderDayHeaders(cw)
	lines = append(lines, wd, dom)

	ch := m.contentHeight()
	for i := 0; i < ch; i++ {
		idx := m.scrollY + i
		if idx < 0 || idx >= len(m.rows) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, m.renderTimelineRow(m.rows[idx], cw))
	}
	lines = append(lines, m.renderFooter(cw))

	left := strings.Join(lines, "\n")
	if m.detail == detailNone {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderDetail())
}

func (m appModel) renderTitleLine(cw int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(" Roadmap")
	month := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(m.axis.MonthLabel())
	line := title + "  " + month
	if d := m.rm.UndoDepth(); d > 0 {
		line += styleMuted().Render(fmt.Sprintf("  · %d undoable", d))
	}
	return ansi.Truncate(line, cw, "")
}

// renderDayHeaders builds the weekday and day-of-month rows for the visible
// cell range. Weekends are shaded; today gets the accent color and a marker.
func (m appModel) renderDayHeaders(cw int) (string, string) {
	today := timeline.Today()
	var wd, dom strings.Builder

	// First visible day may start left of the viewport edge.
	date := m.axis.DayAt(m.scrollX)
	x := m.axis.OffsetOf(date) - m.scrollX
	for x < cw {
		t, err := timeline.ParseDate(date)
		if err != nil {
			break
		}
		wdLabel := t.Format("Mon")[:2]
		domLabel := fmt.Sprintf("%2d", t.Day())

		cellW := timeline.DayWidth
		if x < 0 {
			cellW += x
		}
		if x+timeline.DayWidth > cw {
			cellW = cw - x
		}
		if cellW <= 0 {
			date = timeline.AddDays(date, 1)
			x += timeline.DayWidth
			continue
		}

		wdStyle := styleMuted()
		domStyle := lipgloss.NewStyle().Foreground(colorChromeFg)
		wk := t.Weekday()
		if wk == 0 || wk == 6 { // Sunday, Saturday
			wdStyle = wdStyle.Background(colorWeekendBg)
			domStyle = domStyle.Background(colorWeekendBg)
		}
		if date == today {
			wdStyle = lipgloss.NewStyle().Foreground(colorToday).Bold(true)
			domStyle = lipgloss.NewStyle().Foreground(colorToday).Bold(true)
			wdLabel = glyphTodayMarker() + wdLabel[:1]
		}
		if t.Day() == 1 {
			domStyle = domStyle.Bold(true).Foreground(colorAccent)
		}

		wd.WriteString(wdStyle.Render(fitCell(wdLabel, cellW)))
		dom.WriteString(domStyle.Render(fitCell(domLabel, cellW)))

		date = timeline.AddDays(date, 1)
		x = m.axis.OffsetOf(date) - m.scrollX
	}
	return wd.String(), dom.String()
}

func ansiTrunc(s string, w int) string {
	if w < 1 {
		w = 1
	}
	return ansi.Truncate(s, w, "…")
}

// fitCell pads or clips a header label to exactly w cells.
func fitCell(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func (m appModel) renderTimelineRow(row timelineRow, cw int) string {
	if row.kind == rowSpacer {
		return ""
	}

	start, end := row.barStart, row.barEnd
	if start < 0 {
		start = 0
	}
	if end > cw {
		end = cw
	}
	if end <= start {
		return ""
	}
	w := end - start

	label := ansi.Truncate(row.label, w, "…")
	if pad := w - ansi.StringWidth(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}

	var st lipgloss.Style
	switch row.kind {
	case rowAddItem:
		st = styleMuted()
	case rowGroupBar:
		st = lipgloss.NewStyle().
			Background(lipgloss.Color(row.color)).
			Foreground(colorBarLabelFg).
			Bold(true)
		if row.dim {
			st = st.Faint(true)
		}
	default:
		st = lipgloss.NewStyle().
			Background(lipgloss.Color(row.color)).
			Foreground(colorBarLabelFg)
	}
	if m.detail != detailNone && m.detailID != "" &&
		(row.itemID == m.detailID || (row.kind == rowGroupBar && row.groupID == m.detailID)) {
		st = st.Underline(true)
	}

	return strings.Repeat(" ", start) + st.Render(label)
}

func (m appModel) renderFooter(cw int) string {
	if ack, ok := m.rm.LastAck(); ok {
		toast := lipgloss.NewStyle().
			Background(colorToastBg).
			Foreground(colorSurfaceFg).
			Padding(0, 1).
			Render(ack.Description + "  · press u to undo")
		return ansi.Truncate(toast, cw, "…")
	}
	if m.errMsg != "" {
		return ansi.Truncate(lipgloss.NewStyle().Foreground(colorDangerFg).Render(" "+m.errMsg), cw, "…")
	}
	help := " drag bars to reschedule · click for details · g new group · u undo · [/] month · t today · q quit"
	return ansi.Truncate(styleMuted().Render(help), cw, "…")
}
