package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"roadmap-cli/internal/model"
	"roadmap-cli/internal/roadmap"
	"roadmap-cli/internal/timeline"
)

const ackDuration = 5 * time.Second

type detailKind int

const (
	detailNone detailKind = iota
	detailItem
	detailGroup
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNewGroup
	modalRenameItem
	modalRenameGroup
	modalEditNotes
	modalConfirmDeleteItem
	modalConfirmDeleteGroup
)

// ackExpireMsg dismisses the acknowledgement toast raised with this sequence
// number, unless a newer one superseded it meanwhile.
type ackExpireMsg struct{ seq int }

type appModel struct {
	rm *roadmap.Roadmap

	width  int
	height int

	axis    timeline.Axis
	scrollX int
	scrollY int

	collapsed map[string]bool
	rows      []timelineRow
	gesture   *gesture

	detail   detailKind
	detailID string

	// Assignee picker state within the item detail panel.
	picking    bool
	pickingIdx int

	modal   modalKind
	modalID string
	input   textinput.Model
	notes   textarea.Model

	// ackSeen tracks the newest acknowledgement we already scheduled an
	// expiry tick for.
	ackSeen int

	errMsg string
}

func newAppModel(rm *roadmap.Roadmap) appModel {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Prompt = "> "

	ta := textarea.New()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	m := appModel{
		rm:        rm,
		axis:      timeline.NewAxisForDate(initialFocusDate(rm.State())),
		collapsed: map[string]bool{},
		input:     ti,
		notes:     ta,
	}
	m.scrollX = m.axis.OffsetOf(timeline.FormatDate(m.axis.Current))
	m.buildRows()
	return m
}

// initialFocusDate picks the month the view opens on: the earliest item start
// if any items exist, otherwise today.
func initialFocusDate(st *model.State) string {
	earliest := ""
	for _, it := range st.Items {
		if earliest == "" || it.StartDate < earliest {
			earliest = it.StartDate
		}
	}
	if earliest == "" {
		return timeline.Today()
	}
	return earliest
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// ackTick schedules the toast expiry for a freshly raised acknowledgement.
// Returns nil when no new acknowledgement appeared since the last call.
func (m *appModel) ackTick() tea.Cmd {
	ack, ok := m.rm.LastAck()
	if !ok || ack.Seq == m.ackSeen {
		return nil
	}
	m.ackSeen = ack.Seq
	seq := ack.Seq
	return tea.Tick(ackDuration, func(time.Time) tea.Msg {
		return ackExpireMsg{seq: seq}
	})
}

// recenter keeps the window's current month in sync with the viewport center
// after a horizontal pan, compensating the scroll offset so nothing jumps.
func (m *appModel) recenter() {
	center := m.axis.DayAt(m.scrollX + m.contentWidth()/2)
	if m.axis.SameMonth(center) {
		return
	}
	next, shift := m.axis.Recentered(center)
	m.axis = next
	m.scrollX += shift
	m.buildRows()
}

// openDetail shows the side panel for the clicked target and resets any
// in-panel picker state.
func (m *appModel) openDetail(kind detailKind, id string) {
	m.detail = kind
	m.detailID = id
	m.picking = false
	m.pickingIdx = 0
	m.buildRows()
}

func (m *appModel) closeDetail() {
	m.detail = detailNone
	m.detailID = ""
	m.picking = false
	m.buildRows()
}

// initialsSuffix renders the assignee avatar stack as bracketed initials,
// e.g. " [AM BC]". Empty for no assignees.
func initialsSuffix(st *model.State, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := st.FindPerson(id); ok {
			parts = append(parts, initials(p.Name))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, " ") + "]"
}

func initials(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		r := []rune(fields[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	default:
		return strings.ToUpper(string([]rune(fields[0])[:1]) + string([]rune(fields[len(fields)-1])[:1]))
	}
}
