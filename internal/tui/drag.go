package tui

import (
	"roadmap-cli/internal/model"
	"roadmap-cli/internal/roadmap"
	"roadmap-cli/internal/timeline"
)

// The drag controller is a per-gesture state machine: Idle (no gesture
// struct) -> Pending (struct allocated on pointer-down, nothing mutated) ->
// Dragging (displacement crossed the threshold) -> Idle on release. While a
// gesture is live the model consumes every motion/release event regardless of
// position, which is the terminal equivalent of gesture-scoped global pointer
// capture: acquired on pointer-down, released with the gesture.

type dragKind int

const (
	dragMove dragKind = iota
	dragResizeStart
	dragResizeEnd
)

// dragThreshold is the pointer displacement (cells, either axis) that
// disambiguates a drag from a click.
const dragThreshold = 2

type gesture struct {
	groupID string // set for group gestures
	itemID  string // set for item gestures
	kind    dragKind

	originX int
	originY int

	// orig snapshots the dates of every affected item at pointer-down.
	// Deltas are always applied against this snapshot, never incrementally,
	// so replaying the same final pointer position yields the same geometry
	// no matter what intermediate frames occurred.
	orig map[string]roadmap.Span

	// startExtremalID/endExtremalID identify the member item with the
	// chronologically earliest original start / latest original end; group
	// resize gestures touch only that one item.
	startExtremalID string
	endExtremalID   string

	dragging bool
}

// newItemGesture enters Pending for a single-item gesture.
func newItemGesture(it model.Item, kind dragKind, x, y int) *gesture {
	return &gesture{
		itemID:          it.ID,
		kind:            kind,
		originX:         x,
		originY:         y,
		orig:            map[string]roadmap.Span{it.ID: {Start: it.StartDate, End: it.EndDate}},
		startExtremalID: it.ID,
		endExtremalID:   it.ID,
	}
}

// newGroupGesture enters Pending for a group gesture, snapshotting every
// member item's dates at this instant. Returns nil for a group with no items
// (nothing to drag).
func newGroupGesture(st *model.State, groupID string, kind dragKind, x, y int) *gesture {
	g := &gesture{
		groupID: groupID,
		kind:    kind,
		originX: x,
		originY: y,
		orig:    map[string]roadmap.Span{},
	}
	for _, it := range st.Items {
		if it.GroupID != groupID {
			continue
		}
		g.orig[it.ID] = roadmap.Span{Start: it.StartDate, End: it.EndDate}
		if g.startExtremalID == "" || it.StartDate < g.orig[g.startExtremalID].Start {
			g.startExtremalID = it.ID
		}
		if g.endExtremalID == "" || it.EndDate > g.orig[g.endExtremalID].End {
			g.endExtremalID = it.ID
		}
	}
	if len(g.orig) == 0 {
		return nil
	}
	return g
}

// motion handles one pointer-move frame. Until the threshold is crossed
// nothing mutates. After that, every accepted frame commits immediately as a
// silent mutation (live feedback that never enters the undo log). Frames
// whose candidate would invert an interval are rejected silently; the
// previous valid geometry is retained for that frame.
func (g *gesture) motion(rm *roadmap.Roadmap, x, y int) error {
	dx := x - g.originX
	dy := y - g.originY
	if !g.dragging {
		if abs(dx) < dragThreshold && abs(dy) < dragThreshold {
			return nil
		}
		g.dragging = true
	}

	spans := g.spansForDelta(timeline.DeltaToDays(dx))
	if len(spans) == 0 {
		return nil
	}
	return rm.SetItemSpans(spans, "")
}

// spansForDelta computes the frame's target spans from the original snapshot
// plus the total day delta. An empty result means the frame is rejected and
// the previously committed geometry stands.
func (g *gesture) spansForDelta(dayDelta int) map[string]roadmap.Span {
	switch g.kind {
	case dragMove:
		out := make(map[string]roadmap.Span, len(g.orig))
		for id, sp := range g.orig {
			out[id] = roadmap.Span{
				Start: timeline.AddDays(sp.Start, dayDelta),
				End:   timeline.AddDays(sp.End, dayDelta),
			}
		}
		return out

	case dragResizeStart:
		sp := g.orig[g.startExtremalID]
		candidate := timeline.AddDays(sp.Start, dayDelta)
		if candidate >= sp.End {
			return nil
		}
		return map[string]roadmap.Span{g.startExtremalID: {Start: candidate, End: sp.End}}

	case dragResizeEnd:
		sp := g.orig[g.endExtremalID]
		candidate := timeline.AddDays(sp.End, dayDelta)
		if candidate <= sp.Start {
			return nil
		}
		return map[string]roadmap.Span{g.endExtremalID: {Start: sp.Start, End: candidate}}
	}
	return nil
}

// release ends the gesture. A release that never left Pending is a click:
// the caller opens the detail surface for the target, and no mutation was
// committed for the gesture. A release after Dragging changes nothing
// further; the final geometry is whatever the last silent frame committed,
// and no undo entry is created for the completed drag.
func (g *gesture) release() (clicked bool) {
	return !g.dragging
}

// cancel restores the pre-drag snapshot, silently (drags are invisible to
// the undo log whether they finish or abort).
func (g *gesture) cancel(rm *roadmap.Roadmap) error {
	if !g.dragging {
		return nil
	}
	return rm.SetItemSpans(g.orig, "")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
