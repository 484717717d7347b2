package tui

import (
	"testing"

	"roadmap-cli/internal/roadmap"
	"roadmap-cli/internal/store"
)

func testRoadmap(t *testing.T) *roadmap.Roadmap {
	t.Helper()
	s := store.Store{Dir: t.TempDir()}
	if err := s.Ensure(); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	rm, err := roadmap.Open(s)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return rm
}

// seedTimeline builds one group with members at the given spans and returns
// the group id plus member ids in creation order.
func seedTimeline(t *testing.T, rm *roadmap.Roadmap, spans []roadmap.Span) (string, []string) {
	t.Helper()
	if err := rm.AddGroup("G"); err != nil {
		t.Fatalf("add group: %v", err)
	}
	st := rm.State()
	groupID := st.Groups[len(st.Groups)-1].ID
	ids := []string{st.Items[len(st.Items)-1].ID}
	for range spans[1:] {
		if err := rm.AddItem(groupID); err != nil {
			t.Fatalf("add item: %v", err)
		}
		ids = append(ids, rm.State().Items[len(rm.State().Items)-1].ID)
	}
	all := map[string]roadmap.Span{}
	for i, id := range ids {
		all[id] = spans[i]
	}
	if err := rm.SetItemSpans(all, ""); err != nil {
		t.Fatalf("set spans: %v", err)
	}
	return groupID, ids
}

func itemSpan(t *testing.T, rm *roadmap.Roadmap, id string) roadmap.Span {
	t.Helper()
	it, ok := rm.State().FindItem(id)
	if !ok {
		t.Fatalf("item %s missing", id)
	}
	return roadmap.Span{Start: it.StartDate, End: it.EndDate}
}

func TestGestureBelowThresholdIsClick(t *testing.T) {
	rm := testRoadmap(t)
	_, ids := seedTimeline(t, rm, []roadmap.Span{{Start: "2025-02-03", End: "2025-02-07"}})
	depth := rm.UndoDepth()

	it, _ := rm.State().FindItem(ids[0])
	g := newItemGesture(*it, dragMove, 10, 5)

	// One-cell jitter stays in Pending: no mutation at all.
	if err := g.motion(rm, 11, 5); err != nil {
		t.Fatalf("motion: %v", err)
	}
	if sp := itemSpan(t, rm, ids[0]); sp.Start != "2025-02-03" {
		t.Fatalf("pending gesture mutated the item: %+v", sp)
	}
	if !g.release() {
		t.Fatalf("sub-threshold release must report a click")
	}
	if rm.UndoDepth() != depth {
		t.Fatalf("click changed the undo log")
	}
}

func TestGestureMoveShiftsWholeSpan(t *testing.T) {
	rm := testRoadmap(t)
	_, ids := seedTimeline(t, rm, []roadmap.Span{{Start: "2025-02-03", End: "2025-02-07"}})
	depth := rm.UndoDepth()

	it, _ := rm.State().FindItem(ids[0])
	g := newItemGesture(*it, dragMove, 10, 5)

	// 8 cells right at 4 cells/day = +2 days.
	if err := g.motion(rm, 18, 5); err != nil {
		t.Fatalf("motion: %v", err)
	}
	sp := itemSpan(t, rm, ids[0])
	if sp.Start != "2025-02-05" || sp.End != "2025-02-09" {
		t.Fatalf("span = %+v, want 2025-02-05..2025-02-09", sp)
	}
	if g.release() {
		t.Fatalf("threshold-crossing gesture must not report a click")
	}
	// Drag frames are silent and completed drags are not undoable.
	if rm.UndoDepth() != depth {
		t.Fatalf("drag entered the undo log")
	}
}

func TestGestureReplayIndependence(t *testing.T) {
	rm := testRoadmap(t)
	_, ids := seedTimeline(t, rm, []roadmap.Span{{Start: "2025-02-03", End: "2025-02-07"}})

	it, _ := rm.State().FindItem(ids[0])
	g := newItemGesture(*it, dragMove, 10, 5)

	// Wander far right, then return to a net +1 day. The result depends only
	// on the final pointer position, not the path.
	for _, x := range []int{30, 50, 22, 14} {
		if err := g.motion(rm, x, 5); err != nil {
			t.Fatalf("motion: %v", err)
		}
	}
	sp := itemSpan(t, rm, ids[0])
	if sp.Start != "2025-02-04" || sp.End != "2025-02-08" {
		t.Fatalf("span = %+v, want 2025-02-04..2025-02-08", sp)
	}
}

func TestGestureResizeStartRejectsInversion(t *testing.T) {
	rm := testRoadmap(t)
	_, ids := seedTimeline(t, rm, []roadmap.Span{{Start: "2025-02-03", End: "2025-02-07"}})

	it, _ := rm.State().FindItem(ids[0])
	g := newItemGesture(*it, dragResizeStart, 10, 5)

	// +2 days is valid (start 02-05 < end 02-07).
	if err := g.motion(rm, 18, 5); err != nil {
		t.Fatalf("motion: %v", err)
	}
	if sp := itemSpan(t, rm, ids[0]); sp.Start != "2025-02-05" || sp.End != "2025-02-07" {
		t.Fatalf("span = %+v", sp)
	}

	// +6 days would invert; the frame is rejected and the last valid
	// geometry stays in place.
	if err := g.motion(rm, 34, 5); err != nil {
		t.Fatalf("motion: %v", err)
	}
	if sp := itemSpan(t, rm, ids[0]); sp.Start != "2025-02-05" || sp.End != "2025-02-07" {
		t.Fatalf("rejected frame changed the span: %+v", sp)
	}

	// Equal endpoints are also rejected for resize (a drag cannot collapse
	// the interval to zero from the start edge).
	if err := g.motion(rm, 26, 5); err != nil { // +4 days -> start == end
		t.Fatalf("motion: %v", err)
	}
	if sp := itemSpan(t, rm, ids[0]); sp.Start != "2025-02-05" {
		t.Fatalf("span = %+v", sp)
	}
}

func TestGroupGestureMoveShiftsAllMembers(t *testing.T) {
	rm := testRoadmap(t)
	groupID, ids := seedTimeline(t, rm, []roadmap.Span{
		{Start: "2025-02-03", End: "2025-02-07"},
		{Start: "2025-02-10", End: "2025-02-14"},
	})

	g := newGroupGesture(rm.State(), groupID, dragMove, 10, 5)
	if g == nil {
		t.Fatalf("gesture is nil for a populated group")
	}
	if err := g.motion(rm, 14, 5); err != nil { // +1 day
		t.Fatalf("motion: %v", err)
	}
	if sp := itemSpan(t, rm, ids[0]); sp.Start != "2025-02-04" || sp.End != "2025-02-08" {
		t.Fatalf("member 0 = %+v", sp)
	}
	if sp := itemSpan(t, rm, ids[1]); sp.Start != "2025-02-11" || sp.End != "2025-02-15" {
		t.Fatalf("member 1 = %+v", sp)
	}
}

func TestGroupGestureResizeTouchesExtremalOnly(t *testing.T) {
	rm := testRoadmap(t)
	groupID, ids := seedTimeline(t, rm, []roadmap.Span{
		{Start: "2025-02-03", End: "2025-02-07"},
		{Start: "2025-02-10", End: "2025-02-14"},
	})

	// Resizing the group's end edge moves only the member holding the max
	// end; the other member is untouched.
	g := newGroupGesture(rm.State(), groupID, dragResizeEnd, 10, 5)
	if err := g.motion(rm, 18, 5); err != nil { // +2 days
		t.Fatalf("motion: %v", err)
	}
	if sp := itemSpan(t, rm, ids[1]); sp.End != "2025-02-16" {
		t.Fatalf("extremal end = %s, want 2025-02-16", sp.End)
	}
	if sp := itemSpan(t, rm, ids[0]); sp.Start != "2025-02-03" || sp.End != "2025-02-07" {
		t.Fatalf("non-extremal member changed: %+v", sp)
	}

	// Start edge analogue.
	g = newGroupGesture(rm.State(), groupID, dragResizeStart, 10, 5)
	if err := g.motion(rm, 6, 5); err != nil { // -1 day
		t.Fatalf("motion: %v", err)
	}
	if sp := itemSpan(t, rm, ids[0]); sp.Start != "2025-02-02" {
		t.Fatalf("extremal start = %s, want 2025-02-02", sp.Start)
	}
	if sp := itemSpan(t, rm, ids[1]); sp.Start != "2025-02-10" {
		t.Fatalf("non-extremal member changed: %+v", sp)
	}
}

func TestGroupGestureEmptyGroup(t *testing.T) {
	rm := testRoadmap(t)
	groupID, ids := seedTimeline(t, rm, []roadmap.Span{{Start: "2025-02-03", End: "2025-02-07"}})
	if err := rm.DeleteItem(ids[0]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if g := newGroupGesture(rm.State(), groupID, dragMove, 10, 5); g != nil {
		t.Fatalf("empty group must yield no gesture")
	}
}

func TestGestureCancelRestoresSnapshot(t *testing.T) {
	rm := testRoadmap(t)
	_, ids := seedTimeline(t, rm, []roadmap.Span{{Start: "2025-02-03", End: "2025-02-07"}})
	depth := rm.UndoDepth()

	it, _ := rm.State().FindItem(ids[0])
	g := newItemGesture(*it, dragMove, 10, 5)
	if err := g.motion(rm, 26, 5); err != nil { // +4 days
		t.Fatalf("motion: %v", err)
	}
	if sp := itemSpan(t, rm, ids[0]); sp.Start != "2025-02-07" {
		t.Fatalf("span = %+v", sp)
	}

	if err := g.cancel(rm); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	sp := itemSpan(t, rm, ids[0])
	if sp.Start != "2025-02-03" || sp.End != "2025-02-07" {
		t.Fatalf("cancel did not restore the snapshot: %+v", sp)
	}
	if rm.UndoDepth() != depth {
		t.Fatalf("cancel entered the undo log")
	}
}
