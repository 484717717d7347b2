package roadmap

import (
	"errors"
	"testing"

	"roadmap-cli/internal/timeline"
)

func TestAddGroupSeedsOneItem(t *testing.T) {
	rm := openTest(t)
	if err := rm.AddGroup("Platform"); err != nil {
		t.Fatalf("add group: %v", err)
	}

	if len(rm.state.Groups) != 1 || len(rm.state.Items) != 1 {
		t.Fatalf("got %d groups / %d items, want 1/1", len(rm.state.Groups), len(rm.state.Items))
	}
	g := rm.state.Groups[0]
	it := rm.state.Items[0]
	if g.Title != "Platform" || g.Color == "" {
		t.Fatalf("group = %+v", g)
	}
	if it.GroupID != g.ID || len(g.ItemIDs) != 1 || g.ItemIDs[0] != it.ID {
		t.Fatalf("back-reference not established: %+v / %+v", g, it)
	}

	today := timeline.Today()
	if it.StartDate != today || it.EndDate != timeline.AddDays(today, 14) {
		t.Fatalf("seed span = %s..%s, want %s..%s", it.StartDate, it.EndDate, today, timeline.AddDays(today, 14))
	}

	ack, ok := rm.LastAck()
	if !ok || ack.Description != `Added group "Platform"` {
		t.Fatalf("ack = %+v", ack)
	}
	if rm.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d, want 1", rm.UndoDepth())
	}
}

func TestAddItemDefaultsAndBackref(t *testing.T) {
	rm := openTest(t)
	groupID, _ := seedGroup(t, rm, "G", []Span{{Start: "2025-02-03", End: "2025-02-07"}})

	if err := rm.AddItem(groupID); err != nil {
		t.Fatalf("add item: %v", err)
	}
	it := rm.state.Items[len(rm.state.Items)-1]
	today := timeline.Today()
	if it.StartDate != today || it.EndDate != timeline.AddDays(today, 7) {
		t.Fatalf("span = %s..%s, want today..today+7", it.StartDate, it.EndDate)
	}
	g, _ := rm.state.FindGroup(groupID)
	if g.ItemIDs[len(g.ItemIDs)-1] != it.ID {
		t.Fatalf("item id missing from group back-reference")
	}

	var nf NotFoundError
	if err := rm.AddItem("grp-missing"); !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestUpdateItemRejectsInvertedSpan(t *testing.T) {
	rm := openTest(t)
	_, itemIDs := seedGroup(t, rm, "G", []Span{{Start: "2025-02-03", End: "2025-02-07"}})

	bad := "2025-02-10"
	err := rm.UpdateItem(itemIDs[0], ItemPatch{StartDate: &bad}, "Changed item start date")
	var inv InvertedSpanError
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want InvertedSpanError", err)
	}

	// Rejected before commit: state, undo log, and ack are all untouched.
	it, _ := rm.state.FindItem(itemIDs[0])
	if it.StartDate != "2025-02-03" || it.EndDate != "2025-02-07" {
		t.Fatalf("span changed after rejected update: %s..%s", it.StartDate, it.EndDate)
	}
	if rm.UndoDepth() != 0 {
		t.Fatalf("rejected update must not push an undo entry")
	}
	if _, ok := rm.LastAck(); ok {
		t.Fatalf("rejected update must not raise an ack")
	}

	// Equal endpoints are a valid single-day span.
	sameDay := "2025-02-07"
	if err := rm.UpdateItem(itemIDs[0], ItemPatch{StartDate: &sameDay}, ""); err != nil {
		t.Fatalf("single-day span rejected: %v", err)
	}
}

func TestSetItemSpansSingleCommit(t *testing.T) {
	rm := openTest(t)
	_, itemIDs := seedGroup(t, rm, "G", []Span{
		{Start: "2025-02-03", End: "2025-02-07"},
		{Start: "2025-02-10", End: "2025-02-14"},
	})

	spans := map[string]Span{
		itemIDs[0]: {Start: "2025-02-04", End: "2025-02-08"},
		itemIDs[1]: {Start: "2025-02-11", End: "2025-02-15"},
	}
	if err := rm.SetItemSpans(spans, "moved"); err != nil {
		t.Fatalf("set spans: %v", err)
	}
	if rm.UndoDepth() != 1 {
		t.Fatalf("batch must be one undo entry, got depth %d", rm.UndoDepth())
	}

	// One inverted member rejects the whole batch up front.
	err := rm.SetItemSpans(map[string]Span{
		itemIDs[0]: {Start: "2025-02-05", End: "2025-02-09"},
		itemIDs[1]: {Start: "2025-02-20", End: "2025-02-15"},
	}, "")
	var inv InvertedSpanError
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want InvertedSpanError", err)
	}
	it, _ := rm.state.FindItem(itemIDs[0])
	if it.StartDate != "2025-02-04" {
		t.Fatalf("partial batch applied: %s", it.StartDate)
	}
}

func TestDeleteItemScrubsBackref(t *testing.T) {
	rm := openTest(t)
	groupID, itemIDs := seedGroup(t, rm, "G", []Span{
		{Start: "2025-02-03", End: "2025-02-07"},
		{Start: "2025-02-10", End: "2025-02-14"},
	})

	if err := rm.DeleteItem(itemIDs[0]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := rm.state.FindItem(itemIDs[0]); ok {
		t.Fatalf("item still present")
	}
	g, _ := rm.state.FindGroup(groupID)
	for _, id := range g.ItemIDs {
		if id == itemIDs[0] {
			t.Fatalf("deleted item still referenced by group")
		}
	}
}

func TestDeleteGroupCascades(t *testing.T) {
	rm := openTest(t)
	gA, _ := seedGroup(t, rm, "A", []Span{{Start: "2025-02-03", End: "2025-02-07"}})
	gB, bItems := seedGroup(t, rm, "B", []Span{{Start: "2025-03-03", End: "2025-03-07"}})

	if err := rm.DeleteGroup(gA); err != nil {
		t.Fatalf("delete group: %v", err)
	}
	if _, ok := rm.state.FindGroup(gA); ok {
		t.Fatalf("group still present")
	}
	for _, it := range rm.state.Items {
		if it.GroupID == gA {
			t.Fatalf("orphaned item %s survived the cascade", it.ID)
		}
	}
	// The other group's items are untouched.
	if _, ok := rm.state.FindItem(bItems[0]); !ok {
		t.Fatalf("unrelated item deleted")
	}
	if _, ok := rm.state.FindGroup(gB); !ok {
		t.Fatalf("unrelated group deleted")
	}
}

func TestUpdateGroupIsSilent(t *testing.T) {
	rm := openTest(t)
	groupID, _ := seedGroup(t, rm, "Old", []Span{{Start: "2025-02-03", End: "2025-02-07"}})

	title := "New"
	if err := rm.UpdateGroup(groupID, GroupPatch{Title: &title}); err != nil {
		t.Fatalf("update group: %v", err)
	}
	g, _ := rm.state.FindGroup(groupID)
	if g.Title != "New" {
		t.Fatalf("title = %s", g.Title)
	}
	if rm.UndoDepth() != 0 {
		t.Fatalf("group edits must not enter the undo log")
	}
	if _, ok := rm.LastAck(); ok {
		t.Fatalf("group edits must not raise an ack")
	}
}
