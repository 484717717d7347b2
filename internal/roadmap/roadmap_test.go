package roadmap

import (
	"testing"

	"roadmap-cli/internal/store"
)

func openTest(t *testing.T) *Roadmap {
	t.Helper()
	s := store.Store{Dir: t.TempDir()}
	if err := s.Ensure(); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	rm, err := Open(s)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return rm
}

// seedGroup creates a group whose seed item is re-dated to spans[0], then adds
// one more item per extra span. Silent span updates keep the undo log empty.
func seedGroup(t *testing.T, rm *Roadmap, title string, spans []Span) (string, []string) {
	t.Helper()
	if err := rm.AddGroup(title); err != nil {
		t.Fatalf("add group: %v", err)
	}
	groupID := rm.state.Groups[len(rm.state.Groups)-1].ID

	var itemIDs []string
	itemIDs = append(itemIDs, rm.state.Items[len(rm.state.Items)-1].ID)
	for range spans[1:] {
		if err := rm.AddItem(groupID); err != nil {
			t.Fatalf("add item: %v", err)
		}
		itemIDs = append(itemIDs, rm.state.Items[len(rm.state.Items)-1].ID)
	}

	all := map[string]Span{}
	for i, id := range itemIDs {
		all[id] = spans[i]
	}
	if err := rm.SetItemSpans(all, ""); err != nil {
		t.Fatalf("set spans: %v", err)
	}

	// Described seeding is noise for most tests; drain it.
	rm.undo = nil
	rm.ack = nil
	return groupID, itemIDs
}
