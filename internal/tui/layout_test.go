package tui

import "testing"

func TestZoneAtItemBar(t *testing.T) {
	r := timelineRow{kind: rowItemBar, barStart: 10, barEnd: 30}
	cases := []struct {
		x    int
		zone hitZone
	}{
		{9, zoneNone},
		{10, zoneResizeStart},
		{11, zoneResizeStart},
		{12, zoneMove},
		{20, zoneMove},
		{27, zoneMove},
		{28, zoneResizeEnd},
		{29, zoneResizeEnd},
		{30, zoneNone},
	}
	for _, c := range cases {
		if got := r.zoneAt(c.x); got != c.zone {
			t.Fatalf("zoneAt(%d) = %v, want %v", c.x, got, c.zone)
		}
	}
}

func TestZoneAtGroupBarTwistyFirstCell(t *testing.T) {
	r := timelineRow{kind: rowGroupBar, barStart: 0, barEnd: 20}
	if got := r.zoneAt(0); got != zoneTwisty {
		t.Fatalf("first cell = %v, want twisty", got)
	}
	if got := r.zoneAt(1); got != zoneResizeStart {
		t.Fatalf("cell 1 = %v, want resize-start", got)
	}
	if got := r.zoneAt(10); got != zoneMove {
		t.Fatalf("middle = %v, want move", got)
	}
	if got := r.zoneAt(19); got != zoneResizeEnd {
		t.Fatalf("last cell = %v, want resize-end", got)
	}
}

func TestZoneAtNarrowBarIsMoveOnly(t *testing.T) {
	r := timelineRow{kind: rowItemBar, barStart: 5, barEnd: 9}
	for x := 5; x < 9; x++ {
		if got := r.zoneAt(x); got != zoneMove {
			t.Fatalf("zoneAt(%d) = %v, want move for a narrow bar", x, got)
		}
	}
}

func TestZoneAtAddItemRow(t *testing.T) {
	r := timelineRow{kind: rowAddItem, barStart: 4, barEnd: 16}
	if got := r.zoneAt(8); got != zoneAddItem {
		t.Fatalf("zoneAt(8) = %v, want add-item", got)
	}
	if got := r.zoneAt(20); got != zoneNone {
		t.Fatalf("zoneAt(20) = %v, want none", got)
	}
}
