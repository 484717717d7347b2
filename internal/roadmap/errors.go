package roadmap

import "fmt"

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// InvertedSpanError rejects a date edit whose start would land on or after
// its end. Drag frames pre-check and never surface this; it exists for
// direct CLI edits.
type InvertedSpanError struct {
	ItemID string
	Start  string
	End    string
}

func (e InvertedSpanError) Error() string {
	return fmt.Sprintf("item %s: start %s must be on or before end %s", e.ItemID, e.Start, e.End)
}
