package model

// Person is a member of the roadmap's people pool. Color is a fixed swatch
// reference used for the avatar glyph when no avatar image is configured.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarRef string `json:"avatarRef,omitempty"`
	Color     string `json:"color"`
}

// Item is a schedulable unit spanning a calendar-date interval, owned by
// exactly one group. Dates are YYYY-MM-DD strings; lexicographic order equals
// chronological order. Invariant: StartDate <= EndDate in every committed state.
type Item struct {
	ID          string   `json:"id"`
	GroupID     string   `json:"groupId"`
	Title       string   `json:"title"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	AssigneeIDs []string `json:"assigneeIds"`
	Notes       string   `json:"notes,omitempty"`
}

// Group aggregates related items. It stores no schedule of its own: its date
// range and assignee set are always derived from member items. ItemIDs is a
// denormalized back-reference kept equal to the set of items whose GroupID
// points here.
type Group struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Color   string   `json:"color"`
	ItemIDs []string `json:"itemIds"`
}

// State is the whole persisted document: the three entity collections.
type State struct {
	Groups []Group  `json:"groups"`
	Items  []Item   `json:"items"`
	People []Person `json:"people"`
}

// Clone returns a deep copy. Undo snapshots depend on clones being fully
// independent of the live state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := &State{
		Groups: make([]Group, len(s.Groups)),
		Items:  make([]Item, len(s.Items)),
		People: make([]Person, len(s.People)),
	}
	copy(out.People, s.People)
	for i, g := range s.Groups {
		g.ItemIDs = append([]string(nil), g.ItemIDs...)
		out.Groups[i] = g
	}
	for i, it := range s.Items {
		it.AssigneeIDs = append([]string(nil), it.AssigneeIDs...)
		out.Items[i] = it
	}
	return out
}

func (s *State) FindGroup(id string) (*Group, bool) {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i], true
		}
	}
	return nil, false
}

func (s *State) FindItem(id string) (*Item, bool) {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i], true
		}
	}
	return nil, false
}

func (s *State) FindPerson(id string) (*Person, bool) {
	for i := range s.People {
		if s.People[i].ID == id {
			return &s.People[i], true
		}
	}
	return nil, false
}

// ItemsOfGroup returns the group's member items in store order.
func (s *State) ItemsOfGroup(groupID string) []Item {
	var out []Item
	for _, it := range s.Items {
		if it.GroupID == groupID {
			out = append(out, it)
		}
	}
	return out
}
