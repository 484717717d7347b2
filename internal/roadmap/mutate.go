package roadmap

import (
	"fmt"

	"roadmap-cli/internal/model"
	"roadmap-cli/internal/store"
	"roadmap-cli/internal/timeline"
)

const (
	defaultGroupSpanDays = 14
	defaultItemSpanDays  = 7
)

// ItemPatch is a partial item update; nil fields are left untouched.
type ItemPatch struct {
	Title       *string
	StartDate   *string
	EndDate     *string
	AssigneeIDs *[]string
	Notes       *string
}

// GroupPatch is a partial group update; nil fields are left untouched.
type GroupPatch struct {
	Title *string
	Color *string
}

// AddGroup creates a group together with one seed item spanning today through
// today+14 days, as a single described mutation.
func (r *Roadmap) AddGroup(title string) error {
	groupID := store.NextID(r.state, "grp")
	itemID := store.NextID(r.state, "item")
	color := store.GroupColors[len(r.state.Groups)%len(store.GroupColors)]
	today := timeline.Today()

	return r.apply(fmt.Sprintf("Added group %q", title), func(st *model.State) {
		st.Groups = append(st.Groups, model.Group{
			ID:      groupID,
			Title:   title,
			Color:   color,
			ItemIDs: []string{itemID},
		})
		st.Items = append(st.Items, model.Item{
			ID:          itemID,
			GroupID:     groupID,
			Title:       "New item",
			StartDate:   today,
			EndDate:     timeline.AddDays(today, defaultGroupSpanDays),
			AssigneeIDs: []string{},
		})
	})
}

// AddItem creates a standalone item in an existing group spanning today
// through today+7 days (described mutation).
func (r *Roadmap) AddItem(groupID string) error {
	if _, ok := r.state.FindGroup(groupID); !ok {
		return NotFoundError{Kind: "group", ID: groupID}
	}
	itemID := store.NextID(r.state, "item")
	today := timeline.Today()

	return r.apply("Added item", func(st *model.State) {
		st.Items = append(st.Items, model.Item{
			ID:          itemID,
			GroupID:     groupID,
			Title:       "New item",
			StartDate:   today,
			EndDate:     timeline.AddDays(today, defaultItemSpanDays),
			AssigneeIDs: []string{},
		})
		if g, ok := st.FindGroup(groupID); ok {
			g.ItemIDs = append(g.ItemIDs, itemID)
		}
	})
}

// UpdateItem applies a field-level update. An empty description makes the
// mutation silent (excluded from the undo log); drag frames rely on that.
// A patch that would invert the interval is rejected before anything is
// committed or pushed.
func (r *Roadmap) UpdateItem(id string, patch ItemPatch, description string) error {
	it, ok := r.state.FindItem(id)
	if !ok {
		return NotFoundError{Kind: "item", ID: id}
	}

	start, end := it.StartDate, it.EndDate
	if patch.StartDate != nil {
		start = *patch.StartDate
	}
	if patch.EndDate != nil {
		end = *patch.EndDate
	}
	if start > end {
		return InvertedSpanError{ItemID: id, Start: start, End: end}
	}

	return r.apply(description, func(st *model.State) {
		it, ok := st.FindItem(id)
		if !ok {
			return
		}
		if patch.Title != nil {
			it.Title = *patch.Title
		}
		it.StartDate = start
		it.EndDate = end
		if patch.AssigneeIDs != nil {
			it.AssigneeIDs = append([]string(nil), (*patch.AssigneeIDs)...)
		}
		if patch.Notes != nil {
			it.Notes = *patch.Notes
		}
	})
}

// SetItemSpans commits new date intervals for several items at once, as one
// mutation (one undo entry when described, one persist either way). Group
// move drags use this so every member shifts in the same commit.
func (r *Roadmap) SetItemSpans(spans map[string]Span, description string) error {
	for id, sp := range spans {
		if _, ok := r.state.FindItem(id); !ok {
			return NotFoundError{Kind: "item", ID: id}
		}
		if sp.Start > sp.End {
			return InvertedSpanError{ItemID: id, Start: sp.Start, End: sp.End}
		}
	}
	return r.apply(description, func(st *model.State) {
		for id, sp := range spans {
			if it, ok := st.FindItem(id); ok {
				it.StartDate = sp.Start
				it.EndDate = sp.End
			}
		}
	})
}

// UpdateGroup applies a field-level group update. Group edits are silent:
// they never enter the undo log.
func (r *Roadmap) UpdateGroup(id string, patch GroupPatch) error {
	if _, ok := r.state.FindGroup(id); !ok {
		return NotFoundError{Kind: "group", ID: id}
	}
	return r.apply("", func(st *model.State) {
		g, ok := st.FindGroup(id)
		if !ok {
			return
		}
		if patch.Title != nil {
			g.Title = *patch.Title
		}
		if patch.Color != nil {
			g.Color = *patch.Color
		}
	})
}

// DeleteItem removes the item and drops its id from the owning group's
// back-reference (described mutation).
func (r *Roadmap) DeleteItem(id string) error {
	it, ok := r.state.FindItem(id)
	if !ok {
		return NotFoundError{Kind: "item", ID: id}
	}
	groupID := it.GroupID
	return r.apply("Deleted item", func(st *model.State) {
		items := st.Items[:0]
		for _, x := range st.Items {
			if x.ID != id {
				items = append(items, x)
			}
		}
		st.Items = items
		if g, ok := st.FindGroup(groupID); ok {
			ids := g.ItemIDs[:0]
			for _, x := range g.ItemIDs {
				if x != id {
					ids = append(ids, x)
				}
			}
			g.ItemIDs = ids
		}
	})
}

// DeleteGroup removes the group and every member item atomically (described
// mutation). No surviving item may reference the removed group.
func (r *Roadmap) DeleteGroup(id string) error {
	if _, ok := r.state.FindGroup(id); !ok {
		return NotFoundError{Kind: "group", ID: id}
	}
	return r.apply("Deleted group", func(st *model.State) {
		groups := st.Groups[:0]
		for _, g := range st.Groups {
			if g.ID != id {
				groups = append(groups, g)
			}
		}
		st.Groups = groups
		items := st.Items[:0]
		for _, it := range st.Items {
			if it.GroupID != id {
				items = append(items, it)
			}
		}
		st.Items = items
	})
}
