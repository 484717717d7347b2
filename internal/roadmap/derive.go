package roadmap

import (
	"sort"

	"roadmap-cli/internal/model"
)

// GroupRange derives a group's date interval as (min start, max end) over its
// member items. ok is false for a group with no items: "no schedule yet" is a
// valid state, not an error. The range is recomputed from the live document on
// every call; nothing is cached.
func (r *Roadmap) GroupRange(groupID string) (Span, bool) {
	return groupRange(r.state, groupID)
}

func groupRange(st *model.State, groupID string) (Span, bool) {
	var sp Span
	found := false
	for _, it := range st.Items {
		if it.GroupID != groupID {
			continue
		}
		if !found {
			sp = Span{Start: it.StartDate, End: it.EndDate}
			found = true
			continue
		}
		if it.StartDate < sp.Start {
			sp.Start = it.StartDate
		}
		if it.EndDate > sp.End {
			sp.End = it.EndDate
		}
	}
	return sp, found
}

// GroupAssignees derives the union of member items' assignees, de-duplicated,
// ordered by first occurrence scanning items in store order.
func (r *Roadmap) GroupAssignees(groupID string) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range r.state.Items {
		if it.GroupID != groupID {
			continue
		}
		for _, id := range it.AssigneeIDs {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// SortedGroups returns groups in display order: ascending by derived range
// start, rangeless groups after all ranged ones, ties keeping insertion order.
func (r *Roadmap) SortedGroups() []model.Group {
	out := make([]model.Group, len(r.state.Groups))
	copy(out, r.state.Groups)
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := groupRange(r.state, out[i].ID)
		b, bok := groupRange(r.state, out[j].ID)
		if aok != bok {
			return aok
		}
		if !aok {
			return false
		}
		return a.Start < b.Start
	})
	return out
}
