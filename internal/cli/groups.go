package cli

import (
	"roadmap-cli/internal/model"
	"roadmap-cli/internal/roadmap"

	"github.com/spf13/cobra"
)

// groupOut is the list/show shape for groups: the stored fields plus the
// derived schedule and assignee union.
type groupOut struct {
	model.Group
	RangeStart  string   `json:"rangeStart,omitempty"`
	RangeEnd    string   `json:"rangeEnd,omitempty"`
	AssigneeIDs []string `json:"assigneeIds"`
}

func groupView(rm *roadmap.Roadmap, g model.Group) groupOut {
	out := groupOut{Group: g, AssigneeIDs: rm.GroupAssignees(g.ID)}
	if out.AssigneeIDs == nil {
		out.AssigneeIDs = []string{}
	}
	if rng, ok := rm.GroupRange(g.ID); ok {
		out.RangeStart = rng.Start
		out.RangeEnd = rng.End
	}
	return out
}

func newGroupsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage groups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List groups in display order (derived range and assignees included)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}
			out := []groupOut{}
			for _, g := range rm.SortedGroups() {
				out = append(out, groupView(rm, g))
			}
			return writeOut(cmd, app, out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title>",
		Short: "Create a group with a seed item starting today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}
			if err := rm.AddGroup(args[0]); err != nil {
				return err
			}
			groups := rm.State().Groups
			return writeOut(cmd, app, groupView(rm, groups[len(groups)-1]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <group-id> <title>",
		Short: "Rename a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}
			title := args[1]
			if err := rm.UpdateGroup(args[0], roadmap.GroupPatch{Title: &title}); err != nil {
				return err
			}
			g, _ := rm.State().FindGroup(args[0])
			return writeOut(cmd, app, groupView(rm, *g))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <group-id>",
		Short: "Delete a group and all of its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}
			if err := rm.DeleteGroup(args[0]); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	})

	return cmd
}
