package cli

import (
	"fmt"
	"strings"

	"roadmap-cli/internal/roadmap"
	"roadmap-cli/internal/timeline"

	"github.com/spf13/cobra"
)

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage items",
	}

	var listGroup string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List items (optionally scoped to one group)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}
			items := rm.State().Items
			if listGroup != "" {
				items = rm.State().ItemsOfGroup(listGroup)
			}
			if items == nil {
				items = rm.State().Items[:0]
			}
			return writeOut(cmd, app, items)
		},
	}
	listCmd.Flags().StringVar(&listGroup, "group", "", "Only items in this group")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "add <group-id>",
		Short: "Create an item in a group, spanning today through next week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}
			if err := rm.AddItem(args[0]); err != nil {
				return err
			}
			items := rm.State().Items
			return writeOut(cmd, app, items[len(items)-1])
		},
	})

	var (
		setTitle     string
		setStart     string
		setEnd       string
		setNotes     string
		setAssignees string
	)
	setCmd := &cobra.Command{
		Use:   "set <item-id>",
		Short: "Update item fields; an update that would invert the dates is rejected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}

			var patch roadmap.ItemPatch
			var desc string
			if cmd.Flags().Changed("title") {
				patch.Title = &setTitle
				desc = fmt.Sprintf("Renamed item to %q", setTitle)
			}
			if cmd.Flags().Changed("start") {
				if err := validDate(setStart); err != nil {
					return err
				}
				patch.StartDate = &setStart
				desc = "Changed item start date"
			}
			if cmd.Flags().Changed("end") {
				if err := validDate(setEnd); err != nil {
					return err
				}
				patch.EndDate = &setEnd
				desc = "Changed item end date"
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &setNotes
				desc = "Edited item notes"
			}
			if cmd.Flags().Changed("assignees") {
				ids := splitIDs(setAssignees)
				patch.AssigneeIDs = &ids
				desc = "Updated assignees"
			}
			if desc == "" {
				return fmt.Errorf("nothing to update; pass at least one of --title/--start/--end/--notes/--assignees")
			}

			if err := rm.UpdateItem(args[0], patch, desc); err != nil {
				return err
			}
			it, _ := rm.State().FindItem(args[0])
			return writeOut(cmd, app, it)
		},
	}
	setCmd.Flags().StringVar(&setTitle, "title", "", "New title")
	setCmd.Flags().StringVar(&setStart, "start", "", "Start date (YYYY-MM-DD)")
	setCmd.Flags().StringVar(&setEnd, "end", "", "End date (YYYY-MM-DD)")
	setCmd.Flags().StringVar(&setNotes, "notes", "", "Markdown notes")
	setCmd.Flags().StringVar(&setAssignees, "assignees", "", "Comma-separated person ids (replaces the set)")
	cmd.AddCommand(setCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}
			if err := rm.DeleteItem(args[0]); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	})

	return cmd
}

func validDate(s string) error {
	if _, err := timeline.ParseDate(s); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return nil
}

func splitIDs(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
