package cli

import (
	"github.com/spf13/cobra"
)

func newPeopleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Manage the people pool",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List people available for assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, rm.State().People)
		},
	})

	return cmd
}
