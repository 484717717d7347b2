package cli

import (
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the state directory and seed the roadmap database",
		RunE: func(cmd *cobra.Command, args []string) error {
			rm, err := openRoadmap(app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{
				"dir":    app.Dir,
				"groups": len(rm.State().Groups),
				"items":  len(rm.State().Items),
				"people": len(rm.State().People),
			})
		},
	}
}
