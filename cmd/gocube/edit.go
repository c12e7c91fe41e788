package main

import (
	"github.com/philipparndt/gocube/internal/app"
	"github.com/philipparndt/gocube/internal/cli"
	"github.com/philipparndt/gocube/pkg/project"
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the interactive editor",
		Long: `Open a window to place, select and transform cubes. The project is
created on the first save (Ctrl+S) when the file does not exist and is
reloaded automatically when it changes on disk.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = project.FileName(args[0])
			}
			return app.Run(app.Options{ProjectPath: path, Config: cfg})
		},
	}

	cmd.Flags().Int("width", 0, "Window width (default from config)")
	cmd.Flags().Int("height", 0, "Window height (default from config)")
	return cmd
}
