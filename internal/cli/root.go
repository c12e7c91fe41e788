// Package cli builds the gocube command tree. The interactive edit command
// is added by the binary so this package stays free of the window stack.
package cli

import (
	"github.com/philipparndt/gocube/internal/config"
	"github.com/philipparndt/gocube/version"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the root command with every headless subcommand
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gocube",
		Short: "Interactive cube scene editor",
		Long: `gocube places, selects and transforms cubes in a 3D scene with
translate, rotate and scale gizmos. Scenes are stored as .gocube project
files that can be inspected, rendered and exported from the command line.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", config.DefaultFile, "Path to the YAML preferences file")

	root.AddCommand(
		newNewCmd(),
		newInfoCmd(),
		newRenderCmd(),
		newExportCmd(),
		newImportCmd(),
	)
	return root
}

// LoadConfig reads the file named by --config and applies the
// --width/--height flags when the command defines them
func LoadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path = config.DefaultFile
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	var flags config.Flags
	if f := cmd.Flags().Lookup("width"); f != nil {
		flags.Width, _ = cmd.Flags().GetInt("width")
	}
	if f := cmd.Flags().Lookup("height"); f != nil {
		flags.Height, _ = cmd.Flags().GetInt("height")
	}
	cfg.Resolve(flags)
	return cfg, nil
}
