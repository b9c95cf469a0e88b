package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/raymeasure/internal/app"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a model in the measurement viewer",
	Long: `Open an .stl or .scad file in a window. Hold the measure key and click two
surface points to measure; drag to orbit, scroll to zoom. The model reloads
when the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), cfg, args[0])
}
