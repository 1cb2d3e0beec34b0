// Package cmd provides Cobra CLI commands for dockspace.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockspace/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "dockspace",
		Short: "A binary-split docking engine for editor panels",
		Long: `Dockspace lays out editor windows in a binary space partition tree.

Windows are dropped onto a leaf through one of five zones (left, right,
top, bottom, center). Edge zones split the leaf in two, the center zone
stacks the window as a tab. Removing the last window of a leaf collapses
its split.

Use 'dockspace layout' to print a layout, 'dockspace place' to classify a
drop point and 'dockspace preview' to drag windows around interactively.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
