package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockspace/internal/cli"
	"github.com/bnema/dockspace/internal/cli/model"
	"github.com/bnema/dockspace/internal/infrastructure/config"
	"github.com/bnema/dockspace/internal/logging"
)

var (
	previewPreset string
	previewWidth  float64
	previewHeight float64
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Drag windows around a dock interactively",
	Long: `Open an interactive preview of the dock. Move the cursor to see the drop
zone a dragged window would land in, press enter to dock a new window there
and x to undock the window under the cursor.

Changes to the docking section of the config file apply while the preview
is running.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewPreset, "preset", "p", "", "layout preset")
	addViewportFlags(previewCmd, &previewWidth, &previewHeight)
}

func runPreview(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	viewport := a.Viewport(previewWidth, previewHeight)
	dock, err := a.NewDock(previewPreset, viewport)
	if err != nil {
		return err
	}

	m := model.NewDockPreviewModel(logging.WithComponent(a.Ctx(), "preview"), a.Theme, model.DockPreviewConfig{
		Dock:              dock,
		Viewport:          viewport,
		ResizeStepPercent: a.Config.Docking.ResizeStepPercent,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	// The dock is owned by the program loop, so reloads are sent as messages.
	a.WatchConfig(func(cfg *config.Config) {
		logging.FromContext(a.Ctx()).Info().
			Float64("zone_margin", cfg.Docking.ZoneMargin).
			Msg("docking options reloaded")
		p.Send(model.DockOptionsMsg{
			Options:           cli.DockOptionsFromConfig(cfg),
			ResizeStepPercent: cfg.Docking.ResizeStepPercent,
		})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
