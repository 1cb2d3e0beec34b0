package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/dockspace/internal/application/usecase"
	"github.com/bnema/dockspace/internal/cli/styles"
)

var (
	placePreset string
	placeWidth  float64
	placeHeight float64
)

var placeCmd = &cobra.Command{
	Use:   "place X Y",
	Short: "Classify a drop point",
	Long: `Show which leaf and drop zone a window dragged to (X, Y) would land in,
along with the zone's highlight polygon in viewport coordinates.

Examples:
  dockspace place 5 50
  dockspace place 400 300 --preset single`,
	Args: cobra.ExactArgs(2),
	RunE: runPlace,
}

func init() {
	rootCmd.AddCommand(placeCmd)
	placeCmd.Flags().StringVarP(&placePreset, "preset", "p", "", "layout preset")
	addViewportFlags(placeCmd, &placeWidth, &placeHeight)
}

func runPlace(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid y %q: %w", args[1], err)
	}

	dock, err := a.NewDock(placePreset, a.Viewport(placeWidth, placeHeight))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), describePlacement(a.Renderer, dock, x, y))
	return nil
}

func describePlacement(r *styles.DockRenderer, dock *usecase.DockContainer, x, y float64) string {
	return r.RenderPlacement(x, y, dock.GetPlacement(x, y))
}
