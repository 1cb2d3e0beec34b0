package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/dockspace/internal/application/usecase"
	"github.com/bnema/dockspace/internal/domain/entity"
	"github.com/bnema/dockspace/internal/logging"
)

var (
	layoutPreset string
	layoutWidth  float64
	layoutHeight float64
	layoutDocks  []string
	layoutUndock []string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print a dock layout",
	Long: `Build a layout from a preset, apply dock and undock operations in order,
then print the resulting tree with each node's rectangle.

Dock operations use the form NAME@X,Y: a new window called NAME is dropped
at the viewport point (X, Y). Undock operations remove the window by name.
Docks run before undocks.

Examples:
  dockspace layout
  dockspace layout --preset single --dock console@10,300
  dockspace layout --undock inspector --undock hierarchy`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().StringVarP(&layoutPreset, "preset", "p", "",
		fmt.Sprintf("layout preset (%s)", strings.Join(usecase.PresetNames(), ", ")))
	addViewportFlags(layoutCmd, &layoutWidth, &layoutHeight)
	layoutCmd.Flags().StringArrayVar(&layoutDocks, "dock", nil, "dock a new window, NAME@X,Y")
	layoutCmd.Flags().StringArrayVar(&layoutUndock, "undock", nil, "undock a window by name")
}

func addViewportFlags(cmd *cobra.Command, width, height *float64) {
	cmd.Flags().Float64Var(width, "width", 0, "viewport width (default from config)")
	cmd.Flags().Float64Var(height, "height", 0, "viewport height (default from config)")
}

func runLayout(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	viewport := a.Viewport(layoutWidth, layoutHeight)
	dock, err := a.NewDock(layoutPreset, viewport)
	if err != nil {
		return err
	}

	if err := applyLayoutOps(dock, viewport, layoutDocks, layoutUndock); err != nil {
		return err
	}

	if err := dock.Validate(); err != nil {
		logging.FromContext(a.Ctx()).Error().Err(err).Msg("dock tree failed validation")
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Renderer.RenderTree(dock.Root()))
	return nil
}

// applyLayoutOps runs the dock specs then the undock names against dock.
func applyLayoutOps(dock *usecase.DockContainer, viewport entity.Rect, docks, undocks []string) error {
	for _, spec := range docks {
		name, x, y, err := parseDockSpec(spec)
		if err != nil {
			return err
		}
		if findWindow(dock, entity.WindowID(name)) != nil {
			return fmt.Errorf("window %q is already docked", name)
		}
		if !dock.AttachWindowAt(entity.NewWindow(entity.WindowID(name), name), x, y) {
			return fmt.Errorf("dock %s: point (%g, %g) is outside the viewport", name, x, y)
		}
		dock.Update(viewport)
	}

	for _, name := range undocks {
		w := findWindow(dock, entity.WindowID(name))
		if w == nil {
			return fmt.Errorf("undock %s: %w", name, usecase.ErrUnknownWindow)
		}
		dock.DetachWindow(w)
		dock.Update(viewport)
	}

	return nil
}

// parseDockSpec parses NAME@X,Y.
func parseDockSpec(spec string) (name string, x, y float64, err error) {
	name, point, ok := strings.Cut(spec, "@")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", 0, 0, fmt.Errorf("invalid dock %q: want NAME@X,Y", spec)
	}

	x, y, err = parsePoint(point)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid dock %q: %w", spec, err)
	}
	return name, x, y, nil
}

// parsePoint parses X,Y.
func parsePoint(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q: want X,Y", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid x %q: %w", xs, err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid y %q: %w", ys, err)
	}
	return x, y, nil
}

func findWindow(dock *usecase.DockContainer, id entity.WindowID) *entity.Window {
	for _, w := range dock.GetWindows() {
		if w.ID == id {
			return w
		}
	}
	return nil
}
