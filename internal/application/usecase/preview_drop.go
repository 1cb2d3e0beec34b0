package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockspace/internal/application/port"
	"github.com/bnema/dockspace/internal/domain/entity"
	"github.com/bnema/dockspace/internal/logging"
)

// PreviewDropUseCase feeds drop-target geometry to the overlay renderer
// while a window hovers over the dock.
type PreviewDropUseCase struct {
	container *DockContainer
	renderer  port.DropOverlayRenderer
}

// NewPreviewDropUseCase creates a new drop preview use case.
func NewPreviewDropUseCase(container *DockContainer, renderer port.DropOverlayRenderer) *PreviewDropUseCase {
	return &PreviewDropUseCase{
		container: container,
		renderer:  renderer,
	}
}

// Execute classifies (x, y) and draws the resulting drop target, clearing
// the overlay when the point resolves to no leaf.
func (uc *PreviewDropUseCase) Execute(ctx context.Context, x, y float64) (entity.DockPlacement, error) {
	log := logging.FromContext(ctx)

	placement := uc.container.GetPlacement(x, y)
	if !placement.Valid() {
		if err := uc.renderer.ClearDropTarget(ctx); err != nil {
			return placement, fmt.Errorf("clear drop target: %w", err)
		}
		return placement, nil
	}

	if err := uc.renderer.DrawDropTarget(ctx, placement.Zone, placement.PolygonVerts); err != nil {
		return placement, fmt.Errorf("draw drop target: %w", err)
	}

	log.Trace().
		Float64("x", x).
		Float64("y", y).
		Str("zone", placement.Zone.String()).
		Msg("drop target previewed")
	return placement, nil
}

// Drop finishes the drag: it clears the overlay and docks window at (x, y).
func (uc *PreviewDropUseCase) Drop(ctx context.Context, window *entity.Window, x, y float64) (bool, error) {
	if err := uc.renderer.ClearDropTarget(ctx); err != nil {
		return false, fmt.Errorf("clear drop target: %w", err)
	}
	return uc.container.AttachWindowAt(window, x, y), nil
}
