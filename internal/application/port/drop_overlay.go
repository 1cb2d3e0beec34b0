// Package port defines the interfaces the dock engine expects from its
// collaborators.
package port

import (
	"context"

	"github.com/bnema/dockspace/internal/domain/entity"
)

//go:generate mockgen -source=drop_overlay.go -destination=mocks/mock_drop_overlay.go -package=mocks

// DropOverlayRenderer draws drop-target feedback while a window is dragged.
// Implemented by the window-chrome renderer.
type DropOverlayRenderer interface {
	// DrawDropTarget highlights the polygon of the zone a drop would land in.
	DrawDropTarget(ctx context.Context, zone entity.DockZone, polygon [4]entity.Vec2) error

	// ClearDropTarget removes any highlight.
	ClearDropTarget(ctx context.Context) error
}
