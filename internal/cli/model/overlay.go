package model

import (
	"context"

	"github.com/bnema/dockspace/internal/domain/entity"
)

// cellOverlay is a port.DropOverlayRenderer that remembers the drop target
// so the canvas can shade the cells inside it.
type cellOverlay struct {
	polygon []entity.Vec2
}

func (o *cellOverlay) DrawDropTarget(_ context.Context, _ entity.DockZone, polygon [4]entity.Vec2) error {
	o.polygon = polygon[:]
	return nil
}

func (o *cellOverlay) ClearDropTarget(_ context.Context) error {
	o.polygon = nil
	return nil
}

// Contains reports whether (x, y) lies inside the drawn drop target.
func (o *cellOverlay) Contains(x, y float64) bool {
	return len(o.polygon) > 0 && entity.PointInPolygon(o.polygon, x, y)
}
