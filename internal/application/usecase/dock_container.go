package usecase

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/bnema/dockspace/internal/domain/entity"
	"github.com/bnema/dockspace/internal/logging"
)

const (
	// DefaultZoneMargin is the edge band thickness as a fraction of the
	// shorter leaf dimension.
	DefaultZoneMargin = 0.3

	// DefaultMinPanePercent bounds how small either side of a split can get.
	DefaultMinPanePercent = 10.0

	attachSplitRatio = 0.5
)

// DockOptions tunes the dock container.
type DockOptions struct {
	ZoneMargin     float64
	MinPanePercent float64
}

// DefaultDockOptions returns the stock tunables.
func DefaultDockOptions() DockOptions {
	return DockOptions{
		ZoneMargin:     DefaultZoneMargin,
		MinPanePercent: DefaultMinPanePercent,
	}
}

// DockContainer owns a dock tree and exposes layout, drop classification
// and window attach/detach. It is not safe for concurrent use: every call
// is expected on the thread driving the editor frame loop, with Update run
// before any query in a frame.
type DockContainer struct {
	root *entity.DockNode
	opts DockOptions
	log  zerolog.Logger
}

// NewDockContainer creates a container with a single empty root leaf.
// The logger carried by ctx receives the container's diagnostics.
func NewDockContainer(ctx context.Context, opts DockOptions) *DockContainer {
	return &DockContainer{
		root: entity.NewLeaf(),
		opts: normalizeDockOptions(opts),
		log:  logging.FromContext(ctx).With().Str("component", "dock").Logger(),
	}
}

// Root returns the root of the dock tree.
func (c *DockContainer) Root() *entity.DockNode {
	return c.root
}

// Options returns the container tunables.
func (c *DockContainer) Options() DockOptions {
	return c.opts
}

// SetOptions replaces the tunables, e.g. after a config reload.
// Out of range values fall back to the defaults.
func (c *DockContainer) SetOptions(opts DockOptions) {
	c.opts = normalizeDockOptions(opts)
}

// normalizeDockOptions keeps the zone quads from overlapping and both sides
// of a split strictly wider than zero.
func normalizeDockOptions(opts DockOptions) DockOptions {
	if opts.ZoneMargin <= 0 || opts.ZoneMargin >= 0.5 {
		opts.ZoneMargin = DefaultZoneMargin
	}
	if opts.MinPanePercent <= 0 || opts.MinPanePercent >= 50 {
		opts.MinPanePercent = DefaultMinPanePercent
	}
	return opts
}

// Update lays the tree out over the viewport rectangle.
func (c *DockContainer) Update(viewport entity.Rect) {
	c.root.UpdateRecursive(viewport.Min, viewport.Max)
}

// TraceLeaf returns the leaf under (x, y), or nil when the point is outside
// the laid out viewport.
func (c *DockContainer) TraceLeaf(x, y float64) *entity.DockNode {
	return c.root.TraceLeaf(x, y)
}

// FindParent returns the split node holding node, or nil for the root.
func (c *DockContainer) FindParent(node *entity.DockNode) *entity.DockNode {
	if node == c.root {
		return nil
	}
	return c.root.FindParent(node)
}

// GetPlacement classifies (x, y) into a drop zone of the leaf under it.
// The returned placement is invalid when no leaf contains the point.
func (c *DockContainer) GetPlacement(x, y float64) entity.DockPlacement {
	leaf := c.root.TraceLeaf(x, y)
	if leaf == nil {
		return entity.DockPlacement{}
	}

	w := leaf.Maxs.X - leaf.Mins.X
	h := leaf.Maxs.Y - leaf.Mins.Y

	nx := (x - leaf.Mins.X) / w
	ny := (y - leaf.Mins.Y) / h

	areaWidth := math.Min(w, h) * c.opts.ZoneMargin / w
	areaHeight := areaWidth * (w / h)

	quad := entity.ClassifyNormalized(nx, ny, areaWidth, areaHeight)

	placement := entity.DockPlacement{Leaf: leaf, Zone: quad.Zone}
	size := entity.Vec2{X: w, Y: h}
	for i, v := range quad.Verts {
		placement.PolygonVerts[i] = v.Mul(size).Add(leaf.Mins)
	}
	return placement
}

// AttachWindow docks window into leaf on the given zone and returns the leaf
// now holding it. Center, or any zone on an empty leaf, stacks the window
// as the active tab; an edge zone on an occupied leaf splits it in two.
// Returns nil if window is nil or already docked, or if leaf is not a leaf.
func (c *DockContainer) AttachWindow(window *entity.Window, leaf *entity.DockNode, zone entity.DockZone) *entity.DockNode {
	if window == nil {
		return nil
	}
	if window.Leaf != nil {
		c.log.Warn().Str("window_id", string(window.ID)).Msg("window already assigned to dock container")
		return nil
	}
	if leaf == nil || !leaf.IsLeaf() {
		return nil
	}

	if zone == entity.ZoneCenter || len(leaf.Windows) == 0 {
		leaf.Windows = append(leaf.Windows, window)
		leaf.ActiveIndex = len(leaf.Windows) - 1
		window.Leaf = leaf

		c.log.Debug().
			Str("window_id", string(window.ID)).
			Int("stack_size", len(leaf.Windows)).
			Msg("window stacked into leaf")
		return leaf
	}

	incoming := zone.IncomingChild()
	existing := 1 - incoming

	node := leaf
	node.Kind = zone.SplitKind()
	node.SplitRatio = attachSplitRatio
	node.Children = [2]*entity.DockNode{entity.NewLeaf(), entity.NewLeaf()}

	moved := node.Children[existing]
	moved.Windows = node.Windows
	moved.ActiveIndex = node.ActiveIndex
	for _, w := range moved.Windows {
		w.Leaf = moved
	}
	node.Windows = nil
	node.ActiveIndex = 0

	target := node.Children[incoming]
	target.Windows = []*entity.Window{window}
	target.ActiveIndex = 0
	window.Leaf = target

	c.log.Debug().
		Str("window_id", string(window.ID)).
		Str("zone", zone.String()).
		Str("split", node.Kind.String()).
		Msg("leaf split for docked window")
	return target
}

// AttachWindowAt docks window at the zone under (x, y).
// Returns false when the point resolves to no leaf or the attach fails.
func (c *DockContainer) AttachWindowAt(window *entity.Window, x, y float64) bool {
	if window == nil {
		return false
	}
	placement := c.GetPlacement(x, y)
	if !placement.Valid() {
		return false
	}
	return c.AttachWindow(window, placement.Leaf, placement.Zone) != nil
}

// DetachWindow undocks window from its leaf.
// Returns false if window is nil or not docked.
func (c *DockContainer) DetachWindow(window *entity.Window) bool {
	if window == nil || window.Leaf == nil {
		return false
	}
	index := window.Leaf.IndexOf(window)
	return c.DetachLeafWindow(window.Leaf, index) != nil
}

// DetachLeafWindow removes the window at index from leaf and returns it.
// When the leaf empties, its parent absorbs the sibling subtree, collapsing
// one tree level; an emptied root stays as an empty leaf.
// Returns nil if leaf is not a leaf or index is out of range.
func (c *DockContainer) DetachLeafWindow(leaf *entity.DockNode, index int) *entity.Window {
	if leaf == nil || !leaf.IsLeaf() {
		return nil
	}
	if index < 0 || index >= len(leaf.Windows) {
		return nil
	}

	detached := leaf.Windows[index]
	if detached != nil {
		detached.Leaf = nil
	}
	leaf.Windows = append(leaf.Windows[:index], leaf.Windows[index+1:]...)
	leaf.ActiveIndex = max(0, index-1)

	if len(leaf.Windows) > 0 {
		return detached
	}

	parent := c.FindParent(leaf)
	if parent == nil {
		return detached
	}

	sibling := parent.Children[0]
	if sibling == leaf {
		sibling = parent.Children[1]
	}
	parent.Absorb(sibling)

	logEvent := c.log.Debug().Str("absorbed", sibling.Kind.String())
	if detached != nil {
		logEvent = logEvent.Str("window_id", string(detached.ID))
	}
	logEvent.Msg("empty leaf merged into parent")

	return detached
}

// GetWindows returns every docked window in tree order.
func (c *DockContainer) GetWindows() []*entity.Window {
	return c.root.CollectWindows(nil)
}
