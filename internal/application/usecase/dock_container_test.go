package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockspace/internal/domain/entity"
	"github.com/bnema/dockspace/internal/logging"
)

var viewport = entity.NewRect(0, 0, 800, 600)

func newTestContainer(t *testing.T) *DockContainer {
	t.Helper()
	return NewDockContainer(context.Background(), DefaultDockOptions())
}

func window(id string) *entity.Window {
	return entity.NewWindow(entity.WindowID(id), "")
}

func windowIDs(ws []*entity.Window) []entity.WindowID {
	ids := make([]entity.WindowID, 0, len(ws))
	for _, w := range ws {
		ids = append(ids, w.ID)
	}
	return ids
}

func TestDockContainer_ScenarioSplitAndCollapse(t *testing.T) {
	c := newTestContainer(t)
	c.Update(viewport)

	a, b := window("a"), window("b")

	require.Equal(t, c.Root(), c.AttachWindow(a, c.Root(), entity.ZoneCenter))
	require.True(t, c.Root().IsLeaf())
	assert.Equal(t, []entity.WindowID{"a"}, windowIDs(c.Root().Windows))

	leafB := c.AttachWindow(b, c.Root(), entity.ZoneRight)
	require.NotNil(t, leafB)
	c.Update(viewport)

	root := c.Root()
	require.Equal(t, entity.NodeSplitHorizontal, root.Kind)
	assert.Equal(t, 0.5, root.SplitRatio)
	assert.Empty(t, root.Windows)

	child0, child1 := root.Children[0], root.Children[1]
	assert.Equal(t, []entity.WindowID{"a"}, windowIDs(child0.Windows))
	assert.Equal(t, []entity.WindowID{"b"}, windowIDs(child1.Windows))
	assert.Equal(t, entity.NewRect(0, 0, 400, 600), child0.Rect())
	assert.Equal(t, entity.NewRect(400, 0, 400, 600), child1.Rect())
	assert.Same(t, child0, a.Leaf)
	assert.Same(t, child1, b.Leaf)
	assert.Same(t, child1, leafB)
	require.NoError(t, c.Validate())

	require.True(t, c.DetachWindow(a))
	c.Update(viewport)

	assert.Same(t, root, c.Root())
	require.True(t, c.Root().IsLeaf())
	assert.Equal(t, []entity.WindowID{"b"}, windowIDs(c.Root().Windows))
	assert.Equal(t, viewport, c.Root().Rect())
	assert.Same(t, c.Root(), b.Leaf)
	assert.Nil(t, a.Leaf)
	require.NoError(t, c.Validate())
}

func TestDockContainer_GetPlacementNearLeftEdge(t *testing.T) {
	c := newTestContainer(t)
	c.Update(entity.NewRect(0, 0, 100, 100))

	p := c.GetPlacement(5, 50)
	require.True(t, p.Valid())
	assert.Equal(t, entity.ZoneLeft, p.Zone)
	assert.Same(t, c.Root(), p.Leaf)
	assert.Equal(t, [4]entity.Vec2{{X: 0, Y: 0}, {X: 30, Y: 30}, {X: 30, Y: 70}, {X: 0, Y: 100}}, p.PolygonVerts)
}

func TestDockContainer_GetPlacementZones(t *testing.T) {
	c := newTestContainer(t)
	c.Update(entity.NewRect(100, 50, 400, 200))

	tests := []struct {
		name string
		x, y float64
		want entity.DockZone
	}{
		{name: "left", x: 110, y: 150, want: entity.ZoneLeft},
		{name: "right", x: 490, y: 150, want: entity.ZoneRight},
		{name: "top", x: 300, y: 55, want: entity.ZoneTop},
		{name: "bottom", x: 300, y: 245, want: entity.ZoneBottom},
		{name: "center", x: 300, y: 150, want: entity.ZoneCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := c.GetPlacement(tt.x, tt.y)
			require.True(t, p.Valid())
			assert.Equal(t, tt.want, p.Zone)
		})
	}

	t.Run("center polygon spans leaf", func(t *testing.T) {
		p := c.GetPlacement(300, 150)
		assert.Equal(t, [4]entity.Vec2{{X: 100, Y: 50}, {X: 500, Y: 50}, {X: 500, Y: 250}, {X: 100, Y: 250}}, p.PolygonVerts)
	})

	t.Run("margin sized to shorter side", func(t *testing.T) {
		// 0.3 * min(400, 200) = 60px band on every edge.
		p := c.GetPlacement(155, 150)
		assert.Equal(t, entity.ZoneLeft, p.Zone)
		p = c.GetPlacement(165, 150)
		assert.Equal(t, entity.ZoneCenter, p.Zone)
	})
}

func TestDockContainer_GetPlacementOutside(t *testing.T) {
	c := newTestContainer(t)
	c.Update(viewport)

	assert.False(t, c.GetPlacement(900, 10).Valid())
	assert.False(t, c.AttachWindowAt(window("a"), -5, 10))
	assert.Empty(t, c.GetWindows())
}

func TestDockContainer_GetPlacementCoversEveryPoint(t *testing.T) {
	c := newTestContainer(t)
	c.Update(viewport)
	c.AttachWindow(window("a"), c.Root(), entity.ZoneCenter)
	c.AttachWindow(window("b"), c.Root(), entity.ZoneBottom)
	c.Update(viewport)

	for x := 0.5; x < 800; x += 23 {
		for y := 0.5; y < 600; y += 19 {
			p := c.GetPlacement(x, y)
			require.True(t, p.Valid(), "no placement at (%v, %v)", x, y)
			assert.True(t, p.Leaf.Rect().Contains(x, y))
			assert.Contains(t, []entity.DockZone{
				entity.ZoneLeft, entity.ZoneRight, entity.ZoneTop, entity.ZoneBottom, entity.ZoneCenter,
			}, p.Zone)
		}
	}
}

func TestDockContainer_AttachRejects(t *testing.T) {
	c := newTestContainer(t)
	c.Update(viewport)

	docked := window("docked")
	require.NotNil(t, c.AttachWindow(docked, c.Root(), entity.ZoneCenter))

	tests := []struct {
		name   string
		window *entity.Window
		leaf   *entity.DockNode
	}{
		{name: "nil window", window: nil, leaf: c.Root()},
		{name: "already docked", window: docked, leaf: c.Root()},
		{name: "nil leaf", window: window("x"), leaf: nil},
		{name: "split node", window: window("y"), leaf: &entity.DockNode{Kind: entity.NodeSplitVertical}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, c.AttachWindow(tt.window, tt.leaf, entity.ZoneLeft))
		})
	}
	assert.Equal(t, 1, c.Root().NodeCount())
	require.NoError(t, c.Validate())
}

func TestDockContainer_DoubleAttachWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)
	ctx := logging.WithContext(context.Background(), logger)

	c := NewDockContainer(ctx, DefaultDockOptions())
	w := window("a")
	require.NotNil(t, c.AttachWindow(w, c.Root(), entity.ZoneCenter))
	assert.Nil(t, c.AttachWindow(w, c.Root(), entity.ZoneCenter))

	assert.Contains(t, buf.String(), "already assigned")
	assert.Contains(t, buf.String(), `"window_id":"a"`)
}

func TestDockContainer_AttachCenterStacks(t *testing.T) {
	c := newTestContainer(t)
	a, b, d := window("a"), window("b"), window("d")

	c.AttachWindow(a, c.Root(), entity.ZoneCenter)
	c.AttachWindow(b, c.Root(), entity.ZoneCenter)
	c.AttachWindow(d, c.Root(), entity.ZoneCenter)

	assert.Equal(t, []entity.WindowID{"a", "b", "d"}, windowIDs(c.Root().Windows))
	assert.Equal(t, 2, c.Root().ActiveIndex)
	assert.Same(t, d, c.Root().ActiveWindow())
}

func TestDockContainer_AttachEdgeToEmptyLeafStacks(t *testing.T) {
	c := newTestContainer(t)
	a := window("a")

	leaf := c.AttachWindow(a, c.Root(), entity.ZoneTop)
	assert.Same(t, c.Root(), leaf)
	assert.True(t, c.Root().IsLeaf())
}

func TestDockContainer_AttachEdgeChildPlacement(t *testing.T) {
	tests := []struct {
		zone     entity.DockZone
		kind     entity.NodeKind
		incoming int
	}{
		{entity.ZoneLeft, entity.NodeSplitHorizontal, 0},
		{entity.ZoneRight, entity.NodeSplitHorizontal, 1},
		{entity.ZoneTop, entity.NodeSplitVertical, 0},
		{entity.ZoneBottom, entity.NodeSplitVertical, 1},
	}

	for _, tt := range tests {
		t.Run(tt.zone.String(), func(t *testing.T) {
			c := newTestContainer(t)
			a, b, n := window("a"), window("b"), window("new")
			c.AttachWindow(a, c.Root(), entity.ZoneCenter)
			c.AttachWindow(b, c.Root(), entity.ZoneCenter)
			c.Root().ActiveIndex = 0

			got := c.AttachWindow(n, c.Root(), tt.zone)

			root := c.Root()
			require.Equal(t, tt.kind, root.Kind)
			assert.Same(t, root.Children[tt.incoming], got)
			assert.Equal(t, []entity.WindowID{"new"}, windowIDs(got.Windows))
			assert.Equal(t, 0, got.ActiveIndex)

			moved := root.Children[1-tt.incoming]
			assert.Equal(t, []entity.WindowID{"a", "b"}, windowIDs(moved.Windows))
			assert.Equal(t, 0, moved.ActiveIndex)
			assert.Same(t, moved, a.Leaf)
			assert.Same(t, moved, b.Leaf)
			require.NoError(t, c.Validate())
		})
	}
}

func TestDockContainer_DetachRejects(t *testing.T) {
	c := newTestContainer(t)
	assert.False(t, c.DetachWindow(nil))
	assert.False(t, c.DetachWindow(window("floating")))

	split := &entity.DockNode{Kind: entity.NodeSplitHorizontal}
	assert.Nil(t, c.DetachLeafWindow(split, 0))
	assert.Nil(t, c.DetachLeafWindow(c.Root(), 3))
}

func TestDockContainer_DetachFromStackClampsActive(t *testing.T) {
	c := newTestContainer(t)
	a, b, d := window("a"), window("b"), window("d")
	for _, w := range []*entity.Window{a, b, d} {
		c.AttachWindow(w, c.Root(), entity.ZoneCenter)
	}

	got := c.DetachLeafWindow(c.Root(), 2)
	assert.Same(t, d, got)
	assert.Nil(t, d.Leaf)
	assert.Equal(t, 1, c.Root().ActiveIndex)

	got = c.DetachLeafWindow(c.Root(), 0)
	assert.Same(t, a, got)
	assert.Equal(t, 0, c.Root().ActiveIndex)
	assert.Equal(t, []entity.WindowID{"b"}, windowIDs(c.Root().Windows))
}

func TestDockContainer_DetachLastWindowLeavesEmptyRoot(t *testing.T) {
	c := newTestContainer(t)
	a := window("a")
	c.AttachWindow(a, c.Root(), entity.ZoneCenter)

	require.True(t, c.DetachWindow(a))
	assert.True(t, c.Root().IsLeaf())
	assert.Empty(t, c.Root().Windows)
	assert.Empty(t, c.GetWindows())
	require.NoError(t, c.Validate())
}

func TestDockContainer_DetachMergesInternalSibling(t *testing.T) {
	c := newTestContainer(t)
	c.Update(viewport)
	a, b, d := window("a"), window("b"), window("d")

	c.AttachWindow(a, c.Root(), entity.ZoneCenter)
	leafB := c.AttachWindow(b, c.Root(), entity.ZoneRight)
	c.AttachWindow(d, leafB, entity.ZoneBottom)
	c.Update(viewport)

	// root: H(a, V(b, d)); removing a lifts the vertical split to the root.
	inner := c.Root().Children[1]
	require.True(t, c.DetachWindow(a))

	root := c.Root()
	require.Equal(t, entity.NodeSplitVertical, root.Kind)
	assert.Equal(t, inner.Children, root.Children)
	assert.Same(t, root.Children[0], b.Leaf)
	assert.Same(t, root.Children[1], d.Leaf)
	assert.Equal(t, 3, root.NodeCount())
	require.NoError(t, c.Validate())

	c.Update(viewport)
	assert.Same(t, b.Leaf, c.TraceLeaf(400, 100))
	assert.Same(t, d.Leaf, c.TraceLeaf(400, 500))
}

func TestDockContainer_AttachDetachInverse(t *testing.T) {
	c := newTestContainer(t)
	c.Update(viewport)
	a, b := window("a"), window("b")
	c.AttachWindow(a, c.Root(), entity.ZoneCenter)
	leafB := c.AttachWindow(b, c.Root(), entity.ZoneLeft)
	c.Update(viewport)

	nodesBefore := c.Root().NodeCount()
	ratioBefore := c.Root().SplitRatio
	leafA := a.Leaf

	w := window("w")
	require.NotNil(t, c.AttachWindow(w, leafA, entity.ZoneTop))
	require.True(t, c.DetachWindow(w))

	assert.Equal(t, nodesBefore, c.Root().NodeCount())
	assert.Equal(t, ratioBefore, c.Root().SplitRatio)
	assert.Same(t, leafA, a.Leaf)
	assert.Same(t, leafB, b.Leaf)
	assert.Equal(t, []entity.WindowID{"b", "a"}, windowIDs(c.GetWindows()))
	require.NoError(t, c.Validate())
}

func TestDockContainer_AttachWindowAt(t *testing.T) {
	c := newTestContainer(t)
	c.Update(viewport)
	a, b := window("a"), window("b")

	require.True(t, c.AttachWindowAt(a, 400, 300))
	require.True(t, c.AttachWindowAt(b, 10, 300))
	c.Update(viewport)

	assert.Equal(t, entity.NodeSplitHorizontal, c.Root().Kind)
	assert.Same(t, c.Root().Children[0], b.Leaf)
	assert.False(t, c.AttachWindowAt(nil, 10, 10))
}

func TestDockContainer_FindParent(t *testing.T) {
	c := newTestContainer(t)
	a, b := window("a"), window("b")
	c.AttachWindow(a, c.Root(), entity.ZoneCenter)
	c.AttachWindow(b, c.Root(), entity.ZoneLeft)

	assert.Nil(t, c.FindParent(c.Root()))
	assert.Same(t, c.Root(), c.FindParent(a.Leaf))
}

func TestDockContainer_ConsistencyUnderChurn(t *testing.T) {
	c := newTestContainer(t)
	zones := []entity.DockZone{entity.ZoneLeft, entity.ZoneBottom, entity.ZoneCenter, entity.ZoneRight, entity.ZoneTop}
	points := [][2]float64{{10, 10}, {790, 590}, {400, 300}, {200, 450}, {650, 120}, {30, 580}}

	var docked []*entity.Window
	for i := 0; i < 40; i++ {
		c.Update(viewport)
		if i%3 == 2 && len(docked) > 0 {
			victim := docked[(i*7)%len(docked)]
			require.True(t, c.DetachWindow(victim))
			docked = removeWindow(docked, victim)
		} else {
			w := window(string(rune('a' + i%26)))
			p := points[i%len(points)]
			leaf := c.TraceLeaf(p[0], p[1])
			require.NotNil(t, leaf)
			require.NotNil(t, c.AttachWindow(w, leaf, zones[i%len(zones)]))
			docked = append(docked, w)
		}
		require.NoError(t, c.Validate(), "step %d", i)
		assert.ElementsMatch(t, docked, c.GetWindows())
	}
}

func removeWindow(ws []*entity.Window, target *entity.Window) []*entity.Window {
	out := ws[:0]
	for _, w := range ws {
		if w != target {
			out = append(out, w)
		}
	}
	return out
}
