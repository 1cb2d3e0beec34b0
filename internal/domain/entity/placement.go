package entity

import (
	"fmt"
	"strings"
)

// DockZone is the edge or center region of a leaf that a drop resolves to.
type DockZone int

const (
	ZoneLeft DockZone = iota
	ZoneRight
	ZoneTop
	ZoneBottom
	ZoneCenter
)

var zoneNames = map[DockZone]string{
	ZoneLeft:   "left",
	ZoneRight:  "right",
	ZoneTop:    "top",
	ZoneBottom: "bottom",
	ZoneCenter: "center",
}

// String returns the lowercase zone name.
func (z DockZone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("zone(%d)", int(z))
}

// ParseDockZone parses a zone name such as "left" or "center".
func ParseDockZone(s string) (DockZone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return ZoneLeft, nil
	case "right":
		return ZoneRight, nil
	case "top":
		return ZoneTop, nil
	case "bottom":
		return ZoneBottom, nil
	case "center":
		return ZoneCenter, nil
	default:
		return ZoneCenter, fmt.Errorf("unknown dock zone %q", s)
	}
}

// SplitKind returns the split a leaf turns into when docking on this edge.
// Center does not split and returns NodeLeaf.
func (z DockZone) SplitKind() NodeKind {
	switch z {
	case ZoneLeft, ZoneRight:
		return NodeSplitHorizontal
	case ZoneTop, ZoneBottom:
		return NodeSplitVertical
	default:
		return NodeLeaf
	}
}

// IncomingChild returns the child index that receives the docked window when
// a leaf is split on this edge: Left/Top go first, Right/Bottom go second.
func (z DockZone) IncomingChild() int {
	switch z {
	case ZoneRight, ZoneBottom:
		return 1
	default:
		return 0
	}
}

// DockPlacement is the result of classifying a drop point against a leaf.
// The zero value means the point resolved to no leaf.
type DockPlacement struct {
	Leaf *DockNode
	Zone DockZone

	// PolygonVerts outlines the highlighted drop region in screen space.
	PolygonVerts [4]Vec2
}

// Valid reports whether the placement resolved to a leaf.
func (p DockPlacement) Valid() bool {
	return p.Leaf != nil
}
