package entity

// PointInPolygon reports whether (x, y) lies inside the polygon using the
// even-odd ray casting rule. Points exactly on an edge may land either way.
func PointInPolygon(poly []Vec2, x, y float64) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// ZoneQuad is a candidate drop region in a leaf's normalized [0,1]x[0,1] space.
type ZoneQuad struct {
	Zone  DockZone
	Verts [4]Vec2
}

// EdgeZoneQuads returns the four edge trapezoids for a leaf whose margin
// band spans marginX horizontally and marginY vertically, in test order.
func EdgeZoneQuads(marginX, marginY float64) [4]ZoneQuad {
	xmin, xmax := marginX, 1-marginX
	ymin, ymax := marginY, 1-marginY

	return [4]ZoneQuad{
		{Zone: ZoneLeft, Verts: [4]Vec2{{0, 0}, {xmin, ymin}, {xmin, ymax}, {0, 1}}},
		{Zone: ZoneRight, Verts: [4]Vec2{{1, 0}, {1, 1}, {xmax, ymax}, {xmax, ymin}}},
		{Zone: ZoneTop, Verts: [4]Vec2{{0, 0}, {1, 0}, {xmax, ymin}, {xmin, ymin}}},
		{Zone: ZoneBottom, Verts: [4]Vec2{{xmin, ymax}, {xmax, ymax}, {1, 1}, {0, 1}}},
	}
}

// CenterQuad covers the whole normalized leaf.
var CenterQuad = ZoneQuad{Zone: ZoneCenter, Verts: [4]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}

// ClassifyNormalized resolves a normalized point to the first edge quad that
// contains it, falling back to the center quad.
func ClassifyNormalized(x, y, marginX, marginY float64) ZoneQuad {
	for _, quad := range EdgeZoneQuads(marginX, marginY) {
		if PointInPolygon(quad.Verts[:], x, y) {
			return quad
		}
	}
	return CenterQuad
}
