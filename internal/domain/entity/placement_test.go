package entity

import (
	"strings"
	"testing"
)

func TestPointInPolygon(t *testing.T) {
	square := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	trapezoid := []Vec2{{0, 0}, {0.3, 0.3}, {0.3, 0.7}, {0, 1}}

	tests := []struct {
		name string
		poly []Vec2
		x, y float64
		want bool
	}{
		{name: "square center", poly: square, x: 0.5, y: 0.5, want: true},
		{name: "square outside", poly: square, x: 1.5, y: 0.5, want: false},
		{name: "trapezoid inside", poly: trapezoid, x: 0.05, y: 0.5, want: true},
		{name: "trapezoid corner wedge", poly: trapezoid, x: 0.2, y: 0.1, want: false},
		{name: "trapezoid beyond band", poly: trapezoid, x: 0.4, y: 0.5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.poly, tt.x, tt.y); got != tt.want {
				t.Fatalf("PointInPolygon(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClassifyNormalized(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want DockZone
	}{
		{name: "near left edge", x: 0.05, y: 0.5, want: ZoneLeft},
		{name: "near right edge", x: 0.95, y: 0.5, want: ZoneRight},
		{name: "near top edge", x: 0.5, y: 0.05, want: ZoneTop},
		{name: "near bottom edge", x: 0.5, y: 0.95, want: ZoneBottom},
		{name: "middle", x: 0.5, y: 0.5, want: ZoneCenter},
		{name: "top left corner favours top", x: 0.2, y: 0.1, want: ZoneTop},
		{name: "top left corner favours left", x: 0.1, y: 0.2, want: ZoneLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyNormalized(tt.x, tt.y, 0.3, 0.3).Zone; got != tt.want {
				t.Fatalf("zone = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDockZone_SplitMapping(t *testing.T) {
	tests := []struct {
		zone     DockZone
		kind     NodeKind
		incoming int
	}{
		{ZoneLeft, NodeSplitHorizontal, 0},
		{ZoneRight, NodeSplitHorizontal, 1},
		{ZoneTop, NodeSplitVertical, 0},
		{ZoneBottom, NodeSplitVertical, 1},
		{ZoneCenter, NodeLeaf, 0},
	}

	for _, tt := range tests {
		t.Run(tt.zone.String(), func(t *testing.T) {
			if got := tt.zone.SplitKind(); got != tt.kind {
				t.Fatalf("SplitKind = %v, want %v", got, tt.kind)
			}
			if got := tt.zone.IncomingChild(); got != tt.incoming {
				t.Fatalf("IncomingChild = %d, want %d", got, tt.incoming)
			}
		})
	}
}

func TestParseDockZone(t *testing.T) {
	for _, want := range []DockZone{ZoneLeft, ZoneRight, ZoneTop, ZoneBottom, ZoneCenter} {
		got, err := ParseDockZone(" " + strings.ToUpper(want.String()) + " ")
		if err != nil || got != want {
			t.Fatalf("ParseDockZone(%q) = %v, %v; want %v", want.String(), got, err, want)
		}
	}
	if _, err := ParseDockZone("diagonal"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}

func TestDockPlacement_ZeroValueInvalid(t *testing.T) {
	var p DockPlacement
	if p.Valid() {
		t.Fatalf("zero placement should be invalid")
	}
}
