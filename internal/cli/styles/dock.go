package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockspace/internal/domain/entity"
)

// DockRenderer renders dock trees and placements for the terminal.
type DockRenderer struct {
	theme *Theme
}

// NewDockRenderer creates a new dock renderer with the given theme.
func NewDockRenderer(theme *Theme) *DockRenderer {
	return &DockRenderer{theme: theme}
}

// RenderTree renders the tree as an indented outline with each node's rectangle.
func (r *DockRenderer) RenderTree(root *entity.DockNode) string {
	var b strings.Builder
	r.renderNode(&b, root, "", "", "root")
	return r.theme.Box.Render(strings.TrimRight(b.String(), "\n"))
}

func (r *DockRenderer) renderNode(b *strings.Builder, node *entity.DockNode, prefix, branch, label string) {
	rect := r.theme.Subtle.Render(formatRect(node.Rect()))

	if node.IsLeaf() {
		fmt.Fprintf(b, "%s%s%s %s\n", prefix, branch, r.RenderTabs(node), rect)
		return
	}

	split := r.theme.Split.Render(fmt.Sprintf("%s %s %.2f", label, node.Kind, node.SplitRatio))
	fmt.Fprintf(b, "%s%s%s %s\n", prefix, branch, split, rect)

	childPrefix := prefix
	switch branch {
	case "├─ ":
		childPrefix += "│  "
	case "└─ ":
		childPrefix += "   "
	}
	r.renderNode(b, node.Children[0], childPrefix, "├─ ", "split")
	r.renderNode(b, node.Children[1], childPrefix, "└─ ", "split")
}

// RenderTabs renders a leaf's window stack as a tab bar.
func (r *DockRenderer) RenderTabs(leaf *entity.DockNode) string {
	if len(leaf.Windows) == 0 {
		return r.theme.Subtle.Render("(empty)")
	}

	tabs := make([]string, 0, len(leaf.Windows))
	for i, w := range leaf.Windows {
		style := r.theme.InactiveTab
		if i == leaf.ActiveIndex {
			style = r.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(w.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderPlacement renders a drop placement summary.
func (r *DockRenderer) RenderPlacement(x, y float64, p entity.DockPlacement) string {
	if !p.Valid() {
		return r.theme.ErrorStyle.Render(fmt.Sprintf("(%g, %g) is outside the dock", x, y))
	}

	verts := make([]string, 0, len(p.PolygonVerts))
	for _, v := range p.PolygonVerts {
		verts = append(verts, fmt.Sprintf("(%g, %g)", v.X, v.Y))
	}

	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("point  "), fmt.Sprintf("(%g, %g)", x, y)),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("zone   "), r.theme.Highlight.Render(p.Zone.String())),
		fmt.Sprintf("%s %s %s", r.theme.Subtle.Render("leaf   "), r.RenderTabs(p.Leaf), r.theme.Subtle.Render(formatRect(p.Leaf.Rect()))),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("polygon"), strings.Join(verts, " ")),
	}
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

// RenderError renders an error message.
func (r *DockRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render("Error: " + err.Error())
}

func formatRect(rect entity.Rect) string {
	return fmt.Sprintf("[%g,%g %gx%g]", rect.Min.X, rect.Min.Y, rect.Width(), rect.Height())
}
