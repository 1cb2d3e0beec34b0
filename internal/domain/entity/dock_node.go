package entity

// NodeKind tags a dock node as a leaf or as one of the two split shapes.
type NodeKind int

const (
	NodeLeaf            NodeKind = iota // Holds stacked windows, no children
	NodeSplitHorizontal                 // Left/right split along X
	NodeSplitVertical                   // Top/bottom split along Y
)

// String returns a human readable node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeLeaf:
		return "leaf"
	case NodeSplitHorizontal:
		return "horizontal"
	case NodeSplitVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// DockNode is a node of the binary space-partition tree covering the dock
// viewport. A leaf holds zero or more stacked windows; a split node holds
// exactly two children dividing its rectangle at SplitRatio.
type DockNode struct {
	Kind     NodeKind
	Children [2]*DockNode // Both set iff Kind != NodeLeaf

	// SplitRatio is the fraction of the axis extent given to Children[0].
	SplitRatio float64

	// Mins and Maxs are the screen-space corners computed by the last layout pass.
	Mins, Maxs Vec2

	// Windows are stacked in tab order; ActiveIndex selects the foreground one.
	Windows     []*Window
	ActiveIndex int
}

// NewLeaf returns an empty leaf node.
func NewLeaf() *DockNode {
	return &DockNode{Kind: NodeLeaf}
}

// IsLeaf returns true if this node has no children.
func (n *DockNode) IsLeaf() bool {
	return n.Kind == NodeLeaf
}

// Rect returns the rectangle computed by the last layout pass.
func (n *DockNode) Rect() Rect {
	return Rect{Min: n.Mins, Max: n.Maxs}
}

// ActiveWindow returns the foreground window of a leaf, or nil.
func (n *DockNode) ActiveWindow() *Window {
	if !n.IsLeaf() || n.ActiveIndex < 0 || n.ActiveIndex >= len(n.Windows) {
		return nil
	}
	return n.Windows[n.ActiveIndex]
}

// IndexOf returns the position of w in the leaf's stack, or -1.
func (n *DockNode) IndexOf(w *Window) int {
	for i, candidate := range n.Windows {
		if candidate == w {
			return i
		}
	}
	return -1
}

// UpdateRecursive assigns the rectangle [mins, maxs] to this node and splits
// it between the children of every split node below.
func (n *DockNode) UpdateRecursive(mins, maxs Vec2) {
	n.Mins = mins
	n.Maxs = maxs

	switch n.Kind {
	case NodeSplitHorizontal:
		split := mins.X + (maxs.X-mins.X)*n.SplitRatio
		n.Children[0].UpdateRecursive(mins, Vec2{X: split, Y: maxs.Y})
		n.Children[1].UpdateRecursive(Vec2{X: split, Y: mins.Y}, maxs)
	case NodeSplitVertical:
		split := mins.Y + (maxs.Y-mins.Y)*n.SplitRatio
		n.Children[0].UpdateRecursive(mins, Vec2{X: maxs.X, Y: split})
		n.Children[1].UpdateRecursive(Vec2{X: mins.X, Y: split}, maxs)
	}
}

// TraceLeaf returns the leaf whose rectangle contains (x, y), or nil when the
// point falls outside this node. Rectangles must be current.
func (n *DockNode) TraceLeaf(x, y float64) *DockNode {
	if !n.Rect().Contains(x, y) {
		return nil
	}

	switch n.Kind {
	case NodeSplitHorizontal:
		if x < n.Children[1].Mins.X {
			return n.Children[0].TraceLeaf(x, y)
		}
		return n.Children[1].TraceLeaf(x, y)
	case NodeSplitVertical:
		if y < n.Children[1].Mins.Y {
			return n.Children[0].TraceLeaf(x, y)
		}
		return n.Children[1].TraceLeaf(x, y)
	default:
		return n
	}
}

// FindParent returns the node whose children include target, or nil when
// target is this node or is not in the subtree.
func (n *DockNode) FindParent(target *DockNode) *DockNode {
	if n.IsLeaf() || target == nil {
		return nil
	}
	for _, child := range n.Children {
		if child == target {
			return n
		}
	}
	for _, child := range n.Children {
		if parent := child.FindParent(target); parent != nil {
			return parent
		}
	}
	return nil
}

// Walk traverses the tree depth-first, first child before second.
// Returns early if fn returns false.
func (n *DockNode) Walk(fn func(*DockNode) bool) bool {
	if !fn(n) {
		return false
	}
	if n.IsLeaf() {
		return true
	}
	for _, child := range n.Children {
		if child != nil && !child.Walk(fn) {
			return false
		}
	}
	return true
}

// CollectWindows appends every leaf's windows in tree order to dst.
func (n *DockNode) CollectWindows(dst []*Window) []*Window {
	n.Walk(func(node *DockNode) bool {
		if node.IsLeaf() {
			dst = append(dst, node.Windows...)
		}
		return true
	})
	return dst
}

// LeafCount returns the number of leaves in the subtree.
func (n *DockNode) LeafCount() int {
	count := 0
	n.Walk(func(node *DockNode) bool {
		if node.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// NodeCount returns the number of nodes in the subtree.
func (n *DockNode) NodeCount() int {
	count := 0
	n.Walk(func(*DockNode) bool {
		count++
		return true
	})
	return count
}

// Absorb overwrites this node with the content of src, keeping this node's
// identity, and re-points every absorbed window at this node. The caller
// drops src afterwards.
func (n *DockNode) Absorb(src *DockNode) {
	n.Kind = src.Kind
	n.Windows = append([]*Window(nil), src.Windows...)
	n.ActiveIndex = src.ActiveIndex
	n.SplitRatio = src.SplitRatio
	n.Children = src.Children

	for _, w := range n.Windows {
		w.Leaf = n
	}
}
