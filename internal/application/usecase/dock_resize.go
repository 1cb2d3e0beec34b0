package usecase

import (
	"errors"
	"fmt"
	"math"

	"github.com/bnema/dockspace/internal/domain/entity"
)

var (
	// ErrNothingToResize is returned when no split encloses the window.
	ErrNothingToResize = errors.New("nothing to resize")
	// ErrNotSplit is returned when a split operation targets a leaf.
	ErrNotSplit = errors.New("node is not a split")
)

const splitRatioRoundFactor = 100.0

// SetSplitRatio moves the divider of a split node. The ratio is clamped so
// neither side shrinks below the configured minimum pane percentage.
func (c *DockContainer) SetSplitRatio(node *entity.DockNode, ratio float64) error {
	if node == nil || node.IsLeaf() {
		return ErrNotSplit
	}

	minRatio := c.opts.MinPanePercent / 100.0
	maxRatio := 1.0 - minRatio
	oldRatio := node.SplitRatio
	node.SplitRatio = roundSplitRatio(clampFloat64(ratio, minRatio, maxRatio))

	c.log.Debug().
		Float64("old_ratio", oldRatio).
		Float64("new_ratio", node.SplitRatio).
		Msg("split ratio set")
	return nil
}

// ResizeWindow grows (positive delta) or shrinks (negative delta) the pane
// holding window by moving the divider of its nearest enclosing split.
// delta is a fraction of the split's extent.
func (c *DockContainer) ResizeWindow(window *entity.Window, delta float64) error {
	if window == nil || window.Leaf == nil {
		return fmt.Errorf("resize window: %w", ErrNothingToResize)
	}

	child := window.Leaf
	parent := c.FindParent(child)
	if parent == nil {
		return ErrNothingToResize
	}

	// The first child grows when the ratio increases; the second shrinks.
	if parent.Children[1] == child {
		delta = -delta
	}
	return c.SetSplitRatio(parent, parent.SplitRatio+delta)
}

// FocusWindow brings window to the front of its leaf's stack.
func (c *DockContainer) FocusWindow(window *entity.Window) bool {
	if window == nil || window.Leaf == nil {
		return false
	}
	index := window.Leaf.IndexOf(window)
	if index < 0 {
		return false
	}
	window.Leaf.ActiveIndex = index
	return true
}

func roundSplitRatio(ratio float64) float64 {
	return math.Round(ratio*splitRatioRoundFactor) / splitRatioRoundFactor
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
