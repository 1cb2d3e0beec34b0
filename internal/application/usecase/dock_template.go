package usecase

import (
	"errors"
	"fmt"

	"github.com/bnema/dockspace/internal/domain/entity"
)

var (
	// ErrContainerNotEmpty is returned when a layout is built over docked windows.
	ErrContainerNotEmpty = errors.New("dock container already holds windows")
	// ErrUnknownWindow is returned when a template names a window that was not supplied.
	ErrUnknownWindow = errors.New("unknown window")
	// ErrInvalidTemplate is returned for malformed layout templates.
	ErrInvalidTemplate = errors.New("invalid layout template")
)

// LayoutTemplate describes a dock tree to build in one go.
// A template with Split == NodeLeaf lists the window IDs stacked in that leaf;
// otherwise First and Second describe the two halves.
type LayoutTemplate struct {
	Split   entity.NodeKind
	Ratio   float64
	First   *LayoutTemplate
	Second  *LayoutTemplate
	Windows []entity.WindowID
}

// Leaf returns a leaf template stacking the given windows.
func Leaf(ids ...entity.WindowID) *LayoutTemplate {
	return &LayoutTemplate{Split: entity.NodeLeaf, Windows: ids}
}

// HSplit returns a left/right template giving ratio of the width to first.
func HSplit(ratio float64, first, second *LayoutTemplate) *LayoutTemplate {
	return &LayoutTemplate{Split: entity.NodeSplitHorizontal, Ratio: ratio, First: first, Second: second}
}

// VSplit returns a top/bottom template giving ratio of the height to first.
func VSplit(ratio float64, first, second *LayoutTemplate) *LayoutTemplate {
	return &LayoutTemplate{Split: entity.NodeSplitVertical, Ratio: ratio, First: first, Second: second}
}

// Preset names accepted by LayoutPreset.
const (
	PresetEditor = "editor"
	PresetSingle = "single"
)

// Window IDs used by the editor preset.
const (
	WindowViewport     entity.WindowID = "viewport"
	WindowHierarchy    entity.WindowID = "hierarchy"
	WindowInspector    entity.WindowID = "inspector"
	WindowAssets       entity.WindowID = "assets"
	WindowAssetBrowser entity.WindowID = "asset-browser"
	WindowConsole      entity.WindowID = "console"
)

var presetTitles = map[entity.WindowID]string{
	WindowViewport:     "Viewport",
	WindowHierarchy:    "Hierarchy",
	WindowInspector:    "Inspector",
	WindowAssets:       "Assets",
	WindowAssetBrowser: "Asset Browser",
	WindowConsole:      "Console",
}

// LayoutPreset returns a named layout template.
func LayoutPreset(name string) (*LayoutTemplate, error) {
	switch name {
	case PresetEditor, "":
		// Scene view on the left 80%, hierarchy over inspector on the right.
		left := VSplit(0.7,
			Leaf(WindowViewport),
			HSplit(0.25, Leaf(WindowAssets), Leaf(WindowAssetBrowser, WindowConsole)),
		)
		right := VSplit(0.35, Leaf(WindowHierarchy), Leaf(WindowInspector))
		return HSplit(0.8, left, right), nil
	case PresetSingle:
		return Leaf(WindowViewport), nil
	default:
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidTemplate, name)
	}
}

// PresetNames lists the available presets.
func PresetNames() []string {
	return []string{PresetEditor, PresetSingle}
}

// WindowIDs returns every window ID named by the template in tree order.
func (t *LayoutTemplate) WindowIDs() []entity.WindowID {
	if t == nil {
		return nil
	}
	if t.Split == entity.NodeLeaf {
		return append([]entity.WindowID(nil), t.Windows...)
	}
	return append(t.First.WindowIDs(), t.Second.WindowIDs()...)
}

// NewTemplateWindows creates an undocked window for every ID in the template,
// titled after the editor preset names when known.
func NewTemplateWindows(t *LayoutTemplate) map[entity.WindowID]*entity.Window {
	windows := make(map[entity.WindowID]*entity.Window)
	for _, id := range t.WindowIDs() {
		windows[id] = entity.NewWindow(id, presetTitles[id])
	}
	return windows
}

// BuildLayout replaces the empty container tree with the template, docking
// the supplied windows into their leaves. The last window of each stack is
// left active, as if each had been docked in order.
func (c *DockContainer) BuildLayout(t *LayoutTemplate, windows map[entity.WindowID]*entity.Window) error {
	if len(c.GetWindows()) > 0 {
		return ErrContainerNotEmpty
	}
	if err := validateTemplate(t, windows, make(map[entity.WindowID]bool), false); err != nil {
		return err
	}

	c.root = buildNode(t, windows)

	c.log.Debug().
		Int("windows", len(c.GetWindows())).
		Int("leaves", c.root.LeafCount()).
		Msg("layout built from template")
	return nil
}

func validateTemplate(
	t *LayoutTemplate,
	windows map[entity.WindowID]*entity.Window,
	seen map[entity.WindowID]bool,
	nested bool,
) error {
	if t == nil {
		return fmt.Errorf("%w: missing node", ErrInvalidTemplate)
	}

	switch t.Split {
	case entity.NodeLeaf:
		if nested && len(t.Windows) == 0 {
			return fmt.Errorf("%w: empty leaf inside a split", ErrInvalidTemplate)
		}
		for _, id := range t.Windows {
			w, ok := windows[id]
			if !ok || w == nil {
				return fmt.Errorf("%w: %s", ErrUnknownWindow, id)
			}
			if w.IsDocked() {
				return fmt.Errorf("%w: window %s already docked", ErrInvalidTemplate, id)
			}
			if seen[id] {
				return fmt.Errorf("%w: window %s listed twice", ErrInvalidTemplate, id)
			}
			seen[id] = true
		}
		return nil
	case entity.NodeSplitHorizontal, entity.NodeSplitVertical:
		if t.Ratio <= 0 || t.Ratio >= 1 {
			return fmt.Errorf("%w: split ratio %v outside (0,1)", ErrInvalidTemplate, t.Ratio)
		}
		if err := validateTemplate(t.First, windows, seen, true); err != nil {
			return err
		}
		return validateTemplate(t.Second, windows, seen, true)
	default:
		return fmt.Errorf("%w: node kind %d", ErrInvalidTemplate, int(t.Split))
	}
}

func buildNode(t *LayoutTemplate, windows map[entity.WindowID]*entity.Window) *entity.DockNode {
	if t.Split == entity.NodeLeaf {
		leaf := entity.NewLeaf()
		for _, id := range t.Windows {
			w := windows[id]
			leaf.Windows = append(leaf.Windows, w)
			w.Leaf = leaf
		}
		leaf.ActiveIndex = max(0, len(leaf.Windows)-1)
		return leaf
	}

	return &entity.DockNode{
		Kind:       t.Split,
		SplitRatio: t.Ratio,
		Children:   [2]*entity.DockNode{buildNode(t.First, windows), buildNode(t.Second, windows)},
	}
}
