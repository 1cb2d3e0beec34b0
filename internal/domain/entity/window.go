package entity

// WindowID uniquely identifies an editor window.
type WindowID string

// Window is a movable editor panel that can be docked into a leaf.
type Window struct {
	ID    WindowID
	Title string

	// Leaf is the leaf currently holding this window, nil when floating.
	// It is a non-owning link maintained by the dock container's attach and
	// detach operations only.
	Leaf *DockNode
}

// NewWindow creates an undocked window.
func NewWindow(id WindowID, title string) *Window {
	if title == "" {
		title = string(id)
	}
	return &Window{ID: id, Title: title}
}

// IsDocked reports whether the window currently sits in a leaf.
func (w *Window) IsDocked() bool {
	return w != nil && w.Leaf != nil
}
