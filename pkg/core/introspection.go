package core

import (
	"github.com/aretw0/introspection"
)

// EditorState exposes internal state for observability.
type EditorState struct {
	Title      string `json:"title"`
	Size       int    `json:"size"`
	ItemCount  int    `json:"item_count"`
	OutOfRange int    `json:"out_of_range"`
	Editing    bool   `json:"editing"`
	ItemID     string `json:"item_id,omitempty"`
}

// State implements introspection.Introspectable.
func (e *Editor) State() any {
	e.mu.RLock()
	defer e.mu.RUnlock()

	st := EditorState{
		Title:      e.menu.Title,
		Size:       e.menu.Size,
		ItemCount:  len(e.menu.Items),
		OutOfRange: countOutOfRange(e.menu),
	}
	if e.session != nil {
		st.Editing = true
		st.ItemID = e.session.ItemID
	}
	return st
}

// ComponentType implements introspection.Component.
func (e *Editor) ComponentType() string {
	return "editor"
}

var _ introspection.Introspectable = (*Editor)(nil)
var _ introspection.Component = (*Editor)(nil)
