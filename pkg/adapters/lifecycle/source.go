// Package lifecycle exposes Editor changes as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/menusmith/pkg/core"
)

// DefaultBuffer is the subscription buffer used by NewEditorSource.
const DefaultBuffer = 32

type editorSource struct {
	editor *core.Editor
	buffer int
	out    chan lifecycle.Event
}

// NewEditorSource creates a lifecycle.Source that emits the changes made to editor.
// The subscription starts with Start and ends when its context is done.
func NewEditorSource(editor *core.Editor) lifecycle.Source {
	return &editorSource{
		editor: editor,
		buffer: DefaultBuffer,
		out:    make(chan lifecycle.Event),
	}
}

func (s *editorSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *editorSource) Start(ctx context.Context) error {
	events := s.editor.Subscribe(ctx, s.buffer)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
