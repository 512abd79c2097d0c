package core

import (
	"context"
	"fmt"
	"time"
)

// EventType represents the kind of change made to the menu.
type EventType string

const (
	EventItemAdded   EventType = "ITEM_ADDED"
	EventItemUpdated EventType = "ITEM_UPDATED"
	EventItemRemoved EventType = "ITEM_REMOVED"
	EventMenuChanged EventType = "MENU_CHANGED"
)

// Event represents a change in the menu. Slot is -1 for menu-level changes.
type Event struct {
	Type      EventType
	ItemID    string
	Slot      int
	Field     string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	if e.Type == EventMenuChanged {
		return fmt.Sprintf("%s %s", e.Type, e.Field)
	}
	return fmt.Sprintf("%s slot=%d id=%s", e.Type, e.Slot, e.ItemID)
}

// Subscribe returns a channel receiving every change until ctx is done.
// Slow subscribers miss events instead of blocking the Editor.
func (e *Editor) Subscribe(ctx context.Context, buffer int) <-chan Event {
	ch := make(chan Event, buffer)
	e.mu.Lock()
	if e.subs == nil {
		e.subs = make(map[chan Event]struct{})
	}
	e.subs[ch] = struct{}{}
	e.mu.Unlock()

	go func() {
		<-ctx.Done()
		e.mu.Lock()
		delete(e.subs, ch)
		close(ch)
		e.mu.Unlock()
	}()
	return ch
}

// publish must be called with e.mu held.
func (e *Editor) publish(ev Event) {
	if len(e.subs) == 0 {
		return
	}
	ev.Timestamp = time.Now().Unix()
	for ch := range e.subs {
		select {
		case ch <- ev:
		default:
			e.logger.Debug("event dropped", "event", ev.String())
		}
	}
}

func menuEvent(field string) Event {
	return Event{Type: EventMenuChanged, Field: field, Slot: -1}
}
