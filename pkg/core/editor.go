package core

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Field names accepted by Editor.SetField.
const (
	FieldTitle           = "title"
	FieldOpenCommand     = "open_command"
	FieldSize            = "size"
	FieldOpenRequirement = "open_requirement"
)

// Editor owns the menu being composed and the optional edit session.
// Shells (web, CLI) mutate the menu only through Editor so the
// one-item-per-slot invariant is kept on every write.
type Editor struct {
	mu      sync.RWMutex
	menu    Menu
	session *EditSession
	logger  *slog.Logger
	subs    map[chan Event]struct{}
}

// NewEditor creates an Editor around menu. A nil logger falls back to slog.Default().
//
// Seeded items are normalized the way writes are: items without an ID (or
// repeating one) get a fresh ID, and when several items share a slot the last
// one wins.
func NewEditor(menu Menu, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	if menu.Title == "" {
		menu.Title = DefaultTitle
	}
	menu = menu.Clone()
	menu.Items = seedItems(menu.Items)
	return &Editor{menu: menu, logger: logger}
}

func seedItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	ids := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" || ids[it.ID] {
			it.ID = uuid.NewString()
		}
		ids[it.ID] = true

		kept := out[:0]
		for _, prev := range out {
			if prev.Slot != it.Slot {
				kept = append(kept, prev)
			}
		}
		out = append(kept, it)
	}
	return out
}

// Snapshot returns a deep copy of the current menu.
func (e *Editor) Snapshot() Menu {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.menu.Clone()
}

// Items returns a copy of the item collection in order.
func (e *Editor) Items() []Item {
	return e.Snapshot().Items
}

// SetTitle replaces the title; an empty value restores DefaultTitle.
func (e *Editor) SetTitle(title string) {
	if title == "" {
		title = DefaultTitle
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.menu.Title = title
	e.publish(menuEvent(FieldTitle))
}

// SetOpenCommand replaces the command that opens the menu.
func (e *Editor) SetOpenCommand(cmd string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.menu.OpenCommand = cmd
	e.publish(menuEvent(FieldOpenCommand))
}

// SetSize replaces the slot count. Items beyond the new size are kept
// and reported by OutOfRange.
func (e *Editor) SetSize(size int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.menu.Size = size
	if n := countOutOfRange(e.menu); n > 0 {
		e.logger.Debug("items outside menu after resize", "size", size, "count", n)
	}
	e.publish(menuEvent(FieldSize))
}

// SetOpenRequirement replaces the raw open requirement block.
func (e *Editor) SetOpenRequirement(req string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.menu.OpenRequirement = req
	e.publish(menuEvent(FieldOpenRequirement))
}

// SetField updates a metadata field by its configuration key.
func (e *Editor) SetField(field, value string) error {
	switch field {
	case FieldTitle:
		e.SetTitle(value)
	case FieldOpenCommand:
		e.SetOpenCommand(value)
	case FieldOpenRequirement:
		e.SetOpenRequirement(value)
	case FieldSize:
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("size %q: %w", value, ErrInvalidSize)
		}
		e.SetSize(size)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// UpsertItem stores item.
//
// If an item with the same ID exists it is replaced in place, keeping its
// position, and any other item on the new slot is evicted. Otherwise the
// occupant of item.Slot is removed and item is appended with a fresh ID when
// it has none.
func (e *Editor) UpsertItem(item Item) (Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.upsert(item)
}

// AddItem stores item under a new identity, replacing the occupant of its slot.
func (e *Editor) AddItem(item Item) (Item, error) {
	item.ID = ""
	return e.UpsertItem(item)
}

// UpdateItem replaces the item with the same ID.
func (e *Editor) UpdateItem(item Item) (Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if item.ID == "" || e.indexOf(item.ID) < 0 {
		return Item{}, fmt.Errorf("update %q: %w", item.ID, ErrItemNotFound)
	}
	return e.upsert(item)
}

func (e *Editor) upsert(item Item) (Item, error) {
	if item.Slot < 0 || item.Slot >= e.menu.Size {
		return Item{}, fmt.Errorf("slot %d of %d: %w", item.Slot, e.menu.Size, ErrSlotOutOfRange)
	}
	item = item.clone()

	if item.ID != "" {
		if idx := e.indexOf(item.ID); idx >= 0 {
			e.menu.Items[idx] = item
			e.evict(item.Slot, item.ID)
			e.logger.Debug("item updated", "id", item.ID, "slot", item.Slot)
			e.publish(Event{Type: EventItemUpdated, ItemID: item.ID, Slot: item.Slot})
			return item.clone(), nil
		}
	} else {
		item.ID = uuid.NewString()
	}

	e.evict(item.Slot, "")
	e.menu.Items = append(e.menu.Items, item)
	e.logger.Debug("item added", "id", item.ID, "slot", item.Slot)
	e.publish(Event{Type: EventItemAdded, ItemID: item.ID, Slot: item.Slot})
	return item.clone(), nil
}

// evict drops every item on slot except the one with keepID. An empty keepID evicts all.
func (e *Editor) evict(slot int, keepID string) {
	kept := e.menu.Items[:0]
	for _, it := range e.menu.Items {
		if it.Slot == slot && (keepID == "" || it.ID != keepID) {
			e.logger.Debug("item replaced", "id", it.ID, "slot", slot)
			e.publish(Event{Type: EventItemRemoved, ItemID: it.ID, Slot: slot})
			continue
		}
		kept = append(kept, it)
	}
	e.menu.Items = kept
}

func (e *Editor) indexOf(id string) int {
	for i, it := range e.menu.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// RemoveItem deletes the item at a collection index. Later items shift down by one.
// An index outside the collection is ignored and reported as false.
func (e *Editor) RemoveItem(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.menu.Items) {
		return false
	}
	removed := e.menu.Items[index]
	e.menu.Items = append(e.menu.Items[:index], e.menu.Items[index+1:]...)
	if e.session != nil && e.session.ItemID == removed.ID {
		e.session = nil
	}
	e.logger.Debug("item removed", "id", removed.ID, "slot", removed.Slot)
	e.publish(Event{Type: EventItemRemoved, ItemID: removed.ID, Slot: removed.Slot})
	return true
}

// ItemAt returns the item occupying slot.
func (e *Editor) ItemAt(slot int) (Item, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return itemAt(e.menu, slot)
}

func itemAt(m Menu, slot int) (Item, bool) {
	for _, it := range m.Items {
		if it.Slot == slot {
			return it.clone(), true
		}
	}
	return Item{}, false
}

// OutOfRange returns the items whose slot no longer fits the menu size.
func (e *Editor) OutOfRange() []Item {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []Item
	for _, it := range e.menu.Items {
		if it.Slot >= e.menu.Size {
			out = append(out, it.clone())
		}
	}
	return out
}

func countOutOfRange(m Menu) int {
	n := 0
	for _, it := range m.Items {
		if it.Slot >= m.Size {
			n++
		}
	}
	return n
}
