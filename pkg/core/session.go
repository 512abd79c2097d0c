package core

import (
	"fmt"
	"strings"
)

// EditSession describes the item form currently open in a shell.
// ItemID is set when an existing item is edited; TargetSlot is set when the
// session was started from a grid cell.
type EditSession struct {
	ItemID     string `json:"item_id,omitempty"`
	TargetSlot *int   `json:"target_slot,omitempty"`
}

// Editing reports whether the session edits an existing item.
func (s EditSession) Editing() bool {
	return s.ItemID != ""
}

// ItemDraft holds raw item form values. Lore and Actions are newline separated.
type ItemDraft struct {
	Slot        int    `json:"slot"`
	Material    string `json:"material"`
	DisplayName string `json:"display_name"`
	Lore        string `json:"lore"`
	Actions     string `json:"actions"`
}

// Item converts the draft into an Item, dropping blank lore and action lines.
func (d ItemDraft) Item() Item {
	return Item{
		Slot:        d.Slot,
		Material:    d.Material,
		DisplayName: d.DisplayName,
		Lore:        SplitLines(d.Lore),
		Actions:     SplitLines(d.Actions),
	}
}

// DraftFor prefills a form with the values of an existing item.
func DraftFor(it Item) ItemDraft {
	material := it.Material
	if material == "" {
		material = DefaultMaterial
	}
	return ItemDraft{
		Slot:        it.Slot,
		Material:    material,
		DisplayName: it.DisplayName,
		Lore:        strings.Join(it.Lore, "\n"),
		Actions:     strings.Join(it.Actions, "\n"),
	}
}

// BeginAdd opens a session for a new item without a target slot.
func (e *Editor) BeginAdd() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = &EditSession{}
}

// SelectSlot opens a session from a grid cell: the occupant is edited when
// there is one, otherwise a new item is prepared for that slot.
func (e *Editor) SelectSlot(slot int) EditSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := EditSession{TargetSlot: &slot}
	if it, ok := itemAt(e.menu, slot); ok {
		s.ItemID = it.ID
	}
	e.session = &s
	return s
}

// BeginEdit opens a session for the item at a collection index.
func (e *Editor) BeginEdit(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.menu.Items) {
		return fmt.Errorf("edit index %d: %w", index, ErrItemNotFound)
	}
	it := e.menu.Items[index]
	slot := it.Slot
	e.session = &EditSession{ItemID: it.ID, TargetSlot: &slot}
	return nil
}

// Session returns the open session, if any.
func (e *Editor) Session() (EditSession, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.session == nil {
		return EditSession{}, false
	}
	return *e.session, true
}

// Draft returns the form values for the open session.
func (e *Editor) Draft() (ItemDraft, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.session == nil {
		return ItemDraft{}, false
	}
	if e.session.Editing() {
		if idx := e.indexOf(e.session.ItemID); idx >= 0 {
			return DraftFor(e.menu.Items[idx]), true
		}
	}
	d := ItemDraft{Material: DefaultMaterial}
	if e.session.TargetSlot != nil {
		d.Slot = *e.session.TargetSlot
	}
	return d, true
}

// SaveDraft stores the draft for the open session and closes it.
// A session editing an item updates that item in place and reports updated;
// any other session adds.
func (e *Editor) SaveDraft(d ItemDraft) (saved Item, updated bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return Item{}, false, ErrNoSession
	}

	item := d.Item()
	updated = e.session.Editing()
	if updated {
		if e.indexOf(e.session.ItemID) < 0 {
			e.session = nil
			return Item{}, false, fmt.Errorf("save: %w", ErrItemNotFound)
		}
		item.ID = e.session.ItemID
	}

	saved, err = e.upsert(item)
	if err != nil {
		return Item{}, false, err
	}
	e.session = nil
	return saved, updated, nil
}

// Cancel closes the open session without changes.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = nil
}
