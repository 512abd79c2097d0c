package core_test

import (
	"testing"

	"github.com/aretw0/menusmith/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AddFromButton(t *testing.T) {
	e := newEditor(t)

	_, ok := e.Draft()
	assert.False(t, ok, "no draft before a session is opened")

	e.BeginAdd()
	d, ok := e.Draft()
	require.True(t, ok)
	assert.Equal(t, core.ItemDraft{Material: core.DefaultMaterial}, d)

	d.Material = "DIAMOND"
	d.Slot = 4
	d.DisplayName = "Buy"
	d.Lore = "Click to buy\r\n\r\n   \nSecond"
	d.Actions = "say hi\n"

	saved, updated, err := e.SaveDraft(d)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, []string{"Click to buy", "Second"}, saved.Lore)
	assert.Equal(t, []string{"say hi"}, saved.Actions)

	_, open := e.Session()
	assert.False(t, open, "saving closes the session")
}

func TestSession_SelectSlot(t *testing.T) {
	e := newEditor(t)

	t.Run("Empty Slot Prepares New Item", func(t *testing.T) {
		s := e.SelectSlot(7)
		assert.False(t, s.Editing())
		require.NotNil(t, s.TargetSlot)
		assert.Equal(t, 7, *s.TargetSlot)

		d, ok := e.Draft()
		require.True(t, ok)
		assert.Equal(t, 7, d.Slot)
		assert.Equal(t, core.DefaultMaterial, d.Material)

		_, updated, err := e.SaveDraft(d)
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("Occupied Slot Edits Occupant", func(t *testing.T) {
		occupant, ok := e.ItemAt(7)
		require.True(t, ok)

		s := e.SelectSlot(7)
		assert.Equal(t, occupant.ID, s.ItemID)

		d, _ := e.Draft()
		d.Slot = 8
		d.DisplayName = "Moved"
		saved, updated, err := e.SaveDraft(d)
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, occupant.ID, saved.ID)

		items := e.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 8, items[0].Slot)
	})
}

func TestSession_BeginEdit(t *testing.T) {
	e := newEditor(t)
	it, err := e.AddItem(core.Item{
		Slot:        2,
		Material:    "BOOK",
		DisplayName: "Rules",
		Lore:        []string{"one", "two"},
		Actions:     []string{"[message] hi"},
	})
	require.NoError(t, err)

	require.NoError(t, e.BeginEdit(0))
	d, ok := e.Draft()
	require.True(t, ok)
	assert.Equal(t, core.DraftFor(it), d)
	assert.Equal(t, "one\ntwo", d.Lore)

	assert.ErrorIs(t, e.BeginEdit(5), core.ErrItemNotFound)
}

func TestSession_EditedItemRemoved(t *testing.T) {
	e := newEditor(t)
	_, _ = e.AddItem(core.Item{Slot: 0, Material: "BOOK"})

	require.NoError(t, e.BeginEdit(0))
	e.RemoveItem(0)

	_, open := e.Session()
	assert.False(t, open)
	_, _, err := e.SaveDraft(core.ItemDraft{Material: "BOOK"})
	assert.ErrorIs(t, err, core.ErrNoSession)
}

func TestSession_InvalidSlotKeepsSessionOpen(t *testing.T) {
	e := newEditor(t)
	e.BeginAdd()

	_, _, err := e.SaveDraft(core.ItemDraft{Slot: 99, Material: "STONE"})
	assert.ErrorIs(t, err, core.ErrSlotOutOfRange)

	_, open := e.Session()
	assert.True(t, open)

	e.Cancel()
	_, open = e.Session()
	assert.False(t, open)
}
