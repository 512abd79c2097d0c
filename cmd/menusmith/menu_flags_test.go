package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/menusmith"
	"github.com/aretw0/menusmith/pkg/core"
)

func TestParseItemSpec(t *testing.T) {
	tests := []struct {
		spec    string
		want    core.Item
		wantErr bool
	}{
		{spec: "0:diamond", want: core.Item{Slot: 0, Material: "DIAMOND"}},
		{spec: "4:EMERALD:Buy: now", want: core.Item{Slot: 4, Material: "EMERALD", DisplayName: "Buy: now"}},
		{spec: "2:", want: core.Item{Slot: 2, Material: core.DefaultMaterial}},
		{spec: "x:STONE", wantErr: true},
		{spec: "STONE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parseItemSpec(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlotLine(t *testing.T) {
	slot, text, err := parseSlotLine("3=say a=b")
	require.NoError(t, err)
	assert.Equal(t, 3, slot)
	assert.Equal(t, "say a=b", text)

	_, _, err = parseSlotLine("no separator")
	assert.Error(t, err)
	_, _, err = parseSlotLine("x=text")
	assert.Error(t, err)
}

func TestMenuFlags_Build(t *testing.T) {
	dir := t.TempDir()
	reqFile := filepath.Join(dir, "req.yml")
	require.NoError(t, os.WriteFile(reqFile, []byte("requirements: {}"), 0644))

	f := menuFlags{
		title:           "Shop",
		command:         "/shop",
		size:            9,
		requirementFile: reqFile,
		items:           []string{"0:diamond:Buy", "8:barrier"},
		lore:            []string{"0=Costs 5", "0=   ", "0=Click"},
		actions:         []string{"8=close"},
	}
	app, err := f.build(menusmith.WithExportDir(dir))
	require.NoError(t, err)

	m := app.Editor.Snapshot()
	assert.Equal(t, "Shop", m.Title)
	assert.Equal(t, "requirements: {}", m.OpenRequirement)
	require.Len(t, m.Items, 2)
	assert.Equal(t, []string{"Costs 5", "Click"}, m.Items[0].Lore)
	assert.Equal(t, []string{"close"}, m.Items[1].Actions)

	doc, err := menusmith.Serialize(m)
	require.NoError(t, err)
	out := string(doc)
	assert.True(t, strings.Contains(out, "  8:\n    material: BARRIER\n    left_click_commands:\n      - 'close'\n"), out)
}

func TestMenuFlags_Build_Errors(t *testing.T) {
	t.Run("Slot Outside Menu", func(t *testing.T) {
		f := menuFlags{size: 9, items: []string{"9:STONE"}}
		_, err := f.build()
		assert.ErrorIs(t, err, core.ErrSlotOutOfRange)
	})

	t.Run("Lore Without Item", func(t *testing.T) {
		f := menuFlags{size: 9, lore: []string{"1=text"}}
		_, err := f.build()
		assert.Error(t, err)
	})

	t.Run("Invalid Size", func(t *testing.T) {
		f := menuFlags{size: 10}
		_, err := f.build()
		assert.ErrorIs(t, err, core.ErrInvalidSize)
	})
}

func TestRenderGrid(t *testing.T) {
	m := core.NewMenu()
	m.Size = 9
	m.Items = []core.Item{{ID: "a", Slot: 2, Material: "DIAMOND"}}

	var b strings.Builder
	renderGrid(&b, m)
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, core.DefaultTitle+" (9 slots)", lines[0])
	assert.Equal(t, 9, strings.Count(lines[1], "["))
	assert.Contains(t, lines[1], "["+core.Icon("DIAMOND")+"]")
}

func TestCheckYAML(t *testing.T) {
	doc, err := menusmith.Serialize(core.NewMenu())
	require.NoError(t, err)
	assert.NoError(t, checkYAML(doc))
	assert.Error(t, checkYAML([]byte("size: 9\n")))
	assert.Error(t, checkYAML([]byte("a: [b\n")))
}
