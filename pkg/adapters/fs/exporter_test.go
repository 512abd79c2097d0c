package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	x := NewExporter(Config{Dir: dir})
	ctx := context.Background()

	path, err := x.Export(ctx, shopMenu(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultExportName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mustSerialize(t, shopMenu()), string(data))

	jsonPath, err := x.Export(ctx, shopMenu(), "menu.json")
	require.NoError(t, err)
	assert.FileExists(t, jsonPath)

	st, ok := x.State().(ExporterState)
	require.True(t, ok)
	assert.Equal(t, 2, st.Exports)
	assert.Equal(t, jsonPath, st.LastPath)
	assert.Equal(t, []string{".json", ".yaml", ".yml"}, st.Serializers)
	assert.Equal(t, "exporter", x.ComponentType())
}

func TestExporter_Errors(t *testing.T) {
	x := NewExporter(Config{Dir: t.TempDir()})

	_, err := x.Export(context.Background(), shopMenu(), "menu.toml")
	assert.Error(t, err)

	_, err = x.Export(context.Background(), shopMenu(), "../escape.yml")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = x.Export(ctx, shopMenu(), "")
	assert.ErrorIs(t, err, context.Canceled)
}
