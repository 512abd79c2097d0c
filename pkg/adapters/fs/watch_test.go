package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirement.yml")
	require.NoError(t, os.WriteFile(path, []byte("requirements: {}\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan string, 8)
	require.NoError(t, WatchFile(ctx, path, nil, func(data []byte) {
		changes <- string(data)
	}))

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("requirements:\n  perm: {}\n"), 0644))

	select {
	case got := <-changes:
		assert.Equal(t, "requirements:\n  perm: {}\n", got)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	t.Run("Replace By Rename", func(t *testing.T) {
		tmp := filepath.Join(dir, "requirement.yml.tmp")
		require.NoError(t, os.WriteFile(tmp, []byte("renamed: true\n"), 0644))
		require.NoError(t, os.Rename(tmp, path))

		deadline := time.After(5 * time.Second)
		for {
			select {
			case got := <-changes:
				if got == "renamed: true\n" {
					return
				}
			case <-deadline:
				t.Fatal("no reload after rename")
			}
		}
	})
}

func TestWatchFile_Errors(t *testing.T) {
	err := WatchFile(context.Background(), filepath.Join(t.TempDir(), "missing", "req.yml"), nil, func([]byte) {})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = WatchFile(ctx, filepath.Join(t.TempDir(), "req.yml"), nil, func([]byte) {})
	assert.ErrorIs(t, err, context.Canceled)
}
