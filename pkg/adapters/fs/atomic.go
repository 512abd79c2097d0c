package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix marks partially written exports.
const TempFilePrefix = "menusmith-tmp-"

// writeFileAtomic replaces filename with data so readers see either the old
// export or the complete new one, never a truncated file.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}
	return nil
}
