package caption

import (
	"os"
	"path/filepath"
)

// Export writes serialized caption text to path, creating parent
// directories as needed.
func Export(serialized, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(serialized), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
