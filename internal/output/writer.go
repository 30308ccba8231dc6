package output

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is applied to written files when none is configured.
const DefaultFileMode fs.FileMode = 0o644

// Writer writes whole files atomically: content goes to a temp file in the
// destination directory which is then renamed over the target. Existing
// files are overwritten. The destination directory must already exist.
type Writer struct {
	mode fs.FileMode
}

// NewWriter creates a Writer. A zero mode selects DefaultFileMode.
func NewWriter(mode fs.FileMode) *Writer {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &Writer{mode: mode}
}

// WriteFile replaces path with data.
func (w *Writer) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s: not a directory", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp_prompts_*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(w.mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
