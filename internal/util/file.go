package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFileAtomic streams write's output into a temporary file next to path and
// renames it over path only when write succeeds. On failure path is untouched.
func WriteFileAtomic(path string, write func(w io.Writer) error) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer pending.Cleanup()

	if err := write(pending); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}
