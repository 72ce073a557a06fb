package util

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "out", "menu.txt")
	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}

func TestWriteFileAtomicKeepsOldContentOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "menu.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	boom := errors.New("encoder exploded")
	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "half a fi")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "previous", string(data))

	leftovers, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, leftovers, 1)
}
