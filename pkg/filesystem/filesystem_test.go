// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dir), afero memory filesystem
// PURPOSE: Test the OS and afero filesystem adapters

package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\n"), 0644))

	fsys := NewOS()

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(12), info.Size())

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", string(data))

	_, err = fsys.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/data/poem.txt", []byte("hello"), 0644))

	fsys := NewAferoFS(mem)

	data, err := fsys.ReadFile("/data/poem.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	t.Run("directory is not readable", func(t *testing.T) {
		_, err := fsys.ReadFile("/data")
		assert.ErrorIs(t, err, fs.ErrInvalid)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := fsys.ReadFile("/data/missing.txt")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}
