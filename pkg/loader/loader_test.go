// pkg/loader/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero memory filesystem, real filesystem (temp dir)
// PURPOSE: Test reading file content and its failure modes

package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/minigrep/pkg/errors"
	"github.com/arthur-debert/minigrep/pkg/filesystem"
)

const poem = "I'm nobody! Who are you?\nAre you nobody, too?\r\nThen there's a pair of us - don't tell!\n"

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(mem, name, []byte(content), 0644))
	}
	return mem
}

func TestLoad(t *testing.T) {
	mem := memFS(t, map[string]string{
		"/poem.txt":   poem,
		"/empty.txt":  "",
		"/latin1.txt": "caf\xe9\n",
		"/dir/a.txt":  "a",
	})
	fsys := filesystem.NewAferoFS(mem)

	tests := []struct {
		name    string
		path    string
		maxSize int64
		want    string
		wantErr error
	}{
		{name: "returns content unmodified", path: "/poem.txt", want: poem},
		{name: "empty file", path: "/empty.txt", want: ""},
		{name: "within the size limit", path: "/poem.txt", maxSize: int64(len(poem)), want: poem},
		{name: "missing file", path: "/missing.txt", wantErr: fs.ErrNotExist},
		{name: "directory", path: "/dir", wantErr: ErrIsDirectory},
		{name: "over the size limit", path: "/poem.txt", maxSize: 10, wantErr: ErrTooLarge},
		{name: "invalid utf-8", path: "/latin1.txt", wantErr: ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(fsys, tt.path, tt.maxSize)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.path, errors.GetErrorDetails(err)["path"])
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_OSFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\nfoo\nhello again"), 0644))

	got, err := Load(filesystem.NewOS(), path, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello world\nfoo\nhello again", got)

	_, err = Load(filesystem.NewOS(), filepath.Join(dir, "missing.txt"), 0)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.Contains(t, err.Error(), "could not read")
}

func TestLoad_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0000))

	_, err := Load(filesystem.NewOS(), path, 0)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.ErrorIs(t, err, fs.ErrPermission)
}
