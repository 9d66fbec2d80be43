// Package loader reads the searched file into memory.
package loader

import (
	stderrors "errors"
	"unicode/utf8"

	"github.com/arthur-debert/minigrep/pkg/errors"
	"github.com/arthur-debert/minigrep/pkg/logging"
	"github.com/arthur-debert/minigrep/pkg/types"
)

var (
	// ErrInvalidEncoding is wrapped when the file is not valid UTF-8.
	ErrInvalidEncoding = stderrors.New("stream did not contain valid UTF-8")

	// ErrTooLarge is wrapped when the file exceeds the configured limit.
	ErrTooLarge = stderrors.New("file exceeds the size limit")

	// ErrIsDirectory is wrapped when the path names a directory.
	ErrIsDirectory = stderrors.New("is a directory")
)

// Load returns the whole content of path as text. maxSize > 0 rejects
// larger files before reading them. Every failure carries ErrIO.
func Load(fsys types.FS, path string, maxSize int64) (string, error) {
	logger := logging.GetLogger("loader").With().Str("path", path).Logger()

	info, err := fsys.Stat(path)
	if err != nil {
		return "", ioError(err, path)
	}
	if info.IsDir() {
		return "", ioError(ErrIsDirectory, path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return "", ioError(ErrTooLarge, path).
			WithDetail("size", info.Size()).
			WithDetail("limit", maxSize)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", ioError(err, path)
	}
	if !utf8.Valid(data) {
		return "", ioError(ErrInvalidEncoding, path)
	}

	logger.Debug().Int("bytes", len(data)).Msg("Content loaded")
	return string(data), nil
}

func ioError(err error, path string) *errors.Error {
	return errors.Wrapf(err, errors.ErrIO, "could not read %s", path).
		WithDetail("path", path)
}
