package types

import (
	"io/fs"
)

// FS is the read side of a filesystem. The content loader only ever
// inspects and reads files, so nothing here mutates.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}
