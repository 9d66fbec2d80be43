package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/minigrep/pkg/types"
)

// CountingFS wraps a types.FS and records every path it is asked about
type CountingFS struct {
	types.FS

	mu    sync.Mutex
	paths []string
}

// NewCountingFS wraps fsys
func NewCountingFS(fsys types.FS) *CountingFS {
	return &CountingFS{FS: fsys}
}

func (c *CountingFS) Stat(name string) (fs.FileInfo, error) {
	c.record(name)
	return c.FS.Stat(name)
}

func (c *CountingFS) ReadFile(name string) ([]byte, error) {
	c.record(name)
	return c.FS.ReadFile(name)
}

// Calls returns the number of accesses so far
func (c *CountingFS) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.paths)
}

// Paths returns the accessed paths in order
func (c *CountingFS) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func (c *CountingFS) record(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, name)
}
