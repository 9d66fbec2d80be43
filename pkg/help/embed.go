package help

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var embedded embed.FS

// Embedded returns the topics shipped with minigrep.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
