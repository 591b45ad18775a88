// Package asset loads sprite images from the binary or a directory on disk
package asset

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed data/*.png
var embedded embed.FS

// Embedded returns the sprite images compiled into the binary
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// Only fails on an invalid pattern, which is fixed at compile time
		panic(err)
	}
	return sub
}

// Source describes where images are read from
type Source struct {
	FS fs.FS
	// Dir is the directory backing FS, empty for embedded assets
	Dir string
}

// NewSource returns the directory source when dir is set, the embedded one otherwise
func NewSource(dir string) Source {
	if dir == "" {
		return Source{FS: Embedded()}
	}
	return Source{FS: os.DirFS(dir), Dir: dir}
}

// Watchable reports whether the source can change at runtime
func (s Source) Watchable() bool {
	return s.Dir != ""
}
