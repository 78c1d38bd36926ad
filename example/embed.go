package example

import (
	"embed"
	"io/fs"
)

//go:embed all:content
var contentFS embed.FS

// Content returns the sample site rooted at its content directory.
func Content() fs.FS {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
