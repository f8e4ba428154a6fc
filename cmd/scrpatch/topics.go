package scrpatch

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicFiles embed.FS

// TopicsFS returns the embedded help topics.
func TopicsFS() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
