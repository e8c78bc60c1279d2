package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ObjectNamer names uploaded objects <random uuid>.<ext> so that two uploads
// of the same file never collide in a bucket.
type ObjectNamer struct {
	newID func() string
}

func NewObjectNamer() *ObjectNamer {
	return &ObjectNamer{newID: uuid.NewString}
}

// ObjectName returns a fresh object name. ext is used lowercased and without
// a leading dot; an empty ext yields a bare id.
func (n *ObjectNamer) ObjectName(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return n.newID()
	}
	return n.newID() + "." + ext
}
