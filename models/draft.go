package models

import (
	"path/filepath"
	"strings"
)

// ImageFile is an image picked from the local file system that has to be
// uploaded before it can be attached to a note.
type ImageFile struct {
	// Name is the original file name; only its extension is kept remotely.
	Name        string
	ContentType string
	Content     []byte
}

// Ext returns the file extension without the leading dot, or "bin" when the
// name carries none.
func (f ImageFile) Ext() string {
	ext := strings.TrimPrefix(filepath.Ext(f.Name), ".")
	if ext == "" {
		return "bin"
	}
	return strings.ToLower(ext)
}

// ImageSource is the image of a new note: a direct URL, an uploaded file or
// nothing. When both are set, File wins.
type ImageSource struct {
	URL  string
	File *ImageFile
}

// IsZero reports whether no image was chosen.
func (s ImageSource) IsZero() bool {
	return s.File == nil && strings.TrimSpace(s.URL) == ""
}

// NoteDraft carries the user input for a new note.
type NoteDraft struct {
	Title   string
	Content string
	Color   string
	Pinned  bool
	Image   ImageSource
}
