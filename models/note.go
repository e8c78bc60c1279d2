package models

import (
	"encoding/json"
	"time"
)

// ColorTransparent is the colour token assigned to a note whose background
// is replaced by an image URL.
const ColorTransparent = "transparent"

// DefaultColor is the colour of a freshly created note when none is given.
const DefaultColor = "default"

// Note is a single note record as stored by the remote data service.
//
// A note is visible in the active list iff it is neither trashed nor
// archived. Pinned notes sort before unpinned ones; inside each group the
// newest CreatedAt comes first.
type Note struct {
	// ID is the backend-assigned unique identifier.
	ID int64 `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// Color is an enum-like colour token (e.g. "yellow", "transparent").
	Color string `json:"color"`

	// Image is an optional public URL of the note image.
	Image *string `json:"image"`

	Pinned bool `json:"pinned"`

	// UserEmail is the owner of the note.
	UserEmail string `json:"user_email"`

	Trashed  bool `json:"trashed"`
	Archived bool `json:"archived"`

	// CreatedAt is assigned by the backend on insert.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is maintained by the backend and drives the trash purge.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Active reports whether the note belongs to the active list.
func (n Note) Active() bool {
	return !n.Trashed && !n.Archived
}

// NewNote is the insert payload for a note. Backend-assigned fields (id,
// created_at, updated_at) are omitted.
type NewNote struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Color     string  `json:"color"`
	Image     *string `json:"image"`
	Pinned    bool    `json:"pinned"`
	UserEmail string  `json:"user_email"`
	Trashed   bool    `json:"trashed"`
	Archived  bool    `json:"archived"`
}

// NotePatch describes a partial update of a note. Nil fields are left
// untouched. ClearImage sets the image to null and wins over Image.
type NotePatch struct {
	Title      *string
	Content    *string
	Color      *string
	Image      *string
	ClearImage bool
	Pinned     *bool
	Trashed    *bool
	Archived   *bool
}

// Apply returns a copy of n with the patch applied. It is the local
// counterpart of the remote update and never touches n itself.
func (p NotePatch) Apply(n Note) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	switch {
	case p.ClearImage:
		n.Image = nil
	case p.Image != nil:
		img := *p.Image
		n.Image = &img
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
	if p.Trashed != nil {
		n.Trashed = *p.Trashed
	}
	if p.Archived != nil {
		n.Archived = *p.Archived
	}

	return n
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Color == nil &&
		p.Image == nil && !p.ClearImage &&
		p.Pinned == nil && p.Trashed == nil && p.Archived == nil
}

// MarshalJSON encodes only the fields present in the patch. A cleared image
// is sent as an explicit null.
func (p NotePatch) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 8)
	if p.Title != nil {
		body["title"] = *p.Title
	}
	if p.Content != nil {
		body["content"] = *p.Content
	}
	if p.Color != nil {
		body["color"] = *p.Color
	}
	switch {
	case p.ClearImage:
		body["image"] = nil
	case p.Image != nil:
		body["image"] = *p.Image
	}
	if p.Pinned != nil {
		body["pinned"] = *p.Pinned
	}
	if p.Trashed != nil {
		body["trashed"] = *p.Trashed
	}
	if p.Archived != nil {
		body["archived"] = *p.Archived
	}

	return json.Marshal(body)
}

// Ptr returns a pointer to v. Handy for building patches and filters.
func Ptr[T any](v T) *T {
	return &v
}
