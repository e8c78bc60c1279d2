package models

// OrderBy is a single ordering term of a note selection.
type OrderBy struct {
	Column     string
	Descending bool
}

// NoteFilter describes a selection of notes. UserEmail is mandatory; nil
// flags are not filtered on. Terms in Order are applied left to right.
type NoteFilter struct {
	UserEmail string
	Pinned    *bool
	Trashed   *bool
	Archived  *bool
	Order     []OrderBy
}

// ActiveNotesFilter selects the active list of an owner: not trashed, not
// archived, pinned first, newest first.
func ActiveNotesFilter(email string) NoteFilter {
	return NoteFilter{
		UserEmail: email,
		Trashed:   Ptr(false),
		Archived:  Ptr(false),
		Order: []OrderBy{
			{Column: "pinned", Descending: true},
			{Column: "created_at", Descending: true},
		},
	}
}

// PinnedNotesFilter selects the active pinned notes of an owner, newest first.
func PinnedNotesFilter(email string) NoteFilter {
	return NoteFilter{
		UserEmail: email,
		Pinned:    Ptr(true),
		Trashed:   Ptr(false),
		Archived:  Ptr(false),
		Order:     []OrderBy{{Column: "created_at", Descending: true}},
	}
}

// AllNotesFilter selects every note of an owner, including trashed and
// archived ones, oldest first. Used for backups.
func AllNotesFilter(email string) NoteFilter {
	return NoteFilter{
		UserEmail: email,
		Order:     []OrderBy{{Column: "created_at"}},
	}
}
