package state

import "github.com/MKhiriev/go-notes-keeper/models"

// AppState is the observable state of one client session. It is created at
// session start and torn down with Close at session end.
type AppState struct {
	Notes    *Writable[[]models.Note]
	Pinned   *Derived[[]models.Note]
	Unpinned *Derived[[]models.Note]

	Session    *Writable[models.Session]
	Theme      *Writable[models.Theme]
	GridLayout *Writable[bool]
}

// NewAppState returns an empty signed-out state with the light theme and
// the list layout.
func NewAppState() *AppState {
	notes := NewWritable[[]models.Note](nil)

	return &AppState{
		Notes:      notes,
		Pinned:     NewDerived[[]models.Note](notes, PinnedView),
		Unpinned:   NewDerived[[]models.Note](notes, UnpinnedView),
		Session:    NewWritable(models.Session{}),
		Theme:      NewWritable(models.ThemeLight),
		GridLayout: NewWritable(false),
	}
}

// Close clears the notes and signs the session out, then detaches the
// derived views.
func (s *AppState) Close() {
	s.Notes.Set(nil)
	s.Session.Set(models.Session{})
	s.Pinned.Close()
	s.Unpinned.Close()
}
