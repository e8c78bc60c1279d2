package state

import "github.com/MKhiriev/go-notes-keeper/models"

// The functions below are the pure local transforms applied to the note
// collection once the backend has confirmed a change. None of them modifies
// its input slice.

// PinnedView keeps the active pinned notes.
func PinnedView(notes []models.Note) []models.Note {
	return filter(notes, func(n models.Note) bool {
		return n.Pinned && n.Active()
	})
}

// UnpinnedView keeps the active unpinned notes.
func UnpinnedView(notes []models.Note) []models.Note {
	return filter(notes, func(n models.Note) bool {
		return !n.Pinned && n.Active()
	})
}

// AppendNote adds a confirmed new note at the end of the collection.
func AppendNote(notes []models.Note, note models.Note) []models.Note {
	out := make([]models.Note, 0, len(notes)+1)
	out = append(out, notes...)
	return append(out, note)
}

// RemoveNote drops the note with id.
func RemoveNote(notes []models.Note, id int64) []models.Note {
	return filter(notes, func(n models.Note) bool {
		return n.ID != id
	})
}

// PatchNote applies patch to the note with id. Other notes are copied as is.
func PatchNote(notes []models.Note, id int64, patch models.NotePatch) []models.Note {
	out := make([]models.Note, len(notes))
	for i, n := range notes {
		if n.ID == id {
			n = patch.Apply(n)
		}
		out[i] = n
	}
	return out
}

// MergePinned replaces the pinned part of the collection with pinned: it
// keeps every note that is unpinned, trashed or archived and appends the
// freshly loaded pinned ones.
func MergePinned(notes, pinned []models.Note) []models.Note {
	kept := filter(notes, func(n models.Note) bool {
		return !n.Pinned || n.Trashed || n.Archived
	})
	return append(kept, pinned...)
}

func filter(notes []models.Note, keep func(models.Note) bool) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
