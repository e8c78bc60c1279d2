package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the note title; blank after trimming is rejected.
	FieldTitle = "title"

	// FieldContent targets the note body; blank after trimming is rejected.
	FieldContent = "content"

	// FieldUserEmail targets the owner of a stored note.
	FieldUserEmail = "user_email"

	// FieldID targets the backend id of a stored note.
	FieldID = "id"
)

// NoteValidator implements [Validator] for the note input models:
// models.NoteDraft, models.NotePatch and models.Note.
type NoteValidator struct{}

// NewNoteValidator constructs a new NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Default field sets:
//   - models.NoteDraft: title, content
//   - models.NotePatch: only the fields the patch sets among title, content
//   - models.Note: id, user_email
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteDraft:
		return v.validateDraft(value, fields...)
	case *models.NoteDraft:
		return v.validateDraft(*value, fields...)
	case models.NotePatch:
		return v.validatePatch(value, fields...)
	case *models.NotePatch:
		return v.validatePatch(*value, fields...)
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateDraft(draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(draft.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(draft.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validatePatch(patch models.NotePatch, fields ...string) error {
	if len(fields) == 0 {
		if patch.Title != nil {
			fields = append(fields, FieldTitle)
		}
		if patch.Content != nil {
			fields = append(fields, FieldContent)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if patch.Title == nil || isBlank(*patch.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if patch.Content == nil || isBlank(*patch.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if note.ID <= 0 {
				return ErrInvalidNoteID
			}
		case FieldUserEmail:
			if isBlank(note.UserEmail) {
				return ErrEmptyUserEmail
			}
		case FieldTitle:
			if isBlank(note.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(note.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
