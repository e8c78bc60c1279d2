package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle     = errors.New("title is required")
	ErrEmptyContent   = errors.New("content is required")
	ErrEmptyUserEmail = errors.New("user email is required")
	ErrInvalidNoteID  = errors.New("invalid note id")
)
