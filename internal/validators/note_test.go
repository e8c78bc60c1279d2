// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestNewNoteValidator(t *testing.T) {
	require.NotNil(t, NewNoteValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("draft value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.NoteDraft{Title: "T", Content: "C"}))
	})

	t.Run("draft pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.NoteDraft{Title: "T", Content: "C"}))
	})

	t.Run("note pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.Note{ID: 1, UserEmail: "a@x.com"}))
	})
}

func TestValidate_Draft(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   models.NoteDraft
		fields  []string
		wantErr error
	}{
		{name: "valid", draft: models.NoteDraft{Title: "T", Content: "C"}},
		{name: "empty title", draft: models.NoteDraft{Content: "C"}, wantErr: ErrEmptyTitle},
		{name: "whitespace title", draft: models.NoteDraft{Title: " \t\n", Content: "C"}, wantErr: ErrEmptyTitle},
		{name: "whitespace content", draft: models.NoteDraft{Title: "T", Content: "   "}, wantErr: ErrEmptyContent},
		{name: "title checked first", draft: models.NoteDraft{}, wantErr: ErrEmptyTitle},
		{name: "only content field", draft: models.NoteDraft{Content: "C"}, fields: []string{FieldContent}},
		{name: "unknown field", draft: models.NoteDraft{Title: "T"}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.draft, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_Patch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	t.Run("color-only patch has nothing to check", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.NotePatch{Color: models.Ptr("red")}))
	})

	t.Run("blank title in patch", func(t *testing.T) {
		err := v.Validate(ctx, models.NotePatch{Title: models.Ptr(" "), Content: models.Ptr("C")})
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("explicit fields require presence", func(t *testing.T) {
		err := v.Validate(ctx, models.NotePatch{Title: models.Ptr("T")}, FieldTitle, FieldContent)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})
}

func TestValidate_Note(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Note{UserEmail: "a@x.com"}), ErrInvalidNoteID)
	assert.ErrorIs(t, v.Validate(ctx, models.Note{ID: 3}), ErrEmptyUserEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Note{ID: 3, UserEmail: "a"}, FieldTitle), ErrEmptyTitle)
}
