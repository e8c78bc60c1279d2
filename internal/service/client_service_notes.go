package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/cache"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ObjectNamer produces unique object names for uploaded images.
type ObjectNamer interface {
	ObjectName(ext string) string
}

type clientNoteService struct {
	remote       adapter.RemoteDataService
	cache        *cache.Cache
	appState     *state.AppState
	validator    validators.Validator
	names        ObjectNamer
	imagesBucket string

	logger *logger.Logger
}

// NewClientNoteService wires a [NoteService] to the backend, the local cache
// and the reactive store of the current session.
func NewClientNoteService(
	remote adapter.RemoteDataService,
	noteCache *cache.Cache,
	appState *state.AppState,
	validator validators.Validator,
	names ObjectNamer,
	imagesBucket string,
	logger *logger.Logger,
) NoteService {
	return &clientNoteService{
		remote:       remote,
		cache:        noteCache,
		appState:     appState,
		validator:    validator,
		names:        names,
		imagesBucket: imagesBucket,
		logger:       logger,
	}
}

func (s *clientNoteService) LoadActive(ctx context.Context, email string) ([]models.Note, error) {
	if err := s.checkUser(email); err != nil {
		return nil, err
	}

	key := cache.Key(email, cache.ScopeActive)

	var notes []models.Note
	if s.cache.Get(ctx, key, &notes) {
		s.appState.Notes.Set(notes)
		return notes, nil
	}

	notes, err := s.remote.SelectNotes(ctx, models.ActiveNotesFilter(email))
	if err != nil {
		return nil, s.fail("*clientNoteService.LoadActive", email, fmt.Errorf("load active notes: %w", mapAdapterError(err)))
	}

	s.appState.Notes.Set(notes)
	s.store(ctx, key, notes)

	return notes, nil
}

func (s *clientNoteService) LoadPinned(ctx context.Context, email string) ([]models.Note, error) {
	if err := s.checkUser(email); err != nil {
		return nil, err
	}

	key := cache.Key(email, cache.ScopePinned)

	var pinned []models.Note
	if !s.cache.Get(ctx, key, &pinned) {
		var err error
		pinned, err = s.remote.SelectNotes(ctx, models.PinnedNotesFilter(email))
		if err != nil {
			return nil, s.fail("*clientNoteService.LoadPinned", email, fmt.Errorf("load pinned notes: %w", mapAdapterError(err)))
		}
		s.store(ctx, key, pinned)
	}

	s.appState.Notes.Update(func(notes []models.Note) []models.Note {
		return state.MergePinned(notes, pinned)
	})

	return pinned, nil
}

func (s *clientNoteService) Add(ctx context.Context, email string, draft models.NoteDraft) (models.Note, error) {
	if err := s.checkUser(email); err != nil {
		return models.Note{}, err
	}
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Note{}, err
	}

	color := draft.Color
	if color == "" {
		color = models.DefaultColor
	}

	var image *string
	switch {
	case draft.Image.File != nil:
		url, err := s.uploadImage(ctx, *draft.Image.File)
		if err != nil {
			return models.Note{}, s.fail("*clientNoteService.Add", email, err)
		}
		image = &url
	case strings.TrimSpace(draft.Image.URL) != "":
		url := strings.TrimSpace(draft.Image.URL)
		image = &url
	}

	defer s.invalidate(ctx, email)

	note, err := s.remote.InsertNote(ctx, models.NewNote{
		Title:     draft.Title,
		Content:   draft.Content,
		Color:     color,
		Image:     image,
		Pinned:    draft.Pinned,
		UserEmail: email,
	})
	if err != nil {
		return models.Note{}, s.fail("*clientNoteService.Add", email, fmt.Errorf("insert note: %w", mapAdapterError(err)))
	}

	s.appState.Notes.Update(func(notes []models.Note) []models.Note {
		return state.AppendNote(notes, note)
	})

	return note, nil
}

func (s *clientNoteService) UpdateText(ctx context.Context, email string, note models.Note, title, content string) error {
	patch := models.NotePatch{Title: &title, Content: &content}
	if err := s.validator.Validate(ctx, patch, validators.FieldTitle, validators.FieldContent); err != nil {
		return err
	}

	return s.patch(ctx, "*clientNoteService.UpdateText", email, note, patch)
}

func (s *clientNoteService) ChangeColor(ctx context.Context, email string, note models.Note, color string) error {
	return s.patch(ctx, "*clientNoteService.ChangeColor", email, note, models.NotePatch{
		Color:      &color,
		ClearImage: true,
	})
}

func (s *clientNoteService) AttachImage(ctx context.Context, email string, note models.Note, file models.ImageFile) error {
	if err := s.checkUser(email); err != nil {
		return err
	}

	url, err := s.uploadImage(ctx, file)
	if err != nil {
		return s.fail("*clientNoteService.AttachImage", email, err)
	}

	return s.patch(ctx, "*clientNoteService.AttachImage", email, note, models.NotePatch{Image: &url})
}

func (s *clientNoteService) SetImageURL(ctx context.Context, email string, note models.Note, url string) error {
	url = strings.TrimSpace(url)
	return s.patch(ctx, "*clientNoteService.SetImageURL", email, note, models.NotePatch{
		Image: &url,
		Color: models.Ptr(models.ColorTransparent),
	})
}

func (s *clientNoteService) RemoveImage(ctx context.Context, email string, note models.Note) error {
	return s.patch(ctx, "*clientNoteService.RemoveImage", email, note, models.NotePatch{ClearImage: true})
}

func (s *clientNoteService) TogglePin(ctx context.Context, email string, note models.Note) error {
	return s.patch(ctx, "*clientNoteService.TogglePin", email, note, models.NotePatch{
		Pinned: models.Ptr(!note.Pinned),
	})
}

func (s *clientNoteService) Trash(ctx context.Context, email string, note models.Note) error {
	return s.hide(ctx, "*clientNoteService.Trash", email, note, models.NotePatch{Trashed: models.Ptr(true)})
}

func (s *clientNoteService) Archive(ctx context.Context, email string, note models.Note) error {
	return s.hide(ctx, "*clientNoteService.Archive", email, note, models.NotePatch{Archived: models.Ptr(true)})
}

func (s *clientNoteService) Delete(ctx context.Context, email string, note models.Note) error {
	if err := s.checkUser(email); err != nil {
		return err
	}

	defer s.invalidate(ctx, email)

	if err := s.remote.DeleteNote(ctx, note.ID, email); err != nil {
		return s.fail("*clientNoteService.Delete", email, fmt.Errorf("delete note %d: %w", note.ID, mapAdapterError(err)))
	}

	s.appState.Notes.Update(func(notes []models.Note) []models.Note {
		return state.RemoveNote(notes, note.ID)
	})

	return nil
}

// patch sends patch to the backend and applies it to the stored copy of the
// note once confirmed.
func (s *clientNoteService) patch(ctx context.Context, fn, email string, note models.Note, patch models.NotePatch) error {
	if err := s.update(ctx, fn, email, note, patch); err != nil {
		return err
	}

	s.appState.Notes.Update(func(notes []models.Note) []models.Note {
		return state.PatchNote(notes, note.ID, patch)
	})

	return nil
}

// hide sends patch to the backend and drops the note from the collection
// once confirmed.
func (s *clientNoteService) hide(ctx context.Context, fn, email string, note models.Note, patch models.NotePatch) error {
	if err := s.update(ctx, fn, email, note, patch); err != nil {
		return err
	}

	s.appState.Notes.Update(func(notes []models.Note) []models.Note {
		return state.RemoveNote(notes, note.ID)
	})

	return nil
}

func (s *clientNoteService) update(ctx context.Context, fn, email string, note models.Note, patch models.NotePatch) error {
	if err := s.checkUser(email); err != nil {
		return err
	}

	defer s.invalidate(ctx, email)

	updated, err := s.remote.UpdateNote(ctx, note.ID, email, patch)
	if err != nil {
		return s.fail(fn, email, fmt.Errorf("update note %d: %w", note.ID, mapAdapterError(err)))
	}
	if len(updated) == 0 {
		return s.fail(fn, email, fmt.Errorf("update note %d: %w", note.ID, ErrNoteNotFound))
	}

	return nil
}

// uploadImage stores file under a fresh object name and returns its public
// URL.
func (s *clientNoteService) uploadImage(ctx context.Context, file models.ImageFile) (string, error) {
	path := s.names.ObjectName(file.Ext())

	if err := s.remote.Upload(ctx, s.imagesBucket, path, file.ContentType, file.Content); err != nil {
		return "", fmt.Errorf("upload image %q: %w", file.Name, mapAdapterError(err))
	}

	return s.remote.PublicURL(s.imagesBucket, path), nil
}

// checkUser enforces that the caller-supplied email is set and, while a
// session is active, belongs to it.
func (s *clientNoteService) checkUser(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrNoActiveUser
	}

	session := s.appState.Session.Get()
	if session.Active() && !strings.EqualFold(session.Email, email) {
		return fmt.Errorf("%w: %s", ErrUserMismatch, email)
	}

	return nil
}

func (s *clientNoteService) store(ctx context.Context, key string, notes []models.Note) {
	if err := s.cache.Set(ctx, key, notes); err != nil {
		s.logger.Warn().Err(err).Str("func", "*clientNoteService.store").Str("key", key).Msg("error caching notes")
	}
}

func (s *clientNoteService) invalidate(ctx context.Context, email string) {
	if err := s.cache.InvalidateUser(ctx, email); err != nil {
		s.logger.Warn().Err(err).Str("func", "*clientNoteService.invalidate").Str("email", email).Msg("error invalidating user cache")
	}
}

func (s *clientNoteService) fail(fn, email string, err error) error {
	s.logger.Err(err).Str("func", fn).Str("email", email).Send()
	return err
}
