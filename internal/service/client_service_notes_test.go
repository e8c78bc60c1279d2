// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/cache"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const testEmail = "a@x.com"

type noteFixture struct {
	svc      *clientNoteService
	remote   *mock.MockRemoteDataService
	storage  *memStorage
	cache    *cache.Cache
	appState *state.AppState
}

// newTestNoteSvc builds clientNoteService over a mocked backend
// and a real cache on in-memory storage.
func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) noteFixture {
	t.Helper()

	remote := mock.NewMockRemoteDataService(ctrl)
	storage := newMemStorage()
	noteCache := cache.New(storage, cache.DefaultTTL, logger.Nop())
	appState := state.NewAppState()

	svc := NewClientNoteService(remote, noteCache, appState, validators.NewNoteValidator(),
		fixedID("img-1"), "note_images", logger.Nop()).(*clientNoteService)

	return noteFixture{svc: svc, remote: remote, storage: storage, cache: noteCache, appState: appState}
}

func (f noteFixture) seedCache(t *testing.T) {
	t.Helper()
	require.NoError(t, f.cache.Set(context.Background(), cache.Key(testEmail, cache.ScopeActive), []models.Note{}))
	require.NoError(t, f.cache.Set(context.Background(), cache.Key(testEmail, cache.ScopePinned), []models.Note{}))
}

func (f noteFixture) assertCacheCleared(t *testing.T) {
	t.Helper()
	assert.False(t, f.storage.has(cache.Key(testEmail, cache.ScopeActive)))
	assert.False(t, f.storage.has(cache.Key(testEmail, cache.ScopePinned)))
}

func noteIDs(notes []models.Note) []int64 {
	out := make([]int64, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestClientNoteService_Add_AppendsOneActiveNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	f.seedCache(t)

	created := time.Now()
	f.remote.EXPECT().InsertNote(ctx, models.NewNote{
		Title: "T", Content: "C", Color: models.DefaultColor, UserEmail: testEmail,
	}).Return(models.Note{ID: 1, Title: "T", Content: "C", Color: models.DefaultColor, UserEmail: testEmail, CreatedAt: &created}, nil)

	note, err := f.svc.Add(ctx, testEmail, models.NoteDraft{Title: "T", Content: "C"})
	require.NoError(t, err)

	notes := f.appState.Notes.Get()
	require.Len(t, notes, 1)
	assert.Equal(t, note, notes[0])
	assert.False(t, notes[0].Trashed)
	assert.False(t, notes[0].Archived)
	assert.False(t, notes[0].Pinned)
	f.assertCacheCleared(t)
}

func TestClientNoteService_Add_UploadsFileImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	url := "https://xyz/storage/v1/object/public/note_images/img-1.png"
	gomock.InOrder(
		f.remote.EXPECT().Upload(ctx, "note_images", "img-1.png", "image/png", []byte{1, 2}).Return(nil),
		f.remote.EXPECT().PublicURL("note_images", "img-1.png").Return(url),
		f.remote.EXPECT().InsertNote(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n models.NewNote) (models.Note, error) {
				require.NotNil(t, n.Image)
				assert.Equal(t, url, *n.Image)
				assert.Equal(t, "yellow", n.Color)
				return models.Note{ID: 2, Image: n.Image, UserEmail: testEmail}, nil
			}),
	)

	_, err := f.svc.Add(ctx, testEmail, models.NoteDraft{
		Title: "T", Content: "C", Color: "yellow",
		Image: models.ImageSource{URL: "ignored", File: &models.ImageFile{Name: "a.PNG", ContentType: "image/png", Content: []byte{1, 2}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, noteIDs(f.appState.Notes.Get()))
}

func TestClientNoteService_Add_DirectImageURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	f.remote.EXPECT().InsertNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.NewNote) (models.Note, error) {
			require.NotNil(t, n.Image)
			assert.Equal(t, "https://img/x.jpg", *n.Image)
			return models.Note{ID: 3}, nil
		})

	_, err := f.svc.Add(ctx, testEmail, models.NoteDraft{Title: "T", Content: "C", Image: models.ImageSource{URL: " https://img/x.jpg "}})
	require.NoError(t, err)
}

func TestClientNoteService_Add_ValidationFailsWithoutRemoteCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)

	_, err := f.svc.Add(context.Background(), testEmail, models.NoteDraft{Title: "  ", Content: "C"})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	_, err = f.svc.Add(context.Background(), testEmail, models.NoteDraft{Title: "T"})
	assert.ErrorIs(t, err, validators.ErrEmptyContent)

	assert.Empty(t, f.appState.Notes.Get())
}

func TestClientNoteService_Add_UploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	f.remote.EXPECT().Upload(ctx, "note_images", "img-1.bin", "", gomock.Any()).Return(adapter.ErrForbidden)

	_, err := f.svc.Add(ctx, testEmail, models.NoteDraft{Title: "T", Content: "C", Image: models.ImageSource{File: &models.ImageFile{Name: "blob"}}})
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Empty(t, f.appState.Notes.Get())
}

// ── identity ─────────────────────────────────────────────────────────────────

func TestClientNoteService_CheckUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	_, err := f.svc.LoadActive(ctx, "")
	assert.ErrorIs(t, err, ErrNoActiveUser)

	f.appState.Session.Set(models.Session{Email: "b@x.com"})
	err = f.svc.Trash(ctx, testEmail, models.Note{ID: 5})
	assert.ErrorIs(t, err, ErrUserMismatch)

	f.appState.Session.Set(models.Session{Email: "A@X.com"})
	f.remote.EXPECT().DeleteNote(ctx, int64(5), testEmail).Return(nil)
	assert.NoError(t, f.svc.Delete(ctx, testEmail, models.Note{ID: 5}))
}

// ── loads ────────────────────────────────────────────────────────────────────

func TestClientNoteService_LoadActive_ServedFromCacheSecondTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	remoteNotes := []models.Note{{ID: 1, Pinned: true}, {ID: 2}}
	f.remote.EXPECT().SelectNotes(ctx, models.ActiveNotesFilter(testEmail)).Return(remoteNotes, nil).Times(1)

	first, err := f.svc.LoadActive(ctx, testEmail)
	require.NoError(t, err)
	f.appState.Notes.Set(nil)

	second, err := f.svc.LoadActive(ctx, testEmail)
	require.NoError(t, err)

	assert.Equal(t, noteIDs(first), noteIDs(second))
	assert.Equal(t, []int64{1, 2}, noteIDs(f.appState.Notes.Get()))
	assert.Equal(t, []int64{1}, noteIDs(f.appState.Pinned.Get()))
}

func TestClientNoteService_LoadActive_RemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	f.appState.Notes.Set([]models.Note{{ID: 9}})

	f.remote.EXPECT().SelectNotes(ctx, gomock.Any()).Return(nil, adapter.ErrInternalServerError)

	_, err := f.svc.LoadActive(ctx, testEmail)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Equal(t, []int64{9}, noteIDs(f.appState.Notes.Get()), "store untouched on failure")
	assert.False(t, f.storage.has(cache.Key(testEmail, cache.ScopeActive)))
}

func TestClientNoteService_LoadPinned_MergesIntoCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	f.appState.Notes.Set([]models.Note{{ID: 1, Pinned: true}, {ID: 2}, {ID: 3, Pinned: true, Trashed: true}})
	f.remote.EXPECT().SelectNotes(ctx, models.PinnedNotesFilter(testEmail)).Return([]models.Note{{ID: 4, Pinned: true}}, nil)

	pinned, err := f.svc.LoadPinned(ctx, testEmail)
	require.NoError(t, err)

	assert.Equal(t, []int64{4}, noteIDs(pinned))
	assert.Equal(t, []int64{2, 3, 4}, noteIDs(f.appState.Notes.Get()))
	assert.True(t, f.storage.has(cache.Key(testEmail, cache.ScopePinned)))
}

// ── mutations ────────────────────────────────────────────────────────────────

func TestClientNoteService_Trash_RemovesNoteAndClearsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	f.seedCache(t)

	note := models.Note{ID: 5, UserEmail: testEmail}
	f.appState.Notes.Set([]models.Note{{ID: 4}, note})

	f.remote.EXPECT().UpdateNote(ctx, int64(5), testEmail, models.NotePatch{Trashed: models.Ptr(true)}).
		Return([]models.Note{{ID: 5, Trashed: true}}, nil)

	require.NoError(t, f.svc.Trash(ctx, testEmail, note))

	assert.Equal(t, []int64{4}, noteIDs(f.appState.Notes.Get()))
	f.assertCacheCleared(t)
}

func TestClientNoteService_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	f.appState.Notes.Set([]models.Note{{ID: 5}})

	f.remote.EXPECT().UpdateNote(ctx, int64(5), testEmail, models.NotePatch{Archived: models.Ptr(true)}).
		Return([]models.Note{{ID: 5, Archived: true}}, nil)

	require.NoError(t, f.svc.Archive(ctx, testEmail, models.Note{ID: 5}))
	assert.Empty(t, f.appState.Notes.Get())
}

func TestClientNoteService_Patches(t *testing.T) {
	img := "https://img/old.png"
	base := models.Note{ID: 7, Title: "T", Content: "C", Color: "red", Image: &img}

	tests := []struct {
		name      string
		call      func(s *clientNoteService, ctx context.Context) error
		wantPatch models.NotePatch
		check     func(t *testing.T, n models.Note)
	}{
		{
			name: "update text",
			call: func(s *clientNoteService, ctx context.Context) error {
				return s.UpdateText(ctx, testEmail, base, "T2", "C2")
			},
			wantPatch: models.NotePatch{Title: models.Ptr("T2"), Content: models.Ptr("C2")},
			check: func(t *testing.T, n models.Note) {
				assert.Equal(t, "T2", n.Title)
				assert.Equal(t, "C2", n.Content)
			},
		},
		{
			name: "change color clears image",
			call: func(s *clientNoteService, ctx context.Context) error {
				return s.ChangeColor(ctx, testEmail, base, "blue")
			},
			wantPatch: models.NotePatch{Color: models.Ptr("blue"), ClearImage: true},
			check: func(t *testing.T, n models.Note) {
				assert.Equal(t, "blue", n.Color)
				assert.Nil(t, n.Image)
			},
		},
		{
			name: "set image url makes color transparent",
			call: func(s *clientNoteService, ctx context.Context) error {
				return s.SetImageURL(ctx, testEmail, base, "https://img/new.png")
			},
			wantPatch: models.NotePatch{Image: models.Ptr("https://img/new.png"), Color: models.Ptr(models.ColorTransparent)},
			check: func(t *testing.T, n models.Note) {
				require.NotNil(t, n.Image)
				assert.Equal(t, "https://img/new.png", *n.Image)
				assert.Equal(t, models.ColorTransparent, n.Color)
			},
		},
		{
			name: "remove image",
			call: func(s *clientNoteService, ctx context.Context) error {
				return s.RemoveImage(ctx, testEmail, base)
			},
			wantPatch: models.NotePatch{ClearImage: true},
			check: func(t *testing.T, n models.Note) {
				assert.Nil(t, n.Image)
				assert.Equal(t, "red", n.Color)
			},
		},
		{
			name: "toggle pin",
			call: func(s *clientNoteService, ctx context.Context) error {
				return s.TogglePin(ctx, testEmail, base)
			},
			wantPatch: models.NotePatch{Pinned: models.Ptr(true)},
			check: func(t *testing.T, n models.Note) {
				assert.True(t, n.Pinned)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestNoteSvc(t, ctrl)
			ctx := context.Background()
			f.seedCache(t)
			f.appState.Notes.Set([]models.Note{base})

			f.remote.EXPECT().UpdateNote(ctx, int64(7), testEmail, tt.wantPatch).Return([]models.Note{base}, nil)

			require.NoError(t, tt.call(f.svc, ctx))

			notes := f.appState.Notes.Get()
			require.Len(t, notes, 1)
			tt.check(t, notes[0])
			f.assertCacheCleared(t)
		})
	}
}

func TestClientNoteService_AttachImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	f.appState.Notes.Set([]models.Note{{ID: 7, Color: "red"}})

	url := "https://xyz/public/note_images/img-1.jpg"
	gomock.InOrder(
		f.remote.EXPECT().Upload(ctx, "note_images", "img-1.jpg", "image/jpeg", []byte("x")).Return(nil),
		f.remote.EXPECT().PublicURL("note_images", "img-1.jpg").Return(url),
		f.remote.EXPECT().UpdateNote(ctx, int64(7), testEmail, models.NotePatch{Image: &url}).Return([]models.Note{{ID: 7}}, nil),
	)

	err := f.svc.AttachImage(ctx, testEmail, models.Note{ID: 7}, models.ImageFile{Name: "p.jpg", ContentType: "image/jpeg", Content: []byte("x")})
	require.NoError(t, err)

	notes := f.appState.Notes.Get()
	require.NotNil(t, notes[0].Image)
	assert.Equal(t, url, *notes[0].Image)
	assert.Equal(t, "red", notes[0].Color)
}

func TestClientNoteService_UpdateText_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)

	err := f.svc.UpdateText(context.Background(), testEmail, models.Note{ID: 1}, "T", "\n")
	assert.ErrorIs(t, err, validators.ErrEmptyContent)
}

func TestClientNoteService_Update_NoMatchLeavesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	f.seedCache(t)
	f.appState.Notes.Set([]models.Note{{ID: 7}})

	f.remote.EXPECT().UpdateNote(ctx, int64(7), testEmail, gomock.Any()).Return([]models.Note{}, nil)

	err := f.svc.Trash(ctx, testEmail, models.Note{ID: 7})
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.Equal(t, []int64{7}, noteIDs(f.appState.Notes.Get()))
	f.assertCacheCleared(t)
}

func TestClientNoteService_RemoteFailureStillInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	f.seedCache(t)
	f.appState.Notes.Set([]models.Note{{ID: 8}})

	f.remote.EXPECT().DeleteNote(ctx, int64(8), testEmail).Return(adapter.ErrUnauthorized)

	err := f.svc.Delete(ctx, testEmail, models.Note{ID: 8})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, []int64{8}, noteIDs(f.appState.Notes.Get()))
	f.assertCacheCleared(t)
}
