package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testEmail = "ann@example.com"

type testLoop struct {
	notes    *mock.MockNoteService
	backups  *mock.MockBackupService
	prefs    *mock.MockPreferencesService
	appState *state.AppState
	model    mainLoopModel
}

func newTestLoop(t *testing.T, notes ...models.Note) *testLoop {
	t.Helper()

	ctrl := gomock.NewController(t)
	tl := &testLoop{
		notes:    mock.NewMockNoteService(ctrl),
		backups:  mock.NewMockBackupService(ctrl),
		prefs:    mock.NewMockPreferencesService(ctrl),
		appState: state.NewAppState(),
	}
	tl.appState.Notes.Set(notes)

	bridge := newStoreBridge(tl.appState)
	t.Cleanup(bridge.Close)

	services := &service.ClientServices{
		NoteService:        tl.notes,
		BackupService:      tl.backups,
		PreferencesService: tl.prefs,
	}
	tl.model = newMainLoopModel(context.Background(), services, tl.appState, bridge, testEmail)
	tl.model.loading = false

	return tl
}

func (tl *testLoop) send(msg tea.Msg) tea.Cmd {
	next, cmd := tl.model.Update(msg)
	tl.model = next.(mainLoopModel)
	return cmd
}

func (tl *testLoop) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = tl.send(keyMsg(k))
	}
	return cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// resultOf runs cmd and returns the first message of the given type it
// produces, descending into batches.
func resultOf[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()

	var found *T
	var walk func(tea.Cmd)
	walk = func(c tea.Cmd) {
		if c == nil || found != nil {
			return
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			for _, inner := range msg {
				walk(inner)
			}
		case T:
			found = &msg
		}
	}
	walk(cmd)

	require.NotNil(t, found, "command produced no %T", *new(T))
	return *found
}

func testNotes() []models.Note {
	return []models.Note{
		{ID: 1, Title: "groceries", Content: "milk", UserEmail: testEmail},
		{ID: 2, Title: "ideas", Content: "write more", Pinned: true, UserEmail: testEmail},
		{ID: 3, Title: "books", Content: "dune", UserEmail: testEmail},
	}
}

func TestMainLoop_PinnedFirst(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)

	require.Len(t, tl.model.notes, 3)
	assert.Equal(t, int64(2), tl.model.notes[0].ID)
	assert.Equal(t, 1, tl.model.pinnedCount)
}

func TestMainLoop_StoreChangeRefreshes(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)
	tl.model.idx = 2

	tl.appState.Notes.Update(func(notes []models.Note) []models.Note {
		return state.RemoveNote(notes, 3)
	})
	cmd := tl.send(storeChangedMsg{})

	assert.NotNil(t, cmd)
	assert.Len(t, tl.model.notes, 2)
	assert.Equal(t, 1, tl.model.idx)
}

func TestMainLoop_DeleteAfterConfirm(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)
	tl.model.idx = 1
	target := tl.model.notes[1]

	tl.press("D")
	assert.Equal(t, modeConfirmDelete, tl.model.mode)

	tl.notes.EXPECT().Delete(gomock.Any(), testEmail, target).Return(nil)
	cmd := tl.press("y")

	assert.Equal(t, modeList, tl.model.mode)
	assert.True(t, tl.model.busy)

	done := resultOf[opDoneMsg](t, cmd)
	require.NoError(t, done.err)

	tl.send(done)
	assert.False(t, tl.model.busy)
	assert.Equal(t, "Note deleted", tl.model.status)
}

func TestMainLoop_DeleteCancelled(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)

	tl.press("D", "n")

	assert.Equal(t, modeList, tl.model.mode)
	assert.False(t, tl.model.busy)
}

func TestMainLoop_ErrorOverlayBlocksKeys(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)

	tl.send(opDoneMsg{err: errors.New("http 500: boom")})
	require.Equal(t, "http 500: boom", tl.model.errMsg)
	assert.Contains(t, tl.model.View(), "http 500: boom")

	tl.press("n")
	assert.Equal(t, modeList, tl.model.mode)

	tl.press("esc")
	assert.Empty(t, tl.model.errMsg)

	tl.press("n")
	assert.Equal(t, modeForm, tl.model.mode)
}

func TestMainLoop_TogglePinAndTrash(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)
	pinned := tl.model.notes[0]

	tl.notes.EXPECT().TogglePin(gomock.Any(), testEmail, pinned).Return(nil)
	done := resultOf[opDoneMsg](t, tl.press("p"))
	assert.Equal(t, "Note unpinned", done.status)

	tl.notes.EXPECT().Trash(gomock.Any(), testEmail, pinned).Return(nil)
	done = resultOf[opDoneMsg](t, tl.press("t"))
	assert.Equal(t, "Note moved to trash", done.status)
}

func TestMainLoop_ChangeColor(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)
	target := tl.model.notes[0]

	tl.press("c")
	require.Equal(t, modeColor, tl.model.mode)

	tl.notes.EXPECT().ChangeColor(gomock.Any(), testEmail, target, "red").Return(nil)
	cmd := tl.press("down", "enter")

	done := resultOf[opDoneMsg](t, cmd)
	assert.NoError(t, done.err)
}

func TestMainLoop_SetImageURL(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)
	target := tl.model.notes[0]

	tl.press("i")
	require.Equal(t, modeImageURL, tl.model.mode)
	tl.model.input.SetValue(" https://img.example.com/cat.png ")

	tl.notes.EXPECT().SetImageURL(gomock.Any(), testEmail, target, "https://img.example.com/cat.png").Return(nil)
	done := resultOf[opDoneMsg](t, tl.press("enter"))

	assert.Equal(t, "Image set", done.status)
}

func TestMainLoop_AddNote(t *testing.T) {
	tl := newTestLoop(t)

	tl.press("n")
	require.Equal(t, modeForm, tl.model.mode)
	tl.model.form.title.SetValue("todo")
	tl.model.form.content.SetValue("ship it")
	tl.model.form.image.SetValue("https://img.example.com/a.png")

	tl.notes.EXPECT().Add(gomock.Any(), testEmail, models.NoteDraft{
		Title:   "todo",
		Content: "ship it",
		Color:   models.DefaultColor,
		Image:   models.ImageSource{URL: "https://img.example.com/a.png"},
	}).Return(models.Note{ID: 9}, nil)

	done := resultOf[opDoneMsg](t, tl.press("ctrl+s"))

	assert.NoError(t, done.err)
	assert.Equal(t, modeList, tl.model.mode)
}

func TestMainLoop_AddNoteMissingImageFile(t *testing.T) {
	tl := newTestLoop(t)

	tl.press("n")
	tl.model.form.title.SetValue("todo")
	tl.model.form.content.SetValue("ship it")
	tl.model.form.image.SetValue("/does/not/exist.png")

	done := resultOf[opDoneMsg](t, tl.press("ctrl+s"))

	assert.Error(t, done.err)
}

func TestMainLoop_EditNote(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)
	target := tl.model.notes[0]

	tl.press("e")
	require.Equal(t, modeForm, tl.model.mode)
	assert.Equal(t, target.Title, tl.model.form.title.Value())
	tl.model.form.title.SetValue("better ideas")

	tl.notes.EXPECT().UpdateText(gomock.Any(), testEmail, target, "better ideas", target.Content).Return(nil)
	done := resultOf[opDoneMsg](t, tl.press("ctrl+s"))

	assert.Equal(t, "Note saved", done.status)
}

func TestMainLoop_Copy(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)

	var copied string
	tl.model.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	tl.press("y")

	assert.Equal(t, "ideas\n\nwrite more", copied)
	assert.Equal(t, "Copied to clipboard", tl.model.status)
}

func TestMainLoop_GridAndTheme(t *testing.T) {
	tl := newTestLoop(t, testNotes()...)

	tl.press("g")
	assert.True(t, tl.appState.GridLayout.Get())

	tl.prefs.EXPECT().ToggleTheme().Return(models.ThemeDark)
	tl.press("m")
}

func TestMainLoop_Backup(t *testing.T) {
	tl := newTestLoop(t)

	tl.backups.EXPECT().Snapshot(gomock.Any(), testEmail).Return(models.BackupResult{
		LastBackupAt: time.Now().Add(-time.Hour),
	}, nil)

	done := resultOf[backupDoneMsg](t, tl.press("b"))
	tl.send(done)

	assert.Contains(t, tl.model.status, "Backup skipped")
}

func TestMainLoop_ExportFailure(t *testing.T) {
	tl := newTestLoop(t)
	tl.model.exportDir = t.TempDir()

	tl.backups.EXPECT().Export(gomock.Any(), testEmail, tl.model.exportDir).Return(models.ExportResult{
		Failure: models.ExportNoBackups,
		Message: "no backups found",
	})

	done := resultOf[exportDoneMsg](t, tl.press("o"))
	tl.send(done)

	assert.Equal(t, "Export failed: no backups found", tl.model.errMsg)
}

func TestMainLoop_Logout(t *testing.T) {
	tl := newTestLoop(t)

	cmd := tl.press("L")

	assert.True(t, tl.model.logout)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
