package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type viewMode int

const (
	modeList viewMode = iota
	modeDetail
	modeForm
	modeColor
	modeImageURL
	modeImageFile
	modeConfirmDelete
)

const statusTTL = 3 * time.Second

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	appState *state.AppState
	bridge   *storeBridge
	email    string

	notes       []models.Note
	pinnedCount int
	idx         int
	theme       models.Theme
	grid        bool

	mode     viewMode
	form     noteForm
	colorIdx int
	input    textinput.Model
	target   models.Note

	loading bool
	busy    bool
	spinner spinner.Model
	status  string
	errMsg  string

	// copyToClipboard is swapped in tests.
	copyToClipboard func(string) error
	exportDir       string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, appState *state.AppState, bridge *storeBridge, email string) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := mainLoopModel{
		ctx:             ctx,
		services:        services,
		appState:        appState,
		bridge:          bridge,
		email:           email,
		loading:         true,
		spinner:         s,
		copyToClipboard: clipboard.WriteAll,
		exportDir:       ".",
	}
	m.refresh()

	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.bridge.wait(), m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		m.refresh()
		return m, m.bridge.wait()
	case spinner.TickMsg:
		if !m.loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case opDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m.withStatus(msg.status)
	case backupDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = "Backup failed: " + humanizeError(msg.err)
			return m, nil
		}
		if msg.result.Uploaded {
			return m.withStatus(fmt.Sprintf("Backup saved (%d notes)", msg.result.Notes))
		}
		return m.withStatus("Backup skipped, last one at " + msg.result.LastBackupAt.Local().Format("2006-01-02 15:04"))
	case exportDoneMsg:
		m.busy = false
		if !msg.result.OK() {
			m.errMsg = "Export failed: " + msg.result.Message
			return m, nil
		}
		return m.withStatus("Exported to " + msg.result.Path)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInputs(msg)
}

func (m mainLoopModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// the error notification blocks every other key until dismissed
	if m.errMsg != "" {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeColor:
		return m.updateColor(msg)
	case modeImageURL, modeImageFile:
		return m.updateImageInput(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	case modeDetail:
		return m.updateDetail(msg)
	}

	return m.updateList(msg)
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up, keys.left):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down, keys.right):
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.newNote):
		m.form = newNoteForm(nil)
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(msg, keys.grid):
		m.appState.GridLayout.Update(func(grid bool) bool { return !grid })
		return m, nil
	case key.Matches(msg, keys.theme):
		m.services.PreferencesService.ToggleTheme()
		return m, nil
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), m.spinner.Tick)
	case key.Matches(msg, keys.backup):
		return m.startBusy(m.cmdBackup())
	case key.Matches(msg, keys.export):
		return m.startBusy(m.cmdExport())
	}

	note, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		m.target = note
		m.mode = modeDetail
	case key.Matches(msg, keys.edit):
		m.form = newNoteForm(&note)
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(msg, keys.color):
		m.target = note
		m.colorIdx = colorIndex(note.Color)
		m.mode = modeColor
	case key.Matches(msg, keys.imageURL):
		m.target = note
		m.input = newPromptInput("https://...")
		m.mode = modeImageURL
		return m, textinput.Blink
	case key.Matches(msg, keys.imageFile):
		m.target = note
		m.input = newPromptInput("/path/to/image.png")
		m.mode = modeImageFile
		return m, textinput.Blink
	case key.Matches(msg, keys.removeImage):
		if note.Image == nil {
			return m, nil
		}
		return m.startBusy(m.cmdOp("Image removed", func(ctx context.Context) error {
			return m.services.NoteService.RemoveImage(ctx, m.email, note)
		}))
	case key.Matches(msg, keys.pin):
		status := "Note pinned"
		if note.Pinned {
			status = "Note unpinned"
		}
		return m.startBusy(m.cmdOp(status, func(ctx context.Context) error {
			return m.services.NoteService.TogglePin(ctx, m.email, note)
		}))
	case key.Matches(msg, keys.trash):
		return m.startBusy(m.cmdOp("Note moved to trash", func(ctx context.Context) error {
			return m.services.NoteService.Trash(ctx, m.email, note)
		}))
	case key.Matches(msg, keys.archive):
		return m.startBusy(m.cmdOp("Note archived", func(ctx context.Context) error {
			return m.services.NoteService.Archive(ctx, m.email, note)
		}))
	case key.Matches(msg, keys.delete):
		m.target = note
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		return m.copyNote(note)
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc, keys.enter):
		m.mode = modeList
	case key.Matches(msg, keys.copy):
		return m.copyNote(m.target)
	case key.Matches(msg, keys.edit):
		m.form = newNoteForm(&m.target)
		m.mode = modeForm
		return m, textinput.Blink
	}
	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.tab):
		return m, m.form.moveFocus(1)
	case key.Matches(msg, keys.backtab):
		return m, m.form.moveFocus(-1)
	case key.Matches(msg, keys.save):
		return m.submitForm()
	}

	if m.form.editing == nil {
		switch msg.String() {
		case "ctrl+p":
			m.form.pinned = !m.form.pinned
			return m, nil
		case "ctrl+o":
			m.form.color = (m.form.color + 1) % len(noteColors)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	m.mode = modeList

	if note := m.form.editing; note != nil {
		title, content := m.form.title.Value(), m.form.content.Value()
		return m.startBusy(m.cmdOp("Note saved", func(ctx context.Context) error {
			return m.services.NoteService.UpdateText(ctx, m.email, *note, title, content)
		}))
	}

	draft, imagePath := m.form.draft()
	return m.startBusy(m.cmdOp("Note added", func(ctx context.Context) error {
		if imagePath != "" {
			file, err := loadImageFile(imagePath)
			if err != nil {
				return err
			}
			draft.Image.File = &file
		}
		_, err := m.services.NoteService.Add(ctx, m.email, draft)
		return err
	}))
}

func (m mainLoopModel) updateColor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
	case key.Matches(msg, keys.up, keys.left):
		m.colorIdx = (m.colorIdx - 1 + len(noteColors)) % len(noteColors)
	case key.Matches(msg, keys.down, keys.right):
		m.colorIdx = (m.colorIdx + 1) % len(noteColors)
	case key.Matches(msg, keys.enter):
		m.mode = modeList
		note, color := m.target, noteColors[m.colorIdx]
		return m.startBusy(m.cmdOp("Colour changed", func(ctx context.Context) error {
			return m.services.NoteService.ChangeColor(ctx, m.email, note, color)
		}))
	}
	return m, nil
}

func (m mainLoopModel) updateImageInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.enter):
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}

		note, mode := m.target, m.mode
		m.mode = modeList
		if mode == modeImageURL {
			return m.startBusy(m.cmdOp("Image set", func(ctx context.Context) error {
				return m.services.NoteService.SetImageURL(ctx, m.email, note, value)
			}))
		}
		return m.startBusy(m.cmdOp("Image attached", func(ctx context.Context) error {
			file, err := loadImageFile(value)
			if err != nil {
				return err
			}
			return m.services.NoteService.AttachImage(ctx, m.email, note, file)
		}))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeList
		note := m.target
		return m.startBusy(m.cmdOp("Note deleted", func(ctx context.Context) error {
			return m.services.NoteService.Delete(ctx, m.email, note)
		}))
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

// updateInputs forwards non-key messages such as cursor blinks to the
// focused widget.
func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeForm:
		m.form, cmd = m.form.update(msg)
	case modeImageURL, modeImageFile:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) View() string {
	if m.errMsg != "" {
		return themeStyle(m.theme).Render(renderErrorOverlay(m.errMsg))
	}

	var page string
	switch m.mode {
	case modeDetail:
		page = renderPage("NOTE", renderDetail(m.target), "esc: back │ e: edit │ y: copy")
	case modeForm:
		page = renderPage(m.form.pageTitle(), m.form.View(), m.form.hotKeys())
	case modeColor:
		page = renderPage("COLOUR: "+fitText(m.target.Title, 30), renderColorPicker(m.colorIdx), "↑/↓: choose │ enter: apply │ esc: cancel")
	case modeImageURL:
		page = renderPage("IMAGE URL: "+fitText(m.target.Title, 30), m.input.View(), "enter: apply │ esc: cancel")
	case modeImageFile:
		page = renderPage("ATTACH IMAGE: "+fitText(m.target.Title, 30), m.input.View(), "enter: upload │ esc: cancel")
	case modeConfirmDelete:
		page = renderConfirmDelete(m.target.Title)
	default:
		page = renderPage(m.header(), m.listBody(), "n: new │ e: edit │ p: pin │ c: colour │ i/f/x: image │ t: trash │ a: archive │ D: delete\n  y: copy │ g: grid │ m: theme │ r: reload │ b: backup │ o: export │ L: sign out │ q: quit")
	}

	return themeStyle(m.theme).Render(page)
}

func (m mainLoopModel) header() string {
	header := "NOTES · " + m.email
	if m.loading || m.busy {
		header += "  " + m.spinner.View()
	}
	return header
}

func (m mainLoopModel) listBody() string {
	body := "Loading..."
	if !m.loading || len(m.notes) > 0 {
		body = renderNotes(m.notes, m.pinnedCount, m.idx, m.grid)
	}
	if m.status != "" {
		body += "\n\n" + m.status
	}
	return body
}

// refresh re-reads the stores after a notification.
func (m *mainLoopModel) refresh() {
	pinned := m.appState.Pinned.Get()
	unpinned := m.appState.Unpinned.Get()

	m.notes = make([]models.Note, 0, len(pinned)+len(unpinned))
	m.notes = append(m.notes, pinned...)
	m.notes = append(m.notes, unpinned...)
	m.pinnedCount = len(pinned)

	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}

	m.theme = m.appState.Theme.Get()
	m.grid = m.appState.GridLayout.Get()
}

func (m mainLoopModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m mainLoopModel) copyNote(note models.Note) (tea.Model, tea.Cmd) {
	text := note.Title
	if note.Content != "" {
		text += "\n\n" + note.Content
	}
	if err := m.copyToClipboard(text); err != nil {
		m.errMsg = "Clipboard is unavailable: " + err.Error()
		return m, nil
	}
	return m.withStatus("Copied to clipboard")
}

func (m mainLoopModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) startBusy(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx, email, notes := m.ctx, m.email, m.services.NoteService

	return func() tea.Msg {
		if _, err := notes.LoadActive(ctx, email); err != nil {
			return notesLoadedMsg{err: err}
		}
		_, err := notes.LoadPinned(ctx, email)
		return notesLoadedMsg{err: err}
	}
}

func (m mainLoopModel) cmdOp(status string, op func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{status: status, err: op(ctx)}
	}
}

func (m mainLoopModel) cmdBackup() tea.Cmd {
	ctx, email, backups := m.ctx, m.email, m.services.BackupService

	return func() tea.Msg {
		result, err := backups.Snapshot(ctx, email)
		return backupDoneMsg{result: result, err: err}
	}
}

func (m mainLoopModel) cmdExport() tea.Cmd {
	ctx, email, backups, dir := m.ctx, m.email, m.services.BackupService, m.exportDir

	return func() tea.Msg {
		if dir == "" {
			if wd, err := os.Getwd(); err == nil {
				dir = wd
			}
		}
		return exportDoneMsg{result: backups.Export(ctx, email, dir)}
	}
}

func newPromptInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 50
	in.Focus()
	return in
}
