package tui

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldContent
	fieldImage
)

// noteForm edits a new note (title, content, image) or the text of an
// existing one (title, content).
type noteForm struct {
	title   textinput.Model
	content textarea.Model
	image   textinput.Model
	pinned  bool
	color   int

	focus   int
	editing *models.Note
}

func newNoteForm(note *models.Note) noteForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Take a note..."
	content.SetWidth(52)
	content.SetHeight(6)
	content.ShowLineNumbers = false

	image := textinput.New()
	image.Placeholder = "https://... or /path/to/image.png"
	image.Width = 50

	f := noteForm{title: title, content: content, image: image}
	if note != nil {
		n := *note
		f.editing = &n
		f.title.SetValue(n.Title)
		f.content.SetValue(n.Content)
	}

	return f
}

func (f noteForm) fields() int {
	if f.editing != nil {
		return 2
	}
	return 3
}

func (f *noteForm) moveFocus(delta int) tea.Cmd {
	f.blur()
	f.focus = (f.focus + delta + f.fields()) % f.fields()

	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldContent:
		return f.content.Focus()
	default:
		return f.image.Focus()
	}
}

func (f *noteForm) blur() {
	f.title.Blur()
	f.content.Blur()
	f.image.Blur()
}

func (f noteForm) update(msg tea.Msg) (noteForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldContent:
		f.content, cmd = f.content.Update(msg)
	default:
		f.image, cmd = f.image.Update(msg)
	}
	return f, cmd
}

// draft builds the new note. An image value that is not an http(s) URL is
// returned as a local file path to upload.
func (f noteForm) draft() (draft models.NoteDraft, imagePath string) {
	draft = models.NoteDraft{
		Title:   f.title.Value(),
		Content: f.content.Value(),
		Color:   noteColors[f.color],
		Pinned:  f.pinned,
	}

	image := strings.TrimSpace(f.image.Value())
	if isURL(image) {
		draft.Image.URL = image
		return draft, ""
	}

	return draft, image
}

func (f noteForm) View() string {
	var b strings.Builder

	b.WriteString("Title\n" + f.title.View() + "\n\n")
	b.WriteString("Content\n" + f.content.View() + "\n")

	if f.editing == nil {
		b.WriteString("\nImage (URL or file)\n" + f.image.View() + "\n\n")
		pinned := "no"
		if f.pinned {
			pinned = "yes"
		}
		b.WriteString(fmt.Sprintf("Colour: %s   Pinned: %s", noteColors[f.color], pinned))
	}

	return b.String()
}

func (f noteForm) pageTitle() string {
	if f.editing != nil {
		return "EDIT NOTE: " + fitText(f.editing.Title, 30)
	}
	return "NEW NOTE"
}

func (f noteForm) hotKeys() string {
	if f.editing != nil {
		return "esc: cancel │ tab: next field │ ctrl+s: save"
	}
	return "esc: cancel │ tab: next field │ ctrl+p: pin │ ctrl+o: colour │ ctrl+s: save"
}

func isURL(v string) bool {
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}

// loadImageFile reads the image at path for upload.
func loadImageFile(path string) (models.ImageFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.ImageFile{}, fmt.Errorf("read image: %w", err)
	}

	return models.ImageFile{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(content),
		Content:     content,
	}, nil
}
