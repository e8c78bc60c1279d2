package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

const gridColumns = 3

// renderNotes draws the pinned section followed by the others. notes holds
// the pinned notes first; selected indexes into notes.
func renderNotes(notes []models.Note, pinnedCount, selected int, grid bool) string {
	if len(notes) == 0 {
		return "No notes yet. Press n to take one."
	}

	render := renderNoteLines
	if grid {
		render = renderNoteCards
	}

	var sections []string
	if pinnedCount > 0 {
		sections = append(sections, "PINNED\n"+render(notes[:pinnedCount], selected))
	}
	if pinnedCount < len(notes) {
		title := "OTHERS"
		if pinnedCount == 0 {
			title = "NOTES"
		}
		sections = append(sections, title+"\n"+render(notes[pinnedCount:], selected-pinnedCount))
	}

	return strings.Join(sections, "\n\n")
}

func renderNoteLines(notes []models.Note, selected int) string {
	var b strings.Builder
	for i, n := range notes {
		cursor := "  "
		if i == selected {
			cursor = "> "
		}

		b.WriteString(cursor)
		b.WriteString(lipgloss.NewStyle().Foreground(colorSwatches[n.Color]).Render("●"))
		b.WriteString(" ")
		b.WriteString(titleStyle.Render(fitText(n.Title, 28)))
		if preview := firstLine(n.Content); preview != "" {
			b.WriteString(helpStyle.Render(" · " + fitText(preview, 36)))
		}
		if n.Image != nil {
			b.WriteString(" [img]")
		}
		if i < len(notes)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderNoteCards(notes []models.Note, selected int) string {
	var rows []string
	for start := 0; start < len(notes); start += gridColumns {
		end := min(start+gridColumns, len(notes))

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(notes[i], i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(n models.Note, selected bool) string {
	style := noteStyle(cardStyle, n.Color)
	if selected {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}

	body := titleStyle.Render(fitText(n.Title, cardWidth-2)) + "\n" + fitText(firstLine(n.Content), cardWidth-2)
	if n.Image != nil {
		body += "\n[img]"
	}
	return style.Render(body)
}

// renderDetail shows every field of a note.
func renderDetail(n models.Note) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(n.Title) + "\n\n")
	b.WriteString(n.Content + "\n\n")
	b.WriteString(fmt.Sprintf("Colour:  %s\n", valueOrNA(n.Color)))
	b.WriteString(fmt.Sprintf("Image:   %s\n", valueOrDash(n.Image)))
	b.WriteString(fmt.Sprintf("Pinned:  %t\n", n.Pinned))
	if n.CreatedAt != nil {
		b.WriteString(fmt.Sprintf("Created: %s", n.CreatedAt.Local().Format("2006-01-02 15:04")))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderColorPicker(selected int) string {
	var b strings.Builder
	for i, c := range noteColors {
		cursor := "  "
		if i == selected {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(lipgloss.NewStyle().Foreground(colorSwatches[c]).Render("●"))
		b.WriteString(" " + c)
		if i < len(noteColors)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderErrorOverlay(message string) string {
	return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + message + "\n\nenter / esc: close")
}

func renderConfirmDelete(title string) string {
	return overlayBoxStyle.Render("Delete \"" + fitText(title, 40) + "\" forever?\n\ny: yes    n: no")
}
