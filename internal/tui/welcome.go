package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() *welcomeModel {
	return &welcomeModel{items: []string{"Sign in", "Quit"}}
}

func (m *welcomeModel) Init() tea.Cmd {
	return nil
}

func (m *welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case keyMsg.String() == "q":
		return m, func() tea.Msg { return quitMsg{} }
	case key.Matches(keyMsg, keys.enter):
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		}
		return m, func() tea.Msg { return quitMsg{} }
	}

	return m, nil
}

func (m *welcomeModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}

	return renderPage("NOTES", strings.TrimRight(b.String(), "\n"), "enter: select │ v: about │ q: quit")
}
