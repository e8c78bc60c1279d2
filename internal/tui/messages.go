package tui

import (
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. Payload, if set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow on success.
type LoginResult struct {
	Session models.Session
	Err     error
}

// storeChangedMsg is emitted whenever a subscribed store published.
type storeChangedMsg struct{}

type notesLoadedMsg struct {
	err error
}

type opDoneMsg struct {
	status string
	err    error
}

type backupDoneMsg struct {
	result models.BackupResult
	err    error
}

type exportDoneMsg struct {
	result models.ExportResult
}

type clearStatusMsg struct{}
