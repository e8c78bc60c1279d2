package tui

import (
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// storeBridge forwards store notifications into the bubbletea event loop.
// Notifications are coalesced: the channel holds at most one pending signal
// and the model always re-reads the stores when it receives one.
type storeBridge struct {
	changes      chan struct{}
	done         chan struct{}
	closeOnce    sync.Once
	unsubscribes []func()
}

func newStoreBridge(appState *state.AppState) *storeBridge {
	b := &storeBridge{
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	b.unsubscribes = []func(){
		appState.Notes.Subscribe(func([]models.Note) { b.notify() }),
		appState.Theme.Subscribe(func(models.Theme) { b.notify() }),
		appState.GridLayout.Subscribe(func(bool) { b.notify() }),
		appState.Session.Subscribe(func(models.Session) { b.notify() }),
	}

	return b
}

func (b *storeBridge) notify() {
	select {
	case b.changes <- struct{}{}:
	default:
	}
}

// wait returns a command that blocks until the next notification or until
// the bridge is closed.
func (b *storeBridge) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.changes:
			return storeChangedMsg{}
		case <-b.done:
			return nil
		}
	}
}

// Close detaches from every store and releases a pending wait.
func (b *storeBridge) Close() {
	b.closeOnce.Do(func() {
		for _, unsubscribe := range b.unsubscribes {
			unsubscribe()
		}
		close(b.done)
	})
}
