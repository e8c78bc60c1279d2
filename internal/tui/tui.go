// Package tui is the terminal front end of the notes client. It triggers
// note operations, re-renders when the reactive stores publish and shows
// blocking error notifications.
package tui

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	appState  *state.AppState
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, appState *state.AppState, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		appState:  appState,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// LoginFlow runs the welcome and sign-in pages until the user signs in or
// quits. Quitting yields ErrUserQuit.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageWelcome: newWelcomeModel(),
		pageLogin:   NewLoginModel(ctx, t.services.SessionService),
	}

	root := NewRootModel(pages, pageWelcome, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.session.Active() {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop shows the notes of email until the user quits. logout reports
// whether the user asked to sign out.
func (t *TUI) MainLoop(ctx context.Context, email string) (logout bool, err error) {
	bridge := newStoreBridge(t.appState)
	defer bridge.Close()

	model := newMainLoopModel(ctx, t.services, t.appState, bridge, email)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	t.logger.Debug().Str("func", "*TUI.MainLoop").Bool("logout", result.logout).Msg("main loop finished")
	return result.logout, nil
}
