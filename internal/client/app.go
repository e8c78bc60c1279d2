package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// UI is the interactive front end driven by [App.Run].
type UI interface {
	LoginFlow(ctx context.Context) (models.Session, error)
	MainLoop(ctx context.Context, email string) (logout bool, err error)
}

type App struct {
	services *service.ClientServices
	appState *state.AppState
	ui       UI
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, appState *state.AppState, ui UI, workers *workers.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || appState == nil || ui == nil {
		return nil, errors.New("client app requires services, state and ui")
	}

	return &App{
		services: services,
		appState: appState,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run restores the session or asks the user to sign in, then shows the notes
// until the user quits. Signing out from the UI returns to the sign-in flow.
// Background workers run for the whole call.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.services.PreferencesService.Bind(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("error loading preferences")
	}

	var wg sync.WaitGroup
	if a.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.workers.Run(ctx)
		}()
	}
	defer wg.Wait()
	defer cancel()

	for {
		session, err := a.session(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, session.Email)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.SessionService.SignOut(ctx); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("sign out finished with errors")
		}
	}
}

func (a *App) session(ctx context.Context) (models.Session, error) {
	session, err := a.services.SessionService.Restore(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, service.ErrNoSession) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx)
}

// Login signs in without the UI.
func (a *App) Login(ctx context.Context, email, password string) (models.Session, error) {
	return a.services.SessionService.SignIn(ctx, email, password)
}

// Logout signs the persisted session out.
func (a *App) Logout(ctx context.Context) error {
	if _, err := a.services.SessionService.Restore(ctx); err != nil && !errors.Is(err, service.ErrNoSession) {
		return fmt.Errorf("restore session: %w", err)
	}
	return a.services.SessionService.SignOut(ctx)
}

// Backup takes a snapshot for the persisted session.
func (a *App) Backup(ctx context.Context) (models.BackupResult, error) {
	session, err := a.restored(ctx)
	if err != nil {
		return models.BackupResult{}, err
	}
	return a.services.BackupService.Snapshot(ctx, session.Email)
}

// Export downloads the newest snapshot of the persisted session into dir.
func (a *App) Export(ctx context.Context, dir string) (models.ExportResult, error) {
	session, err := a.restored(ctx)
	if err != nil {
		return models.ExportResult{}, err
	}
	return a.services.BackupService.Export(ctx, session.Email, dir), nil
}

func (a *App) restored(ctx context.Context) (models.Session, error) {
	session, err := a.services.SessionService.Restore(ctx)
	if errors.Is(err, service.ErrNoSession) {
		return models.Session{}, fmt.Errorf("%s: %w", app.MsgSignInRequired, err)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}
	return session, nil
}
