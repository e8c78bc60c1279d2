package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// GridLayoutKey is the local storage key of the grid layout flag. The value
// is "true" or "false".
const GridLayoutKey = "gridLayout"

type clientPreferencesService struct {
	storage  store.LocalStorage
	appState *state.AppState

	logger *logger.Logger
}

func NewClientPreferencesService(storage store.LocalStorage, appState *state.AppState, logger *logger.Logger) PreferencesService {
	return &clientPreferencesService{
		storage:  storage,
		appState: appState,
		logger:   logger,
	}
}

func (s *clientPreferencesService) Bind(ctx context.Context) error {
	value, ok, err := s.storage.GetItem(ctx, GridLayoutKey)
	if err != nil {
		return err
	}
	if ok {
		s.appState.GridLayout.Set(value == "true")
	}

	unsubscribe := s.appState.GridLayout.Subscribe(func(grid bool) {
		if err := s.storage.SetItem(ctx, GridLayoutKey, strconv.FormatBool(grid)); err != nil {
			s.logger.Err(err).Str("func", "*clientPreferencesService.Bind").Msg("error persisting grid layout")
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
	}()

	return nil
}

func (s *clientPreferencesService) ToggleTheme() models.Theme {
	s.appState.Theme.Update(models.Theme.Toggle)
	return s.appState.Theme.Get()
}
