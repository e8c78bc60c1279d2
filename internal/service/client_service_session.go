package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/cache"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// SessionTokenKey is the local storage key of the persisted access token.
const SessionTokenKey = "session:access_token"

type clientSessionService struct {
	auth     adapter.AuthAPI
	storage  store.LocalStorage
	cache    *cache.Cache
	appState *state.AppState
	now      func() time.Time

	logger *logger.Logger
}

// NewClientSessionService returns a [SessionService] publishing into
// appState.Session.
func NewClientSessionService(auth adapter.AuthAPI, storage store.LocalStorage, noteCache *cache.Cache, appState *state.AppState, logger *logger.Logger) SessionService {
	return &clientSessionService{
		auth:     auth,
		storage:  storage,
		cache:    noteCache,
		appState: appState,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *clientSessionService) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	session, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*clientSessionService.SignIn").Str("email", email).Msg("sign in failed")
		return models.Session{}, fmt.Errorf("sign in: %w", err)
	}

	if err = s.storage.SetItem(ctx, SessionTokenKey, session.AccessToken); err != nil {
		return models.Session{}, fmt.Errorf("persist session token: %w", err)
	}

	s.appState.Session.Set(session)
	s.logger.Info().Str("func", "*clientSessionService.SignIn").Str("email", session.Email).Msg("signed in")

	return session, nil
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	token, ok, err := s.storage.GetItem(ctx, SessionTokenKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("read session token: %w", err)
	}
	if !ok || token == "" {
		return models.Session{}, ErrNoSession
	}

	session, err := utils.ParseSessionToken(token)
	if err != nil {
		s.forgetToken(ctx)
		return models.Session{}, fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	if session.Expired(s.now()) {
		s.forgetToken(ctx)
		return models.Session{}, fmt.Errorf("%w: token expired at %s", ErrNoSession, session.ExpiresAt.Format(time.RFC3339))
	}

	s.auth.SetToken(token)
	s.appState.Session.Set(session)

	return session, nil
}

func (s *clientSessionService) SignOut(ctx context.Context) error {
	email := s.appState.Session.Get().Email

	if err := s.auth.SignOut(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*clientSessionService.SignOut").Msg("remote sign out failed, signing out locally")
	}

	var errs []error
	if err := s.storage.RemoveItem(ctx, SessionTokenKey); err != nil {
		errs = append(errs, fmt.Errorf("remove session token: %w", err))
	}
	if email != "" {
		if err := s.cache.InvalidateUser(ctx, email); err != nil {
			errs = append(errs, err)
		}
	}

	s.appState.Session.Set(models.Session{})
	s.appState.Notes.Set(nil)

	return errors.Join(errs...)
}

func (s *clientSessionService) forgetToken(ctx context.Context) {
	if err := s.storage.RemoveItem(ctx, SessionTokenKey); err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.forgetToken").Msg("error removing stale session token")
	}
}
