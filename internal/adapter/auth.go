package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type passwordGrant struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	ExpiresAt   int64  `json:"expires_at"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignIn implements [AuthAPI]: POST /auth/v1/token?grant_type=password.
func (h *remoteDataService) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	var token tokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(passwordGrant{Email: email, Password: password}).
		SetResult(&token).
		Post(authPath + "/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}
	if token.AccessToken == "" {
		return models.Session{}, fmt.Errorf("%w: no access token", ErrUnauthorized)
	}

	session := models.Session{
		AccessToken: token.AccessToken,
		UserID:      token.User.ID,
		Email:       token.User.Email,
	}
	if session.Email == "" {
		session.Email = email
	}
	switch {
	case token.ExpiresAt > 0:
		session.ExpiresAt = time.Unix(token.ExpiresAt, 0)
	case token.ExpiresIn > 0:
		session.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	h.SetToken(token.AccessToken)
	return session, nil
}

// SignOut implements [AuthAPI]: POST /auth/v1/logout.
func (h *remoteDataService) SignOut(ctx context.Context) error {
	defer h.SetToken("")

	if h.Token() == "" {
		return nil
	}

	resp, err := h.authedRequest(ctx).Post(authPath + "/logout")
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*remoteDataService.SignOut").Msg("backend rejected logout")
		return err
	}

	return nil
}
