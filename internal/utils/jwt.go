package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ErrInvalidSessionToken is returned when a stored access token cannot be
// decoded or lacks the email claim.
var ErrInvalidSessionToken = errors.New("invalid session token")

// ParseSessionToken decodes the claims of an access token issued by the
// backend and returns the session it describes.
//
// The signature is NOT verified: the client only needs the identity the
// token claims to carry, the backend verifies it on every request. Claims
// read:
//   - email: the user email (required)
//   - sub:   the user id
//   - exp:   the expiry
func ParseSessionToken(tokenString string) (models.Session, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return models.Session{}, ErrInvalidSessionToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Session{}, fmt.Errorf("%w: unexpected claims type", ErrInvalidSessionToken)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return models.Session{}, fmt.Errorf("%w: no email claim", ErrInvalidSessionToken)
	}

	session := models.Session{AccessToken: tokenString, Email: email}

	if sub, err := claims.GetSubject(); err == nil {
		session.UserID = sub
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}
	if exp != nil {
		session.ExpiresAt = exp.Time
	}

	return session, nil
}
