// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// ErrUserQuit is returned when the user leaves the login flow.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns an operation error into the text of the blocking
// error notification.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrNoSession), errors.Is(err, service.ErrNoActiveUser):
		return "Your session has ended, please sign in again"
	case errors.Is(err, validators.ErrEmptyTitle):
		return "Title must not be empty"
	case errors.Is(err, validators.ErrEmptyContent):
		return "Content must not be empty"
	case errors.Is(err, service.ErrImageAlreadyExists):
		return "An image with this name already exists"
	case errors.Is(err, service.ErrNoteNotFound):
		return "The note no longer exists"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	return err.Error()
}
