// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidLoginCredentials {
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgJWTExpired {
			return fmt.Errorf("%w: %w", ErrNoSession, err)
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgDuplicateObject {
			return fmt.Errorf("%w: %w", ErrImageAlreadyExists, err)
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
