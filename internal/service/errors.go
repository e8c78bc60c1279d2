package service

import "errors"

var (
	// ErrNoActiveUser is returned when an operation is called without an owner
	// email.
	ErrNoActiveUser = errors.New("no active user")

	// ErrUserMismatch is returned when the caller-supplied email differs from
	// the email of the active session.
	ErrUserMismatch = errors.New("user does not match the active session")

	// ErrNoSession is returned by Restore when no valid token is persisted and
	// when the backend rejects the token of the current session.
	ErrNoSession = errors.New("no session")

	// ErrInvalidCredentials is returned by SignIn for a wrong email/password
	// pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoteNotFound is returned when an update matched no note of the owner.
	ErrNoteNotFound = errors.New("note not found")

	// ErrImageAlreadyExists is returned when an upload collides with an
	// existing object.
	ErrImageAlreadyExists = errors.New("image already exists")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrInvalidRetention = errors.New("trash retention must be positive")
)
