// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// maintenance handlers and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, shown in client notifications or matched against the
// error bodies of the hosted backend. Keeping them in one place ensures
// consistent wording throughout the application.
package app

const (
	// MsgOldTrashDeleted is the message of a successful trash purge.
	MsgOldTrashDeleted = "Old trashed notes deleted"

	// MsgDatabasePinged is the message of a successful database ping.
	MsgDatabasePinged = "Database pinged successfully"

	// MsgPingStatusSuccess is the status field of a successful ping.
	MsgPingStatusSuccess = "success"

	// MsgUnexpectedError is returned when the ping fails; the cause goes to
	// the details field.
	MsgUnexpectedError = "Unexpected error occurred"

	// MsgInvalidLoginCredentials is the auth backend's error description for
	// a wrong email/password pair.
	MsgInvalidLoginCredentials = "Invalid login credentials"

	// MsgJWTExpired is the REST backend's message for an expired access
	// token.
	MsgJWTExpired = "JWT expired"

	// MsgDuplicateObject is the storage backend's message when an object
	// already exists at the upload path.
	MsgDuplicateObject = "The resource already exists"

	// MsgSignInRequired is shown by the client when an operation needs a
	// signed-in user.
	MsgSignInRequired = "please sign in first"

	// MsgNoBackupsFound is the export message when the user has no snapshot.
	MsgNoBackupsFound = "no backups found"
)
