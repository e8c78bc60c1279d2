// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the hosted backend-as-a-service the
// notes live in: a PostgREST-style REST API for records, an object storage
// API for images and backups, and a password auth API.
//
// The primary abstraction is [RemoteDataService], which decouples the service
// layer from the wire protocol. The package ships a resty implementation
// ([NewRemoteDataService]) speaking the Supabase-compatible mapping.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotesAPI is record CRUD over the notes table.
type NotesAPI interface {
	// SelectNotes returns the notes matching filter in the requested order.
	SelectNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)

	// InsertNote inserts note and returns the stored record with its
	// backend-assigned id and created_at. Returns [ErrNoRecordReturned] if
	// the backend answers with an empty representation.
	InsertNote(ctx context.Context, note models.NewNote) (models.Note, error)

	// UpdateNote applies patch to the note with id owned by owner and returns
	// the updated records. An empty result means nothing matched.
	UpdateNote(ctx context.Context, id int64, owner string, patch models.NotePatch) ([]models.Note, error)

	// DeleteNote deletes the note with id owned by owner.
	DeleteNote(ctx context.Context, id int64, owner string) error
}

// StorageAPI is blob storage organised in buckets.
type StorageAPI interface {
	// Upload stores content under path in bucket. It does not overwrite an
	// existing object.
	Upload(ctx context.Context, bucket, path, contentType string, content []byte) error

	// PublicURL returns the public URL of an object. No request is made.
	PublicURL(bucket, path string) string

	// SignedURL returns a URL granting read access to an object for
	// expiresIn.
	SignedURL(ctx context.Context, bucket, path string, expiresIn time.Duration) (string, error)

	// List returns the objects directly under prefix in bucket, newest
	// first.
	List(ctx context.Context, bucket, prefix string) ([]models.BlobObject, error)

	// Fetch downloads the body behind an absolute URL, e.g. a signed URL.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// AuthAPI is password authentication against the backend.
type AuthAPI interface {
	// SignIn exchanges email and password for a session and stores its
	// access token via SetToken.
	SignIn(ctx context.Context, email, password string) (models.Session, error)

	// SignOut revokes the current session remotely and forgets the token,
	// even if the remote call fails.
	SignOut(ctx context.Context) error

	// SetToken stores the access token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored access token or "".
	Token() string
}

// RemoteDataService is the complete backend client.
type RemoteDataService interface {
	NotesAPI
	StorageAPI
	AuthAPI
}
