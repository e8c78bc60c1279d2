package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// NoteService defines the client-side note operations. Every operation takes
// the caller-supplied owner email and follows the same pattern: consult the
// local cache (loads only), call the remote data service, reconcile the
// reactive store with the equivalent pure transform once the backend
// confirmed, and invalidate the owner's cached scopes after every mutation.
//
// On failure the error is logged and returned; the store is left untouched.
type NoteService interface {
	// LoadActive replaces the note collection with the owner's active notes,
	// pinned first and newest first. Served from the "active" cache scope
	// while it is fresh.
	LoadActive(ctx context.Context, email string) ([]models.Note, error)

	// LoadPinned merges the owner's pinned notes into the collection,
	// replacing every previously pinned active note. Served from the
	// "pinned" cache scope while it is fresh.
	LoadPinned(ctx context.Context, email string) ([]models.Note, error)

	// Add creates a note. A file image is uploaded to the images bucket first
	// and its public URL stored on the note. The inserted record is appended
	// to the collection.
	Add(ctx context.Context, email string, draft models.NoteDraft) (models.Note, error)

	// UpdateText replaces title and content of the note.
	UpdateText(ctx context.Context, email string, note models.Note, title, content string) error

	// ChangeColor sets the colour and drops the image.
	ChangeColor(ctx context.Context, email string, note models.Note, color string) error

	// AttachImage uploads file and sets its public URL as the note image.
	AttachImage(ctx context.Context, email string, note models.Note, file models.ImageFile) error

	// SetImageURL sets an external image URL and makes the colour transparent.
	SetImageURL(ctx context.Context, email string, note models.Note, url string) error

	// RemoveImage drops the note image.
	RemoveImage(ctx context.Context, email string, note models.Note) error

	// TogglePin flips the pinned flag of the note.
	TogglePin(ctx context.Context, email string, note models.Note) error

	// Trash moves the note to the trash and removes it from the collection.
	Trash(ctx context.Context, email string, note models.Note) error

	// Archive archives the note and removes it from the collection.
	Archive(ctx context.Context, email string, note models.Note) error

	// Delete permanently deletes the note and removes it from the collection.
	Delete(ctx context.Context, email string, note models.Note) error
}

// BackupService snapshots the owner's notes to blob storage and exports the
// newest snapshot to a local file.
type BackupService interface {
	// Snapshot uploads a JSON snapshot of all notes of email unless the
	// newest existing snapshot is younger than 24 hours.
	Snapshot(ctx context.Context, email string) (models.BackupResult, error)

	// Export downloads the newest snapshot of email into dir. Failures are
	// reported in the result, never as an error.
	Export(ctx context.Context, email, dir string) models.ExportResult
}

// BackupJob runs Snapshot periodically in the background.
type BackupJob interface {
	// Start launches the background goroutine. It attempts a snapshot right
	// away and then every interval, defaulting to 1 hour if interval is zero
	// or negative. Any previously running job is stopped first.
	Start(ctx context.Context, email string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// SessionService manages the signed-in user of the client.
type SessionService interface {
	// SignIn authenticates against the backend, persists the access token and
	// publishes the session.
	SignIn(ctx context.Context, email, password string) (models.Session, error)

	// Restore rebuilds the session from the persisted access token. Returns
	// ErrNoSession if there is no token or it has expired.
	Restore(ctx context.Context) (models.Session, error)

	// SignOut logs out remotely (best effort), forgets the token, invalidates
	// the user's cache and resets the published session.
	SignOut(ctx context.Context) error
}

// PreferencesService binds persisted UI preferences to the reactive store.
type PreferencesService interface {
	// Bind loads the persisted grid layout flag into the store and persists
	// every later change until ctx is done.
	Bind(ctx context.Context) error

	// ToggleTheme flips between the light and the dark theme and returns the
	// new one.
	ToggleTheme() models.Theme
}
