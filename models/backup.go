// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BlobObject is a single entry of an object storage listing.
type BlobObject struct {
	// Name is the object path relative to the listed prefix.
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Size      int64
}

// BackupResult describes the outcome of a snapshot attempt.
type BackupResult struct {
	// Uploaded is true when a new snapshot was written.
	Uploaded bool

	// Path is the object path of the written snapshot.
	Path string

	// Notes is the number of notes in the written snapshot.
	Notes int

	// LastBackupAt is the creation time of the newest backup that existed
	// before the attempt. Zero if there was none.
	LastBackupAt time.Time
}

// Skipped reports whether the attempt was skipped by the age guard.
func (r BackupResult) Skipped() bool {
	return !r.Uploaded
}

// ExportFailure classifies why an export did not produce a file.
type ExportFailure string

const (
	ExportNoBackups   ExportFailure = "no_backups"
	ExportListFailed  ExportFailure = "list_failed"
	ExportSignFailed  ExportFailure = "sign_failed"
	ExportFetchFailed ExportFailure = "fetch_failed"
	ExportSaveFailed  ExportFailure = "save_failed"
)

// ExportResult is the structured outcome of an on-demand export. Exactly one
// of Path and Failure is set.
type ExportResult struct {
	Path    string
	Backup  string
	Failure ExportFailure
	Message string
}

// OK reports whether the export wrote a file.
func (r ExportResult) OK() bool {
	return r.Failure == ""
}
