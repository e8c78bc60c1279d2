// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-notes-keeper\n")
	b.WriteString("Version: " + valueOrNA(info.Version) + "\n")
	b.WriteString("Date: " + valueOrNA(info.Date) + "\n")
	b.WriteString("Commit: " + valueOrNA(info.Commit))

	return renderPage("ABOUT", b.String(), "esc: back")
}
