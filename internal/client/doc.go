// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notes client runtime.
//
// It wires the terminal UI, the client services and the background backup
// worker into a single process lifecycle, and exposes the same session and
// backup operations to the non-interactive commands.
package client
