// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the notes client.
type Client interface {
	// Run starts the interactive client and blocks until exit.
	Run(ctx context.Context) error
}
