// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input for notes before it reaches the
// backend.
//
// A [Validator] receives the value to check and, optionally, the names of the
// fields to restrict the check to (see the Field constants). Services inject
// a Validator and call it before any remote call, so invalid drafts and
// patches never cost a request.
package validators

import "context"

// Validator validates a note input value. Without field names every field
// relevant to the value's type is checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
