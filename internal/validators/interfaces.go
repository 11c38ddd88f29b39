// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the facade description before the server starts.
//
// [IOConfigValidator] rejects invalid ports, empty or duplicate entry names and
// unknown converter names, and resolves every entry's converter in place.
// Configs are also validated field by field through [Validator].
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
