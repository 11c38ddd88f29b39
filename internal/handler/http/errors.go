// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors logged by the authentication middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is logged when the incoming request does not
	// include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidCredentials is logged when the "Authorization" header does not
	// match the configured credential.
	ErrInvalidCredentials = errors.New("invalid credentials in `Authorization` header")

	// ErrBodyTooLarge is returned when a POST body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
