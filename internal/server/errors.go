// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrListen wraps a failure to bind the listen address.
	ErrListen = errors.New("error binding listener")

	errNilConfig = errors.New("nil facade config")
)
