// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the io-gate HTTP facade.
//
// The primary abstraction is [IOClient], which reads inputs and writes
// outputs of a running facade. The package ships an HTTP implementation
// ([NewHTTPIOClient]) built on resty.
//
// Error values are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized]
// for 401).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/io_client_mock.go -package=mock

// IOClient reads and writes the entries of an io-gate facade.
type IOClient interface {
	// Get returns the converted value of input name.
	Get(ctx context.Context, name string) (string, error)

	// Post writes body to output name.
	Post(ctx context.Context, name, body string) error
}
