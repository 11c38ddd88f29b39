// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the read and write operations behind the HTTP
// facade and notifies observers about accepted output writes.
package service

//go:generate mockgen -source=io_interfaces.go -destination=../mock/io_service_mock.go -package=mock

import "context"

// IOService performs the registry side of a facade request: it looks up the
// named entry, runs its converter and reads or stores the value.
type IOService interface {
	// ReadInput returns the current value of the input registered under name,
	// converted to the response body.
	ReadInput(ctx context.Context, name string) (string, error)
	// LookupOutput reports ErrOutputNotFound when no output is registered
	// under name. It lets the caller reject a write before reading the body.
	LookupOutput(ctx context.Context, name string) error
	// WriteOutput converts body and stores the result in the output registered
	// under name. On any error, including a cancelled ctx, the stored value
	// is left unchanged.
	WriteOutput(ctx context.Context, name, body string) error
}

// OutputObserver is notified after a value has been stored in an output.
// Errors are logged by the caller and never fail the write.
type OutputObserver interface {
	OutputWritten(ctx context.Context, name string, value any) error
}
