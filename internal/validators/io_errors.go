// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-io-gate/internal/converter"
	"github.com/MKhiriev/go-io-gate/models"
)

// Errors returned while validating a [models.IOConfig]. All of them are fatal
// to startup: the server must not bind its listener after any of them.
var (
	// ErrEmptyConfig is returned when neither inputs nor outputs are configured.
	ErrEmptyConfig = errors.New("at least one input or one output must be specified")

	// ErrMissingName is returned (wrapped in an [EntryError]) for the first
	// input or output without a name.
	ErrMissingName = errors.New("missing property name")

	// ErrUnknownConverter is returned (wrapped in an [EntryError]) when an
	// entry names a converter that does not exist for its direction.
	ErrUnknownConverter = converter.ErrUnknownConverter

	// ErrInvalidPort is returned when the port is outside 0..65535.
	ErrInvalidPort = errors.New("option port must be a valid port number")

	// ErrDuplicateName is returned (wrapped in an [EntryError]) when two
	// entries of the same direction share a name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNameMismatch is returned (wrapped in an [EntryError]) when a registry
	// holds an entry under a key other than its name.
	ErrNameMismatch = errors.New("registered under a different name")
)

// EntryError reports the input or output that failed validation.
type EntryError struct {
	// Direction tells whether the entry is an input or an output.
	Direction models.Direction
	// Index is the position of the entry in its list, or in name order for
	// a registry.
	Index int
	// Name is the entry name; empty for [ErrMissingName].
	Name string
	// Err is the underlying validation error.
	Err error
}

func (e *EntryError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingName):
		return fmt.Sprintf("all %ss must have the property name", e.Direction)
	case errors.Is(e.Err, ErrUnknownConverter):
		return fmt.Sprintf("%s: %s converter unknown", e.Name, e.Direction)
	default:
		return fmt.Sprintf("%s: %s %v", e.Name, e.Direction, e.Err)
	}
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
