package service

import "errors"

var (
	ErrInputNotFound  = errors.New("input not found")
	ErrOutputNotFound = errors.New("output not found")

	ErrInputConversion  = errors.New("input conversion failed")
	ErrOutputConversion = errors.New("output conversion failed")
	ErrConverterPanic   = errors.New("converter panicked")

	// ErrUnresolvedConverter means an entry reached the service without a
	// converter. Registries are validated before serving, so this is a bug.
	ErrUnresolvedConverter = errors.New("entry has no converter")
)
