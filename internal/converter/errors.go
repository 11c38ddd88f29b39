package converter

import "errors"

// ErrUnknownConverter is returned when a converter name is not one of the
// built-ins available for the entry's direction.
var ErrUnknownConverter = errors.New("converter unknown")
