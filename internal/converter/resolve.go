// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package converter

import (
	"fmt"

	"github.com/MKhiriev/go-io-gate/models"
)

var outputBuiltins = map[string]models.OutputConverter{
	"":      Identity,
	String:  Identity,
	Float:   ParseFloat,
	Integer: ParseInteger,
	Boolean: ParseBoolean,
}

// ResolveInput returns the converter for an input declared with the given
// name and custom function. A custom function always wins; otherwise only
// the default stringifier ("" or "string") is available.
func ResolveInput(name string, custom models.InputConverter) (models.InputConverter, error) {
	if custom != nil {
		return custom, nil
	}

	if name == "" || name == String {
		return ToString, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownConverter, name)
}

// ResolveOutput returns the converter for an output declared with the given
// name and custom function. A custom function always wins.
func ResolveOutput(name string, custom models.OutputConverter) (models.OutputConverter, error) {
	if custom != nil {
		return custom, nil
	}

	if convert, ok := outputBuiltins[name]; ok {
		return convert, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownConverter, name)
}

