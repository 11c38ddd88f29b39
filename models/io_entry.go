// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sync"

// InputConverter turns the current value and timestamp of an [Input] into
// the string sent as the GET response body.
type InputConverter func(value, timestamp any) (string, error)

// OutputConverter turns the raw POST request body into the value stored in
// an [Output].
type OutputConverter func(raw string) (any, error)

// Input is a named, server-readable live value exposed via GET /<name>.
//
// Name, Convert and ConvertFunc describe the entry and are fixed once the
// server is started. The value/timestamp pair is owned by the caller and may
// be replaced at any time with [Input.Set]. Each entry guards only its own
// pair: there is no synchronization across entries.
type Input struct {
	// Name is the path segment the input is served under (no leading slash).
	Name string `json:"name" yaml:"name" toml:"name"`

	// Convert names a built-in converter. Empty and "string" select the
	// default stringifier. Ignored when ConvertFunc is set.
	Convert string `json:"convert,omitempty" yaml:"convert,omitempty" toml:"convert,omitempty"`

	// ConvertFunc is a custom converter. After validation it always holds the
	// resolved converter, whatever Convert originally named.
	ConvertFunc InputConverter `json:"-" yaml:"-" toml:"-"`

	mu        sync.RWMutex
	value     any
	timestamp any
}

// NewInput returns an input with the given name and custom converter.
// A nil convert is resolved from Convert when the registry is validated.
func NewInput(name string, convert InputConverter) *Input {
	return &Input{Name: name, ConvertFunc: convert}
}

// Set replaces the value and timestamp of the input.
func (i *Input) Set(value, timestamp any) {
	i.mu.Lock()
	i.value = value
	i.timestamp = timestamp
	i.mu.Unlock()
}

// Get returns the current value and timestamp of the input.
func (i *Input) Get() (value, timestamp any) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.value, i.timestamp
}

// Output is a named, server-writable sink exposed via POST /<name>.
//
// The stored value is written by the request dispatcher and read by the
// owner with [Output.Value]. Concurrent writes are last-write-wins.
type Output struct {
	// Name is the path segment the output is served under (no leading slash).
	Name string `json:"name" yaml:"name" toml:"name"`

	// Convert names a built-in converter: "", "string", "float", "integer"
	// or "boolean". Ignored when ConvertFunc is set.
	Convert string `json:"convert,omitempty" yaml:"convert,omitempty" toml:"convert,omitempty"`

	// ConvertFunc is a custom converter. After validation it always holds the
	// resolved converter.
	ConvertFunc OutputConverter `json:"-" yaml:"-" toml:"-"`

	mu    sync.RWMutex
	value any
}

// NewOutput returns an output with the given name and custom converter.
// A nil convert is resolved from Convert when the registry is validated.
func NewOutput(name string, convert OutputConverter) *Output {
	return &Output{Name: name, ConvertFunc: convert}
}

// Store replaces the value held by the output.
func (o *Output) Store(value any) {
	o.mu.Lock()
	o.value = value
	o.mu.Unlock()
}

// Value returns the value last stored in the output, or nil if nothing has
// been written yet.
func (o *Output) Value() any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}
