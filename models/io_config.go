// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data the facade serves: inputs and outputs, the
// registries that index them by name, and the server description.
package models

import "encoding/base64"

// Direction tells inputs and outputs apart in errors and logs.
type Direction string

const (
	// DirectionInput marks an entry served via GET.
	DirectionInput Direction = "input"
	// DirectionOutput marks an entry written via POST.
	DirectionOutput Direction = "output"
)

// DefaultMaxBodyBytes bounds a POST body when [IOConfig.MaxBodyBytes] is zero.
const DefaultMaxBodyBytes int64 = 1 << 20

// Auth holds the single Basic credential protecting every route.
type Auth struct {
	User     string `json:"user"`
	Password string `json:"password"`
	Realm    string `json:"realm"`
}

// Enabled reports whether the credential is complete. Authentication is
// disabled when either the user or the password is missing.
func (a *Auth) Enabled() bool {
	return a != nil && a.User != "" && a.Password != ""
}

// Header returns the exact Authorization header value a client must send.
func (a *Auth) Header() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(a.User+":"+a.Password))
}

// Challenge returns the WWW-Authenticate header value sent with a 401.
func (a *Auth) Challenge() string {
	return `Basic realm="` + a.Realm + `"`
}

// IOConfig is the caller-supplied description of a facade server.
//
// It is validated and normalized in place before the server starts: every
// entry's ConvertFunc is replaced by the resolved converter. After that the
// config must not be modified.
type IOConfig struct {
	Inputs  []*Input
	Outputs []*Output

	// Host is the listen host. Empty means all interfaces.
	Host string
	// Port is the TCP port to listen on. Zero picks an ephemeral port.
	Port int

	// Auth enables Basic authentication when complete. Nil disables it.
	Auth *Auth

	// MaxBodyBytes bounds a POST body; zero means [DefaultMaxBodyBytes].
	MaxBodyBytes int64
}

// BodyLimit returns the effective POST body limit.
func (c *IOConfig) BodyLimit() int64 {
	if c.MaxBodyBytes <= 0 {
		return DefaultMaxBodyBytes
	}
	return c.MaxBodyBytes
}
