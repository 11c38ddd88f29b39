// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the io-gate server. It
// is populated by merging values from environment variables, command-line
// flags and an optional config file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address, limits and timeouts of the facade.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds the single Basic credential. Incomplete credentials
	// disable authentication.
	Auth Auth `envPrefix:"AUTH_"`

	// IO lists the served inputs and outputs.
	IO IO `envPrefix:"IO_"`

	// MQTT configures the optional broker bridge. An empty broker disables it.
	MQTT MQTT `envPrefix:"MQTT_"`

	// InfluxDB configures the optional export. An empty URL disables it.
	InfluxDB InfluxDB `envPrefix:"INFLUXDB_"`

	// Log configures the process logger.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON, YAML or TOML file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Server holds network, limit and timeout settings of the facade listener.
type Server struct {
	// Host is the listen host; empty means all interfaces.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the listen port; zero selects [DefaultPort].
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// RequestTimeout bounds the handling of a single request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes bounds a POST body; zero selects 1 MiB.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// MetricsAddress is the host:port of the Prometheus listener. Empty
	// disables it.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Auth is the Basic credential protecting every route.
type Auth struct {
	User     string `env:"USER" json:"user" yaml:"user" toml:"user"`
	Password string `env:"PASSWORD" json:"password" yaml:"password" toml:"password"`
	Realm    string `env:"REALM" json:"realm" yaml:"realm" toml:"realm"`
}

// IO lists the entries served by the facade. Entries are usually given in
// the config file; in the environment they are indexed, e.g.
// IO_INPUTS_0_NAME=temp, IO_OUTPUTS_0_CONVERT=integer.
type IO struct {
	Inputs  []EntryConfig `envPrefix:"INPUTS_" json:"inputs" yaml:"inputs" toml:"inputs"`
	Outputs []EntryConfig `envPrefix:"OUTPUTS_" json:"outputs" yaml:"outputs" toml:"outputs"`
}

// EntryConfig describes one input or output.
type EntryConfig struct {
	// Name is the path segment the entry is served under.
	Name string `env:"NAME" json:"name" yaml:"name" toml:"name"`

	// Convert names a built-in converter.
	Convert string `env:"CONVERT" json:"convert" yaml:"convert" toml:"convert"`

	// Topic overrides the MQTT topic feeding an input.
	Topic string `env:"TOPIC" json:"topic" yaml:"topic" toml:"topic"`

	// Initial is the value an entry holds before the first update. Inputs
	// hold it as is; outputs store it through their converter.
	Initial string `env:"INITIAL" json:"initial" yaml:"initial" toml:"initial"`
}

// MQTT holds the broker connection and topic layout.
type MQTT struct {
	Broker       string `env:"BROKER" json:"broker" yaml:"broker" toml:"broker"`
	ClientID     string `env:"CLIENT_ID" json:"client_id" yaml:"client_id" toml:"client_id"`
	Username     string `env:"USERNAME" json:"username" yaml:"username" toml:"username"`
	Password     string `env:"PASSWORD" json:"password" yaml:"password" toml:"password"`
	QoS          int    `env:"QOS" json:"qos" yaml:"qos" toml:"qos"`
	Retained     bool   `env:"RETAINED" json:"retained" yaml:"retained" toml:"retained"`
	InputPrefix  string `env:"INPUT_PREFIX" json:"input_prefix" yaml:"input_prefix" toml:"input_prefix"`
	OutputPrefix string `env:"OUTPUT_PREFIX" json:"output_prefix" yaml:"output_prefix" toml:"output_prefix"`
}

// InfluxDB holds the export target.
type InfluxDB struct {
	URL    string `env:"URL"`
	Token  string `env:"TOKEN"`
	Org    string `env:"ORG"`
	Bucket string `env:"BUCKET"`

	// SampleInterval is how often every input is written; zero disables
	// sampling while output writes are still exported.
	// Env: INFLUXDB_SAMPLE_INTERVAL
	SampleInterval time.Duration `env:"SAMPLE_INTERVAL"`
}

// Log configures level and optional rotated file output.
type Log struct {
	Level      string `env:"LEVEL" json:"level" yaml:"level" toml:"level"`
	File       string `env:"FILE" json:"file" yaml:"file" toml:"file"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" json:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `env:"MAX_BACKUPS" json:"max_backups" yaml:"max_backups" toml:"max_backups"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the process environment and command line, in the following priority
// order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load is [GetStructuredConfig] with explicit command-line arguments.
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
