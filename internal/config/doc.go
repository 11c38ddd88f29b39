// Package config provides configuration loading, merging, and validation
// facilities for the io-gate processes.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (.json, .yaml, .yml or .toml)
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
