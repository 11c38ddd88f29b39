// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"SERVER_HOST":             "127.0.0.1",
		"SERVER_PORT":             "8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_MAX_BODY_BYTES":   "2048",
		"SERVER_METRICS_ADDRESS":  ":9100",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"AUTH_USER":     "user",
		"AUTH_PASSWORD": "pass",
		"AUTH_REALM":    "plant",

		"MQTT_BROKER":        "tcp://127.0.0.1:1883",
		"MQTT_CLIENT_ID":     "gate-1",
		"MQTT_QOS":           "1",
		"MQTT_RETAINED":      "true",
		"MQTT_INPUT_PREFIX":  "in/",
		"MQTT_OUTPUT_PREFIX": "out/",

		"INFLUXDB_URL":             "http://localhost:8086",
		"INFLUXDB_TOKEN":           "token",
		"INFLUXDB_ORG":             "org",
		"INFLUXDB_BUCKET":          "io",
		"INFLUXDB_SAMPLE_INTERVAL": "1m",

		"LOG_LEVEL":       "warn",
		"LOG_FILE":        "/var/log/io-gate.log",
		"LOG_MAX_SIZE_MB": "10",
		"LOG_MAX_BACKUPS": "2",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)
	assert.Equal(t, Server{
		Host:            "127.0.0.1",
		Port:            8080,
		RequestTimeout:  30 * time.Second,
		MaxBodyBytes:    2048,
		MetricsAddress:  ":9100",
		ShutdownTimeout: 5 * time.Second,
	}, cfg.Server)
	assert.Equal(t, Auth{User: "user", Password: "pass", Realm: "plant"}, cfg.Auth)
	assert.Equal(t, MQTT{
		Broker:       "tcp://127.0.0.1:1883",
		ClientID:     "gate-1",
		QoS:          1,
		Retained:     true,
		InputPrefix:  "in/",
		OutputPrefix: "out/",
	}, cfg.MQTT)
	assert.Equal(t, InfluxDB{
		URL:            "http://localhost:8086",
		Token:          "token",
		Org:            "org",
		Bucket:         "io",
		SampleInterval: time.Minute,
	}, cfg.InfluxDB)
	assert.Equal(t, Log{Level: "warn", File: "/var/log/io-gate.log", MaxSizeMB: 10, MaxBackups: 2}, cfg.Log)
}

func TestParseEnv_IndexedEntries(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"IO_INPUTS_0_NAME":     "temp",
		"IO_INPUTS_0_TOPIC":    "sensors/temp",
		"IO_INPUTS_1_NAME":     "level",
		"IO_OUTPUTS_0_NAME":    "setpoint",
		"IO_OUTPUTS_0_CONVERT": "integer",
		"IO_OUTPUTS_0_INITIAL": "20",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []EntryConfig{
		{Name: "temp", Topic: "sensors/temp"},
		{Name: "level"},
	}, cfg.IO.Inputs)
	assert.Equal(t, []EntryConfig{
		{Name: "setpoint", Convert: "integer", Initial: "20"},
	}, cfg.IO.Outputs)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "duration", key: "SERVER_REQUEST_TIMEOUT", val: "soon"},
		{name: "port", key: "SERVER_PORT", val: "http"},
		{name: "qos", key: "MQTT_QOS", val: "high"},
		{name: "bool", key: "MQTT_RETAINED", val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{tt.key: tt.val})

			// Act
			_, err := parseEnv()

			// Assert
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{input: "1s", expected: time.Second},
		{input: "1m", expected: time.Minute},
		{input: "1h30m", expected: 90 * time.Minute},
		{input: "500ms", expected: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": tt.input})

			cfg, err := parseEnv()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

func TestParseEnv_EntryIndexGap(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{
			name: "inputs",
			vars: map[string]string{"IO_INPUTS_0_NAME": "temp", "IO_INPUTS_2_NAME": "level"},
		},
		{
			name: "outputs without index 0",
			vars: map[string]string{"IO_OUTPUTS_1_NAME": "setpoint"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.vars)

			cfg, err := parseEnv()

			require.ErrorIs(t, err, ErrEntryIndexGap)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseEnv_NonIndexedKeysIgnored(t *testing.T) {
	setEnvVars(t, map[string]string{
		"IO_INPUTS_0_NAME":    "temp",
		"IO_INPUTS_NOTE_NAME": "ignored",
		"IO_OUTPUTS_LEGACY":   "ignored",
	})

	cfg, err := parseEnv()

	require.NoError(t, err)
	assert.Equal(t, []EntryConfig{{Name: "temp"}}, cfg.IO.Inputs)
	assert.Empty(t, cfg.IO.Outputs)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads, restoring the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"SERVER_HOST", "SERVER_PORT", "SERVER_REQUEST_TIMEOUT", "SERVER_MAX_BODY_BYTES",
		"SERVER_METRICS_ADDRESS", "SERVER_SHUTDOWN_TIMEOUT",
		"AUTH_USER", "AUTH_PASSWORD", "AUTH_REALM",
		"MQTT_BROKER", "MQTT_CLIENT_ID", "MQTT_USERNAME", "MQTT_PASSWORD", "MQTT_QOS",
		"MQTT_RETAINED", "MQTT_INPUT_PREFIX", "MQTT_OUTPUT_PREFIX",
		"INFLUXDB_URL", "INFLUXDB_TOKEN", "INFLUXDB_ORG", "INFLUXDB_BUCKET", "INFLUXDB_SAMPLE_INTERVAL",
		"LOG_LEVEL", "LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS",
		"CLIENT_ADDRESS", "CLIENT_USER", "CLIENT_PASSWORD", "CLIENT_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
			require.NoError(t, os.Unsetenv(k))
		}
	}
}
