package config

import "errors"

// Errors returned while loading and validating the merged configuration.
var (
	// ErrUnsupportedFormat indicates a config file extension other than
	// .json, .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a negative timeout or body limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMQTTConfigs indicates an incomplete broker section or an
	// out-of-range QoS.
	ErrInvalidMQTTConfigs = errors.New("invalid mqtt configuration")
	// ErrInvalidInfluxDBConfigs indicates an incomplete InfluxDB section.
	ErrInvalidInfluxDBConfigs = errors.New("invalid influxdb configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
