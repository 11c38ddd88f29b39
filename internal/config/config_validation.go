// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Defaults applied to the merged configuration.
const (
	DefaultPort         = 8080
	DefaultRealm        = "io-gate"
	DefaultMQTTClientID = "io-gate"
	DefaultInputPrefix  = "io-gate/input/"
	DefaultOutputPrefix = "io-gate/output/"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Auth.Realm == "" {
		cfg.Auth.Realm = DefaultRealm
	}

	if cfg.MQTT.Broker != "" {
		if cfg.MQTT.ClientID == "" {
			cfg.MQTT.ClientID = DefaultMQTTClientID
		}
		if cfg.MQTT.InputPrefix == "" {
			cfg.MQTT.InputPrefix = DefaultInputPrefix
		}
		if cfg.MQTT.OutputPrefix == "" {
			cfg.MQTT.OutputPrefix = DefaultOutputPrefix
		}
	}
}

// validate checks the structure of the merged [StructuredConfig]. The
// inputs, outputs and port are validated later by the validators package,
// once converted with [StructuredConfig.IOConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 || cfg.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: timeouts and body limit must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.MQTT.Broker != "" && (cfg.MQTT.QoS < 0 || cfg.MQTT.QoS > 2) {
		return fmt.Errorf("%w: qos %d", ErrInvalidMQTTConfigs, cfg.MQTT.QoS)
	}

	if cfg.InfluxDB.URL != "" {
		if cfg.InfluxDB.Org == "" || cfg.InfluxDB.Bucket == "" {
			return fmt.Errorf("%w: org and bucket are required", ErrInvalidInfluxDBConfigs)
		}
		if cfg.InfluxDB.SampleInterval < 0 {
			return fmt.Errorf("%w: negative sample interval", ErrInvalidInfluxDBConfigs)
		}
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
