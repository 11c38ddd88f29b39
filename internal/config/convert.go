package config

import (
	"github.com/MKhiriev/go-io-gate/internal/influxdb"
	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/internal/mqtt"
	"github.com/MKhiriev/go-io-gate/models"
)

// IOConfig converts the configuration into the facade description. The
// result is not validated yet.
func (cfg *StructuredConfig) IOConfig() *models.IOConfig {
	ioCfg := &models.IOConfig{
		Inputs:       make([]*models.Input, 0, len(cfg.IO.Inputs)),
		Outputs:      make([]*models.Output, 0, len(cfg.IO.Outputs)),
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}

	for _, entry := range cfg.IO.Inputs {
		ioCfg.Inputs = append(ioCfg.Inputs, &models.Input{Name: entry.Name, Convert: entry.Convert})
	}
	for _, entry := range cfg.IO.Outputs {
		ioCfg.Outputs = append(ioCfg.Outputs, &models.Output{Name: entry.Name, Convert: entry.Convert})
	}

	auth := models.Auth(cfg.Auth)
	if auth.Enabled() {
		ioCfg.Auth = &auth
	}

	return ioCfg
}

// InputTopics maps input names to their MQTT topic overrides.
func (cfg *StructuredConfig) InputTopics() map[string]string {
	topics := make(map[string]string)
	for _, entry := range cfg.IO.Inputs {
		if entry.Topic != "" {
			topics[entry.Name] = entry.Topic
		}
	}
	return topics
}

// MQTTConfig returns the broker settings, or false when the bridge is
// disabled.
func (cfg *StructuredConfig) MQTTConfig() (mqtt.Config, bool) {
	if cfg.MQTT.Broker == "" {
		return mqtt.Config{}, false
	}

	return mqtt.Config{
		Broker:       cfg.MQTT.Broker,
		ClientID:     cfg.MQTT.ClientID,
		Username:     cfg.MQTT.Username,
		Password:     cfg.MQTT.Password,
		QoS:          byte(cfg.MQTT.QoS),
		Retained:     cfg.MQTT.Retained,
		InputPrefix:  cfg.MQTT.InputPrefix,
		OutputPrefix: cfg.MQTT.OutputPrefix,
	}, true
}

// InfluxDBConfig returns the export target, or false when the export is
// disabled.
func (cfg *StructuredConfig) InfluxDBConfig() (influxdb.Config, bool) {
	if cfg.InfluxDB.URL == "" {
		return influxdb.Config{}, false
	}

	return influxdb.Config{
		URL:    cfg.InfluxDB.URL,
		Token:  cfg.InfluxDB.Token,
		Org:    cfg.InfluxDB.Org,
		Bucket: cfg.InfluxDB.Bucket,
	}, true
}

// LoggerOptions returns the options for [logger.New].
func (cfg *StructuredConfig) LoggerOptions() logger.Options {
	return logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}
}
