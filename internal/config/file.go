package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for config files, where durations
// are written as strings such as "30s".
type fileConfig struct {
	Server struct {
		Host            string   `json:"host" yaml:"host" toml:"host"`
		Port            int      `json:"port" yaml:"port" toml:"port"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
		MaxBodyBytes    int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
		MetricsAddress  string   `json:"metrics_address" yaml:"metrics_address" toml:"metrics_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
	} `json:"server" yaml:"server" toml:"server"`

	Auth Auth `json:"auth" yaml:"auth" toml:"auth"`
	IO   IO   `json:"io" yaml:"io" toml:"io"`
	MQTT MQTT `json:"mqtt" yaml:"mqtt" toml:"mqtt"`

	InfluxDB struct {
		URL            string   `json:"url" yaml:"url" toml:"url"`
		Token          string   `json:"token" yaml:"token" toml:"token"`
		Org            string   `json:"org" yaml:"org" toml:"org"`
		Bucket         string   `json:"bucket" yaml:"bucket" toml:"bucket"`
		SampleInterval Duration `json:"sample_interval" yaml:"sample_interval" toml:"sample_interval"`
	} `json:"influxdb" yaml:"influxdb" toml:"influxdb"`

	Log Log `json:"log" yaml:"log" toml:"log"`
}

// parseFile reads a config file; the format is chosen by its extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	case ".toml":
		err = toml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return &StructuredConfig{
		Server: Server{
			Host:            fileCfg.Server.Host,
			Port:            fileCfg.Server.Port,
			RequestTimeout:  time.Duration(fileCfg.Server.RequestTimeout),
			MaxBodyBytes:    fileCfg.Server.MaxBodyBytes,
			MetricsAddress:  fileCfg.Server.MetricsAddress,
			ShutdownTimeout: time.Duration(fileCfg.Server.ShutdownTimeout),
		},
		Auth: fileCfg.Auth,
		IO:   fileCfg.IO,
		MQTT: fileCfg.MQTT,
		InfluxDB: InfluxDB{
			URL:            fileCfg.InfluxDB.URL,
			Token:          fileCfg.InfluxDB.Token,
			Org:            fileCfg.InfluxDB.Org,
			Bucket:         fileCfg.InfluxDB.Bucket,
			SampleInterval: time.Duration(fileCfg.InfluxDB.SampleInterval),
		},
		Log: fileCfg.Log,
	}, nil
}

// Duration is a wrapper around time.Duration that decodes strings like "1h"
// or "30s" from every supported file format. JSON numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
