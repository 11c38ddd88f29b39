package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command line.
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-metrics-address Prometheus listener address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-max-body-bytes POST body limit in bytes
//	-u / -p / -realm Basic authentication credential
//	-mqtt-broker broker URL (e.g., "tcp://127.0.0.1:1883")
//	-mqtt-client-id MQTT client id
//	-influx-url / -influx-token / -influx-org / -influx-bucket InfluxDB target
//	-sample-interval input sampling interval
//	-log-level / -log-file logging
//	-c/-config config file path (.json, .yaml, .yml or .toml)
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address         NetAddress
		metricsAddress  string
		requestTimeout  time.Duration
		shutdownTimeout time.Duration
		maxBodyBytes    int64
		user, password  string
		realm           string
		mqttBroker      string
		mqttClientID    string
		influxURL       string
		influxToken     string
		influxOrg       string
		influxBucket    string
		sampleInterval  time.Duration
		logLevel        string
		logFile         string
		configPath      string
	)

	fs := flag.NewFlagSet("io-gate", flag.ContinueOnError)
	fs.Var(&address, "a", "Listen address host:port")
	fs.StringVar(&metricsAddress, "metrics-address", "", "Prometheus listener address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "POST body limit in bytes")
	fs.StringVar(&user, "u", "", "Basic auth user")
	fs.StringVar(&password, "p", "", "Basic auth password")
	fs.StringVar(&realm, "realm", "", "Basic auth realm")
	fs.StringVar(&mqttBroker, "mqtt-broker", "", "MQTT broker URL")
	fs.StringVar(&mqttClientID, "mqtt-client-id", "", "MQTT client id")
	fs.StringVar(&influxURL, "influx-url", "", "InfluxDB URL")
	fs.StringVar(&influxToken, "influx-token", "", "InfluxDB token")
	fs.StringVar(&influxOrg, "influx-org", "", "InfluxDB organization")
	fs.StringVar(&influxBucket, "influx-bucket", "", "InfluxDB bucket")
	fs.DurationVar(&sampleInterval, "sample-interval", 0, "Input sampling interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			Host:            address.Host,
			Port:            address.Port,
			RequestTimeout:  requestTimeout,
			MaxBodyBytes:    maxBodyBytes,
			MetricsAddress:  metricsAddress,
			ShutdownTimeout: shutdownTimeout,
		},
		Auth: Auth{
			User:     user,
			Password: password,
			Realm:    realm,
		},
		MQTT: MQTT{
			Broker:   mqttBroker,
			ClientID: mqttClientID,
		},
		InfluxDB: InfluxDB{
			URL:            influxURL,
			Token:          influxToken,
			Org:            influxOrg,
			Bucket:         influxBucket,
			SampleInterval: sampleInterval,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address; the
// port must be in 0..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 0 || port > 65535 {
		return errors.New("port number must be in 0..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
