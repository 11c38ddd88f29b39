package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/config"
	"github.com/MKhiriev/go-io-gate/internal/influxdb"
	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/internal/mqtt"
	"github.com/MKhiriev/go-io-gate/internal/server"
	"github.com/MKhiriev/go-io-gate/internal/service"
	"github.com/MKhiriev/go-io-gate/internal/validators"
	"github.com/MKhiriev/go-io-gate/internal/workers"
	"github.com/MKhiriev/go-io-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "io-gate-server"

func main() {
	printBuildInfo()

	log := logger.NewLogger(role)
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	configured, err := logger.New(role, cfg.LoggerOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating logger")
	}
	log = configured
	log.Debug().Any("server", cfg.Server).Any("io", cfg.IO).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ioCfg := cfg.IOConfig()
	if err := validators.NewIOConfigValidator().Validate(context.Background(), ioCfg); err != nil {
		return fmt.Errorf("invalid io configuration: %w", err)
	}

	inputs := models.NewInputRegistry(ioCfg.Inputs)
	outputs := models.NewOutputRegistry(ioCfg.Outputs)
	if err := seedInitialValues(cfg.IO, inputs, outputs); err != nil {
		return err
	}

	var (
		observers  []service.OutputObserver
		background []workers.Worker
	)

	if mqttCfg, ok := cfg.MQTTConfig(); ok {
		client, err := mqtt.Connect(mqttCfg, log)
		if err != nil {
			return err
		}
		defer client.Close()

		bridge := mqtt.NewBridge(client, mqttCfg, log)
		if err = bridge.SubscribeInputs(inputs, cfg.InputTopics()); err != nil {
			return err
		}
		observers = append(observers, bridge)
	}

	if influxCfg, ok := cfg.InfluxDBConfig(); ok {
		client, err := influxdb.Connect(context.Background(), influxCfg, log)
		if err != nil {
			return err
		}
		defer client.Close()

		observers = append(observers, client)
		if cfg.InfluxDB.SampleInterval > 0 {
			background = append(background, workers.NewInputSampler(inputs, client, cfg.InfluxDB.SampleInterval, log))
		}
	}

	srv, err := server.NewServer(ioCfg, inputs, outputs, server.Settings{
		MetricsAddress:  cfg.Server.MetricsAddress,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Workers:         background,
	}, log,
		server.WithObservers(observers...),
		server.WithRequestTimeout(cfg.Server.RequestTimeout),
	)
	if err != nil {
		return err
	}

	return srv.RunServer()
}

// seedInitialValues applies the configured initial values. Outputs store
// the initial value through their converter.
func seedInitialValues(entries config.IO, inputs models.InputRegistry, outputs models.OutputRegistry) error {
	now := time.Now()
	for _, entry := range entries.Inputs {
		if entry.Initial == "" {
			continue
		}
		if input, ok := inputs.Lookup(entry.Name); ok {
			input.Set(entry.Initial, now)
		}
	}

	for _, entry := range entries.Outputs {
		if entry.Initial == "" {
			continue
		}
		output, ok := outputs.Lookup(entry.Name)
		if !ok {
			continue
		}
		value, err := output.ConvertFunc(entry.Initial)
		if err != nil {
			return fmt.Errorf("output %q initial value: %w", entry.Name, err)
		}
		output.Store(value)
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
