package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-io-gate/internal/adapter"
	"github.com/MKhiriev/go-io-gate/internal/config"
	"github.com/MKhiriev/go-io-gate/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const clientLogLevel = "warn"

const usage = `usage: io-gate-client [-a host:port] [-u user -p password] [-t timeout] <command>

commands:
  get <name>          print the value of input <name>
  post <name> <body>  write <body> to output <name>
  version             print build information`

func main() {
	// stdout carries command output only
	log, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error creating logger:", err)
		os.Exit(1)
	}

	cfg, args, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPIOClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create adapter")
	}

	out, err := run(context.Background(), client, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if out != "" {
		fmt.Println(out)
	}
}

// newLogger returns the client logger. Only warnings and errors are written.
func newLogger(w io.Writer) (*logger.Logger, error) {
	return logger.New("io-gate-client", logger.Options{Level: clientLogLevel, Output: w})
}

func run(ctx context.Context, client adapter.IOClient, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("missing command\n%s", usage)
	}

	switch cmd := args[0]; {
	case cmd == "get" && len(args) == 2:
		return client.Get(ctx, args[1])
	case cmd == "post" && len(args) == 3:
		return "", client.Post(ctx, args[1], args[2])
	case cmd == "version" && len(args) == 1:
		return buildInfo(), nil
	default:
		return "", fmt.Errorf("invalid command %q\n%s", args, usage)
	}
}

func buildInfo() string {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", buildVersion, buildDate, buildCommit)
}
