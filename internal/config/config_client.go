package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Client defaults.
const (
	DefaultClientAddress = "localhost:8080"
	DefaultClientTimeout = 5 * time.Second
)

// ErrInvalidClientConfigs indicates an unusable client configuration.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig configures the command-line client.
type ClientConfig struct {
	// Address is the host:port of the facade.
	// Env: CLIENT_ADDRESS
	Address string `env:"ADDRESS"`
	// User and Password are sent as Basic credentials when both are set.
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	// RequestTimeout bounds every request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads the client configuration from the environment and
// the process command line. It also returns the positional arguments that
// follow the flags.
func GetClientConfig() (*ClientConfig, []string, error) {
	return LoadClient(os.Args[1:])
}

// LoadClient is [GetClientConfig] with explicit command-line arguments.
func LoadClient(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagsCfg := &ClientConfig{}
	fs := flag.NewFlagSet("io-gate-client", flag.ContinueOnError)
	fs.StringVar(&flagsCfg.Address, "a", "", "Server address host:port")
	fs.StringVar(&flagsCfg.User, "u", "", "Basic auth user")
	fs.StringVar(&flagsCfg.Password, "p", "", "Basic auth password")
	fs.DurationVar(&flagsCfg.RequestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		Address:        DefaultClientAddress,
		RequestTimeout: DefaultClientTimeout,
	}
	for _, src := range []*ClientConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.RequestTimeout < 0 {
		return nil, nil, fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}

	return cfg, fs.Args(), nil
}
