package config

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// config holding only the defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{
		Server: Server{Port: DefaultPort},
		Auth:   Auth{Realm: DefaultRealm},
	}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{Port: 8080, RequestTimeout: time.Second}},
		&StructuredConfig{Server: Server{Port: 9090}, Auth: Auth{User: "user"}},
		&StructuredConfig{IO: IO{Outputs: []EntryConfig{{Name: "setpoint"}}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "user", cfg.Auth.User)
	assert.Equal(t, []EntryConfig{{Name: "setpoint"}}, cfg.IO.Outputs)
}

// TestBuild_Defaults verifies the MQTT defaults only apply with a broker.
func TestBuild_Defaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{MQTT: MQTT{Broker: "tcp://broker:1883"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultRealm, cfg.Auth.Realm)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, MQTT{
		Broker:       "tcp://broker:1883",
		ClientID:     DefaultMQTTClientID,
		InputPrefix:  DefaultInputPrefix,
		OutputPrefix: DefaultOutputPrefix,
	}, cfg.MQTT)
}

// TestBuild_DefaultPortMatchesClient verifies that an unconfigured server
// listens where the client looks by default.
func TestBuild_DefaultPortMatchesClient(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	_, port, err := net.SplitHostPort(DefaultClientAddress)
	require.NoError(t, err)
	assert.Equal(t, port, strconv.Itoa(cfg.Server.Port))
}

// TestBuild_Validation verifies the structural checks of the merged config.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{name: "negative timeout", cfg: &StructuredConfig{Server: Server{RequestTimeout: -time.Second}}, wantErr: ErrInvalidServerConfigs},
		{name: "negative body limit", cfg: &StructuredConfig{Server: Server{MaxBodyBytes: -1}}, wantErr: ErrInvalidServerConfigs},
		{name: "mqtt qos", cfg: &StructuredConfig{MQTT: MQTT{Broker: "tcp://b:1883", QoS: 3}}, wantErr: ErrInvalidMQTTConfigs},
		{name: "influx without bucket", cfg: &StructuredConfig{InfluxDB: InfluxDB{URL: "http://i:8086", Org: "org"}}, wantErr: ErrInvalidInfluxDBConfigs},
		{name: "influx negative interval", cfg: &StructuredConfig{InfluxDB: InfluxDB{URL: "http://i:8086", Org: "o", Bucket: "b", SampleInterval: -1}}, wantErr: ErrInvalidInfluxDBConfigs},
		{name: "log level", cfg: &StructuredConfig{Log: Log{Level: "loud"}}, wantErr: ErrInvalidLogConfigs},
		{name: "qos ignored without broker", cfg: &StructuredConfig{MQTT: MQTT{QoS: 7}}},
		{name: "valid", cfg: &StructuredConfig{Server: Server{Port: 8080}, Log: Log{Level: "warn"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_PORT": "8080"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 8080, b.configs[0].Server.Port)
}

func TestWithEnv_SetsError(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_PORT": "http"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_SetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", yamlBody)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: p})

	b.withFile()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, 8080, b.configs[1].Server.Port)
	assert.Equal(t, p, b.configs[1].ConfigFilePath)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/nonexistent/config.json"})

	b.withFile()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithFile_UsesLastPath verifies that the flag path wins over the env path.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeConfigFile(t, "first.json", `{"server": {"port": 1}}`)
	second := writeConfigFile(t, "second.toml", "[server]\nport = 2\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)

	b.withFile()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, 2, b.configs[2].Server.Port)
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_Priority verifies env < flags < file.
func TestLoad_Priority(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{"server": {"port": 7000}, "io": {"inputs": [{"name": "temp"}]}}`)
	setEnvVars(t, map[string]string{
		"SERVER_PORT":            "8080",
		"SERVER_REQUEST_TIMEOUT": "3s",
		"AUTH_USER":              "env-user",
		"CONFIG":                 p,
	})

	cfg, err := Load([]string{"-a", ":9090", "-u", "flag-user"})

	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "flag-user", cfg.Auth.User)
	assert.Equal(t, []EntryConfig{{Name: "temp"}}, cfg.IO.Inputs)
	assert.Equal(t, p, cfg.ConfigFilePath)
}

func TestLoad_FileError(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load([]string{"-c", "/nonexistent/config.yaml"})

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occured during building config")
}
