package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-io-gate/internal/config"
	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/internal/utils"
)

type httpIOClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPIOClient constructs an HTTP implementation of [IOClient]. Basic
// credentials are sent when both user and password are configured.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a URL.
func NewHTTPIOClient(cfg *config.ClientConfig, logger *logger.Logger) (IOClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid client address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if cfg.User != "" && cfg.Password != "" {
		client.SetBasicAuth(cfg.User, cfg.Password)
	}

	return &httpIOClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [IOClient]. The name is sent verbatim as the request path,
// so it must already be in escaped form.
func (c *httpIOClient) Get(ctx context.Context, name string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/" + name)
	if err != nil {
		return "", fmt.Errorf("get %q request: %w", name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	c.logger.Debug().Str("input", name).Int("status", resp.StatusCode()).Msg("input read")
	return resp.String(), nil
}

// Post implements [IOClient].
func (c *httpIOClient) Post(ctx context.Context, name, body string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain; charset=utf-8").
		SetBody(body).
		Post("/" + name)
	if err != nil {
		return fmt.Errorf("post %q request: %w", name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.logger.Debug().Str("output", name).Int("status", resp.StatusCode()).Msg("output written")
	return nil
}
