// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package influxdb

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/logger"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

const defaultConnectTimeout = 10 * time.Second

// Config describes the target bucket.
type Config struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// pointWriter is the part of api.WriteAPIBlocking used by Client.
type pointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// Client writes facade values as points. It is safe for concurrent use.
type Client struct {
	client influxdb2.Client
	writer pointWriter
	logger *logger.Logger
}

// Connect creates the client and verifies the server answers a ping.
func Connect(ctx context.Context, cfg Config, logger *logger.Logger) (*Client, error) {
	if cfg.URL == "" || cfg.Org == "" || cfg.Bucket == "" {
		return nil, ErrIncompleteConfig
	}

	client := influxdb2.NewClientWithOptions(cfg.URL, cfg.Token, influxdb2.DefaultOptions())

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	healthy, err := client.Ping(pingCtx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping failed: %w", ErrConnectionFailed, err)
	}
	if !healthy {
		client.Close()
		return nil, fmt.Errorf("%w: server not healthy", ErrConnectionFailed)
	}

	logger.Info().Str("url", cfg.URL).Str("bucket", cfg.Bucket).Msg("connected to influxdb")

	return &Client{
		client: client,
		writer: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		logger: logger,
	}, nil
}

// Close releases the underlying HTTP resources.
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

func (c *Client) writePoint(ctx context.Context, point *write.Point) error {
	if err := c.writer.WritePoint(ctx, point); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
