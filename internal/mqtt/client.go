// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mqtt

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/logger"
	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	defaultConnectTimeout    = 10 * time.Second
	defaultPublishTimeout    = 5 * time.Second
	defaultKeepAlive         = 60 * time.Second
	defaultDisconnectQuiesce = 1000 // ms
	maxQoS                   = 2
	maxPayloadSize           = 1 << 20
)

// Config describes the broker connection and the topic layout.
type Config struct {
	// Broker is the broker URL, e.g. "tcp://127.0.0.1:1883".
	Broker   string
	ClientID string
	Username string
	Password string

	// QoS is used for every subscription and publish.
	QoS byte
	// Retained marks published output values as retained.
	Retained bool

	InputPrefix  string
	OutputPrefix string
}

// MessageHandler processes one message received on topic.
type MessageHandler func(topic string, payload []byte) error

// pahoClient is the part of paho.Client used by Client.
type pahoClient interface {
	IsConnected() bool
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
	Disconnect(quiesce uint)
}

type subscription struct {
	qos     byte
	handler MessageHandler
}

// Client is a broker connection safe for concurrent use.
type Client struct {
	client pahoClient
	logger *logger.Logger

	subMu         sync.RWMutex
	subscriptions map[string]subscription
}

// Connect dials the broker and blocks until the first connection is
// established or defaultConnectTimeout elapses. The client reconnects on its
// own afterwards and restores every subscription made through [Client.Subscribe].
func Connect(cfg Config, logger *logger.Logger) (*Client, error) {
	if cfg.Broker == "" {
		return nil, ErrMissingBroker
	}

	c := &Client{
		logger:        logger,
		subscriptions: make(map[string]subscription),
	}

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetKeepAlive(defaultKeepAlive).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(paho.Client) { c.onConnect() }).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			logger.Warn().Err(err).Msg("mqtt connection lost")
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := paho.NewClient(opts)
	c.client = client

	token := client.Connect()
	if !token.WaitTimeout(defaultConnectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, defaultConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	logger.Info().Str("broker", cfg.Broker).Msg("connected to mqtt broker")
	return c, nil
}

func newClient(client pahoClient, logger *logger.Logger) *Client {
	return &Client{
		client:        client,
		logger:        logger,
		subscriptions: make(map[string]subscription),
	}
}

// IsConnected reports whether the broker connection is currently up.
func (c *Client) IsConnected() bool {
	return c.client != nil && c.client.IsConnected()
}

// Publish sends payload to topic and waits for the broker acknowledgement
// required by qos.
func (c *Client) Publish(topic string, payload []byte, qos byte, retained bool) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if len(payload) > maxPayloadSize {
		return fmt.Errorf("%w: payload size %d exceeds maximum %d bytes", ErrPublishFailed, len(payload), maxPayloadSize)
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}

// Subscribe registers handler for topic. The subscription is kept across
// reconnects.
func (c *Client) Subscribe(topic string, qos byte, handler MessageHandler) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if handler == nil {
		return fmt.Errorf("%w: handler cannot be nil", ErrSubscribeFailed)
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	if err := c.subscribe(topic, qos, handler); err != nil {
		return err
	}

	c.subMu.Lock()
	c.subscriptions[topic] = subscription{qos: qos, handler: handler}
	c.subMu.Unlock()
	return nil
}

func (c *Client) subscribe(topic string, qos byte, handler MessageHandler) error {
	token := c.client.Subscribe(topic, qos, c.wrapHandler(handler))
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrSubscribeFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}
	return nil
}

// SubscriptionCount returns the number of tracked subscriptions.
func (c *Client) SubscriptionCount() int {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return len(c.subscriptions)
}

// Close disconnects from the broker, giving in-flight work a second to
// complete.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	c.client.Disconnect(defaultDisconnectQuiesce)
	return nil
}

// onConnect restores tracked subscriptions. It is a no-op on the first
// connection because nothing is tracked yet.
func (c *Client) onConnect() {
	c.subMu.RLock()
	subs := make(map[string]subscription, len(c.subscriptions))
	for topic, sub := range c.subscriptions {
		subs[topic] = sub
	}
	c.subMu.RUnlock()

	for topic, sub := range subs {
		if err := c.subscribe(topic, sub.qos, sub.handler); err != nil {
			c.logger.Err(err).Str("topic", topic).Msg("error restoring mqtt subscription")
		}
	}
}

func (c *Client) wrapHandler(handler MessageHandler) paho.MessageHandler {
	return func(_ paho.Client, msg paho.Message) {
		topic := msg.Topic()
		defer func() {
			if r := recover(); r != nil {
				c.logger.Error().Str("topic", topic).Interface("panic", r).Msg("mqtt handler panicked")
			}
		}()

		if err := handler(topic, msg.Payload()); err != nil {
			c.logger.Err(err).Str("topic", topic).Msg("error handling mqtt message")
		}
	}
}
