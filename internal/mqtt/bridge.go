package mqtt

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/converter"
	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/models"
)

// messenger is the part of Client used by Bridge.
type messenger interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
	Subscribe(topic string, qos byte, handler MessageHandler) error
}

// Bridge maps facade entries to broker topics.
type Bridge struct {
	client       messenger
	qos          byte
	retained     bool
	inputPrefix  string
	outputPrefix string

	now    func() time.Time
	logger *logger.Logger
}

// NewBridge returns a bridge publishing and subscribing through client with
// the topic layout and QoS of cfg.
func NewBridge(client *Client, cfg Config, logger *logger.Logger) *Bridge {
	return newBridge(client, cfg, logger)
}

func newBridge(client messenger, cfg Config, logger *logger.Logger) *Bridge {
	return &Bridge{
		client:       client,
		qos:          cfg.QoS,
		retained:     cfg.Retained,
		inputPrefix:  cfg.InputPrefix,
		outputPrefix: cfg.OutputPrefix,
		now:          time.Now,
		logger:       logger,
	}
}

// InputTopic returns the topic feeding input name. An entry in overrides
// replaces the prefixed default.
func (b *Bridge) InputTopic(name string, overrides map[string]string) string {
	if topic := overrides[name]; topic != "" {
		return topic
	}
	return b.inputPrefix + name
}

// OutputTopic returns the topic output writes to name are published on.
func (b *Bridge) OutputTopic(name string) string {
	return b.outputPrefix + name
}

// SubscribeInputs subscribes one topic per input. Every message replaces the
// value of its input with the payload as a string, timestamped with the
// receive time. It stops at the first failed subscription.
func (b *Bridge) SubscribeInputs(inputs models.InputRegistry, overrides map[string]string) error {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		input := inputs[name]
		topic := b.InputTopic(name, overrides)

		err := b.client.Subscribe(topic, b.qos, func(_ string, payload []byte) error {
			input.Set(string(payload), b.now())
			return nil
		})
		if err != nil {
			return fmt.Errorf("input %q: %w", name, err)
		}
		b.logger.Debug().Str("input", name).Str("topic", topic).Msg("input subscribed")
	}
	return nil
}

// OutputWritten publishes value on the output's topic using the default
// string form of the value.
func (b *Bridge) OutputWritten(_ context.Context, name string, value any) error {
	payload, err := converter.ToString(value, nil)
	if err != nil {
		return err
	}
	return b.client.Publish(b.OutputTopic(name), []byte(payload), b.qos, b.retained)
}
