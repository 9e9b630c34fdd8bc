package radio

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// RealEmitter publishes to an actual MQTT broker.
type RealEmitter struct {
	client paho.Client
	topic  string
}

// NewRealEmitter creates an emitter connected to the given broker, bound to
// the given channel's topic.
func NewRealEmitter(broker string, channel int) (*RealEmitter, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("rescue-rover").
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return &RealEmitter{
		client: client,
		topic:  SignalTopic(channel),
	}, nil
}

// Send publishes the survivor signal.
// QoS 1 (at-least-once): the signal is the whole point of the mission.
func (e *RealEmitter) Send() error {
	token := e.client.Publish(e.topic, 1, false, SignalPayload())
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// PublishSystem sends a system lifecycle event to the MQTT broker.
func (e *RealEmitter) PublishSystem(event SystemEvent) error {
	payload, err := FormatSystemPayload(event)
	if err != nil {
		return fmt.Errorf("format system payload: %w", err)
	}

	token := e.client.Publish(TopicSystem, 1, event.Retained, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish system timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish system: %w", err)
	}
	return nil
}

// IsConnected reports whether the broker connection is active.
func (e *RealEmitter) IsConnected() bool {
	return e.client.IsConnected()
}

// Close disconnects from the broker.
func (e *RealEmitter) Close() error {
	e.client.Disconnect(1000) // 1 second timeout
	return nil
}
