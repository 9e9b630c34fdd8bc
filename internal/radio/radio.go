// Package radio publishes the rover's survivor signal and lifecycle events
// over MQTT, with abstraction for testing.
package radio

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultChannel is the logical emitter channel. It selects the signal topic
// and must match the channel the supervisor's receiver listens on.
const DefaultChannel = 1

// SurvivorMessage is the survivor signal payload. It is sent with a trailing
// NUL byte so receivers written against the original emitter keep working.
const SurvivorMessage = "SURVIVOR_FOUND"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "rescue/rover/system"

// SignalTopic returns the MQTT topic for the given emitter channel.
func SignalTopic(channel int) string {
	return fmt.Sprintf("rescue/rover/emitter/%d", channel)
}

// SignalPayload returns the raw bytes of the survivor signal, including the
// terminating NUL.
func SignalPayload() []byte {
	return append([]byte(SurvivorMessage), 0)
}

// Emitter sends the one-shot survivor signal and system events.
type Emitter interface {
	// Send publishes the survivor signal. Returns an error if publishing
	// fails; the caller logs and moves on, it never retries.
	Send() error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the broker connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// SystemEvent represents a system lifecycle event (e.g., startup, shutdown).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string // e.g., "STARTUP", "SHUTDOWN"
	Reason     string // e.g., "SIGTERM", "SIM_TERMINATED" (shutdown only)
	RawPayload []byte // Pre-formatted JSON payload; if set, FormatSystemPayload returns it directly
	Retained   bool   // Whether the message should be retained by the broker
}

// SystemPayload represents the MQTT message payload for system events.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
// If event.RawPayload is set, it is returned directly (used for full status
// snapshots).
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}

	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}
	return json.Marshal(payload)
}
