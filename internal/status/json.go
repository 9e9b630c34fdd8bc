package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event             string      `json:"event,omitempty"`
	Reason            string      `json:"reason,omitempty"`
	State             string      `json:"state"`
	AidTicks          int         `json:"aid_ticks"`
	Tick              uint64      `json:"tick"`
	Sensors           SensorsJSON `json:"sensors"`
	Tilted            bool        `json:"tilted"`
	SurvivorDetected  bool        `json:"survivor_detected"`
	Speeds            SpeedsJSON  `json:"speeds"`
	SurvivorsSignaled int         `json:"survivors_signaled"`
	UptimeSeconds     int64       `json:"uptime_seconds"`
	StartTime         string      `json:"start_time"`
	Timestamp         string      `json:"timestamp"`
	Radio             RadioJSON   `json:"radio"`
	Config            ConfigJSON  `json:"config"`
}

// SensorsJSON is the JSON representation of the distance readings.
type SensorsJSON struct {
	Front float64 `json:"front"`
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// SpeedsJSON is the JSON representation of the commanded wheel speeds.
type SpeedsJSON struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// RadioJSON reports radio connection state.
type RadioJSON struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
	Channel   int    `json:"channel"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	SimAddr       string `json:"sim_addr"`
	TimeStepMs    int    `json:"time_step_ms"`
	HTTPAddr      string `json:"http_addr"`
	SurvivorLabel string `json:"survivor_label"`
}

func buildInner(snap Snapshot) StatusInner {
	return StatusInner{
		State:    string(snap.State),
		AidTicks: snap.Timer,
		Tick:     snap.Tick,
		Sensors: SensorsJSON{
			Front: snap.Front,
			Left:  snap.Left,
			Right: snap.Right,
		},
		Tilted:           snap.Tilted,
		SurvivorDetected: snap.SurvivorDetected,
		Speeds: SpeedsJSON{
			Left:  snap.LeftSpeed,
			Right: snap.RightSpeed,
		},
		SurvivorsSignaled: snap.SurvivorsSignaled,
		UptimeSeconds:     int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:         snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:         snap.Now.UTC().Format(time.RFC3339),
		Radio: RadioJSON{
			Connected: snap.RadioConnected,
			Broker:    snap.Config.Broker,
			Channel:   snap.Config.Channel,
		},
		Config: ConfigJSON{
			SimAddr:       snap.Config.SimAddr,
			TimeStepMs:    snap.Config.TimeStepMs,
			HTTPAddr:      snap.Config.HTTPAddr,
			SurvivorLabel: snap.Config.SurvivorLabel,
		},
	}
}

// FormatJSON returns the JSON status for the web endpoints (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
