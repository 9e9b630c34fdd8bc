package radio

// FakeEmitter records sends for test assertions.
type FakeEmitter struct {
	// Sends counts survivor signals published.
	Sends int

	// SystemEvents contains all system events that were published.
	SystemEvents []SystemEvent

	// SystemPayloads contains the JSON payloads for system events.
	SystemPayloads [][]byte

	// SendError, if set, will be returned by Send.
	SendError error

	// PublishSystemError, if set, will be returned by PublishSystem.
	PublishSystemError error

	// Closed tracks if Close was called.
	Closed bool

	// Connected controls the return value of IsConnected.
	Connected bool
}

// NewFakeEmitter creates a FakeEmitter for testing.
func NewFakeEmitter() *FakeEmitter {
	return &FakeEmitter{}
}

// Send records a survivor signal.
func (f *FakeEmitter) Send() error {
	if f.SendError != nil {
		return f.SendError
	}
	f.Sends++
	return nil
}

// PublishSystem records the system event.
func (f *FakeEmitter) PublishSystem(event SystemEvent) error {
	if f.PublishSystemError != nil {
		return f.PublishSystemError
	}

	f.SystemEvents = append(f.SystemEvents, event)

	payload, err := FormatSystemPayload(event)
	if err != nil {
		return err
	}
	f.SystemPayloads = append(f.SystemPayloads, payload)

	return nil
}

// Close marks the emitter as closed.
func (f *FakeEmitter) Close() error {
	f.Closed = true
	return nil
}

// IsConnected reports whether the fake emitter is "connected".
func (f *FakeEmitter) IsConnected() bool {
	return f.Connected
}

// Reset clears recorded sends and events.
func (f *FakeEmitter) Reset() {
	f.Sends = 0
	f.SystemEvents = nil
	f.SystemPayloads = nil
	f.Closed = false
	f.SendError = nil
	f.PublishSystemError = nil
	f.Connected = false
}
