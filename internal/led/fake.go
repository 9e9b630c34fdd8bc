package led

// Pattern is a single recorded indicator state.
type Pattern struct {
	Left  bool
	Right bool
}

// FakeDriver records every Set call for test assertions.
type FakeDriver struct {
	// History contains every pattern passed to Set, in order.
	History []Pattern

	// SetError, if set, will be returned by Set.
	SetError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeDriver creates a FakeDriver for testing.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{}
}

// Set records the indicator pattern.
func (f *FakeDriver) Set(left, right bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.History = append(f.History, Pattern{Left: left, Right: right})
	return nil
}

// Last returns the most recent pattern, or a zero Pattern if none.
func (f *FakeDriver) Last() Pattern {
	if len(f.History) == 0 {
		return Pattern{}
	}
	return f.History[len(f.History)-1]
}

// Close marks the driver as closed.
func (f *FakeDriver) Close() error {
	f.Closed = true
	return nil
}
