package led

import (
	"errors"
	"testing"
)

func TestFakeDriverRecordsHistory(t *testing.T) {
	f := NewFakeDriver()

	if err := f.Set(true, false); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := f.Set(true, true); err != nil {
		t.Fatalf("set: %v", err)
	}

	if len(f.History) != 2 {
		t.Fatalf("history: got %d entries, want 2", len(f.History))
	}
	if f.History[0] != (Pattern{Left: true}) {
		t.Errorf("first: %+v", f.History[0])
	}
	if f.Last() != (Pattern{Left: true, Right: true}) {
		t.Errorf("last: %+v", f.Last())
	}
}

func TestFakeDriverSetError(t *testing.T) {
	f := NewFakeDriver()
	f.SetError = errors.New("gpio busy")

	if err := f.Set(true, true); err == nil {
		t.Fatal("expected error")
	}
	if len(f.History) != 0 {
		t.Error("failed set must not record")
	}
}

func TestFakeDriverClose(t *testing.T) {
	f := NewFakeDriver()
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !f.Closed {
		t.Error("expected Closed=true")
	}
}
