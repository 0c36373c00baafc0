package input

import (
	"errors"
	"testing"
)

// TestKeyEventFlags tests the flag accessors on KeyEvent
func TestKeyEventFlags(t *testing.T) {
	event := KeyEvent{
		VirtualKey: VKCapsLock,
		Flags:      FlagExtendedKey,
	}

	if event.VirtualKey != 0x14 {
		t.Errorf("Expected virtual key 0x14, got 0x%X", event.VirtualKey)
	}
	if !event.IsExtended() {
		t.Error("Expected extended-key flag to be set")
	}
	if event.IsKeyUp() {
		t.Error("Expected a key-down event")
	}

	up := KeyEvent{VirtualKey: VKCapsLock, Flags: FlagExtendedKey | FlagKeyUp}
	if !up.IsKeyUp() {
		t.Error("Expected a key-up event")
	}
	if !up.IsExtended() {
		t.Error("Expected extended-key flag to survive the key-up flag")
	}
}

// TestKeyCodeLookup tests name to virtual-key resolution
func TestKeyCodeLookup(t *testing.T) {
	tests := []struct {
		name string
		want uint16
	}{
		{"capslock", VKCapsLock},
		{"CapsLock", VKCapsLock},
		{"  scrolllock  ", VKScrollLock},
		{"numlock", VKNumLock},
		{"f15", VKF15},
	}

	for _, tt := range tests {
		got, err := KeyCode(tt.name)
		if err != nil {
			t.Errorf("KeyCode(%q) returned error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("KeyCode(%q) = 0x%X, want 0x%X", tt.name, got, tt.want)
		}
	}

	if _, err := KeyCode("hyperspace"); err == nil {
		t.Error("Expected error for unknown key name")
	}
}

// TestKeyNameRoundTrip tests that every listed name resolves and maps back
func TestKeyNameRoundTrip(t *testing.T) {
	names := KeyNames()
	if len(names) == 0 {
		t.Fatal("Expected at least one supported key name")
	}

	for _, name := range names {
		vk, err := KeyCode(name)
		if err != nil {
			t.Errorf("KeyCode(%q) returned error: %v", name, err)
		}
		if KeyName(vk) == "" {
			t.Errorf("KeyName(0x%X) returned empty for %q", vk, name)
		}
	}
}

// TestRecorderDefaults tests that a fresh Recorder reports success
func TestRecorderDefaults(t *testing.T) {
	rec := NewRecorder()

	count, err := rec.InjectKeyEvent(VKCapsLock, FlagExtendedKey)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
	if rec.Len() != 1 {
		t.Errorf("Expected 1 recorded call, got %d", rec.Len())
	}

	calls := rec.Calls()
	if calls[0].VirtualKey != VKCapsLock || calls[0].Flags != FlagExtendedKey {
		t.Errorf("Recorded call mismatch: %+v", calls[0])
	}
}

// TestRecorderResults tests queued and default failure results
func TestRecorderResults(t *testing.T) {
	rec := NewRecorder()
	blocked := errors.New("blocked")

	rec.PushResult(Result{Count: 0, Err: blocked})
	if count, err := rec.InjectKeyEvent(VKScrollLock, 0); count != 0 || !errors.Is(err, blocked) {
		t.Errorf("Expected queued failure, got count=%d err=%v", count, err)
	}

	// Queue drained, back to implicit success.
	if count, err := rec.InjectKeyEvent(VKScrollLock, 0); count != 1 || err != nil {
		t.Errorf("Expected success after queue drained, got count=%d err=%v", count, err)
	}

	rec.SetDefaultResult(Result{Count: 0})
	if count, err := rec.InjectKeyEvent(VKScrollLock, 0); count != 0 || err != nil {
		t.Errorf("Expected default zero count, got count=%d err=%v", count, err)
	}

	if rec.Len() != 3 {
		t.Errorf("Expected 3 recorded calls, got %d", rec.Len())
	}
}
