package hotkey

import (
	"testing"
	"time"
)

// waitForCount polls until *got reaches want or the deadline passes.
func waitForCount(t *testing.T, got chan struct{}, want int) int {
	t.Helper()
	count := 0
	deadline := time.After(time.Second)
	for count < want {
		select {
		case <-got:
			count++
		case <-deadline:
			return count
		}
	}
	return count
}

// TestHotkeyMatch tests that holding every part triggers the callback
func TestHotkeyMatch(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	if err := m.Register("Ctrl+Alt+P", func() { fired <- struct{}{} }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	m.UpdateState("CTRL", true)
	m.UpdateState("ALT", true)
	m.UpdateState("P", true)

	if got := waitForCount(t, fired, 1); got != 1 {
		t.Errorf("Expected 1 trigger, got %d", got)
	}
}

// TestHotkeyPartialNoMatch tests that an incomplete chord stays silent
func TestHotkeyPartialNoMatch(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	m.Register("Ctrl+Alt+P", func() { fired <- struct{}{} })

	m.UpdateState("CTRL", true)
	m.UpdateState("P", true)

	select {
	case <-fired:
		t.Error("Hotkey fired without all parts held")
	case <-time.After(50 * time.Millisecond):
	}
}

// TestHotkeyReleaseBlocksRetrigger tests that releasing a part resets the chord
func TestHotkeyReleaseBlocksRetrigger(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	m.Register("Ctrl+P", func() { fired <- struct{}{} })

	m.UpdateState("CTRL", true)
	m.UpdateState("P", true)
	if got := waitForCount(t, fired, 1); got != 1 {
		t.Fatalf("Expected initial trigger, got %d", got)
	}

	m.UpdateState("CTRL", false)
	m.UpdateState("P", false)
	m.UpdateState("P", true)

	select {
	case <-fired:
		t.Error("Hotkey fired after modifier was released")
	case <-time.After(50 * time.Millisecond):
	}
}

// TestClear tests that cleared hotkeys no longer fire
func TestClear(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	m.Register("Ctrl+P", func() { fired <- struct{}{} })
	m.Clear()

	m.UpdateState("CTRL", true)
	m.UpdateState("P", true)

	select {
	case <-fired:
		t.Error("Cleared hotkey fired")
	case <-time.After(50 * time.Millisecond):
	}
}

// TestEmptyRegistration tests that an empty hotkey string is a no-op
func TestEmptyRegistration(t *testing.T) {
	m := NewManager()
	if err := m.Register("", func() {}); err != nil {
		t.Errorf("Empty registration returned error: %v", err)
	}
	m.UpdateState("CTRL", true)
}
