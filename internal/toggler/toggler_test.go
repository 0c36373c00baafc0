package toggler

import (
	"context"
	"errors"
	"testing"
	"time"

	"vktoggle/internal/input"
)

// startWithTick runs a Toggler driven by a manual tick channel and returns
// it together with a cancel func and the Run result channel.
func startWithTick(rec *input.Recorder, opts Options) (*Toggler, chan time.Time, context.CancelFunc, chan error) {
	tg := New(rec, opts)
	tick := make(chan time.Time)
	tg.tick = tick

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tg.Run(ctx)
	}()
	return tg, tick, cancel, done
}

// waitForCalls blocks until the recorder holds at least n calls.
func waitForCalls(t *testing.T, rec *input.Recorder, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for rec.Len() < n {
		if time.Now().After(deadline) {
			t.Fatalf("Timed out waiting for %d calls, have %d", n, rec.Len())
		}
		time.Sleep(time.Millisecond)
	}
}

// TestDefaults tests that the zero options fall back to Caps Lock
func TestDefaults(t *testing.T) {
	tg := New(input.NewRecorder(), Options{})
	opts := tg.Options()

	if opts.Key != input.VKCapsLock {
		t.Errorf("Expected default key 0x14, got 0x%X", opts.Key)
	}
	if opts.Flags != input.FlagExtendedKey {
		t.Errorf("Expected default extended-key flag, got 0x%X", opts.Flags)
	}
	if opts.Interval != DefaultInterval {
		t.Errorf("Expected default interval %v, got %v", DefaultInterval, opts.Interval)
	}
	if opts.SendKeyUp {
		t.Error("Expected key-up pairing to default to off")
	}
}

// TestInjectsOncePerTick tests that N ticks produce exactly N injections
func TestInjectsOncePerTick(t *testing.T) {
	rec := input.NewRecorder()
	tg, tick, cancel, done := startWithTick(rec, Options{})
	defer cancel()

	for i := 0; i < 5; i++ {
		tick <- time.Now()
	}
	waitForCalls(t, rec, 5)

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if rec.Len() != 5 {
		t.Errorf("Expected exactly 5 injections, got %d", rec.Len())
	}
	if tg.Cycles() != 5 {
		t.Errorf("Expected 5 cycles, got %d", tg.Cycles())
	}
}

// TestInjectionFailureDoesNotStopLoop tests the retry-forever policy
func TestInjectionFailureDoesNotStopLoop(t *testing.T) {
	rec := input.NewRecorder()
	rec.SetDefaultResult(input.Result{Count: 0, Err: errors.New("injection blocked")})

	_, tick, cancel, done := startWithTick(rec, Options{})
	defer cancel()

	for i := 0; i < 5; i++ {
		tick <- time.Now()
	}
	waitForCalls(t, rec, 5)

	select {
	case err := <-done:
		t.Fatalf("Loop exited on injection failure: %v", err)
	default:
	}

	cancel()
	<-done
	if rec.Len() != 5 {
		t.Errorf("Expected 5 attempts despite failures, got %d", rec.Len())
	}
}

// TestEventsIdenticalAcrossIterations tests that the loop is stateless
func TestEventsIdenticalAcrossIterations(t *testing.T) {
	rec := input.NewRecorder()
	_, tick, cancel, done := startWithTick(rec, Options{Key: input.VKScrollLock, Flags: input.FlagExtendedKey})
	defer cancel()

	for i := 0; i < 4; i++ {
		tick <- time.Now()
	}
	waitForCalls(t, rec, 4)
	cancel()
	<-done

	calls := rec.Calls()
	for i := 1; i < len(calls); i++ {
		if calls[i] != calls[0] {
			t.Errorf("Event %d differs from event 0: %+v vs %+v", i, calls[i], calls[0])
		}
	}
}

// TestKeyUpPairing tests the opt-in press-and-release mode
func TestKeyUpPairing(t *testing.T) {
	rec := input.NewRecorder()
	_, tick, cancel, done := startWithTick(rec, Options{SendKeyUp: true})
	defer cancel()

	tick <- time.Now()
	tick <- time.Now()
	waitForCalls(t, rec, 4)
	cancel()
	<-done

	calls := rec.Calls()
	if len(calls) != 4 {
		t.Fatalf("Expected 4 events (2 pairs), got %d", len(calls))
	}
	for i, call := range calls {
		wantUp := i%2 == 1
		if call.IsKeyUp() != wantUp {
			t.Errorf("Event %d: IsKeyUp=%v, want %v", i, call.IsKeyUp(), wantUp)
		}
	}
}

// TestPauseSuppressesInjection tests tray-driven pause and resume
func TestPauseSuppressesInjection(t *testing.T) {
	rec := input.NewRecorder()
	tg, tick, cancel, done := startWithTick(rec, Options{})
	defer cancel()

	tg.Pause()
	for i := 0; i < 3; i++ {
		tick <- time.Now()
	}

	// Give the loop a moment to consume the paused ticks.
	time.Sleep(20 * time.Millisecond)
	if rec.Len() != 0 {
		t.Errorf("Expected no injections while paused, got %d", rec.Len())
	}

	tg.Resume()
	tick <- time.Now()
	waitForCalls(t, rec, 1)
	cancel()
	<-done

	if rec.Len() != 1 {
		t.Errorf("Expected exactly 1 injection after resume, got %d", rec.Len())
	}
}

// TestCadenceEndToEnd tests the real ticker against wall-clock time: 3.5
// intervals of runtime must record exactly 3 injections
func TestCadenceEndToEnd(t *testing.T) {
	rec := input.NewRecorder()
	interval := 100 * time.Millisecond
	tg := New(rec, Options{Interval: interval})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tg.Run(ctx)
	}()

	time.Sleep(interval*3 + interval/2)
	cancel()
	<-done

	calls := rec.Calls()
	if len(calls) != 3 {
		t.Fatalf("Expected exactly 3 injections in 3.5 intervals, got %d", len(calls))
	}
	for i, call := range calls {
		if call.VirtualKey != input.VKCapsLock {
			t.Errorf("Event %d: virtual key 0x%X, want 0x14", i, call.VirtualKey)
		}
		if !call.IsExtended() {
			t.Errorf("Event %d: extended-key flag not set", i)
		}
		if call.IsKeyUp() {
			t.Errorf("Event %d: unexpected key-up flag", i)
		}
	}
}
