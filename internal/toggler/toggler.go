// Package toggler drives the periodic synthetic key injection loop.
package toggler

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"vktoggle/internal/input"
)

// DefaultInterval is the cycle period used when no interval is configured.
const DefaultInterval = 1 * time.Second

// Options configures a Toggler. The zero value is usable: it toggles Caps
// Lock with the extended-key flag once per DefaultInterval.
type Options struct {
	// Key is the Windows virtual-key code to inject. Defaults to Caps Lock.
	Key uint16

	// Flags for the injected key-down event. Defaults to the extended-key
	// flag.
	Flags uint32

	// Interval between injection cycles. Defaults to DefaultInterval.
	Interval time.Duration

	// SendKeyUp pairs every key-down with a matching key-up event. Off by
	// default: a lone key-down is what flips a toggle key's state.
	SendKeyUp bool
}

func (o *Options) applyDefaults() {
	if o.Key == 0 {
		o.Key = input.VKCapsLock
		if o.Flags == 0 {
			o.Flags = input.FlagExtendedKey
		}
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
}

// Toggler injects a key event at a fixed cadence until its context is
// cancelled. It is stateless across iterations: every cycle constructs and
// submits the same event.
type Toggler struct {
	injector input.Injector
	opts     Options
	paused   atomic.Bool
	cycles   atomic.Uint64

	// tick overrides the internal ticker; tests drive the loop through it.
	tick <-chan time.Time
}

// New creates a Toggler that injects through the given injector.
func New(injector input.Injector, opts Options) *Toggler {
	opts.applyDefaults()
	return &Toggler{
		injector: injector,
		opts:     opts,
	}
}

// Options returns the effective options after defaulting.
func (t *Toggler) Options() Options {
	return t.opts
}

// Run injects one key event per interval until ctx is cancelled, then
// returns ctx.Err(). There is no other exit condition.
func (t *Toggler) Run(ctx context.Context) error {
	tick := t.tick
	if tick == nil {
		ticker := time.NewTicker(t.opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	log.Printf("Toggler: injecting key 0x%02X every %v", t.opts.Key, t.opts.Interval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Toggler: stopped after %d cycles", t.cycles.Load())
			return ctx.Err()
		case <-tick:
			if t.paused.Load() {
				continue
			}
			t.InjectNow()
		}
	}
}

// InjectNow performs one injection cycle immediately. The injected count
// and error from the platform are deliberately not inspected: a failed
// cycle changes nothing about the next one.
func (t *Toggler) InjectNow() {
	t.injector.InjectKeyEvent(t.opts.Key, t.opts.Flags)
	if t.opts.SendKeyUp {
		t.injector.InjectKeyEvent(t.opts.Key, t.opts.Flags|input.FlagKeyUp)
	}
	t.cycles.Add(1)
}

// Pause suppresses injection on subsequent cycles. The cadence keeps
// running so Resume takes effect on the next tick.
func (t *Toggler) Pause() {
	if !t.paused.Swap(true) {
		log.Println("Toggler: paused")
	}
}

// Resume re-enables injection.
func (t *Toggler) Resume() {
	if t.paused.Swap(false) {
		log.Println("Toggler: resumed")
	}
}

// Paused reports whether injection is currently suppressed.
func (t *Toggler) Paused() bool {
	return t.paused.Load()
}

// TogglePause flips the paused state and returns the new value.
func (t *Toggler) TogglePause() bool {
	if t.Paused() {
		t.Resume()
		return false
	}
	t.Pause()
	return true
}

// Cycles returns the number of injection cycles performed so far.
func (t *Toggler) Cycles() uint64 {
	return t.cycles.Load()
}
