package input

import (
	"sync"
)

// Result is the outcome a Recorder hands back for one injection call.
type Result struct {
	Count uint32
	Err   error
}

// Recorder is an Injector test double that records every injected event.
// By default every call reports one injected event and no error; queued or
// default results can simulate a platform that refuses the injection.
// Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	calls  []KeyEvent
	queue  []Result
	defRes Result
	hasDef bool
}

// NewRecorder creates a Recorder whose calls all succeed with count 1.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetDefaultResult makes every call without a queued result return res.
func (r *Recorder) SetDefaultResult(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defRes = res
	r.hasDef = true
}

// PushResult queues a result for a single upcoming call, ahead of the
// default.
func (r *Recorder) PushResult(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, res)
}

// InjectKeyEvent records the event and returns the next configured result.
func (r *Recorder) InjectKeyEvent(vk uint16, flags uint32) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, KeyEvent{VirtualKey: vk, Flags: flags})

	if len(r.queue) > 0 {
		res := r.queue[0]
		r.queue = r.queue[1:]
		return res.Count, res.Err
	}
	if r.hasDef {
		return r.defRes.Count, r.defRes.Err
	}
	return 1, nil
}

// Calls returns a copy of every recorded event, in injection order.
func (r *Recorder) Calls() []KeyEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]KeyEvent, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
