// Package notify carries user-facing feedback (toasts) from the packing store
// to whatever presentation layer is attached.
package notify

import "sync"

type Kind int

const (
	Success Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "success"
}

// Action is an optional follow-up the user can trigger, e.g. "Undo".
type Action struct {
	Label string
	Run   func()
}

type Notification struct {
	Kind        Kind
	Title       string
	Description string
	Action      *Action
}

// Sink receives notifications. The store never looks at a result, so
// implementations must not block for long.
type Sink interface {
	Notify(Notification)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Notification)

func (f SinkFunc) Notify(n Notification) { f(n) }

// Discard drops everything.
var Discard Sink = SinkFunc(func(Notification) {})

// Recorder keeps every notification in order. Handy in tests.
type Recorder struct {
	mu  sync.Mutex
	all []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, n)
}

// All returns a copy of what was recorded so far.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.all...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.all) == 0 {
		return Notification{}, false
	}
	return r.all[len(r.all)-1], true
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = nil
}
