package tui

import (
	"sync"

	"github.com/idilsaglam/packlist/internal/notify"
)

// Toasts is the notification sink for the TUI. It keeps only the newest
// notification; the model picks it up after each store call.
type Toasts struct {
	mu    sync.Mutex
	last  notify.Notification
	fresh bool
}

func NewToasts() *Toasts { return &Toasts{} }

func (t *Toasts) Notify(n notify.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last, t.fresh = n, true
}

// Take returns the newest notification if it has not been taken yet.
func (t *Toasts) Take() (notify.Notification, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.fresh {
		return notify.Notification{}, false
	}
	t.fresh = false
	return t.last, true
}
