package web

import (
	"sync"
	"time"
)

// Kind is the style of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is a transient message shown above the editor.
type Notification struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	Expires time.Time `json:"expires"`
}

// notifier keeps notifications until their TTL elapses.
type notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []Notification
}

func newNotifier(ttl time.Duration) *notifier {
	return &notifier{ttl: ttl, now: time.Now}
}

func (n *notifier) push(kind Kind, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, Notification{Kind: kind, Message: msg, Expires: n.now().Add(n.ttl)})
}

// active drops expired notifications and returns the rest, oldest first.
func (n *notifier) active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	now := n.now()
	kept := n.items[:0]
	for _, it := range n.items {
		if now.Before(it.Expires) {
			kept = append(kept, it)
		}
	}
	n.items = kept
	return append([]Notification(nil), kept...)
}
