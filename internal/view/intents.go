// Package view carries the navigation intents the engines emit for the UI.
// The core decides that something should happen ("show the cart panel",
// "go back to the catalog"); rendering it is the UI's problem.
package view

import "sync"

type IntentKind string

const (
	IntentOpenCart  IntentKind = "OPEN_CART"
	IntentCloseCart IntentKind = "CLOSE_CART"
	IntentNavigate  IntentKind = "NAVIGATE"
)

// Known navigation targets, matching the storefront's views.
const (
	ViewHome     = "home"
	ViewCatalog  = "catalog"
	ViewProduct  = "product"
	ViewCheckout = "checkout"
	ViewWishlist = "wishlist"
)

type Intent struct {
	Kind   IntentKind `json:"kind"`
	Target string     `json:"target,omitempty"`
}

// Notifier receives intents as they are produced.
type Notifier interface {
	Publish(intent Intent)
}

// Nop discards every intent. Used when no UI is attached.
type Nop struct{}

func (Nop) Publish(Intent) {}

// Bus fans intents out to subscribers and keeps a bounded buffer of the
// most recent ones so a polling client can catch up.
type Bus struct {
	mu     sync.Mutex
	recent []Intent
	subs   []chan Intent
	limit  int
}

func NewBus(limit int) *Bus {
	if limit <= 0 {
		limit = 32
	}
	return &Bus{limit: limit}
}

func (b *Bus) Publish(intent Intent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.recent = append(b.recent, intent)
	if len(b.recent) > b.limit {
		b.recent = b.recent[len(b.recent)-b.limit:]
	}

	for _, ch := range b.subs {
		select {
		case ch <- intent:
		default: // slow subscriber, drop rather than block a mutation
		}
	}
}

// Recent returns the buffered intents, oldest first.
func (b *Bus) Recent() []Intent {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Intent, len(b.recent))
	copy(out, b.recent)
	return out
}

// Subscribe returns a channel receiving future intents and a cancel func.
func (b *Bus) Subscribe() (<-chan Intent, func()) {
	ch := make(chan Intent, 16)

	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subs {
			if sub == ch {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}
