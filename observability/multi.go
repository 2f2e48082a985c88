package observability

import "context"

// MultiObserver forwards each event to every observer it holds, in order.
// The binary uses it to feed one search into both the log and the metrics.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver keeps the non-nil observers, in the order given.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	m := &MultiObserver{observers: make([]Observer, 0, len(observers))}
	for _, obs := range observers {
		if obs != nil {
			m.observers = append(m.observers, obs)
		}
	}

	return m
}

// Len returns how many observers receive events.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}
