package observability

import "context"

// NoOpObserver drops every event. It is the default for searches and
// sessions that are given no observer.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}

var (
	_ Observer = NoOpObserver{}
	_ Observer = (*SlogObserver)(nil)
	_ Observer = (*MultiObserver)(nil)
	_ Observer = (*MetricsObserver)(nil)
)
