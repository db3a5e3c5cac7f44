package events

import "log/slog"

// Visitor has one method per event kind.
type Visitor interface {
	VisitContentAdded(e *ContentAdded)
	VisitContentRemoved(e *ContentRemoved)
	VisitContentUpdated(e *ContentUpdated)
	VisitContentWatched(e *ContentWatched)
}

// NopVisitor ignores every event. Embed it to handle only some kinds.
type NopVisitor struct{}

func (NopVisitor) VisitContentAdded(*ContentAdded)     {}
func (NopVisitor) VisitContentRemoved(*ContentRemoved) {}
func (NopVisitor) VisitContentUpdated(*ContentUpdated) {}
func (NopVisitor) VisitContentWatched(*ContentWatched) {}

// Observer receives catalog events. Observers are identified by ==, so
// register pointers: a value whose type holds a slice, map or func can be
// registered but never matched for Unregister.
type Observer interface {
	Notify(e Event)
}

// dispatcher adapts a Visitor to an Observer.
type dispatcher struct {
	v Visitor
}

// Dispatch returns an Observer that hands each event to v.
func Dispatch(v Visitor) Observer {
	return &dispatcher{v: v}
}

func (d *dispatcher) Notify(e Event) { e.Accept(d.v) }

type funcObserver struct {
	f func(Event)
}

// Func adapts a plain function to an Observer. Each call returns a
// distinct Observer, so it can be unregistered on its own.
func Func(f func(Event)) Observer {
	return &funcObserver{f: f}
}

func (o *funcObserver) Notify(e Event) { o.f(e) }

// ChannelObserver forwards events to a channel for a consumer running
// elsewhere. Delivery is non-blocking; events are dropped when the
// channel is full.
type ChannelObserver struct {
	ch     chan<- Event
	logger *slog.Logger
}

// NewChannelObserver creates a channel-backed observer.
func NewChannelObserver(ch chan<- Event, logger *slog.Logger) *ChannelObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChannelObserver{ch: ch, logger: logger}
}

// Notify sends e without blocking.
func (o *ChannelObserver) Notify(e Event) {
	select {
	case o.ch <- e:
	default:
		o.logger.Warn("observer channel full, dropping event", "type", e.EventType())
	}
}
