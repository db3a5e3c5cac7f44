package events

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Bus delivers events to registered observers synchronously, in
// registration order. It is not safe for concurrent use.
type Bus struct {
	observers []Observer
	logger    *slog.Logger
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger}
}

// Register adds o to the end of the delivery order. Registering the same
// observer twice is a no-op and returns false. Observers of a
// non-comparable type are always added and cannot be unregistered.
func (b *Bus) Register(o Observer) bool {
	if o == nil || b.index(o) >= 0 {
		return false
	}
	b.observers = append(b.observers, o)
	return true
}

// Unregister removes o. It returns false if o was not registered or its
// type is not comparable.
func (b *Bus) Unregister(o Observer) bool {
	i := b.index(o)
	if i < 0 {
		return false
	}
	b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
	return true
}

// Len returns the number of registered observers.
func (b *Bus) Len() int { return len(b.observers) }

// Publish delivers e to every observer before returning. A panicking
// observer is logged and skipped; the rest still receive e.
func (b *Bus) Publish(e Event) {
	// Observers may (un)register while being notified.
	subs := make([]Observer, len(b.observers))
	copy(subs, b.observers)

	for _, o := range subs {
		b.deliver(o, e)
	}
}

func (b *Bus) deliver(o Observer, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("observer panicked",
				"type", e.EventType(),
				"observer", fmt.Sprintf("%T", o),
				"panic", r)
		}
	}()
	o.Notify(e)
}

func (b *Bus) index(o Observer) int {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return -1
	}
	for i, existing := range b.observers {
		if existing == o {
			return i
		}
	}
	return -1
}
