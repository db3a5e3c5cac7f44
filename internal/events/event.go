// Package events defines catalog events and the observers that receive them.
package events

import (
	"time"

	"github.com/vmunix/reelcat/internal/content"
	"github.com/vmunix/reelcat/internal/user"
)

// Event type constants.
const (
	EventContentAdded   = "content.added"
	EventContentRemoved = "content.removed"
	EventContentUpdated = "content.updated"
	EventContentWatched = "content.watched"
)

// Event is a catalog mutation. The set of implementations is closed; use
// Accept with a Visitor to branch on the concrete event.
type Event interface {
	EventType() string
	OccurredAt() time.Time
	Accept(v Visitor)
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"occurred_at"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent creates a BaseEvent stamped at t.
func NewBaseEvent(eventType string, t time.Time) BaseEvent {
	return BaseEvent{Type: eventType, Timestamp: t}
}

// ContentAdded is emitted after content joins the catalog.
type ContentAdded struct {
	BaseEvent
	Content content.Content
}

// ContentRemoved is emitted after content leaves the catalog.
type ContentRemoved struct {
	BaseEvent
	Content content.Content
}

// ContentUpdated is emitted after content is replaced by a new version
// with the same title.
type ContentUpdated struct {
	BaseEvent
	Old content.Content
	New content.Content
}

// ContentWatched is emitted when a user is granted playback. The event
// timestamp is the time the watch was requested.
type ContentWatched struct {
	BaseEvent
	User    user.User
	Content content.Content
	Minutes int
}

func (e *ContentAdded) Accept(v Visitor)   { v.VisitContentAdded(e) }
func (e *ContentRemoved) Accept(v Visitor) { v.VisitContentRemoved(e) }
func (e *ContentUpdated) Accept(v Visitor) { v.VisitContentUpdated(e) }
func (e *ContentWatched) Accept(v Visitor) { v.VisitContentWatched(e) }

// NewContentAdded creates a ContentAdded event.
func NewContentAdded(c content.Content, at time.Time) *ContentAdded {
	return &ContentAdded{BaseEvent: NewBaseEvent(EventContentAdded, at), Content: c}
}

// NewContentRemoved creates a ContentRemoved event.
func NewContentRemoved(c content.Content, at time.Time) *ContentRemoved {
	return &ContentRemoved{BaseEvent: NewBaseEvent(EventContentRemoved, at), Content: c}
}

// NewContentUpdated creates a ContentUpdated event.
func NewContentUpdated(old, updated content.Content, at time.Time) *ContentUpdated {
	return &ContentUpdated{BaseEvent: NewBaseEvent(EventContentUpdated, at), Old: old, New: updated}
}

// NewContentWatched creates a ContentWatched event.
func NewContentWatched(u user.User, c content.Content, minutes int, at time.Time) *ContentWatched {
	return &ContentWatched{
		BaseEvent: NewBaseEvent(EventContentWatched, at),
		User:      u,
		Content:   c,
		Minutes:   minutes,
	}
}
