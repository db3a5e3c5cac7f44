// Package observers contains the built-in catalog observers: an event
// logger, an e-mail notifier and per-user watch lists.
package observers

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vmunix/reelcat/internal/events"
)

// Logger keeps one formatted line per event and mirrors it to slog and,
// optionally, to a writer.
type Logger struct {
	messages []string
	out      io.Writer
	logger   *slog.Logger
}

var (
	_ events.Observer = (*Logger)(nil)
	_ events.Visitor  = (*Logger)(nil)
)

// NewLogger creates an event logger. out may be nil.
func NewLogger(out io.Writer, logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{out: out, logger: logger.With("component", "event-log")}
}

// Notify records e.
func (l *Logger) Notify(e events.Event) { e.Accept(l) }

func (l *Logger) VisitContentAdded(e *events.ContentAdded) {
	l.record(e, "Content Added: "+e.Content.String())
}

func (l *Logger) VisitContentRemoved(e *events.ContentRemoved) {
	l.record(e, "Content Removed: "+e.Content.String())
}

func (l *Logger) VisitContentUpdated(e *events.ContentUpdated) {
	l.record(e, fmt.Sprintf("Content Updated: %s -> %s", e.Old.String(), e.New.String()))
}

func (l *Logger) VisitContentWatched(e *events.ContentWatched) {
	l.record(e, fmt.Sprintf("Content Watched: '%s' watched '%s' for %d minutes",
		e.User.Name, e.Content.Title(), e.Minutes))
}

func (l *Logger) record(e events.Event, msg string) {
	l.messages = append(l.messages, msg)
	l.logger.Info(msg, "type", e.EventType())
	if l.out != nil {
		fmt.Fprintln(l.out, msg)
	}
}

// Messages returns every line recorded so far, oldest first.
func (l *Logger) Messages() []string {
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}

// Last returns the most recent line, or "" if nothing was logged.
func (l *Logger) Last() string {
	if len(l.messages) == 0 {
		return ""
	}
	return l.messages[len(l.messages)-1]
}
