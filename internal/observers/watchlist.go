package observers

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/vmunix/reelcat/internal/content"
	"github.com/vmunix/reelcat/internal/events"
)

// WatchList tracks, per user, how far each title has been watched. A
// title is in progress until the minutes watched reach its duration, then
// it is completed. State changes only through events.
type WatchList struct {
	events.NopVisitor

	users  map[uuid.UUID]*watchState
	logger *slog.Logger
}

var _ events.Observer = (*WatchList)(nil)

type watchState struct {
	progress   map[string]int
	inProgress []content.Content
	completed  []content.Content
}

// NewWatchList creates an empty watch list.
func NewWatchList(logger *slog.Logger) *WatchList {
	if logger == nil {
		logger = slog.Default()
	}
	return &WatchList{
		users:  make(map[uuid.UUID]*watchState),
		logger: logger.With("component", "watchlist"),
	}
}

// Notify handles e.
func (w *WatchList) Notify(e events.Event) { e.Accept(w) }

func (w *WatchList) VisitContentWatched(e *events.ContentWatched) {
	st := w.state(e.User.ID)
	t := e.Content.Title()
	if indexOf(st.completed, t) >= 0 {
		w.logger.Debug("already completed", "user", e.User.Name, "title", t)
		return
	}

	watched := st.progress[t] + e.Minutes
	if watched >= e.Content.Duration() {
		st.progress[t] = e.Content.Duration()
		st.inProgress = without(st.inProgress, t)
		st.completed = append(st.completed, e.Content)
		w.logger.Info("completed", "user", e.User.Name, "title", t)
		return
	}

	st.progress[t] = watched
	if i := indexOf(st.inProgress, t); i >= 0 {
		st.inProgress[i] = e.Content
	} else {
		st.inProgress = append(st.inProgress, e.Content)
	}
	w.logger.Debug("progress", "user", e.User.Name, "title", t, "minutes", watched, "duration", e.Content.Duration())
}

// VisitContentRemoved forgets the title for every user.
func (w *WatchList) VisitContentRemoved(e *events.ContentRemoved) {
	t := e.Content.Title()
	for _, st := range w.users {
		delete(st.progress, t)
		st.inProgress = without(st.inProgress, t)
		st.completed = without(st.completed, t)
	}
}

// VisitContentUpdated points every entry for the title at the new version.
// Progress is capped at the new duration; an in-progress title the user has
// now watched in full moves to completed.
func (w *WatchList) VisitContentUpdated(e *events.ContentUpdated) {
	t := e.New.Title()
	duration := e.New.Duration()
	for _, st := range w.users {
		if i := indexOf(st.completed, t); i >= 0 {
			st.completed[i] = e.New
			st.progress[t] = duration
			continue
		}
		i := indexOf(st.inProgress, t)
		if i < 0 {
			continue
		}
		if st.progress[t] >= duration {
			st.progress[t] = duration
			st.inProgress = without(st.inProgress, t)
			st.completed = append(st.completed, e.New)
			w.logger.Info("completed after update", "title", t, "duration", duration)
			continue
		}
		st.inProgress[i] = e.New
	}
}

// InProgress returns the titles the user has started but not finished,
// in the order they were started.
func (w *WatchList) InProgress(id uuid.UUID) []content.Content {
	st, ok := w.users[id]
	if !ok {
		return nil
	}
	return append([]content.Content(nil), st.inProgress...)
}

// Completed returns the titles the user has finished, in completion order.
func (w *WatchList) Completed(id uuid.UUID) []content.Content {
	st, ok := w.users[id]
	if !ok {
		return nil
	}
	return append([]content.Content(nil), st.completed...)
}

// Progress returns the minutes the user has watched of a title.
func (w *WatchList) Progress(id uuid.UUID, title string) int {
	st, ok := w.users[id]
	if !ok {
		return 0
	}
	return st.progress[title]
}

// Remaining returns the minutes left before c counts as completed.
func (w *WatchList) Remaining(id uuid.UUID, c content.Content) int {
	return max(c.Duration()-w.Progress(id, c.Title()), 0)
}

func (w *WatchList) state(id uuid.UUID) *watchState {
	st, ok := w.users[id]
	if !ok {
		st = &watchState{progress: make(map[string]int)}
		w.users[id] = st
	}
	return st
}

func indexOf(items []content.Content, title string) int {
	for i, c := range items {
		if c.Title() == title {
			return i
		}
	}
	return -1
}

func without(items []content.Content, title string) []content.Content {
	i := indexOf(items, title)
	if i < 0 {
		return items
	}
	return append(items[:i:i], items[i+1:]...)
}
