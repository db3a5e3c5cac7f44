// Package catalog holds the platform's content and announces every change
// to registered observers.
package catalog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/reelcat/internal/content"
	"github.com/vmunix/reelcat/internal/download"
	"github.com/vmunix/reelcat/internal/events"
	"github.com/vmunix/reelcat/internal/playback"
	"github.com/vmunix/reelcat/internal/render"
	"github.com/vmunix/reelcat/internal/user"
	"github.com/vmunix/reelcat/pkg/title"
)

// Catalog is an ordered, title-unique collection of content. It is
// single-threaded: callers must not use it from several goroutines.
type Catalog struct {
	items   []content.Content
	bus     *events.Bus
	planner *download.Planner
	logger  *slog.Logger
	now     func() time.Time

	initial []events.Observer
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) { c.logger = l }
}

// WithClock sets the clock used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// WithPlanner sets the download path planner.
func WithPlanner(p *download.Planner) Option {
	return func(c *Catalog) { c.planner = p }
}

// WithObservers registers observers in the given order.
func WithObservers(obs ...events.Observer) Option {
	return func(c *Catalog) { c.initial = append(c.initial, obs...) }
}

// New creates a catalog seeded from s. Seeding raises no events.
func New(s Supplier, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bus = events.NewBus(c.logger.With("component", "bus"))
	for _, o := range c.initial {
		c.bus.Register(o)
	}
	c.initial = nil
	c.logger = c.logger.With("component", "catalog")
	if c.planner == nil {
		c.planner = download.NewPlanner("", "", "")
	}

	if s != nil {
		seed, err := s.Contents()
		if err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		for _, item := range seed {
			if content.IsNil(item) {
				continue
			}
			if c.indexOf(item.Title()) >= 0 {
				return nil, fmt.Errorf("seed catalog: %q: %w", item.Title(), ErrDuplicate)
			}
			c.items = append(c.items, item)
		}
	}
	c.logger.Debug("catalog seeded", "items", len(c.items))
	return c, nil
}

// Register adds an observer after those already registered.
func (c *Catalog) Register(o events.Observer) bool { return c.bus.Register(o) }

// Unregister removes an observer.
func (c *Catalog) Unregister(o events.Observer) bool { return c.bus.Unregister(o) }

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Contents returns the items in insertion order.
func (c *Catalog) Contents() []content.Content {
	out := make([]content.Content, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with the given title.
func (c *Catalog) Get(title string) (content.Content, bool) {
	i := c.indexOf(title)
	if i < 0 {
		return nil, false
	}
	return c.items[i], true
}

// Contains reports whether an item with item's title is in the catalog.
func (c *Catalog) Contains(item content.Content) bool {
	return !content.IsNil(item) && c.indexOf(item.Title()) >= 0
}

// Add appends item unless its title is already taken, then publishes
// ContentAdded.
func (c *Catalog) Add(item content.Content) bool {
	if content.IsNil(item) || c.Contains(item) {
		return false
	}
	c.items = append(c.items, item)
	c.logger.Debug("content added", "title", item.Title(), "kind", item.Kind())
	c.bus.Publish(events.NewContentAdded(item, c.now()))
	return true
}

// Remove deletes the item with item's title, then publishes ContentRemoved
// carrying the stored instance.
func (c *Catalog) Remove(item content.Content) bool {
	if content.IsNil(item) {
		return false
	}
	i := c.indexOf(item.Title())
	if i < 0 {
		return false
	}
	removed := c.items[i]
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.logger.Debug("content removed", "title", removed.Title())
	c.bus.Publish(events.NewContentRemoved(removed, c.now()))
	return true
}

// Update replaces the item sharing updated's title, keeping its position,
// then publishes ContentUpdated.
func (c *Catalog) Update(updated content.Content) error {
	if content.IsNil(updated) {
		return fmt.Errorf("update: nil content: %w", content.ErrInvalidArgument)
	}
	i := c.indexOf(updated.Title())
	if i < 0 {
		return fmt.Errorf("update %q: %w", updated.Title(), ErrContentNotFound)
	}
	old := c.items[i]
	c.items[i] = updated
	c.logger.Debug("content updated", "title", updated.Title())
	c.bus.Publish(events.NewContentUpdated(old, updated, c.now()))
	return nil
}

// Display renders item with render.Display.
func (c *Catalog) Display(item content.Content) (string, error) {
	stored, err := c.member("display", item)
	if err != nil {
		return "", err
	}
	return render.Render(stored), nil
}

// Download plans a download of item. A requester who may not access item
// gets ErrAccessDenied; other failures are reported in the Result.
func (c *Catalog) Download(item content.Content, req download.Request) (download.Result, error) {
	stored, err := c.member("download", item)
	if err != nil {
		return download.Result{}, err
	}
	if u := req.Requester; u != nil && !u.CanAccess(stored) {
		return download.Result{}, fmt.Errorf("download %q by %s: %w", stored.Title(), u.Name, ErrAccessDenied)
	}
	res := download.Plan(c.planner, stored, req)
	c.logger.Debug("download planned", "title", stored.Title(), "success", res.Success, "files", len(res.Files))
	return res, nil
}

// Watch grants u playback of item for the given minutes and publishes
// ContentWatched. Access is checked before anything is published.
func (c *Catalog) Watch(u user.User, item content.Content, minutes int) (playback.Session, error) {
	if minutes <= 0 {
		return playback.Session{}, fmt.Errorf("watch: minutes must be positive, got %d: %w", minutes, content.ErrInvalidArgument)
	}
	stored, err := c.member("watch", item)
	if err != nil {
		return playback.Session{}, err
	}
	if !u.CanAccess(stored) {
		return playback.Session{}, fmt.Errorf("watch %q by %s: %w", stored.Title(), u.Name, ErrAccessDenied)
	}

	c.bus.Publish(events.NewContentWatched(u, stored, minutes, c.now()))
	return playback.Session{
		Content:  stored,
		Episodes: playback.Episodes(stored),
		Minutes:  minutes,
	}, nil
}

// Search ranks catalog titles against query. A positive limit caps the result.
func (c *Catalog) Search(query string, limit int) []title.Match {
	titles := make([]string, len(c.items))
	for i, item := range c.items {
		titles[i] = item.Title()
	}
	return title.Rank(query, titles, limit)
}

func (c *Catalog) indexOf(t string) int {
	for i, item := range c.items {
		if item.Title() == t {
			return i
		}
	}
	return -1
}

// member returns the stored instance sharing item's title.
func (c *Catalog) member(op string, item content.Content) (content.Content, error) {
	if content.IsNil(item) {
		return nil, fmt.Errorf("%s: nil content: %w", op, ErrContentNotFound)
	}
	i := c.indexOf(item.Title())
	if i < 0 {
		return nil, fmt.Errorf("%s %q: %w", op, item.Title(), ErrContentNotFound)
	}
	return c.items[i], nil
}
