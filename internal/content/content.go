// Package content defines the catalog's media model: episodes, seasons and
// the two content kinds, movies and series.
package content

import (
	"fmt"
	"strings"
	"time"
)

// Kind distinguishes movies from series.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// Placeholders used when optional fields are unset.
const (
	NoDescription = "No description available"
	NoReleaseDate = "Release date not specified"
	NoResolution  = "Resolution not specified"
)

// DateLayout is the layout used for release dates in canonical strings.
const DateLayout = "2006-01-02"

// Content is a catalog entry. The set of implementations is closed:
// *Movie and *Series.
type Content interface {
	Title() string
	Description() string
	ReleaseDate() (time.Time, bool)
	Resolution() Resolution
	// Free reports whether the content can be played without a subscription.
	Free() bool
	// Duration returns the total running time in minutes.
	Duration() int
	Kind() Kind
	String() string

	sealed()
}

// IsNil reports whether c is nil or a nil *Movie or *Series.
func IsNil(c Content) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Movie:
		return v == nil
	case *Series:
		return v == nil
	}
	return false
}

// Same reports whether a and b are the same catalog entry. Identity is the
// title alone.
func Same(a, b Content) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return a.Title() == b.Title()
}

// Key returns the identity key of c.
func Key(c Content) string { return c.Title() }

// base holds the fields shared by every content kind.
type base struct {
	title       string
	description string
	releaseDate time.Time
	resolution  Resolution
	free        bool
}

func (b *base) Title() string          { return b.title }
func (b *base) Description() string    { return b.description }
func (b *base) Resolution() Resolution { return b.resolution }
func (b *base) Free() bool             { return b.free }

func (b *base) ReleaseDate() (time.Time, bool) {
	return b.releaseDate, !b.releaseDate.IsZero()
}

func (b *base) sealed() {}

// String renders the canonical one-line form used in logs.
func (b *base) String() string {
	desc := b.description
	if desc == "" {
		desc = NoDescription
	}
	date := NoReleaseDate
	if !b.releaseDate.IsZero() {
		date = b.releaseDate.Format(DateLayout)
	}
	res := NoResolution
	if b.resolution != ResolutionUnknown {
		res = b.resolution.String()
	}
	return fmt.Sprintf("{Title='%s', Description='%s', Release Date='%s', Resolution='%s'}",
		b.title, desc, date, res)
}

// Option sets an optional field shared by movies and series.
type Option func(*base) error

// WithDescription sets the description. A blank description is rejected;
// leave the option out to have none.
func WithDescription(text string) Option {
	return func(b *base) error {
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("description is blank: %w", ErrInvalidArgument)
		}
		b.description = text
		return nil
	}
}

// WithReleaseDate sets the release date, which may not lie in the future.
func WithReleaseDate(t time.Time) Option {
	return func(b *base) error {
		if t.IsZero() {
			return fmt.Errorf("release date is zero: %w", ErrInvalidArgument)
		}
		if t.After(now()) {
			return fmt.Errorf("release date %s is in the future: %w", t.Format(DateLayout), ErrInvalidArgument)
		}
		b.releaseDate = t
		return nil
	}
}

// WithResolution sets the video resolution.
func WithResolution(r Resolution) Option {
	return func(b *base) error {
		if !r.valid() || r == ResolutionUnknown {
			return fmt.Errorf("unknown resolution %q: %w", string(r), ErrInvalidArgument)
		}
		b.resolution = r
		return nil
	}
}

// Free marks the content as playable without a subscription.
func Free() Option {
	return func(b *base) error {
		b.free = true
		return nil
	}
}

// now is replaced in tests.
var now = time.Now

func newBase(title string, opts []Option) (base, error) {
	if strings.TrimSpace(title) == "" {
		return base{}, fmt.Errorf("%w: title is blank: %w", ErrInvalidContent, ErrInvalidArgument)
	}
	b := base{title: title}
	for _, opt := range opts {
		if err := opt(&b); err != nil {
			return base{}, fmt.Errorf("%w: %q: %w", ErrInvalidContent, title, err)
		}
	}
	return b, nil
}
