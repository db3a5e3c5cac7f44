package content

import "fmt"

// Movie is content with a single episode numbered 1.
type Movie struct {
	base
	episode Episode
}

// NewMovie creates a movie around its one episode.
func NewMovie(title string, episode Episode, opts ...Option) (*Movie, error) {
	b, err := newBase(title, opts)
	if err != nil {
		return nil, err
	}
	if episode.number != 1 {
		return nil, fmt.Errorf("%w: movie %q: episode number must be 1, got %d", ErrInvalidContent, title, episode.number)
	}
	if episode.duration <= 0 {
		return nil, fmt.Errorf("%w: movie %q: episode has no duration", ErrInvalidContent, title)
	}
	return &Movie{base: b, episode: episode}, nil
}

// Episode returns the movie's only episode.
func (m *Movie) Episode() Episode { return m.episode }

// Duration returns the running time in minutes.
func (m *Movie) Duration() int { return m.episode.duration }

// Kind returns KindMovie.
func (m *Movie) Kind() Kind { return KindMovie }
