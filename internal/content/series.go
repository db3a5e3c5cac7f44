package content

import "fmt"

// Series is content made of consecutively numbered seasons.
type Series struct {
	base
	seasons  []*Season
	duration int
}

// Seasons returns the seasons in order.
func (s *Series) Seasons() []*Season {
	out := make([]*Season, len(s.seasons))
	copy(out, s.seasons)
	return out
}

// Season returns season n, if present.
func (s *Series) Season(n int) (*Season, bool) {
	if n < 1 || n > len(s.seasons) {
		return nil, false
	}
	return s.seasons[n-1], true
}

// EpisodeCount returns the number of episodes across all seasons.
func (s *Series) EpisodeCount() int {
	n := 0
	for _, season := range s.seasons {
		n += season.Len()
	}
	return n
}

// Duration returns the total running time of all seasons in minutes.
func (s *Series) Duration() int { return s.duration }

// Kind returns KindSeries.
func (s *Series) Kind() Kind { return KindSeries }

// SeriesBuilder assembles a series one season at a time.
type SeriesBuilder struct {
	base    base
	seasons []*Season
	built   bool
}

// NewSeriesBuilder validates the shared fields and starts a series.
func NewSeriesBuilder(title string, opts ...Option) (*SeriesBuilder, error) {
	b, err := newBase(title, opts)
	if err != nil {
		return nil, err
	}
	return &SeriesBuilder{base: b}, nil
}

// AddSeason appends a season. Its number must follow the previous one,
// starting at 1.
func (b *SeriesBuilder) AddSeason(s *Season) error {
	if s == nil {
		return fmt.Errorf("%w: series %q: nil season", ErrInvalidSeason, b.base.title)
	}
	if want := len(b.seasons) + 1; s.number != want {
		return fmt.Errorf("%w: series %q: expected season %d, got %d", ErrInvalidSeason, b.base.title, want, s.number)
	}
	b.seasons = append(b.seasons, s)
	return nil
}

// Build returns the series. The builder cannot be reused.
func (b *SeriesBuilder) Build() (*Series, error) {
	if b.built {
		return nil, fmt.Errorf("%w: series %q: builder already used", ErrInvalidContent, b.base.title)
	}
	if len(b.seasons) == 0 {
		return nil, fmt.Errorf("%w: series %q has no seasons", ErrInvalidContent, b.base.title)
	}
	b.built = true

	total := 0
	for _, s := range b.seasons {
		total += s.duration
	}
	seasons := make([]*Season, len(b.seasons))
	copy(seasons, b.seasons)
	return &Series{base: b.base, seasons: seasons, duration: total}, nil
}

// NewSeries builds a series from seasons already in order.
func NewSeries(title string, seasons []*Season, opts ...Option) (*Series, error) {
	b, err := NewSeriesBuilder(title, opts...)
	if err != nil {
		return nil, err
	}
	for _, s := range seasons {
		if err := b.AddSeason(s); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
