package content

import "fmt"

// Season is an ordered run of episodes numbered 1..n.
type Season struct {
	number   int
	episodes []Episode
	duration int
}

// Number returns the season number.
func (s *Season) Number() int { return s.number }

// Episodes returns a copy of the season's episodes in order.
func (s *Season) Episodes() []Episode {
	out := make([]Episode, len(s.episodes))
	copy(out, s.episodes)
	return out
}

// Len returns the number of episodes.
func (s *Season) Len() int { return len(s.episodes) }

// Duration returns the total running time in minutes, computed at construction.
func (s *Season) Duration() int { return s.duration }

// SeasonBuilder accumulates episodes for a single season.
type SeasonBuilder struct {
	number   int
	episodes []Episode
	built    bool
}

// NewSeasonBuilder starts a season with the given positive number.
func NewSeasonBuilder(number int) (*SeasonBuilder, error) {
	if number <= 0 {
		return nil, fmt.Errorf("%w: number must be positive, got %d: %w", ErrInvalidSeason, number, ErrInvalidArgument)
	}
	return &SeasonBuilder{number: number}, nil
}

// AddEpisode appends an episode. Episodes must arrive in order starting at 1,
// and an episode number may only be added once.
func (b *SeasonBuilder) AddEpisode(e Episode) error {
	if e.number <= 0 || e.duration <= 0 {
		return fmt.Errorf("%w: season %d: zero-value episode", ErrInvalidEpisode, b.number)
	}
	for _, existing := range b.episodes {
		if existing.number == e.number {
			return fmt.Errorf("%w: season %d: duplicate episode %d", ErrInvalidEpisode, b.number, e.number)
		}
	}
	if want := len(b.episodes) + 1; e.number != want {
		return fmt.Errorf("%w: season %d: expected episode %d, got %d", ErrInvalidEpisode, b.number, want, e.number)
	}
	b.episodes = append(b.episodes, e)
	return nil
}

// Build returns the season. The builder cannot be reused.
func (b *SeasonBuilder) Build() (*Season, error) {
	if b.built {
		return nil, fmt.Errorf("%w: season %d: builder already used", ErrInvalidSeason, b.number)
	}
	if len(b.episodes) == 0 {
		return nil, fmt.Errorf("%w: season %d has no episodes", ErrInvalidSeason, b.number)
	}
	b.built = true

	total := 0
	for _, e := range b.episodes {
		total += e.duration
	}
	episodes := make([]Episode, len(b.episodes))
	copy(episodes, b.episodes)
	return &Season{number: b.number, episodes: episodes, duration: total}, nil
}

// NewSeason builds a season from episodes already in order.
func NewSeason(number int, episodes ...Episode) (*Season, error) {
	b, err := NewSeasonBuilder(number)
	if err != nil {
		return nil, err
	}
	for _, e := range episodes {
		if err := b.AddEpisode(e); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
