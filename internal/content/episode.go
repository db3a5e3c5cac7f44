package content

import (
	"fmt"
	"strings"
)

// Episode is a single playable unit. Movies own exactly one.
type Episode struct {
	number   int
	duration int
	video    string
}

// EpisodeOption configures optional episode fields.
type EpisodeOption func(*Episode) error

// WithVideo attaches a video reference (a path or URL).
func WithVideo(ref string) EpisodeOption {
	return func(e *Episode) error {
		if strings.TrimSpace(ref) == "" {
			return fmt.Errorf("video reference is blank: %w", ErrInvalidArgument)
		}
		e.video = ref
		return nil
	}
}

// NewEpisode creates an episode. Number and duration (minutes) must be positive.
func NewEpisode(number, duration int, opts ...EpisodeOption) (Episode, error) {
	if number <= 0 {
		return Episode{}, fmt.Errorf("%w: number must be positive, got %d: %w", ErrInvalidEpisode, number, ErrInvalidArgument)
	}
	if duration <= 0 {
		return Episode{}, fmt.Errorf("%w: duration must be positive, got %d: %w", ErrInvalidEpisode, duration, ErrInvalidArgument)
	}
	e := Episode{number: number, duration: duration}
	for _, opt := range opts {
		if err := opt(&e); err != nil {
			return Episode{}, fmt.Errorf("%w: %w", ErrInvalidEpisode, err)
		}
	}
	return e, nil
}

// Number returns the episode number within its season.
func (e Episode) Number() int { return e.number }

// Duration returns the running time in minutes.
func (e Episode) Duration() int { return e.duration }

// Video returns the video reference, or "" when none was attached.
func (e Episode) Video() string { return e.video }

// Equal reports whether two episodes have the same number and duration.
// The video reference does not take part.
func (e Episode) Equal(other Episode) bool {
	return e.number == other.number && e.duration == other.duration
}

func (e Episode) String() string {
	return fmt.Sprintf("Episode %d (%d min)", e.number, e.duration)
}
