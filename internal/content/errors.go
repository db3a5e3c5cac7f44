package content

import "errors"

// Sentinel errors for content construction.
var (
	// ErrInvalidArgument indicates a blank string, non-positive number or
	// out-of-range date was supplied.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidContent indicates a movie or series violates its structure.
	ErrInvalidContent = errors.New("invalid content")

	// ErrInvalidSeason indicates a season is empty or out of sequence.
	ErrInvalidSeason = errors.New("invalid season")

	// ErrInvalidEpisode indicates an episode is malformed, duplicated or
	// out of sequence.
	ErrInvalidEpisode = errors.New("invalid episode")
)
