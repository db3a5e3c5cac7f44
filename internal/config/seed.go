package config

import (
	"fmt"
	"time"

	"github.com/vmunix/reelcat/internal/content"
	"github.com/vmunix/reelcat/internal/user"
)

// Contents builds the configured movies and series, movies first. It
// satisfies catalog.Supplier.
func (c *Config) Contents() ([]content.Content, error) {
	out := make([]content.Content, 0, len(c.Movies)+len(c.Series))
	for i, m := range c.Movies {
		movie, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("movies[%d] %q: %w", i, m.Title, err)
		}
		out = append(out, movie)
	}
	for i, s := range c.Series {
		series, err := s.build()
		if err != nil {
			return nil, fmt.Errorf("series[%d] %q: %w", i, s.Title, err)
		}
		out = append(out, series)
	}
	return out, nil
}

// BuildUsers creates a user for each configured entry.
func (c *Config) BuildUsers() ([]user.User, error) {
	out := make([]user.User, 0, len(c.Users))
	for i, u := range c.Users {
		built, err := user.New(u.Name, u.Email, u.Subscribed)
		if err != nil {
			return nil, fmt.Errorf("users[%d]: %w", i, err)
		}
		out = append(out, built)
	}
	return out, nil
}

func (m MovieConfig) build() (*content.Movie, error) {
	var epOpts []content.EpisodeOption
	if m.Video != "" {
		epOpts = append(epOpts, content.WithVideo(m.Video))
	}
	ep, err := content.NewEpisode(1, m.Duration, epOpts...)
	if err != nil {
		return nil, err
	}
	opts, err := commonOptions(m.Description, m.ReleaseDate, m.Resolution, m.Free)
	if err != nil {
		return nil, err
	}
	return content.NewMovie(m.Title, ep, opts...)
}

func (s SeriesConfig) build() (*content.Series, error) {
	opts, err := commonOptions(s.Description, s.ReleaseDate, s.Resolution, s.Free)
	if err != nil {
		return nil, err
	}
	b, err := content.NewSeriesBuilder(s.Title, opts...)
	if err != nil {
		return nil, err
	}
	for i, sc := range s.Seasons {
		sb, err := content.NewSeasonBuilder(i + 1)
		if err != nil {
			return nil, err
		}
		for j, ec := range sc.Episodes {
			var epOpts []content.EpisodeOption
			if ec.Video != "" {
				epOpts = append(epOpts, content.WithVideo(ec.Video))
			}
			ep, err := content.NewEpisode(j+1, ec.Duration, epOpts...)
			if err != nil {
				return nil, fmt.Errorf("season %d: %w", i+1, err)
			}
			if err := sb.AddEpisode(ep); err != nil {
				return nil, err
			}
		}
		season, err := sb.Build()
		if err != nil {
			return nil, err
		}
		if err := b.AddSeason(season); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func commonOptions(description string, released time.Time, resolution string, free bool) ([]content.Option, error) {
	var opts []content.Option
	if description != "" {
		opts = append(opts, content.WithDescription(description))
	}
	if !released.IsZero() {
		opts = append(opts, content.WithReleaseDate(released))
	}
	if resolution != "" {
		r, err := content.ParseResolution(resolution)
		if err != nil {
			return nil, err
		}
		opts = append(opts, content.WithResolution(r))
	}
	if free {
		opts = append(opts, content.Free())
	}
	return opts, nil
}
