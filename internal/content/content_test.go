package content

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustEpisode(t *testing.T, number, duration int) Episode {
	t.Helper()
	e, err := NewEpisode(number, duration)
	require.NoError(t, err)
	return e
}

func TestNewMovie_Defaults(t *testing.T) {
	m, err := NewMovie("Movie", mustEpisode(t, 1, 120))
	require.NoError(t, err)

	assert.Equal(t, "Movie", m.Title())
	assert.Equal(t, 120, m.Duration())
	assert.Equal(t, KindMovie, m.Kind())
	assert.False(t, m.Free())
	assert.Empty(t, m.Description())
	_, ok := m.ReleaseDate()
	assert.False(t, ok)
	assert.Equal(t,
		"{Title='Movie', Description='No description available', Release Date='Release date not specified', Resolution='Resolution not specified'}",
		m.String())
}

func TestNewMovie_AllOptions(t *testing.T) {
	released := time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC)
	m, err := NewMovie("The Matrix", mustEpisode(t, 1, 136),
		WithDescription("A hacker learns the truth."),
		WithReleaseDate(released),
		WithResolution(ResolutionFullHD),
		Free(),
	)
	require.NoError(t, err)

	assert.True(t, m.Free())
	assert.Equal(t,
		"{Title='The Matrix', Description='A hacker learns the truth.', Release Date='1999-03-31', Resolution='1080p'}",
		m.String())
}

func TestNewMovie_Errors(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		episode int
		opts    []Option
		want    error
	}{
		{"blank title", "  ", 1, nil, ErrInvalidArgument},
		{"empty title", "", 1, nil, ErrInvalidContent},
		{"episode not 1", "Movie", 2, nil, ErrInvalidContent},
		{"blank description", "Movie", 1, []Option{WithDescription(" ")}, ErrInvalidArgument},
		{"zero release date", "Movie", 1, []Option{WithReleaseDate(time.Time{})}, ErrInvalidArgument},
		{"future release date", "Movie", 1, []Option{WithReleaseDate(time.Now().AddDate(1, 0, 0))}, ErrInvalidArgument},
		{"bad resolution", "Movie", 1, []Option{WithResolution("8K")}, ErrInvalidContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMovie(tt.title, mustEpisode(t, tt.episode, 90), tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewMovie_ZeroEpisode(t *testing.T) {
	_, err := NewMovie("Movie", Episode{})
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestNewEpisode_Errors(t *testing.T) {
	_, err := NewEpisode(0, 10)
	assert.ErrorIs(t, err, ErrInvalidEpisode)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewEpisode(1, -5)
	assert.ErrorIs(t, err, ErrInvalidEpisode)

	_, err = NewEpisode(1, 10, WithVideo(""))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEpisode_Equal(t *testing.T) {
	a, err := NewEpisode(3, 42, WithVideo("/media/a.mkv"))
	require.NoError(t, err)
	b, err := NewEpisode(3, 42, WithVideo("/media/b.mkv"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(mustEpisode(t, 3, 43)))
	assert.Equal(t, "/media/a.mkv", a.Video())
}

func TestSeasonBuilder_Sequence(t *testing.T) {
	b, err := NewSeasonBuilder(1)
	require.NoError(t, err)

	require.NoError(t, b.AddEpisode(mustEpisode(t, 1, 30)))

	err = b.AddEpisode(mustEpisode(t, 1, 30))
	assert.ErrorIs(t, err, ErrInvalidEpisode, "duplicate episode")

	err = b.AddEpisode(mustEpisode(t, 3, 30))
	assert.ErrorIs(t, err, ErrInvalidEpisode, "skipped episode 2")

	require.NoError(t, b.AddEpisode(mustEpisode(t, 2, 45)))

	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 75, s.Duration())
	assert.Equal(t, 2, s.Len())

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrInvalidSeason, "builder is single use")
}

func TestSeasonBuilder_Errors(t *testing.T) {
	_, err := NewSeasonBuilder(0)
	assert.ErrorIs(t, err, ErrInvalidSeason)

	b, err := NewSeasonBuilder(2)
	require.NoError(t, err)
	_, err = b.Build()
	assert.ErrorIs(t, err, ErrInvalidSeason, "empty season")

	assert.ErrorIs(t, b.AddEpisode(Episode{}), ErrInvalidEpisode)
}

func TestSeason_EpisodesIsCopy(t *testing.T) {
	s, err := NewSeason(1, mustEpisode(t, 1, 20), mustEpisode(t, 2, 25))
	require.NoError(t, err)

	eps := s.Episodes()
	eps[0] = mustEpisode(t, 9, 99)
	assert.Equal(t, 1, s.Episodes()[0].Number())
}

func TestSeriesBuilder(t *testing.T) {
	s1, err := NewSeason(1, mustEpisode(t, 1, 50), mustEpisode(t, 2, 48))
	require.NoError(t, err)
	s2, err := NewSeason(2, mustEpisode(t, 1, 55))
	require.NoError(t, err)
	s3, err := NewSeason(3, mustEpisode(t, 1, 60))
	require.NoError(t, err)

	b, err := NewSeriesBuilder("Breaking Bad", WithResolution(ResolutionHD))
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddSeason(s2), ErrInvalidSeason, "must start at 1")
	require.NoError(t, b.AddSeason(s1))
	assert.ErrorIs(t, b.AddSeason(s3), ErrInvalidSeason, "must be consecutive")
	assert.ErrorIs(t, b.AddSeason(nil), ErrInvalidSeason)
	require.NoError(t, b.AddSeason(s2))

	series, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 153, series.Duration())
	assert.Equal(t, 3, series.EpisodeCount())
	assert.Equal(t, KindSeries, series.Kind())

	got, ok := series.Season(2)
	require.True(t, ok)
	assert.Equal(t, 55, got.Duration())
	_, ok = series.Season(3)
	assert.False(t, ok)

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestNewSeries_NoSeasons(t *testing.T) {
	_, err := NewSeries("Empty", nil)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestSame_ByTitle(t *testing.T) {
	a, err := NewMovie("Heat", mustEpisode(t, 1, 170), WithDescription("first"))
	require.NoError(t, err)
	b, err := NewMovie("Heat", mustEpisode(t, 1, 90), WithDescription("second"))
	require.NoError(t, err)
	season, err := NewSeason(1, mustEpisode(t, 1, 40))
	require.NoError(t, err)
	c, err := NewSeries("Heat", []*Season{season})
	require.NoError(t, err)
	d, err := NewMovie("Ronin", mustEpisode(t, 1, 122))
	require.NoError(t, err)

	assert.True(t, Same(a, b))
	assert.True(t, Same(a, c), "kind does not matter")
	assert.False(t, Same(a, d))
	assert.Equal(t, Key(a), Key(b))
	assert.False(t, Same(a, nil))
	assert.True(t, Same(nil, nil))
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in   string
		want Resolution
	}{
		{"", ResolutionUnknown},
		{"SD", ResolutionSD},
		{"720p", ResolutionHD},
		{"FullHD", ResolutionFullHD},
		{"4k", ResolutionUHD},
		{"2160P", ResolutionUHD},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseResolution(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseResolution("vhs")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestMovieProperty_DurationMatchesEpisode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		title := rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,30}`).Draw(t, "title")
		duration := rapid.IntRange(1, 600).Draw(t, "duration")

		ep, err := NewEpisode(1, duration)
		if err != nil {
			t.Fatalf("NewEpisode: %v", err)
		}
		m, err := NewMovie(title, ep)
		if err != nil {
			t.Fatalf("NewMovie(%q): %v", title, err)
		}
		if m.Duration() != duration {
			t.Fatalf("Duration() = %d, want %d", m.Duration(), duration)
		}
	})
}

func TestMovieProperty_RejectsEpisodeOtherThanOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		number := rapid.IntRange(2, 500).Draw(t, "number")
		ep, err := NewEpisode(number, 10)
		if err != nil {
			t.Fatalf("NewEpisode: %v", err)
		}
		if _, err := NewMovie("Movie", ep); !errors.Is(err, ErrInvalidContent) {
			t.Fatalf("NewMovie with episode %d: err = %v, want ErrInvalidContent", number, err)
		}
	})
}

func TestSeasonProperty_DurationIsSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		durations := rapid.SliceOfN(rapid.IntRange(1, 240), 1, 30).Draw(t, "durations")

		var eps []Episode
		want := 0
		for i, d := range durations {
			ep, err := NewEpisode(i+1, d)
			if err != nil {
				t.Fatalf("NewEpisode: %v", err)
			}
			eps = append(eps, ep)
			want += d
		}
		s, err := NewSeason(1, eps...)
		if err != nil {
			t.Fatalf("NewSeason: %v", err)
		}
		first := s.Duration()
		if first != want {
			t.Fatalf("Duration() = %d, want %d", first, want)
		}
		if again := s.Duration(); again != first {
			t.Fatalf("Duration() changed from %d to %d", first, again)
		}
	})
}

func TestContentProperty_EqualTitlesAreSame(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		title := rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,30}`).Draw(t, "title")
		d1 := rapid.StringMatching(`[a-z]{1,20}`).Draw(t, "d1")
		d2 := rapid.StringMatching(`[a-z]{1,20}`).Draw(t, "d2")

		ep, _ := NewEpisode(1, 100)
		a, err := NewMovie(title, ep, WithDescription(d1))
		if err != nil {
			t.Fatalf("NewMovie: %v", err)
		}
		b, err := NewMovie(title, ep, WithDescription(d2), Free())
		if err != nil {
			t.Fatalf("NewMovie: %v", err)
		}
		if !Same(a, b) || Key(a) != Key(b) {
			t.Fatalf("movies titled %q should be the same entry", title)
		}
	})
}
