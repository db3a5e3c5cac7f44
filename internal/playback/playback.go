// Package playback flattens content into the episodes a viewer plays.
package playback

import "github.com/vmunix/reelcat/internal/content"

// Visitor yields the episodes of a content item in play order.
type Visitor struct{}

var _ content.Visitor[[]content.Episode] = Visitor{}

// Episodes is shorthand for content.Visit(c, Visitor{}).
func Episodes(c content.Content) []content.Episode {
	return content.Visit[[]content.Episode](c, Visitor{})
}

// VisitMovie returns the movie's single episode.
func (Visitor) VisitMovie(m *content.Movie) []content.Episode {
	return []content.Episode{m.Episode()}
}

// VisitSeries returns every episode, season by season.
func (Visitor) VisitSeries(s *content.Series) []content.Episode {
	out := make([]content.Episode, 0, s.EpisodeCount())
	for _, season := range s.Seasons() {
		out = append(out, season.Episodes()...)
	}
	return out
}

// Session is the outcome of a watch request.
type Session struct {
	Content  content.Content
	Episodes []content.Episode
	Minutes  int
}
