// Package render produces human-readable summaries of catalog content.
package render

import (
	"fmt"
	"strings"

	"github.com/vmunix/reelcat/internal/content"
)

// DisplayDateLayout is the release date layout used in summaries.
const DisplayDateLayout = "January 2, 2006"

// Display renders a multi-line summary of a content item.
type Display struct{}

var _ content.Visitor[string] = Display{}

// Render is shorthand for content.Visit(c, Display{}).
func Render(c content.Content) string {
	return content.Visit[string](c, Display{})
}

// VisitMovie renders a movie summary.
func (Display) VisitMovie(m *content.Movie) string {
	var b strings.Builder
	writeHeader(&b, m, "Movie")
	return b.String()
}

// VisitSeries renders a series summary followed by its season listing.
func (Display) VisitSeries(s *content.Series) string {
	var b strings.Builder
	writeHeader(&b, s, "TV Series")

	seasons := s.Seasons()
	fmt.Fprintf(&b, "Seasons: %d\n", len(seasons))
	for _, season := range seasons {
		fmt.Fprintf(&b, "  Season %d (%d min)\n", season.Number(), season.Duration())
		for _, ep := range season.Episodes() {
			fmt.Fprintf(&b, "    Episode %d: %d min\n", ep.Number(), ep.Duration())
		}
	}
	return b.String()
}

func writeHeader(b *strings.Builder, c content.Content, kind string) {
	desc := c.Description()
	if desc == "" {
		desc = content.NoDescription
	}
	date := content.NoReleaseDate
	if t, ok := c.ReleaseDate(); ok {
		date = t.Format(DisplayDateLayout)
	}
	res := content.NoResolution
	if r := c.Resolution(); r != content.ResolutionUnknown {
		res = r.String()
	}
	access := "Subscription"
	if c.Free() {
		access = "Free"
	}

	fmt.Fprintf(b, "%s: %s\n", kind, c.Title())
	fmt.Fprintf(b, "Description: %s\n", desc)
	fmt.Fprintf(b, "Release Date: %s\n", date)
	fmt.Fprintf(b, "Duration: %s (%d min)\n", FormatMinutes(c.Duration()), c.Duration())
	fmt.Fprintf(b, "Resolution: %s\n", res)
	fmt.Fprintf(b, "Access: %s\n", access)
}

// FormatMinutes formats a running time as "1h 5m" or "45m".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
