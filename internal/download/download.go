// Package download plans where catalog content would be written for a
// download request. Nothing is transferred.
package download

import (
	"fmt"
	"strings"

	"github.com/vmunix/reelcat/internal/content"
	"github.com/vmunix/reelcat/internal/user"
)

// Request describes who wants a download and where it should go.
type Request struct {
	Path string
	// Requester is checked against the content's access tier. Nil skips the check.
	Requester *user.User
}

// Result is the outcome of planning a download.
type Result struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Files   []string `json:"files,omitempty"`
}

// Visitor plans downloads for each content kind.
type Visitor struct {
	planner *Planner
	req     Request
}

var _ content.Visitor[Result] = (*Visitor)(nil)

// NewVisitor creates a Visitor for req. A nil planner uses the default templates.
func NewVisitor(planner *Planner, req Request) *Visitor {
	if planner == nil {
		planner = NewPlanner("", "", "")
	}
	return &Visitor{planner: planner, req: req}
}

// Plan is shorthand for content.Visit(c, NewVisitor(planner, req)).
func Plan(planner *Planner, c content.Content, req Request) Result {
	return content.Visit[Result](c, NewVisitor(planner, req))
}

// VisitMovie plans the single movie file.
func (v *Visitor) VisitMovie(m *content.Movie) Result {
	if res, ok := v.precheck(m); !ok {
		return res
	}
	file, err := Resolve(v.req.Path, v.planner.MoviePath(m.Title()))
	if err != nil {
		return failure("Cannot download '%s': %v", m.Title(), err)
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Downloading movie '%s' (%d min) to %s", m.Title(), m.Duration(), v.req.Path),
		Files:   []string{file},
	}
}

// VisitSeries plans one file per episode in season order.
func (v *Visitor) VisitSeries(s *content.Series) Result {
	if res, ok := v.precheck(s); !ok {
		return res
	}
	files := make([]string, 0, s.EpisodeCount())
	for _, season := range s.Seasons() {
		for _, ep := range season.Episodes() {
			file, err := Resolve(v.req.Path, v.planner.EpisodePath(s.Title(), season.Number(), ep.Number()))
			if err != nil {
				return failure("Cannot download '%s': %v", s.Title(), err)
			}
			files = append(files, file)
		}
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Downloading series '%s': %d episodes across %d seasons (%d min) to %s",
			s.Title(), len(files), len(s.Seasons()), s.Duration(), v.req.Path),
		Files: files,
	}
}

func (v *Visitor) precheck(c content.Content) (Result, bool) {
	if strings.TrimSpace(v.req.Path) == "" {
		return failure("Cannot download '%s': %v", c.Title(), ErrEmptyPath), false
	}
	if u := v.req.Requester; u != nil && !u.CanAccess(c) {
		return failure("User '%s' needs a subscription to download '%s'", u.Name, c.Title()), false
	}
	return Result{}, true
}

func failure(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}
