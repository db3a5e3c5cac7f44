package content

import "fmt"

// Visitor computes a T from each content kind. Adding an operation over
// content means writing a Visitor, not changing Movie or Series.
type Visitor[T any] interface {
	VisitMovie(m *Movie) T
	VisitSeries(s *Series) T
}

// Visit dispatches c to the matching Visitor method. It panics if c is nil,
// including a nil *Movie or *Series.
func Visit[T any](c Content, v Visitor[T]) T {
	if IsNil(c) {
		panic(fmt.Sprintf("content: cannot visit nil %T", c))
	}
	switch c := c.(type) {
	case *Movie:
		return v.VisitMovie(c)
	case *Series:
		return v.VisitSeries(c)
	default:
		// Content is sealed.
		panic(fmt.Sprintf("content: cannot visit %T", c))
	}
}

// VisitorFuncs adapts a pair of functions to a Visitor.
type VisitorFuncs[T any] struct {
	Movie  func(*Movie) T
	Series func(*Series) T
}

func (f VisitorFuncs[T]) VisitMovie(m *Movie) T   { return f.Movie(m) }
func (f VisitorFuncs[T]) VisitSeries(s *Series) T { return f.Series(s) }
