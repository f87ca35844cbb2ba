package triangulate

import "github.com/golang/geo/r2"

// point is a mesh vertex. Its coordinates are mutated in place at most twice,
// once by the shear perturbation before the sweep and once by the inverse
// shear after it. Past the public API boundary vertices are compared by
// pointer identity only.
type point struct {
	X, Y float64

	// segments holds the constraint segments for which this point is the
	// destination (sweep-greater) endpoint. A vertex that is the local sweep
	// maximum of the boundary loop closes both of its segments.
	segments []*segment
}

func newPoint(p r2.Point) *point {
	return &point{X: p.X, Y: p.Y}
}

func (p *point) r2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// sweepLess orders points by ascending sheared y, ties by ascending x. The
// sweep processes points in this order, starting nearest the sentinels; the
// first triangle seeding and every advancing front invariant depend on it.
func sweepLess(a, b *point) bool {
	if a.Y == b.Y {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// segment is a constraint edge between two boundary points, normalized so
// that q is the sweep-greater endpoint. Construction registers the segment
// with q: its edge event fires when q is processed, by which time p is
// already part of the mesh.
type segment struct {
	p, q *point
}

func newSegment(a, b *point) *segment {
	s := &segment{p: a, q: b}
	if sweepLess(b, a) {
		s.p, s.q = b, a
	}
	s.q.segments = append(s.q.segments, s)
	return s
}
