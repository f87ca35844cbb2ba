package triangulate

import "github.com/golang/geo/r2"

// Triangle is a single mesh element. Vertices are stored counterclockwise and
// neighbors[i] is the triangle sharing the edge opposite points[i], nil on
// the hull. The constrained and delaunay flag arrays are indexed the same
// way; delaunay flags are scratch state that is only set while a
// legalization cascade is in flight.
type Triangle struct {
	points      [3]*point
	neighbors   [3]*Triangle
	constrained [3]bool
	delaunay    [3]bool
	interior    bool
}

func newTriangle(a, b, c *point) *Triangle {
	return &Triangle{points: [3]*point{a, b, c}}
}

// Points returns the vertex coordinates in counterclockwise order.
func (t *Triangle) Points() []r2.Point {
	return []r2.Point{t.points[0].r2(), t.points[1].r2(), t.points[2].r2()}
}

// Neighbor returns the triangle across the edge opposite vertex i, or nil
// when that edge is on the hull.
func (t *Triangle) Neighbor(i int) *Triangle {
	return t.neighbors[i]
}

// Constrained reports whether the edge opposite vertex i realizes a boundary
// segment.
func (t *Triangle) Constrained(i int) bool {
	return t.constrained[i]
}

// Interior reports whether the triangle lies inside the polygon boundary.
func (t *Triangle) Interior() bool {
	return t.interior
}

// Area returns the triangle area, always positive for mesh triangles.
func (t *Triangle) Area() float64 {
	return triArea2(t.points[0], t.points[1], t.points[2]) / 2
}

// Centroid returns the vertex average.
func (t *Triangle) Centroid() r2.Point {
	return r2.Point{
		X: (t.points[0].X + t.points[1].X + t.points[2].X) / 3,
		Y: (t.points[0].Y + t.points[1].Y + t.points[2].Y) / 3,
	}
}

func (t *Triangle) index(p *point) int {
	for i, tp := range t.points {
		if tp == p {
			return i
		}
	}
	return -1
}

func (t *Triangle) contains(p *point) bool {
	return t.index(p) >= 0
}

// edgeIndex returns i such that the edge opposite points[i] is {a, b}, or -1.
func (t *Triangle) edgeIndex(a, b *point) int {
	for i := 0; i < 3; i++ {
		p, q := t.points[(i+1)%3], t.points[(i+2)%3]
		if (p == a && q == b) || (p == b && q == a) {
			return i
		}
	}
	return -1
}

func (t *Triangle) pointCW(p *point) *point {
	switch p {
	case t.points[0]:
		return t.points[2]
	case t.points[1]:
		return t.points[0]
	}
	return t.points[1]
}

func (t *Triangle) pointCCW(p *point) *point {
	switch p {
	case t.points[0]:
		return t.points[1]
	case t.points[1]:
		return t.points[2]
	}
	return t.points[0]
}

func (t *Triangle) neighborCW(p *point) *Triangle {
	switch p {
	case t.points[0]:
		return t.neighbors[1]
	case t.points[1]:
		return t.neighbors[2]
	}
	return t.neighbors[0]
}

func (t *Triangle) neighborCCW(p *point) *Triangle {
	switch p {
	case t.points[0]:
		return t.neighbors[2]
	case t.points[1]:
		return t.neighbors[0]
	}
	return t.neighbors[1]
}

func (t *Triangle) neighborAcross(p *point) *Triangle {
	return t.neighbors[t.index(p)]
}

// oppositePoint returns the vertex of t across the edge it shares with other,
// where p is the vertex of other across that same edge.
func (t *Triangle) oppositePoint(other *Triangle, p *point) *point {
	return t.pointCW(other.pointCW(p))
}

// markNeighbor links t and other across their shared edge and reconciles the
// constrained flag for it, which may already be set on the older triangle.
// Triangles without a shared edge are left untouched.
func (t *Triangle) markNeighbor(other *Triangle) {
	for i := 0; i < 3; i++ {
		j := other.edgeIndex(t.points[(i+1)%3], t.points[(i+2)%3])
		if j < 0 {
			continue
		}
		t.neighbors[i] = other
		other.neighbors[j] = t
		c := t.constrained[i] || other.constrained[j]
		t.constrained[i] = c
		other.constrained[j] = c
		return
	}
}

func (t *Triangle) clearNeighbors() {
	t.neighbors[0] = nil
	t.neighbors[1] = nil
	t.neighbors[2] = nil
}

func (t *Triangle) constrainedEdgeCCW(p *point) bool {
	switch p {
	case t.points[0]:
		return t.constrained[2]
	case t.points[1]:
		return t.constrained[0]
	}
	return t.constrained[1]
}

func (t *Triangle) constrainedEdgeCW(p *point) bool {
	switch p {
	case t.points[0]:
		return t.constrained[1]
	case t.points[1]:
		return t.constrained[2]
	}
	return t.constrained[0]
}

func (t *Triangle) setConstrainedEdgeCCW(p *point, v bool) {
	switch p {
	case t.points[0]:
		t.constrained[2] = v
	case t.points[1]:
		t.constrained[0] = v
	default:
		t.constrained[1] = v
	}
}

func (t *Triangle) setConstrainedEdgeCW(p *point, v bool) {
	switch p {
	case t.points[0]:
		t.constrained[1] = v
	case t.points[1]:
		t.constrained[2] = v
	default:
		t.constrained[0] = v
	}
}

func (t *Triangle) delaunayEdgeCCW(p *point) bool {
	switch p {
	case t.points[0]:
		return t.delaunay[2]
	case t.points[1]:
		return t.delaunay[0]
	}
	return t.delaunay[1]
}

func (t *Triangle) delaunayEdgeCW(p *point) bool {
	switch p {
	case t.points[0]:
		return t.delaunay[1]
	case t.points[1]:
		return t.delaunay[2]
	}
	return t.delaunay[0]
}

func (t *Triangle) setDelaunayEdgeCCW(p *point, v bool) {
	switch p {
	case t.points[0]:
		t.delaunay[2] = v
	case t.points[1]:
		t.delaunay[0] = v
	default:
		t.delaunay[1] = v
	}
}

func (t *Triangle) setDelaunayEdgeCW(p *point, v bool) {
	switch p {
	case t.points[0]:
		t.delaunay[1] = v
	case t.points[1]:
		t.delaunay[2] = v
	default:
		t.delaunay[0] = v
	}
}

// rotateCW turns the vertex array one step clockwise around p and installs op
// as the far corner. Flag and neighbor slots are deliberately left alone;
// rotateTrianglePair rewrites them for both triangles of the pair.
func (t *Triangle) rotateCW(p, op *point) {
	switch p {
	case t.points[0]:
		t.points[1] = t.points[0]
		t.points[0] = t.points[2]
		t.points[2] = op
	case t.points[1]:
		t.points[2] = t.points[1]
		t.points[1] = t.points[0]
		t.points[0] = op
	default:
		t.points[0] = t.points[2]
		t.points[2] = t.points[1]
		t.points[1] = op
	}
}

// rotateTrianglePair flips the edge shared by t and ot, replacing it with the
// diagonal (p, op). p must be the vertex of t across the shared edge, op the
// vertex of ot across it. All outer neighbor links and edge flags survive the
// rotation; the slot that addressed the old shared edge addresses the new
// diagonal afterwards, so flags staged there by a caller travel with it.
func rotateTrianglePair(t *Triangle, p *point, ot *Triangle, op *point) {
	n1, n2 := t.neighborCCW(p), t.neighborCW(p)
	n3, n4 := ot.neighborCCW(op), ot.neighborCW(op)

	ce1, ce2 := t.constrainedEdgeCCW(p), t.constrainedEdgeCW(p)
	ce3, ce4 := ot.constrainedEdgeCCW(op), ot.constrainedEdgeCW(op)

	de1, de2 := t.delaunayEdgeCCW(p), t.delaunayEdgeCW(p)
	de3, de4 := ot.delaunayEdgeCCW(op), ot.delaunayEdgeCW(op)

	t.rotateCW(p, op)
	ot.rotateCW(op, p)

	ot.setDelaunayEdgeCCW(p, de1)
	t.setDelaunayEdgeCW(p, de2)
	t.setDelaunayEdgeCCW(op, de3)
	ot.setDelaunayEdgeCW(op, de4)

	ot.setConstrainedEdgeCCW(p, ce1)
	t.setConstrainedEdgeCW(p, ce2)
	t.setConstrainedEdgeCCW(op, ce3)
	ot.setConstrainedEdgeCW(op, ce4)

	t.clearNeighbors()
	ot.clearNeighbors()
	if n1 != nil {
		ot.markNeighbor(n1)
	}
	if n2 != nil {
		t.markNeighbor(n2)
	}
	if n3 != nil {
		t.markNeighbor(n3)
	}
	if n4 != nil {
		ot.markNeighbor(n4)
	}
	t.markNeighbor(ot)
}
