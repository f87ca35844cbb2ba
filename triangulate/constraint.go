package triangulate

import "github.com/pkg/errors"

// meshEdge is an undirected mesh edge captured by its endpoints. Flips change
// which triangles flank an edge but never the endpoints, so recovery queues
// pairs and resolves the flanking triangles on demand.
type meshEdge struct {
	a, b *point
}

// edgeEvent realizes seg as a mesh edge and marks it constrained. Both
// endpoints are already mesh vertices; any front pocket still open under the
// segment is filled first, then every mesh edge crossing the segment is
// flipped away and the damage to the Delaunay property is repaired around
// the rotated triangles.
func (s *sweeper) edgeEvent(seg *segment) error {
	if s.mesh.triangleWithEdge(seg.q, seg.p) == nil {
		s.fillPocketsUnder(seg)
	}
	if s.mesh.triangleWithEdge(seg.q, seg.p) != nil {
		s.mesh.markConstrainedEdge(seg.q, seg.p)
		return nil
	}

	crossed, err := s.collectCrossings(seg.q, seg.p)
	if err != nil {
		return err
	}
	touched, err := s.flipCrossings(seg.q, seg.p, crossed)
	if err != nil {
		return err
	}
	if s.mesh.triangleWithEdge(seg.q, seg.p) == nil {
		return errors.Wrapf(ErrConstraintRecovery,
			"segment (%g,%g)-(%g,%g) still missing after flipping",
			seg.p.X, seg.p.Y, seg.q.X, seg.q.Y)
	}
	s.mesh.markConstrainedEdge(seg.q, seg.p)

	for _, t := range touched {
		if !s.legalize(t) {
			s.mapTriangleToFront(t)
		}
	}
	return nil
}

// fillPocketsUnder closes the open front pockets beneath seg. The march
// stops at folds steeper than a right angle, so the channel between the
// segment endpoints can still contain untriangulated pockets; every front
// node lying strictly under the segment is filled away here, leaving solid
// mesh for the crossing walk. q is the current event point and still on the
// front; a vertical segment spans no front interval and needs no fill.
func (s *sweeper) fillPocketsUnder(seg *segment) {
	node := s.front.locatePoint(seg.q)
	if node == nil {
		return
	}
	switch {
	case seg.p.X > seg.q.X:
		s.fillPocketsRight(seg, node)
	case seg.p.X < seg.q.X:
		s.fillPocketsLeft(seg, node)
	}
}

func (s *sweeper) fillPocketsRight(seg *segment, node *frontNode) {
	for node.next != nil && node.next.point.X < seg.p.X {
		if orient2d(seg.q, node.next.point, seg.p) == counterClockwise {
			s.fillRightUnder(seg, node)
		} else {
			node = node.next
		}
	}
}

// fillRightUnder fills the pocket opening right of node under seg,
// dispatching on whether the front at node.next folds into the pocket or
// bulges out of it. A convex bulge cannot be filled directly; the far side
// of the bulge is filled first and the pocket retried.
func (s *sweeper) fillRightUnder(seg *segment, node *frontNode) {
	if node.point.X >= seg.p.X {
		return
	}
	if node.next == nil || node.next.next == nil {
		return
	}
	if orient2d(node.point, node.next.point, node.next.next.point) == counterClockwise {
		s.fillRightConcave(seg, node)
		return
	}
	s.fillRightConvex(seg, node)
	s.fillRightUnder(seg, node)
}

func (s *sweeper) fillRightConcave(seg *segment, node *frontNode) {
	if node.next.next == nil {
		return
	}
	s.fill(node.next)
	if node.next.point == seg.p {
		return
	}
	// keep folding while the new next is still under the segment and concave
	if orient2d(seg.q, node.next.point, seg.p) != counterClockwise {
		return
	}
	if node.next.next == nil {
		return
	}
	if orient2d(node.point, node.next.point, node.next.next.point) == counterClockwise {
		s.fillRightConcave(seg, node)
	}
}

func (s *sweeper) fillRightConvex(seg *segment, node *frontNode) {
	next := node.next
	if next.next == nil || next.next.next == nil {
		return
	}
	if orient2d(next.point, next.next.point, next.next.next.point) == counterClockwise {
		s.fillRightConcave(seg, next)
		return
	}
	// the bulge continues; stop once it clears the segment
	if orient2d(seg.q, next.next.point, seg.p) == counterClockwise {
		s.fillRightConvex(seg, next)
	}
}

func (s *sweeper) fillPocketsLeft(seg *segment, node *frontNode) {
	for node.prev != nil && node.prev.point.X > seg.p.X {
		if orient2d(seg.q, node.prev.point, seg.p) == clockwise {
			s.fillLeftUnder(seg, node)
		} else {
			node = node.prev
		}
	}
}

func (s *sweeper) fillLeftUnder(seg *segment, node *frontNode) {
	if node.point.X <= seg.p.X {
		return
	}
	if node.prev == nil || node.prev.prev == nil {
		return
	}
	if orient2d(node.point, node.prev.point, node.prev.prev.point) == clockwise {
		s.fillLeftConcave(seg, node)
		return
	}
	s.fillLeftConvex(seg, node)
	s.fillLeftUnder(seg, node)
}

func (s *sweeper) fillLeftConcave(seg *segment, node *frontNode) {
	if node.prev.prev == nil {
		return
	}
	s.fill(node.prev)
	if node.prev.point == seg.p {
		return
	}
	if orient2d(seg.q, node.prev.point, seg.p) != clockwise {
		return
	}
	if node.prev.prev == nil {
		return
	}
	if orient2d(node.point, node.prev.point, node.prev.prev.point) == clockwise {
		s.fillLeftConcave(seg, node)
	}
}

func (s *sweeper) fillLeftConvex(seg *segment, node *frontNode) {
	prev := node.prev
	if prev.prev == nil || prev.prev.prev == nil {
		return
	}
	if orient2d(prev.point, prev.prev.point, prev.prev.prev.point) == clockwise {
		s.fillLeftConcave(seg, prev)
		return
	}
	if orient2d(seg.q, prev.prev.point, seg.p) == clockwise {
		s.fillLeftConvex(seg, prev)
	}
}

// collectCrossings walks triangle to triangle from q toward p and gathers
// every mesh edge properly crossed by the open segment (q, p).
func (s *sweeper) collectCrossings(q, p *point) ([]meshEdge, error) {
	var start *Triangle
	var onSeg *point
	s.mesh.eachTriangleAround(q, func(t *Triangle) bool {
		a, b := t.pointCCW(q), t.pointCW(q)
		oa, ob := orient2d(q, a, p), orient2d(q, b, p)
		if oa == counterClockwise && ob == clockwise {
			start = t
			return true
		}
		if oa == collinear && between(q, p, a) {
			onSeg = a
			return true
		}
		if ob == collinear && between(q, p, b) {
			onSeg = b
			return true
		}
		return false
	})
	if onSeg != nil {
		return nil, errors.Wrapf(ErrConstraintRecovery,
			"vertex (%g,%g) lies on constrained segment (%g,%g)-(%g,%g)",
			onSeg.X, onSeg.Y, p.X, p.Y, q.X, q.Y)
	}
	if start == nil {
		return nil, errors.Wrapf(ErrConstraintRecovery,
			"no triangle at (%g,%g) faces (%g,%g)", q.X, q.Y, p.X, p.Y)
	}

	// endpoints of the edge being crossed, split by side of the segment
	left, right := start.pointCW(q), start.pointCCW(q)
	crossed := []meshEdge{{left, right}}
	cur := start
	for steps := 0; ; steps++ {
		if steps > len(s.mesh.tris) {
			return nil, errors.Wrap(ErrConstraintRecovery, "crossing walk did not terminate")
		}
		exit := cur.edgeIndex(left, right)
		if exit < 0 {
			return nil, errors.Wrap(ErrConstraintRecovery, "crossing walk lost the segment")
		}
		if cur.constrained[exit] {
			return nil, errors.Wrapf(ErrConstraintRecovery,
				"segment (%g,%g)-(%g,%g) crosses a constrained edge; the boundary self-intersects",
				p.X, p.Y, q.X, q.Y)
		}
		next := cur.neighbors[exit]
		if next == nil {
			return nil, errors.Wrap(ErrConstraintRecovery, "crossing walk left the mesh")
		}
		if next.contains(p) {
			return crossed, nil
		}
		v := next.points[next.edgeIndex(left, right)]
		switch orient2d(q, p, v) {
		case collinear:
			return nil, errors.Wrapf(ErrConstraintRecovery,
				"vertex (%g,%g) lies on constrained segment (%g,%g)-(%g,%g)",
				v.X, v.Y, p.X, p.Y, q.X, q.Y)
		case counterClockwise:
			left = v
		default:
			right = v
		}
		crossed = append(crossed, meshEdge{left, right})
		cur = next
	}
}

// flipCrossings flips each crossing edge once its surrounding quadrilateral
// is strictly convex, requeueing the others until the channel between the
// endpoints is clear. It returns the triangles it rotated.
func (s *sweeper) flipCrossings(q, p *point, crossed []meshEdge) ([]*Triangle, error) {
	queue := crossed
	var touched []*Triangle
	stall := 0
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		t := s.mesh.triangleWithEdge(e.a, e.b)
		if t == nil {
			return nil, errors.Wrap(ErrConstraintRecovery, "crossing edge vanished during recovery")
		}
		i := t.edgeIndex(e.a, e.b)
		ot := t.neighbors[i]
		if ot == nil {
			return nil, errors.Wrap(ErrConstraintRecovery, "crossing edge lies on the hull")
		}
		d1 := t.points[i]
		d2 := ot.oppositePoint(t, d1)

		o1, o2 := orient2d(d1, d2, e.a), orient2d(d1, d2, e.b)
		if o1 == collinear || o2 == collinear || o1 == o2 {
			// not strictly convex yet; a later flip has to open the quad
			queue = append(queue, e)
			stall++
			if stall > len(queue) {
				return nil, errors.Wrap(ErrConstraintRecovery, "no crossing edge is flippable")
			}
			continue
		}

		stall = 0
		s.mesh.rotatePair(t, d1, ot, d2)
		s.mapTriangleToFront(t)
		s.mapTriangleToFront(ot)
		touched = append(touched, t, ot)
		if properCross(q, p, d1, d2) {
			queue = append(queue, meshEdge{d1, d2})
		}
	}
	return touched, nil
}

// between reports whether c, already collinear with segment (a, b), lies
// strictly inside it.
func between(a, b, c *point) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	dot := (c.X-a.X)*dx + (c.Y-a.Y)*dy
	return dot > 0 && dot < dx*dx+dy*dy
}
