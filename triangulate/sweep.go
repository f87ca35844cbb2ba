package triangulate

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/viam-labs/cdt/stablesort"
)

const (
	piOver2  = math.Pi / 2
	pi3Over4 = 3 * math.Pi / 4
)

// basinBounds tracks the extent of the concave front section currently being
// filled.
type basinBounds struct {
	leftNode    *frontNode
	bottomNode  *frontNode
	rightNode   *frontNode
	width       float64
	leftHighest bool
}

// sweeper drives one triangulation run: seeding, the point and edge events in
// sweep order, and interior extraction.
type sweeper struct {
	opts   Options
	logger golog.Logger

	boundary []*point
	steiner  []*point

	points []*point // all vertices in sweep order
	mesh   *Mesh
	front  *advancingFront
	head   *point
	tail   *point
	basin  basinBounds
}

func (s *sweeper) run() (*Mesh, error) {
	if err := s.initialize(); err != nil {
		return nil, err
	}
	if err := s.sweepPoints(); err != nil {
		return nil, err
	}
	if err := s.finalize(); err != nil {
		return nil, err
	}
	return s.mesh, nil
}

// initialize shears the input, closes the boundary loop into constraint
// segments, sorts the vertices into sweep order and seeds the mesh and the
// advancing front with the sentinel triangle.
func (s *sweeper) initialize() error {
	all := make([]*point, 0, len(s.boundary)+len(s.steiner))
	all = append(all, s.boundary...)
	all = append(all, s.steiner...)

	for _, p := range all {
		p.Y += p.X * s.opts.ShearEpsilon
	}
	for i, p := range s.boundary {
		newSegment(p, s.boundary[(i+1)%len(s.boundary)])
	}

	stablesort.Sort(all, sweepLess)
	s.points = all

	xmin, xmax := all[0].X, all[0].X
	ymin, ymax := all[0].Y, all[len(all)-1].Y
	for _, p := range all {
		if p.X < xmin {
			xmin = p.X
		}
		if p.X > xmax {
			xmax = p.X
		}
	}
	if !(xmax-xmin > 0) || !(ymax-ymin > 0) {
		return errors.Wrap(ErrDegenerateGeometry, "input spans no area")
	}
	flat := true
	for _, c := range all[2:] {
		if orient2d(all[0], all[1], c) != collinear {
			flat = false
			break
		}
	}
	if flat {
		return errors.Wrap(ErrDegenerateGeometry, "all vertices are collinear")
	}

	dx := s.opts.Alpha * (xmax - xmin)
	dy := s.opts.Alpha * (ymax - ymin)
	s.head = &point{X: xmin - dx, Y: ymin - dy}
	s.tail = &point{X: xmax + dx, Y: ymin - dy}

	first := all[0]
	seed := newTriangle(first, s.head, s.tail)
	s.mesh = newMesh(2 * len(all))
	s.mesh.add(seed)
	s.front = newAdvancingFront(s.head, first, s.tail, seed)

	s.logger.Debugw("sweep initialized",
		"vertices", len(all), "width", xmax-xmin, "height", ymax-ymin)
	return nil
}

func (s *sweeper) sweepPoints() error {
	for _, p := range s.points[1:] {
		s.pointEvent(p)
		for _, seg := range p.segments {
			if err := s.edgeEvent(seg); err != nil {
				return err
			}
		}
	}
	return nil
}

// pointEvent welds p onto the front: a fan triangle over the bracketing span,
// a new front node, and the march that closes any concave folds the insertion
// exposed.
func (s *sweeper) pointEvent(p *point) *frontNode {
	node := s.front.locate(p.X)
	newNode := s.newFrontTriangle(p, node)

	// a point landing on a front vertex leaves a degenerate sliver over the
	// left span; close it right away
	if p.X <= node.point.X+epsilon {
		s.fill(node)
	}

	s.fillAdvancingFront(newNode)
	return newNode
}

func (s *sweeper) newFrontTriangle(p *point, node *frontNode) *frontNode {
	t := newTriangle(p, node.point, node.next.point)
	t.markNeighbor(node.tri)
	s.mesh.add(t)

	newNode := s.front.insertAfter(node, p, t)
	if !s.legalize(t) {
		s.mapTriangleToFront(t)
	}
	return newNode
}

// fill closes the fold at node with the triangle {prev, node, next} and drops
// node from the front.
func (s *sweeper) fill(node *frontNode) {
	t := newTriangle(node.prev.point, node.point, node.next.point)
	t.markNeighbor(node.prev.tri)
	t.markNeighbor(node.tri)
	s.mesh.add(t)

	s.front.remove(node)
	if !s.legalize(t) {
		s.mapTriangleToFront(t)
	}
}

// fillAdvancingFront marches outward from a fresh node in both directions,
// filling every fold whose hole angle does not exceed a right angle, then
// checks for a basin ahead of the node.
func (s *sweeper) fillAdvancingFront(n *frontNode) {
	for node := n.next; node.next != nil; {
		if angle := holeAngle(node); angle > piOver2 || angle < -piOver2 {
			break
		}
		next := node.next
		s.fill(node)
		node = next
	}
	for node := n.prev; node.prev != nil; {
		if angle := holeAngle(node); angle > piOver2 || angle < -piOver2 {
			break
		}
		prev := node.prev
		s.fill(node)
		node = prev
	}
	if n.next != nil && n.next.next != nil && basinAngle(n) < pi3Over4 {
		s.fillBasin(n)
	}
}

// holeAngle is the angle at node between the vectors to its next and prev
// points.
func holeAngle(node *frontNode) float64 {
	ax := node.next.point.X - node.point.X
	ay := node.next.point.Y - node.point.Y
	bx := node.prev.point.X - node.point.X
	by := node.prev.point.Y - node.point.Y
	return math.Atan2(ax*by-ay*bx, ax*bx+ay*by)
}

// basinAngle is the downward slope over the two spans right of node.
func basinAngle(node *frontNode) float64 {
	ax := node.point.X - node.next.next.point.X
	ay := node.point.Y - node.next.next.point.Y
	return math.Atan2(ay, ax)
}

// fillBasin locates the basin that opens right of node, walks to its lowest
// point and triangulates upward from there.
func (s *sweeper) fillBasin(node *frontNode) {
	if orient2d(node.point, node.next.point, node.next.next.point) == counterClockwise {
		s.basin.leftNode = node.next.next
	} else {
		s.basin.leftNode = node.next
	}

	s.basin.bottomNode = s.basin.leftNode
	for s.basin.bottomNode.next != nil && s.basin.bottomNode.point.Y >= s.basin.bottomNode.next.point.Y {
		s.basin.bottomNode = s.basin.bottomNode.next
	}
	if s.basin.bottomNode == s.basin.leftNode {
		return
	}

	s.basin.rightNode = s.basin.bottomNode
	for s.basin.rightNode.next != nil && s.basin.rightNode.point.Y < s.basin.rightNode.next.point.Y {
		s.basin.rightNode = s.basin.rightNode.next
	}
	if s.basin.rightNode == s.basin.bottomNode {
		return
	}

	s.basin.width = s.basin.rightNode.point.X - s.basin.leftNode.point.X
	s.basin.leftHighest = s.basin.leftNode.point.Y > s.basin.rightNode.point.Y

	s.fillBasinReq(s.basin.bottomNode)
}

func (s *sweeper) fillBasinReq(node *frontNode) {
	if s.isShallow(node) {
		return
	}
	s.fill(node)

	switch {
	case node.prev == s.basin.leftNode && node.next == s.basin.rightNode:
		return
	case node.prev == s.basin.leftNode:
		if orient2d(node.point, node.next.point, node.next.next.point) == clockwise {
			return
		}
		node = node.next
	case node.next == s.basin.rightNode:
		if orient2d(node.point, node.prev.point, node.prev.prev.point) == counterClockwise {
			return
		}
		node = node.prev
	default:
		if node.prev.point.Y < node.next.point.Y {
			node = node.prev
		} else {
			node = node.next
		}
	}
	s.fillBasinReq(node)
}

func (s *sweeper) isShallow(node *frontNode) bool {
	var height float64
	if s.basin.leftHighest {
		height = s.basin.leftNode.point.Y - node.point.Y
	} else {
		height = s.basin.rightNode.point.Y - node.point.Y
	}
	return s.basin.width > height
}

// legalize restores the Delaunay property around t by recursive edge flips,
// never across constrained edges. It reports whether any flip happened; the
// caller remaps untouched triangles to the front itself.
func (s *sweeper) legalize(t *Triangle) bool {
	for i := 0; i < 3; i++ {
		if t.delaunay[i] {
			continue
		}
		ot := t.neighbors[i]
		if ot == nil {
			continue
		}
		p := t.points[i]
		op := ot.oppositePoint(t, p)
		oi := ot.index(op)

		// an edge constrained or still settling on the neighbor side is
		// final for this cascade
		if ot.constrained[oi] || ot.delaunay[oi] {
			t.constrained[i] = ot.constrained[oi]
			continue
		}

		if !inCircle(p, t.pointCCW(p), t.pointCW(p), op) {
			continue
		}

		// stage the scratch flags on the shared slots; the rotation carries
		// them onto the new diagonal, stopping mutual recursion
		t.delaunay[i] = true
		ot.delaunay[oi] = true
		s.mesh.rotatePair(t, p, ot, op)

		if !s.legalize(t) {
			s.mapTriangleToFront(t)
		}
		if !s.legalize(ot) {
			s.mapTriangleToFront(ot)
		}

		t.delaunay[i] = false
		ot.delaunay[oi] = false
		return true
	}
	return false
}

// mapTriangleToFront rebinds the front nodes adjoining t's hull edges. A
// front edge runs left to right with the mesh beneath, so the node to bind is
// the one holding the edge's clockwise endpoint.
func (s *sweeper) mapTriangleToFront(t *Triangle) {
	for i := 0; i < 3; i++ {
		if t.neighbors[i] != nil {
			continue
		}
		if n := s.front.locatePoint(t.pointCW(t.points[i])); n != nil {
			n.tri = t
		}
	}
}

// finalize walks from the front head to a triangle flanked by a constrained
// boundary edge, floods the interior from there and undoes the shear.
func (s *sweeper) finalize() error {
	node := s.front.head.next
	t := node.tri
	p := node.point
	for t != nil && !t.constrainedEdgeCW(p) {
		t = t.neighborCCW(p)
	}
	if t == nil {
		return errors.Wrap(ErrConstraintRecovery,
			"interior extraction found no constrained edge near the front head")
	}
	s.mesh.floodInterior(t)

	if !s.opts.KeepSheared {
		for _, p := range s.points {
			p.Y -= p.X * s.opts.ShearEpsilon
		}
	}

	s.logger.Debugw("sweep finished",
		"triangles", len(s.mesh.tris), "interior", len(s.mesh.interior))
	return nil
}
