package triangulate

import (
	"testing"

	"go.viam.com/test"
)

func TestTriangleBasics(t *testing.T) {
	p0, p1, p2 := pt(0, 0), pt(10, 0), pt(0, 10)
	tri := newTriangle(p0, p1, p2)

	test.That(t, tri.index(p1), test.ShouldEqual, 1)
	test.That(t, tri.index(pt(10, 0)), test.ShouldEqual, -1) // identity, not coordinates
	test.That(t, tri.contains(p2), test.ShouldBeTrue)

	test.That(t, tri.pointCW(p0), test.ShouldEqual, p2)
	test.That(t, tri.pointCCW(p0), test.ShouldEqual, p1)
	test.That(t, tri.pointCW(p1), test.ShouldEqual, p0)
	test.That(t, tri.pointCCW(p2), test.ShouldEqual, p0)

	test.That(t, tri.edgeIndex(p1, p2), test.ShouldEqual, 0)
	test.That(t, tri.edgeIndex(p2, p1), test.ShouldEqual, 0)
	test.That(t, tri.edgeIndex(p0, p1), test.ShouldEqual, 2)
	test.That(t, tri.edgeIndex(p0, pt(5, 5)), test.ShouldEqual, -1)

	test.That(t, tri.Area(), test.ShouldAlmostEqual, 50)
	c := tri.Centroid()
	test.That(t, c.X, test.ShouldAlmostEqual, 10.0/3)
	test.That(t, c.Y, test.ShouldAlmostEqual, 10.0/3)

	pts := tri.Points()
	test.That(t, pts, test.ShouldHaveLength, 3)
	test.That(t, pts[1].X, test.ShouldEqual, 10)
}

// quad builds two counterclockwise triangles sharing the edge (a, b), with p
// across it in the first and op across it in the second.
func quad() (p, a, b, op *point, t1, t2 *Triangle) {
	p, a, b, op = pt(0, 2), pt(-1, 0), pt(1, 0), pt(0, -2)
	t1 = newTriangle(p, a, b)
	t2 = newTriangle(op, b, a)
	return
}

func TestMarkNeighbor(t *testing.T) {
	_, _, _, _, t1, t2 := quad()
	t1.markNeighbor(t2)
	test.That(t, t1.neighbors[0], test.ShouldEqual, t2)
	test.That(t, t2.neighbors[0], test.ShouldEqual, t1)

	// linking reconciles a constrained flag already set on one side
	_, _, _, _, t3, t4 := quad()
	t3.constrained[0] = true
	t3.markNeighbor(t4)
	test.That(t, t4.constrained[0], test.ShouldBeTrue)

	// no shared edge, no link
	other := newTriangle(pt(5, 5), pt(6, 5), pt(5, 6))
	t1.markNeighbor(other)
	test.That(t, other.neighbors, test.ShouldResemble, [3]*Triangle{})
}

func TestOppositePoint(t *testing.T) {
	p, _, _, op, t1, t2 := quad()
	t1.markNeighbor(t2)
	test.That(t, t2.oppositePoint(t1, p), test.ShouldEqual, op)
	test.That(t, t1.oppositePoint(t2, op), test.ShouldEqual, p)
	test.That(t, t1.neighborAcross(p), test.ShouldEqual, t2)
	test.That(t, t2.neighborAcross(op), test.ShouldEqual, t1)
}

func TestConstrainedEdgeSlots(t *testing.T) {
	p0, p1, p2 := pt(0, 0), pt(10, 0), pt(0, 10)
	tri := newTriangle(p0, p1, p2)

	// the CCW edge of a vertex is the edge it starts, the CW edge the one it ends
	tri.setConstrainedEdgeCCW(p0, true)
	test.That(t, tri.constrained[2], test.ShouldBeTrue)
	test.That(t, tri.constrainedEdgeCCW(p0), test.ShouldBeTrue)
	test.That(t, tri.constrainedEdgeCW(p1), test.ShouldBeTrue)

	tri.setConstrainedEdgeCW(p0, true)
	test.That(t, tri.constrained[1], test.ShouldBeTrue)
	test.That(t, tri.constrainedEdgeCCW(p2), test.ShouldBeTrue)

	test.That(t, tri.constrained[0], test.ShouldBeFalse)
}

func TestRotateTrianglePair(t *testing.T) {
	p, a, b, op := pt(0, 2), pt(-1, 0), pt(1, 0), pt(0, -2)
	t1 := newTriangle(p, a, b)
	t2 := newTriangle(op, b, a)
	t1.markNeighbor(t2)

	// constrain the outer edge (p, a) and follow it through the rotation
	t1.setConstrainedEdgeCCW(p, true)

	rotateTrianglePair(t1, p, t2, op)

	test.That(t, t1.points, test.ShouldResemble, [3]*point{b, p, op})
	test.That(t, t2.points, test.ShouldResemble, [3]*point{a, op, p})
	test.That(t, triArea2(t1.points[0], t1.points[1], t1.points[2]), test.ShouldBeGreaterThan, 0.0)
	test.That(t, triArea2(t2.points[0], t2.points[1], t2.points[2]), test.ShouldBeGreaterThan, 0.0)

	// the shared edge is now the diagonal (p, op), linked both ways
	test.That(t, t1.edgeIndex(p, op), test.ShouldEqual, 0)
	test.That(t, t2.edgeIndex(p, op), test.ShouldEqual, 0)
	test.That(t, t1.neighbors[0], test.ShouldEqual, t2)
	test.That(t, t2.neighbors[0], test.ShouldEqual, t1)
	test.That(t, t1.constrained[0], test.ShouldBeFalse)
	test.That(t, t2.constrained[0], test.ShouldBeFalse)

	// the flag on (p, a) moved to the triangle that owns the edge now
	test.That(t, t2.constrained[t2.edgeIndex(p, a)], test.ShouldBeTrue)
	test.That(t, t1.constrained[t1.edgeIndex(b, p)], test.ShouldBeFalse)
	test.That(t, t1.constrained[t1.edgeIndex(op, b)], test.ShouldBeFalse)
	test.That(t, t2.constrained[t2.edgeIndex(a, op)], test.ShouldBeFalse)
}

func TestRotateTrianglePairNeighbors(t *testing.T) {
	p, a, b, op := pt(0, 2), pt(-1, 0), pt(1, 0), pt(0, -2)
	t1 := newTriangle(p, a, b)
	t2 := newTriangle(op, b, a)
	t1.markNeighbor(t2)

	// outer triangles on all four quad edges
	outPA := newTriangle(pt(-2, 3), p, a)
	outBP := newTriangle(pt(2, 3), b, p)
	outOB := newTriangle(pt(2, -3), op, b)
	outAO := newTriangle(pt(-2, -3), a, op)
	for _, o := range []*Triangle{outPA, outBP} {
		t1.markNeighbor(o)
	}
	for _, o := range []*Triangle{outOB, outAO} {
		t2.markNeighbor(o)
	}

	rotateTrianglePair(t1, p, t2, op)

	// every outer link survives and points at the triangle now owning the edge
	test.That(t, t2.neighbors[t2.edgeIndex(p, a)], test.ShouldEqual, outPA)
	test.That(t, t1.neighbors[t1.edgeIndex(b, p)], test.ShouldEqual, outBP)
	test.That(t, t1.neighbors[t1.edgeIndex(op, b)], test.ShouldEqual, outOB)
	test.That(t, t2.neighbors[t2.edgeIndex(a, op)], test.ShouldEqual, outAO)
	test.That(t, outPA.neighbors[outPA.edgeIndex(p, a)], test.ShouldEqual, t2)
	test.That(t, outBP.neighbors[outBP.edgeIndex(b, p)], test.ShouldEqual, t1)
	test.That(t, outOB.neighbors[outOB.edgeIndex(op, b)], test.ShouldEqual, t1)
	test.That(t, outAO.neighbors[outAO.edgeIndex(a, op)], test.ShouldEqual, t2)
}
