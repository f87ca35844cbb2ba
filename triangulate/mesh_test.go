package triangulate

import (
	"testing"

	"go.viam.com/test"
)

func meshQuad() (*Mesh, *point, *point, *point, *point, *Triangle, *Triangle) {
	p, a, b, op, t1, t2 := quad()
	t1.markNeighbor(t2)
	m := newMesh(4)
	m.add(t1)
	m.add(t2)
	return m, p, a, b, op, t1, t2
}

func TestMeshTriangleWithEdge(t *testing.T) {
	m, p, a, b, op, t1, _ := meshQuad()

	found := m.triangleWithEdge(a, b)
	test.That(t, found, test.ShouldNotBeNil)
	test.That(t, found.contains(a), test.ShouldBeTrue)
	test.That(t, found.contains(b), test.ShouldBeTrue)

	test.That(t, m.triangleWithEdge(p, a), test.ShouldEqual, t1)
	test.That(t, m.triangleWithEdge(p, op), test.ShouldBeNil)
	test.That(t, m.triangleWithEdge(pt(9, 9), a), test.ShouldBeNil)
}

func TestMeshMarkConstrainedEdge(t *testing.T) {
	m, _, a, b, _, t1, t2 := meshQuad()

	m.markConstrainedEdge(a, b)
	test.That(t, t1.constrained[0], test.ShouldBeTrue)
	test.That(t, t2.constrained[0], test.ShouldBeTrue)
	test.That(t, m.Verify(), test.ShouldBeNil)
}

func TestMeshRotatePair(t *testing.T) {
	m, p, a, b, op, t1, t2 := meshQuad()

	m.rotatePair(t1, p, t2, op)
	test.That(t, m.triangleWithEdge(p, op), test.ShouldNotBeNil)
	test.That(t, m.triangleWithEdge(a, b), test.ShouldBeNil)
	test.That(t, m.Verify(), test.ShouldBeNil)

	// both rotated triangles stay reachable around the diagonal endpoints
	count := 0
	m.eachTriangleAround(p, func(*Triangle) bool {
		count++
		return false
	})
	test.That(t, count, test.ShouldEqual, 2)
}

func TestMeshFloodInterior(t *testing.T) {
	m, p, a, b, op, t1, _ := meshQuad()
	m.markConstrainedEdge(p, a)
	m.markConstrainedEdge(p, b)
	m.markConstrainedEdge(op, a)
	m.markConstrainedEdge(op, b)

	m.floodInterior(t1)
	test.That(t, m.Triangles(), test.ShouldHaveLength, 2)
	test.That(t, m.Triangles()[0], test.ShouldEqual, t1)
	test.That(t, m.Area(), test.ShouldAlmostEqual, 4)

	// a constrained diagonal fences the flood
	m2, p2, a2, b2, op2, t3, _ := meshQuad()
	m2.markConstrainedEdge(p2, a2)
	m2.markConstrainedEdge(p2, b2)
	m2.markConstrainedEdge(op2, a2)
	m2.markConstrainedEdge(op2, b2)
	m2.markConstrainedEdge(a2, b2)
	m2.floodInterior(t3)
	test.That(t, m2.Triangles(), test.ShouldHaveLength, 1)
	test.That(t, m2.Triangles()[0], test.ShouldEqual, t3)
	test.That(t, m2.Area(), test.ShouldAlmostEqual, 2)
	test.That(t, t3.Interior(), test.ShouldBeTrue)
}

func TestMeshVerifyFindings(t *testing.T) {
	// asymmetric constrained flag
	m, _, _, _, _, t1, _ := meshQuad()
	t1.constrained[0] = true
	err := m.Verify()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "asymmetric constrained flags")

	// clockwise winding
	m2 := newMesh(1)
	m2.add(newTriangle(pt(0, 0), pt(0, 10), pt(10, 0)))
	err = m2.Verify()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not counterclockwise")

	// repeated vertex
	m3 := newMesh(1)
	dup := pt(0, 0)
	m3.add(newTriangle(dup, dup, pt(10, 0)))
	err = m3.Verify()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "repeated vertices")
}
