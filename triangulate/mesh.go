package triangulate

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"
)

// Mesh stores every triangle created during one triangulation run in
// creation order, together with a point-to-triangle binding used to reach the
// triangles around any vertex. It lives exactly as long as the run that
// produced it plus however long the caller keeps the result.
type Mesh struct {
	tris     []*Triangle
	interior []*Triangle

	// pointTri maps each mesh vertex to some current triangle containing it.
	// Rotations keep all four involved vertices covered by the rotated pair,
	// so rebinding the pair after each flip keeps the map live.
	pointTri map[*point]*Triangle
}

func newMesh(capacityHint int) *Mesh {
	return &Mesh{
		tris:     make([]*Triangle, 0, capacityHint),
		pointTri: make(map[*point]*Triangle, capacityHint),
	}
}

// AllTriangles returns every triangle of the run, including the exterior ones
// anchored to the sentinel points, in creation order. Sentinel vertex
// coordinates are synthetic sweep-space anchors.
func (m *Mesh) AllTriangles() []*Triangle {
	return m.tris
}

// Triangles returns the triangles inside the polygon boundary in creation
// order. For a simple polygon with n boundary vertices and no interior points
// there are exactly n-2 of them.
func (m *Mesh) Triangles() []*Triangle {
	return m.interior
}

// Area returns the summed area of the interior triangles.
func (m *Mesh) Area() float64 {
	areas := make([]float64, len(m.interior))
	for i, t := range m.interior {
		areas[i] = t.Area()
	}
	return floats.Sum(areas)
}

func (m *Mesh) add(t *Triangle) {
	m.tris = append(m.tris, t)
	m.bind(t)
}

func (m *Mesh) bind(t *Triangle) {
	for _, p := range t.points {
		m.pointTri[p] = t
	}
}

// rotatePair flips the shared edge of t and ot to the diagonal (p, op) and
// refreshes the point bindings for both.
func (m *Mesh) rotatePair(t *Triangle, p *point, ot *Triangle, op *point) {
	rotateTrianglePair(t, p, ot, op)
	m.bind(t)
	m.bind(ot)
}

// eachTriangleAround visits the triangles incident to p, stopping early when
// fn returns true. The walk goes clockwise from the bound triangle and, if it
// fell off the hull, counterclockwise from there as well.
func (m *Mesh) eachTriangleAround(p *point, fn func(*Triangle) bool) {
	start, ok := m.pointTri[p]
	if !ok {
		return
	}
	for t := start; t != nil; {
		if fn(t) {
			return
		}
		t = t.neighborCW(p)
		if t == start {
			return
		}
	}
	for t := start.neighborCCW(p); t != nil && t != start; t = t.neighborCCW(p) {
		if fn(t) {
			return
		}
	}
}

// triangleWithEdge returns a triangle having {a, b} as an edge, or nil.
func (m *Mesh) triangleWithEdge(a, b *point) *Triangle {
	var found *Triangle
	m.eachTriangleAround(a, func(t *Triangle) bool {
		if t.contains(b) {
			found = t
			return true
		}
		return false
	})
	return found
}

// markConstrainedEdge flags {a, b} as constrained on both flanking triangles.
func (m *Mesh) markConstrainedEdge(a, b *point) {
	t := m.triangleWithEdge(a, b)
	if t == nil {
		return
	}
	i := t.edgeIndex(a, b)
	t.constrained[i] = true
	if nb := t.neighbors[i]; nb != nil {
		nb.constrained[nb.edgeIndex(a, b)] = true
	}
}

// floodInterior marks every triangle reachable from seed without crossing a
// constrained edge. The boundary constraints fence the fill in, leaving the
// sentinel-anchored and notch triangles untouched, and the interior list is
// then collected in creation order.
func (m *Mesh) floodInterior(seed *Triangle) {
	stack := []*Triangle{seed}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t == nil || t.interior {
			continue
		}
		t.interior = true
		for i := 0; i < 3; i++ {
			if !t.constrained[i] {
				stack = append(stack, t.neighbors[i])
			}
		}
	}
	m.interior = m.interior[:0]
	for _, t := range m.tris {
		if t.interior {
			m.interior = append(m.interior, t)
		}
	}
}

// Verify checks the structural invariants of the mesh: counterclockwise
// winding, distinct vertices, symmetric neighbor links and symmetric
// constrained flags. It returns nil on a healthy mesh and the combined
// findings otherwise.
func (m *Mesh) Verify() error {
	var err error
	for ti, t := range m.tris {
		if t.points[0] == t.points[1] || t.points[1] == t.points[2] || t.points[0] == t.points[2] {
			err = multierr.Append(err, errors.Errorf("triangle %d has repeated vertices", ti))
			continue
		}
		if orient2d(t.points[0], t.points[1], t.points[2]) != counterClockwise {
			err = multierr.Append(err, errors.Errorf("triangle %d is not counterclockwise", ti))
		}
		for i := 0; i < 3; i++ {
			nb := t.neighbors[i]
			if nb == nil {
				continue
			}
			a, b := t.points[(i+1)%3], t.points[(i+2)%3]
			j := nb.edgeIndex(a, b)
			if j < 0 {
				err = multierr.Append(err, errors.Errorf("triangle %d neighbor %d lacks the shared edge", ti, i))
				continue
			}
			if nb.neighbors[j] != t {
				err = multierr.Append(err, errors.Errorf("triangle %d neighbor %d does not link back", ti, i))
			}
			if nb.constrained[j] != t.constrained[i] {
				err = multierr.Append(err, errors.Errorf("triangle %d edge %d has asymmetric constrained flags", ti, i))
			}
		}
	}
	return err
}
