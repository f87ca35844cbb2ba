// Package triangulate computes constrained Delaunay triangulations of simple
// polygons with the sweep line of Domiter and Žalik, the same family of
// algorithm as poly2tri. The polygon boundary always survives as triangle
// edges and every other edge is locally Delaunay.
package triangulate

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Defaults for Options.
const (
	// DefaultAlpha pads the two sentinel points by this fraction of the
	// bounding box of the input.
	DefaultAlpha = 0.3
	// DefaultShearEpsilon is the coefficient of the shear y' = y + x*eps
	// applied before sweeping so that no two sweep keys collide.
	DefaultShearEpsilon = 1e-4
)

// Options tunes one triangulation run. The zero value means all defaults.
type Options struct {
	// Alpha is the sentinel padding factor. Non-positive falls back to
	// DefaultAlpha.
	Alpha float64 `json:"alpha"`
	// ShearEpsilon is the shear coefficient. Non-positive falls back to
	// DefaultShearEpsilon.
	ShearEpsilon float64 `json:"shear_epsilon"`
	// KeepSheared leaves the output vertices in sheared sweep space instead
	// of undoing the shear, which helps when debugging the sweep itself.
	KeepSheared bool `json:"keep_sheared"`
	// Logger receives debug output. Nil means silent.
	Logger golog.Logger `json:"-"`
}

func (o Options) withDefaults() Options {
	if o.Alpha <= 0 {
		o.Alpha = DefaultAlpha
	}
	if o.ShearEpsilon <= 0 {
		o.ShearEpsilon = DefaultShearEpsilon
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
	return o
}

// Triangulator prepares and runs one triangulation. It is not safe for
// concurrent use; give each goroutine its own.
type Triangulator struct {
	opts     Options
	boundary []*point
	steiner  []*point
	seen     map[r2.Point]struct{}
	mesh     *Mesh
	err      error
}

// NewTriangulator validates the boundary of a simple polygon, given as its
// vertices in order without repeating the first one at the end. Both winding
// directions are accepted.
func NewTriangulator(boundary []r2.Point, opts *Options) (*Triangulator, error) {
	if len(boundary) < 3 {
		return nil, errors.Wrapf(ErrInsufficientVertices, "got %d", len(boundary))
	}
	var o Options
	if opts != nil {
		o = *opts
	}
	tr := &Triangulator{
		opts:     o.withDefaults(),
		boundary: make([]*point, 0, len(boundary)),
		seen:     make(map[r2.Point]struct{}, len(boundary)),
	}
	for _, v := range boundary {
		if _, ok := tr.seen[v]; ok {
			return nil, errors.Wrapf(ErrDuplicateVertices, "vertex (%g,%g)", v.X, v.Y)
		}
		tr.seen[v] = struct{}{}
		tr.boundary = append(tr.boundary, newPoint(v))
	}
	return tr, nil
}

// AddSteinerPoint registers an extra vertex, normally strictly inside the
// boundary, to be triangulated along with it.
func (t *Triangulator) AddSteinerPoint(p r2.Point) error {
	if t.mesh != nil || t.err != nil {
		return ErrAlreadyTriangulated
	}
	if _, ok := t.seen[p]; ok {
		return errors.Wrapf(ErrDuplicateVertices, "vertex (%g,%g)", p.X, p.Y)
	}
	t.seen[p] = struct{}{}
	t.steiner = append(t.steiner, newPoint(p))
	return nil
}

// Triangulate runs the sweep once and returns the resulting mesh. Later calls
// return the same mesh, or the same error: a triangulator never reruns.
func (t *Triangulator) Triangulate() (*Mesh, error) {
	if t.mesh != nil {
		return t.mesh, nil
	}
	if t.err != nil {
		return nil, t.err
	}
	s := &sweeper{
		opts:     t.opts,
		logger:   t.opts.Logger,
		boundary: t.boundary,
		steiner:  t.steiner,
	}
	mesh, err := s.run()
	if err != nil {
		t.err = err
		return nil, err
	}
	t.mesh = mesh
	return mesh, nil
}

// Polygon triangulates a simple polygon in one call.
func Polygon(boundary []r2.Point, opts *Options) (*Mesh, error) {
	tr, err := NewTriangulator(boundary, opts)
	if err != nil {
		return nil, err
	}
	return tr.Triangulate()
}
