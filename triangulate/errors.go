package triangulate

import "github.com/pkg/errors"

// Triangulation failures wrap one of these sentinels; match them with errors.Is.
var (
	// ErrInsufficientVertices indicates fewer than three boundary vertices.
	ErrInsufficientVertices = errors.New("a polygon needs at least three vertices")

	// ErrDuplicateVertices indicates two input vertices with identical coordinates.
	ErrDuplicateVertices = errors.New("duplicate input vertices")

	// ErrDegenerateGeometry indicates input spanning no area, such as a fully
	// collinear vertex set.
	ErrDegenerateGeometry = errors.New("degenerate input geometry")

	// ErrConstraintRecovery indicates a boundary segment that could not be
	// realized as a mesh edge, the usual symptom of a self-intersecting
	// boundary.
	ErrConstraintRecovery = errors.New("constrained edge recovery failed")

	// ErrAlreadyTriangulated indicates a mutation attempted after Triangulate.
	ErrAlreadyTriangulated = errors.New("triangulation already computed")
)
