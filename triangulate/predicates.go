package triangulate

// epsilon bounds the collinearity band of orient2d and the equal-x tolerance
// of point events.
const epsilon = 1e-12

type orientation int

const (
	clockwise orientation = iota
	counterClockwise
	collinear
)

// orient2d classifies c against the directed line a->b: counterClockwise when
// c lies to its left, clockwise to its right.
func orient2d(a, b, c *point) orientation {
	val := (a.X-c.X)*(b.Y-c.Y) - (a.Y-c.Y)*(b.X-c.X)
	switch {
	case val > -epsilon && val < epsilon:
		return collinear
	case val > 0:
		return counterClockwise
	}
	return clockwise
}

// inCircle reports whether pd lies strictly inside the circumcircle of the
// counterclockwise triangle (pa, pb, pc). Cocircular points are not inside,
// which keeps legalization finite on inputs such as regular polygons.
func inCircle(pa, pb, pc, pd *point) bool {
	adx := pa.X - pd.X
	ady := pa.Y - pd.Y
	bdx := pb.X - pd.X
	bdy := pb.Y - pd.Y

	oabd := adx*bdy - bdx*ady
	if oabd <= 0 {
		return false
	}

	cdx := pc.X - pd.X
	cdy := pc.Y - pd.Y

	ocad := cdx*ady - adx*cdy
	if ocad <= 0 {
		return false
	}

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdx*cdy-cdx*bdy) + blift*ocad + clift*oabd
	return det > 0
}

// properCross reports whether the open segments (a,b) and (c,d) intersect at
// a single point interior to both.
func properCross(a, b, c, d *point) bool {
	o1, o2 := orient2d(a, b, c), orient2d(a, b, d)
	if o1 == collinear || o2 == collinear || o1 == o2 {
		return false
	}
	o3, o4 := orient2d(c, d, a), orient2d(c, d, b)
	if o3 == collinear || o4 == collinear || o3 == o4 {
		return false
	}
	return true
}

// triArea2 is twice the signed area of (a, b, c), positive when
// counterclockwise.
func triArea2(a, b, c *point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
