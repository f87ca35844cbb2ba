package triangulate

import (
	"testing"

	"go.viam.com/test"
)

func pt(x, y float64) *point {
	return &point{X: x, Y: y}
}

func TestOrient2d(t *testing.T) {
	a, b := pt(0, 0), pt(10, 0)
	test.That(t, orient2d(a, b, pt(5, 1)), test.ShouldEqual, counterClockwise)
	test.That(t, orient2d(a, b, pt(5, -1)), test.ShouldEqual, clockwise)
	test.That(t, orient2d(a, b, pt(20, 0)), test.ShouldEqual, collinear)
	test.That(t, orient2d(a, b, pt(-3, 0)), test.ShouldEqual, collinear)
	// within the tolerance band counts as collinear
	test.That(t, orient2d(a, b, pt(5, 1e-14)), test.ShouldEqual, collinear)
}

func TestInCircle(t *testing.T) {
	// (0,5), (-4,3), (4,3) lie on the circle of radius 5 around the origin
	pa, pb, pc := pt(0, 5), pt(-4, 3), pt(4, 3)
	test.That(t, orient2d(pa, pb, pc), test.ShouldEqual, counterClockwise)

	test.That(t, inCircle(pa, pb, pc, pt(0, -4)), test.ShouldBeTrue)
	test.That(t, inCircle(pa, pb, pc, pt(0, 0)), test.ShouldBeTrue)
	test.That(t, inCircle(pa, pb, pc, pt(0, -6)), test.ShouldBeFalse)
	// cocircular is not strictly inside
	test.That(t, inCircle(pa, pb, pc, pt(0, -5)), test.ShouldBeFalse)
	test.That(t, inCircle(pa, pb, pc, pt(3, -4)), test.ShouldBeFalse)
}

func TestProperCross(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d *point
		expected   bool
	}{
		{"crossing diagonals", pt(0, 0), pt(10, 10), pt(0, 10), pt(10, 0), true},
		{"disjoint parallels", pt(0, 0), pt(10, 0), pt(0, 1), pt(10, 1), false},
		{"shared endpoint", pt(0, 0), pt(10, 10), pt(10, 10), pt(20, 0), false},
		{"collinear overlap", pt(0, 0), pt(10, 10), pt(5, 5), pt(15, 15), false},
		{"endpoint touches interior", pt(0, 0), pt(10, 0), pt(5, 0), pt(5, 10), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fn := test.ShouldBeTrue
			if !c.expected {
				fn = test.ShouldBeFalse
			}
			test.That(t, properCross(c.a, c.b, c.c, c.d), fn)
			test.That(t, properCross(c.c, c.d, c.a, c.b), fn)
		})
	}
}

func TestTriArea2(t *testing.T) {
	test.That(t, triArea2(pt(0, 0), pt(10, 0), pt(0, 10)), test.ShouldAlmostEqual, 100)
	test.That(t, triArea2(pt(0, 0), pt(0, 10), pt(10, 0)), test.ShouldAlmostEqual, -100)
	test.That(t, triArea2(pt(0, 0), pt(5, 5), pt(10, 10)), test.ShouldAlmostEqual, 0)
}

func TestBetween(t *testing.T) {
	a, b := pt(0, 0), pt(10, 10)
	test.That(t, between(a, b, pt(5, 5)), test.ShouldBeTrue)
	test.That(t, between(a, b, pt(0, 0)), test.ShouldBeFalse)
	test.That(t, between(a, b, pt(10, 10)), test.ShouldBeFalse)
	test.That(t, between(a, b, pt(12, 12)), test.ShouldBeFalse)
	test.That(t, between(a, b, pt(-1, -1)), test.ShouldBeFalse)
}
