package triangulate

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestPointRoundTrip(t *testing.T) {
	p := newPoint(r2.Point{X: 1.5, Y: -2.25})
	test.That(t, p.X, test.ShouldEqual, 1.5)
	test.That(t, p.Y, test.ShouldEqual, -2.25)
	test.That(t, p.r2(), test.ShouldResemble, r2.Point{X: 1.5, Y: -2.25})
}

func TestSweepLess(t *testing.T) {
	test.That(t, sweepLess(pt(5, 1), pt(0, 2)), test.ShouldBeTrue)
	test.That(t, sweepLess(pt(0, 2), pt(5, 1)), test.ShouldBeFalse)

	// ties on y fall through to x
	test.That(t, sweepLess(pt(1, 3), pt(2, 3)), test.ShouldBeTrue)
	test.That(t, sweepLess(pt(2, 3), pt(1, 3)), test.ShouldBeFalse)

	p := pt(1, 1)
	test.That(t, sweepLess(p, p), test.ShouldBeFalse)
}

func TestNewSegment(t *testing.T) {
	lo, hi := pt(3, 1), pt(0, 5)
	s := newSegment(lo, hi)
	test.That(t, s.p, test.ShouldEqual, lo)
	test.That(t, s.q, test.ShouldEqual, hi)
	test.That(t, hi.segments, test.ShouldHaveLength, 1)
	test.That(t, hi.segments[0], test.ShouldEqual, s)
	test.That(t, lo.segments, test.ShouldHaveLength, 0)

	// normalization is independent of argument order
	lo2, hi2 := pt(3, 1), pt(0, 5)
	s2 := newSegment(hi2, lo2)
	test.That(t, s2.p, test.ShouldEqual, lo2)
	test.That(t, s2.q, test.ShouldEqual, hi2)
	test.That(t, hi2.segments, test.ShouldHaveLength, 1)

	// on equal y the x-greater endpoint closes the segment
	e1, e2 := pt(0, 2), pt(4, 2)
	s3 := newSegment(e2, e1)
	test.That(t, s3.p, test.ShouldEqual, e1)
	test.That(t, s3.q, test.ShouldEqual, e2)
	test.That(t, e2.segments, test.ShouldHaveLength, 1)
}
