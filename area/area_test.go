package area

import (
	"math"
	"testing"

	"github.com/soypat/wing/curve"
	"github.com/soypat/wing/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

func square(min, max r2.Vec) Area {
	return Rect(d2.Box{Min: min, Max: max})
}

func TestBooleans(t *testing.T) {
	a := square(r2.Vec{}, r2.Vec{X: 2, Y: 2})
	b := square(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 3, Y: 3})
	for _, test := range []struct {
		name string
		got  Area
		want float64
	}{
		{"union", a.Union(b), 7},
		{"subtract", a.Subtract(b), 3},
		{"intersect", a.Intersect(b), 1},
		{"union empty", a.Union(Area{}), 4},
		{"intersect empty", a.Intersect(Area{}), 0},
		{"subtract empty", a.Subtract(Area{}), 4},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := test.got.Area(); math.Abs(got-test.want) > 1e-9 {
				t.Errorf("area got %g, want %g", got, test.want)
			}
		})
	}
}

func TestSubtractMakesTwoPieces(t *testing.T) {
	a := square(r2.Vec{}, r2.Vec{X: 10, Y: 1})
	wall := square(r2.Vec{X: 4, Y: -1}, r2.Vec{X: 6, Y: 2})
	got := a.Subtract(wall)
	if got.NumRings() != 2 {
		t.Fatalf("expected the wall to split the strip in two rings, got %d", got.NumRings())
	}
	if math.Abs(got.Area()-8) > 1e-9 {
		t.Errorf("area got %g, want 8", got.Area())
	}
}

func TestOffset(t *testing.T) {
	a := square(r2.Vec{}, r2.Vec{X: 1, Y: 1})
	in := a.Offset(-0.25)
	if got := in.Area(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("inward offset area got %g, want 0.25", got)
	}
	box := in.Box()
	if !box.Equals(d2.Box{Min: d2.Elem(0.25), Max: d2.Elem(0.75)}, 1e-9) {
		t.Errorf("inward offset box got %+v", box)
	}
	out := a.Offset(1)
	// Square plus four edge strips plus corner arcs no larger than a unit circle.
	if got := out.Area(); got < 8 || got > 5+math.Pi+1e-9 {
		t.Errorf("outward offset area got %g, want in [8, %g]", got, 5+math.Pi)
	}
	if !out.Box().Equals(d2.Box{Min: d2.Elem(-1), Max: d2.Elem(2)}, 1e-9) {
		t.Errorf("outward offset box got %+v", out.Box())
	}
	if got := a.Offset(-0.6); !got.Empty() {
		t.Errorf("offsetting past the centre should leave nothing, got area %g", got.Area())
	}
	long := square(r2.Vec{Y: -20}, r2.Vec{X: 100})
	if got := long.Offset(-12); !got.Empty() {
		t.Errorf("strip narrower than the offset should vanish, got %+v", got.Box())
	}
}

func TestOffsetReflexCorner(t *testing.T) {
	l := FromCurves(curve.New(
		r2.Vec{}, r2.Vec{X: 2}, r2.Vec{X: 2, Y: 1}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 1, Y: 2}, r2.Vec{Y: 2}, r2.Vec{},
	))
	in := l.Offset(-0.25)
	if in.NumRings() != 1 {
		t.Fatalf("got %d rings", in.NumRings())
	}
	if !in.Box().Equals(d2.Box{Min: d2.Elem(0.25), Max: d2.Elem(1.75)}, 1e-9) {
		t.Errorf("box got %+v", in.Box())
	}
	// The mitred L has area 1.25, the inner corner is rounded about (1,1).
	lo, hi := 1.25+0.0625*(1-math.Pi/4), 1.25+0.0625
	if got := in.Area(); got < lo-1e-9 || got > hi {
		t.Errorf("area got %g, want in [%g, %g]", got, lo, hi)
	}
	for _, c := range in.Curves() {
		for _, v := range c.Vertices() {
			if dx, dy := v.X-1, v.Y-1; math.Hypot(dx, dy) < 0.25-1e-9 {
				t.Errorf("vertex %v closer than the offset to the inner corner", v)
			}
		}
	}
}

func TestOffsetHole(t *testing.T) {
	ring := func(min, max float64) *curve.Curve {
		return curve.New(r2.Vec{X: min, Y: min}, r2.Vec{X: max, Y: min}, r2.Vec{X: max, Y: max}, r2.Vec{X: min, Y: max}, r2.Vec{X: min, Y: min})
	}
	a := FromCurves(ring(0, 4), ring(1, 3))
	if got := a.Area(); math.Abs(got-12) > 1e-9 {
		t.Fatalf("holed square area got %g, want 12", got)
	}
	in := a.Offset(-0.25)
	// Outer ring shrinks to 3.5 square, the hole grows to 2.5 square with
	// rounded corners.
	lo, hi := 3.5*3.5-6.25, 3.5*3.5-5
	if got := in.Area(); got <= lo || got >= hi {
		t.Errorf("area got %g, want in (%g, %g)", got, lo, hi)
	}
	if !in.Box().Equals(d2.Box{Min: d2.Elem(0.25), Max: d2.Elem(3.75)}, 1e-9) {
		t.Errorf("box got %+v", in.Box())
	}
}

func TestUnionRingsOpen(t *testing.T) {
	a := square(r2.Vec{}, r2.Vec{X: 2, Y: 2})
	b := square(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 3, Y: 3})
	u := a.Union(b)
	if u.NumRings() != 1 {
		t.Fatalf("got %d rings", u.NumRings())
	}
	// Closed curves repeat the first vertex once.
	if got := u.Curves()[0].NumVertices(); got != 9 {
		t.Errorf("union ring got %d curve vertices, want 9", got)
	}
	// Chained operations on normalized rings keep working.
	c := u.Subtract(square(r2.Vec{X: 0.5, Y: 0.5}, r2.Vec{X: 1.5, Y: 1.5})).Union(square(r2.Vec{X: 2.5}, r2.Vec{X: 4, Y: 0.5}))
	if got := c.Area(); math.Abs(got-6.75) > 1e-9 {
		t.Errorf("chained area got %g", got)
	}
}

func TestShadow(t *testing.T) {
	tris := [][3]r2.Vec{
		{{}, {X: 1}, {X: 1, Y: 1}},
		{{}, {Y: 1}, {X: 1, Y: 1}}, // clockwise
		{{}, {X: 0.5}, {X: 1}},     // edge on
	}
	s := Shadow(tris)
	if got := s.Area(); math.Abs(got-1) > 1e-9 {
		t.Errorf("shadow area got %g, want 1", got)
	}
	if Shadow(nil).Area() != 0 {
		t.Error("empty shadow should have no area")
	}
}

func TestCurvesClosed(t *testing.T) {
	a := FromCurves(curve.New(r2.Vec{}, r2.Vec{X: 2}, r2.Vec{X: 2, Y: 2}, r2.Vec{}))
	curves := a.Curves()
	if len(curves) != 1 {
		t.Fatalf("got %d curves", len(curves))
	}
	c := curves[0]
	if !c.Closed() || c.NumVertices() != 4 {
		t.Errorf("ring should be closed with 4 vertices, got %v", c.Vertices())
	}
	if math.Abs(c.Area()-2) > 1e-12 {
		t.Errorf("triangle area got %g", c.Area())
	}
}
