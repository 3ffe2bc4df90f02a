package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTransformInverse(t *testing.T) {
	const tol = 1e-12
	xAxis := r2.Unit(r2.Vec{X: 3, Y: 4})
	tf := FrameTransform(r2.Vec{X: 10, Y: -2}, xAxis, Perp(xAxis))
	inv, ok := tf.Inverse()
	if !ok {
		t.Fatal("frame transform reported singular")
	}
	for _, p := range []r2.Vec{{}, {X: 1}, {X: -5, Y: 7}, {X: 1e3, Y: 1e-3}} {
		got := inv.ApplyPos(tf.ApplyPos(p))
		if !EqualWithin(got, p, tol*1e3) {
			t.Errorf("round trip of %v got %v", p, got)
		}
	}
	if !EqualWithin(inv.ApplyPos(r2.Vec{X: 10, Y: -2}), r2.Vec{}, tol) {
		t.Error("origin does not map to zero")
	}
	if got := tf.Mul(inv); got != identityT {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1
				}
				if math.Abs(got.At(i, j)-want) > tol {
					t.Fatalf("T*T^-1 at (%d,%d) = %g, want %g", i, j, got.At(i, j), want)
				}
			}
		}
	}
}

func TestTransformSingular(t *testing.T) {
	tf := FrameTransform(r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 2})
	if _, ok := tf.Inverse(); ok {
		t.Error("parallel axes must not be invertible")
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(r2.Vec{X: 1}, math.Pi/2)
	if !EqualWithin(got, r2.Vec{Y: 1}, 1e-15) {
		t.Errorf("rotating x axis by 90 degrees got %v", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := r2.Vec{X: 0.1, Y: 0.7}
	b := r2.Vec{X: 0.3, Y: -0.2}
	if Lerp(a, b, 0) != a || Lerp(a, b, 1) != b {
		t.Error("lerp endpoints not exact")
	}
}
