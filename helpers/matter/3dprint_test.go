package matter

import (
	"math"
	"testing"

	"github.com/soypat/wing/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestScale(t *testing.T) {
	var m render.Mesh
	m.Add(r3.Vec{}, r3.Vec{X: 100}, r3.Vec{Y: 50, Z: 10})
	got := PLA.Scale(m)
	if got.Triangles[0][0] != (r3.Vec{}) {
		t.Error("origin must stay fixed")
	}
	// The printed part shrinks back to the designed size.
	if x := got.Triangles[0][1].X * (1 - PLA.shrink); math.Abs(x-100) > 1e-9 {
		t.Errorf("cooled size %g, want 100", x)
	}
	if m.Triangles[0][1].X != 100 {
		t.Error("input mesh modified")
	}
	if same := (ViscousMaterial{}).Scale(m); same.Triangles[0] != m.Triangles[0] {
		t.Error("zero shrink must not scale")
	}
}

func TestLookup(t *testing.T) {
	if m, ok := Lookup("pla"); !ok || m != PLA {
		t.Error("pla not found")
	}
	if _, ok := Lookup("wood"); ok {
		t.Error("unexpected material")
	}
}
