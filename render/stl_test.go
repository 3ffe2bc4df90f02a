package render_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/wing/internal/d3"
	"github.com/soypat/wing/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// cube returns the 12 outward facing triangles of an axis aligned box.
func cube(min, max r3.Vec) render.Mesh {
	var m render.Mesh
	corner := func(i int) r3.Vec {
		v := min
		if i&1 != 0 {
			v.X = max.X
		}
		if i&2 != 0 {
			v.Y = max.Y
		}
		if i&4 != 0 {
			v.Z = max.Z
		}
		return v
	}
	quad := func(a, b, c, d int) {
		m.Add(corner(a), corner(b), corner(c))
		m.Add(corner(a), corner(c), corner(d))
	}
	quad(0, 2, 3, 1) // z min
	quad(4, 5, 7, 6) // z max
	quad(0, 1, 5, 4) // y min
	quad(2, 6, 7, 3) // y max
	quad(0, 4, 6, 2) // x min
	quad(1, 3, 7, 5) // x max
	return m
}

func TestSTLCreateWriteRead(t *testing.T) {
	m := cube(r3.Vec{}, r3.Vec{X: 3, Y: 2, Z: 1})
	path := filepath.Join(t.TempDir(), "box.stl")
	err := render.CreateSTL(path, m.Reader())
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, m.Triangles)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatalf("WriteSTL and CreateSTL output length mismatch: %d vs %d", b.Len(), len(bfile))
	}
	if b.String() != string(bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
	if want := 84 + 50*m.Len(); len(bfile) != want {
		t.Errorf("file size got %d, want %d", len(bfile), want)
	}
	got, err := render.ReadSTL(bytes.NewReader(bfile))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != m.Len() {
		t.Fatalf("read %d triangles, want %d", len(got), m.Len())
	}
	for i := range got {
		for j := range got[i] {
			if !d3.EqualWithin(got[i][j], m.Triangles[i][j], 1e-6) {
				t.Errorf("triangle %d vertex %d: got %v, want %v", i, j, got[i][j], m.Triangles[i][j])
			}
		}
	}
}

func TestSTLEmpty(t *testing.T) {
	var m render.Mesh
	if err := render.WriteSTL(io.Discard, m.Triangles); err != render.ErrEmptyModel {
		t.Errorf("got %v, want ErrEmptyModel", err)
	}
	path := filepath.Join(t.TempDir(), "empty.stl")
	if err := render.CreateSTL(path, m.Reader()); err != render.ErrEmptyModel {
		t.Errorf("got %v, want ErrEmptyModel", err)
	}
}

func TestSTLASCII(t *testing.T) {
	m := cube(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1})
	var b bytes.Buffer
	err := render.WriteASCIISTL(&b, "cube", m.Triangles)
	if err != nil {
		t.Fatal(err)
	}
	s := b.String()
	if !strings.HasPrefix(s, "solid cube") {
		t.Errorf("unexpected ASCII header %q", s[:min(len(s), 20)])
	}
	if n := strings.Count(s, "facet normal"); n != m.Len() {
		t.Errorf("got %d facets, want %d", n, m.Len())
	}
}

func TestMeshBounds(t *testing.T) {
	var empty render.Mesh
	if !empty.Bounds().Empty() {
		t.Error("empty mesh must have empty bounds")
	}
	m := cube(r3.Vec{X: -1, Y: 2, Z: 3}, r3.Vec{X: 4, Y: 5, Z: 6})
	box := m.Bounds()
	if box.Min != (r3.Vec{X: -1, Y: 2, Z: 3}) || box.Max != (r3.Vec{X: 4, Y: 5, Z: 6}) {
		t.Errorf("unexpected bounds %+v", box)
	}
}

func TestMeshShadow(t *testing.T) {
	m := cube(r3.Vec{}, r3.Vec{X: 3, Y: 2, Z: 1})
	shadow := m.Shadow()
	if got := shadow.Area(); got < 6-1e-6 || got > 6+1e-6 {
		t.Errorf("shadow area got %g, want 6", got)
	}
	if n := len(m.Outlines()); n != m.Len() {
		t.Errorf("got %d outlines, want %d", n, m.Len())
	}
}

func TestMeshFlatten(t *testing.T) {
	// Two faces of a unit cube folded along the x axis.
	var m render.Mesh
	m.Add(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1})
	m.Add(r3.Vec{}, r3.Vec{X: 1, Y: 1}, r3.Vec{Y: 1})
	m.Add(r3.Vec{X: 1}, r3.Vec{}, r3.Vec{Z: 1})
	m.Add(r3.Vec{X: 1}, r3.Vec{Z: 1}, r3.Vec{X: 1, Z: 1})
	flat := m.Flatten()
	if flat.Len() != m.Len() {
		t.Fatalf("got %d flattened triangles, want %d", flat.Len(), m.Len())
	}
	for i, tri := range flat.Triangles {
		for j := range tri {
			if tri[j].Z != 0 {
				t.Fatalf("triangle %d not flat: %v", i, tri)
			}
			// Edge lengths are preserved.
			want := r3.Norm(r3.Sub(m.Triangles[i][j], m.Triangles[i][(j+1)%3]))
			got := r3.Norm(r3.Sub(tri[j], tri[(j+1)%3]))
			if got < want-1e-9 || got > want+1e-9 {
				t.Errorf("triangle %d edge %d length got %g, want %g", i, j, got, want)
			}
		}
	}
	// Unfolded faces must not overlap: total shadow area equals the surface area.
	if got := flat.Shadow().Area(); got < 2-1e-6 || got > 2+1e-6 {
		t.Errorf("flattened area got %g, want 2", got)
	}
}

