package sketch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/wing/curve"
	"gonum.org/v1/gonum/spatial/r2"
)

func square() *curve.Curve {
	return curve.New(r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 1, Y: 1}, r2.Vec{Y: 1}, r2.Vec{})
}

func TestGeoJSONRoundTrip(t *testing.T) {
	in := []*curve.Curve{
		square(),
		curve.New(r2.Vec{X: 100}, r2.Vec{X: 0, Y: 5}),
	}
	var b bytes.Buffer
	if err := WriteGeoJSON(&b, in); err != nil {
		t.Fatal(err)
	}
	out, err := ReadGeoJSON(&b)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d curves, want %d", len(out), len(in))
	}
	for i := range in {
		want, got := in[i].Vertices(), out[i].Vertices()
		if len(got) != len(want) {
			t.Fatalf("curve %d: got %d vertices, want %d", i, len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("curve %d vertex %d: got %v, want %v", i, j, got[j], want[j])
			}
		}
	}
}

func TestReadGeoJSONPolygon(t *testing.T) {
	const doc = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},
"geometry":{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,3],[0,0]],[[1,1],[2,1],[2,2],[1,1]]]}}]}`
	curves, err := ReadGeoJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(curves) != 2 {
		t.Fatalf("got %d rings, want 2", len(curves))
	}
	if !curves[0].Closed() || curves[0].Area() != 6 {
		t.Errorf("outer ring area got %g, want 6", curves[0].Area())
	}
}

func TestStore(t *testing.T) {
	s := NewStore()
	if s.Curve(0) != nil || s.Curve(1) != nil {
		t.Fatal("empty store must resolve nothing")
	}
	id := s.Add(square())
	if id != 1 {
		t.Errorf("first id got %d, want 1", id)
	}
	s.Set(7, curve.New(r2.Vec{}, r2.Vec{X: 1}))
	if got := s.Add(square()); got != 8 {
		t.Errorf("id after 7 got %d, want 8", got)
	}
	c := s.Curve(1)
	c.Reverse()
	if s.Curve(1).First() != (r2.Vec{}) {
		t.Error("Curve must return a copy")
	}
	ids := s.IDs()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 7 || ids[2] != 8 {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestStoreLoadDir(t *testing.T) {
	dir := t.TempDir()
	for name, curves := range map[string][]*curve.Curve{
		"3.geojson":     {square()},
		"12.json":       {curve.New(r2.Vec{X: 5}, r2.Vec{X: 9, Y: 1})},
		"notes.geojson": {square()},
	} {
		var b bytes.Buffer
		if err := WriteGeoJSON(&b, curves); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), b.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "5.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore()
	if err := s.LoadDir(dir); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("got %d curves, want 2", s.Len())
	}
	if c := s.Curve(12); c == nil || c.Last() != (r2.Vec{X: 9, Y: 1}) {
		t.Errorf("curve 12 not loaded: %v", c)
	}
	if s.Curve(3).NumVertices() != 5 {
		t.Error("curve 3 not loaded")
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()
	s := NewStore()
	missing := filepath.Join(dir, "missing.dxf")
	if err := s.Import(missing); err == nil || !strings.Contains(err.Error(), missing) {
		t.Errorf("got %v importing a missing drawing", err)
	}
	if err := s.Import(filepath.Join(dir, "curve.svg")); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("got %v importing an unsupported format", err)
	}
	if s.Len() != 0 {
		t.Errorf("failed imports added %d curves", s.Len())
	}
}

func TestWriteDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dxf")
	err := WriteDXF(path, []*curve.Curve{square(), curve.New(r2.Vec{X: 1})})
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(b), "LWPOLYLINE"); n != 1 {
		t.Errorf("got %d polylines, want 1", n)
	}
	if !strings.Contains(string(b), Layer) {
		t.Error("outline layer missing")
	}
}

func TestPlotSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.png")
	err := PlotSections(path, "sections", []Series{
		{Name: "root", Points: square().Vertices()},
		{Name: "tip", Points: []r2.Vec{{X: 0.2, Y: 0.2}, {X: 0.8, Y: 0.4}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty plot file")
	}
	if err := PlotSections(path, "none", nil); err == nil {
		t.Error("expected error plotting no series")
	}
}
