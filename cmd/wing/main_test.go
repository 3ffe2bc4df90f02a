package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/wing/curve"
	"github.com/soypat/wing/render"
	"github.com/soypat/wing/sketch"
	"gonum.org/v1/gonum/spatial/r2"
)

func writeCurves(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	square := curve.New(r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 1, Y: 1}, r2.Vec{Y: 1}, r2.Vec{})
	curves := map[string]*curve.Curve{
		"1.geojson": curve.New(r2.Vec{}, r2.Vec{X: 100}),
		"2.geojson": curve.New(r2.Vec{Y: -20}, r2.Vec{X: 50, Y: -20}, r2.Vec{X: 100, Y: -20}),
		"3.geojson": square,
		"4.geojson": square,
	}
	for name, c := range curves {
		fp, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		err = sketch.WriteGeoJSON(fp, []*curve.Curve{c})
		fp.Close()
		if err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("wing %s: %s", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestExportCommand(t *testing.T) {
	dir := writeCurves(t)
	path := filepath.Join(t.TempDir(), "w.stl")
	out := run(t, "export", "-c", dir, "--le", "1", "--te", "2", "--root", "3", "--tip", "4", "--pieces", "3", path)
	lines := strings.Fields(strings.ReplaceAll(out, " section", "_section"))
	var sections int
	for _, l := range lines {
		if strings.Contains(l, "_section") {
			sections++
		}
	}
	if sections != 3 {
		t.Errorf("got %d sections in output %q", sections, out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestExportStdout(t *testing.T) {
	dir := writeCurves(t)
	out := run(t, "export", "-c", dir, "--le", "1", "--te", "2", "--root", "3", "--tip", "4", "-")
	tris, err := render.ReadSTL(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) == 0 {
		t.Error("no triangles written to stdout")
	}
}

func TestInfoCommand(t *testing.T) {
	dir := writeCurves(t)
	out := run(t, "info", "-c", dir, "--le", "1", "--te", "2", "--root", "3", "--tip", "4")
	for _, want := range []string{"leading edge", "solid triangles", "<Wing ", `TrailingEdge="2"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMissingCurve(t *testing.T) {
	dir := writeCurves(t)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"info", "-c", dir, "--le", "9"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for a missing curve id")
	}
	slotIDs = [5]int{}
}
