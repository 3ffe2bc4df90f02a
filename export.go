package wing

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
	"github.com/soypat/wing/area"
	"github.com/soypat/wing/curve"
	"github.com/soypat/wing/helpers/matter"
	"github.com/soypat/wing/internal/d3"
	"github.com/soypat/wing/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// patternZMargin extends the pattern solid past the wing in z.
	patternZMargin = 10.0
	// sectionMargin grows section cuboids so neighbouring prints overlap.
	sectionMargin = 1.0
	// minExtrudeArea is the smallest pattern ring extruded into the solid.
	minExtrudeArea = 1.0
)

// ExportOptions configure ExportFiles.
type ExportOptions struct {
	// ASCII writes ASCII STL files instead of binary.
	ASCII bool
	// Bundle also packs every file written into a zip archive next to the
	// main file, named after its stem.
	Bundle bool
	// Material, if set, scales every file written to compensate for the
	// shrinkage of the print material.
	Material *matter.ViscousMaterial
}

// MakeSolid returns the closed skin of the wing, mirrored if set, with
// degenerate triangles removed.
func (w *Wing) MakeSolid() render.Mesh {
	dc := newDrawContext(ModeSTL, w)
	w.drawWing(dc, true, false)
	return *dc.mesh
}

// Triangles returns every triangle drawn for the wing with its current
// render flags, including degenerate ones.
func (w *Wing) Triangles() render.Mesh {
	dc := newDrawContext(ModeMesh, w)
	w.drawWing(dc, w.params.RenderWing, w.params.RenderPattern)
	return *dc.mesh
}

// MakeExtrudedAreaSolid extrudes every ring of pattern whose area exceeds
// one square unit between minz and maxz. Each ring edge becomes a wall of
// two triangles and each ring is capped by two triangle fans.
func MakeExtrudedAreaSolid(pattern area.Area, minz, maxz float64) render.Mesh {
	var m render.Mesh
	for _, c := range pattern.Curves() {
		if c.Area() <= minExtrudeArea {
			continue
		}
		pts := stlRing(c)
		n := len(pts)
		if n < 3 {
			continue
		}
		lo := func(p r2.Vec) r3.Vec { return r3.Vec{X: p.X, Y: p.Y, Z: minz} }
		hi := func(p r2.Vec) r3.Vec { return r3.Vec{X: p.X, Y: p.Y, Z: maxz} }
		for i, p := range pts {
			q := pts[(i+1)%n]
			m.AddNonDegenerate(lo(p), lo(q), hi(q))
			m.AddNonDegenerate(lo(p), hi(q), hi(p))
		}
		for i := 2; i < n; i++ {
			m.AddNonDegenerate(hi(pts[i]), hi(pts[0]), hi(pts[i-1]))
			m.AddNonDegenerate(lo(pts[0]), lo(pts[i]), lo(pts[i-1]))
		}
	}
	return m
}

// stlRing returns the vertices of the closed curve c without the closing
// vertex, skipping vertices that share the STL single precision
// coordinates of their predecessor.
func stlRing(c *curve.Curve) []r2.Vec {
	same := func(a, b r2.Vec) bool {
		return float32(a.X) == float32(b.X) && float32(a.Y) == float32(b.Y)
	}
	var pts []r2.Vec
	for _, v := range c.Vertices() {
		if len(pts) == 0 || !same(pts[len(pts)-1], v) {
			pts = append(pts, v)
		}
	}
	for len(pts) > 1 && same(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// MakeCuboidSection returns the box mesh of section index of num equal
// slabs of box along x. Slabs are grown by margin in y and z. The first
// and last slabs are also grown outwards in x. An index outside [0, num)
// yields an empty mesh.
func MakeCuboidSection(index, num int, box d3.Box, margin float64) render.Mesh {
	if num <= 0 || index < 0 || index >= num {
		return render.Mesh{}
	}
	width := (box.Max.X - box.Min.X) / float64(num)
	lo := r3.Vec{X: box.Min.X + width*float64(index), Y: box.Min.Y - margin, Z: box.Min.Z - margin}
	hi := r3.Vec{X: box.Min.X + width*float64(index+1), Y: box.Max.Y + margin, Z: box.Max.Z + margin}
	if index == 0 {
		lo.X -= margin
	}
	if index == num-1 {
		hi.X = box.Max.X + margin
	}
	return cuboid(lo, hi)
}

func cuboid(lo, hi r3.Vec) render.Mesh {
	var m render.Mesh
	v := func(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }
	// y min
	m.Add(v(lo.X, lo.Y, lo.Z), v(hi.X, lo.Y, lo.Z), v(hi.X, lo.Y, hi.Z))
	m.Add(v(lo.X, lo.Y, lo.Z), v(hi.X, lo.Y, hi.Z), v(lo.X, lo.Y, hi.Z))
	// x max
	m.Add(v(hi.X, lo.Y, lo.Z), v(hi.X, hi.Y, lo.Z), v(hi.X, hi.Y, hi.Z))
	m.Add(v(hi.X, lo.Y, lo.Z), v(hi.X, hi.Y, hi.Z), v(hi.X, lo.Y, hi.Z))
	// y max
	m.Add(v(hi.X, hi.Y, lo.Z), v(lo.X, hi.Y, lo.Z), v(lo.X, hi.Y, hi.Z))
	m.Add(v(hi.X, hi.Y, lo.Z), v(lo.X, hi.Y, hi.Z), v(hi.X, hi.Y, hi.Z))
	// x min
	m.Add(v(lo.X, hi.Y, lo.Z), v(lo.X, lo.Y, lo.Z), v(lo.X, lo.Y, hi.Z))
	m.Add(v(lo.X, hi.Y, lo.Z), v(lo.X, lo.Y, hi.Z), v(lo.X, hi.Y, hi.Z))
	// z max
	m.Add(v(lo.X, lo.Y, hi.Z), v(hi.X, lo.Y, hi.Z), v(hi.X, hi.Y, hi.Z))
	m.Add(v(lo.X, lo.Y, hi.Z), v(hi.X, hi.Y, hi.Z), v(lo.X, hi.Y, hi.Z))
	// z min
	m.Add(v(hi.X, lo.Y, lo.Z), v(lo.X, lo.Y, lo.Z), v(hi.X, hi.Y, lo.Z))
	m.Add(v(hi.X, hi.Y, lo.Z), v(lo.X, lo.Y, lo.Z), v(lo.X, hi.Y, lo.Z))
	return m
}

// ExportFiles writes the wing solid to path, its pattern solid to
// "<stem> pattern.stl" and each cuboid section to "<stem> sectionNN.stl".
// It returns the paths written. An empty pattern is not written.
// Write failures are returned as *ExportError.
func (w *Wing) ExportFiles(path string, opts ExportOptions) ([]string, error) {
	if w.params.SplitIntoPieces < 0 {
		return nil, ErrMsg("negative number of sections")
	}
	solid := w.MakeSolid()
	if solid.Len() == 0 {
		return nil, ErrNoSolid
	}
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	var written []string
	write := func(p string, m render.Mesh) error {
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		if opts.Material != nil {
			m = opts.Material.Scale(m)
		}
		if err := render.WriteFile(p, name, m, opts.ASCII); err != nil {
			return &ExportError{Path: p, Err: err}
		}
		Logger().Info("wrote STL", "path", p, "triangles", m.Len())
		written = append(written, p)
		return nil
	}
	if err := write(path, solid); err != nil {
		return written, err
	}

	box := solid.Bounds()
	pattern, ok := w.PatternedArea(w.patternOutline(&solid), box)
	if ok {
		pm := MakeExtrudedAreaSolid(pattern, box.Min.Z-patternZMargin, box.Max.Z+patternZMargin)
		if pm.Len() > 0 {
			if err := write(stem+" pattern.stl", pm); err != nil {
				return written, err
			}
		} else {
			Logger().Debug("pattern empty, not written")
		}
	}

	for i := 0; i < w.params.SplitIntoPieces; i++ {
		section := MakeCuboidSection(i, w.params.SplitIntoPieces, box, sectionMargin)
		if err := write(fmt.Sprintf("%s section%02d.stl", stem, i), section); err != nil {
			return written, err
		}
	}

	if opts.Bundle {
		zipPath := stem + ".zip"
		z := archiver.NewZip()
		z.OverwriteExisting = true
		if err := z.Archive(written, zipPath); err != nil {
			return written, &ExportError{Path: zipPath, Err: err}
		}
		Logger().Info("wrote bundle", "path", zipPath, "files", len(written))
		written = append(written, zipPath)
	}
	return written, nil
}
