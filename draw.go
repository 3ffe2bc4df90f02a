package wing

import (
	"github.com/soypat/wing/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mode selects where drawn triangles end up.
type Mode uint8

const (
	// ModeRender draws to a render.Context.
	ModeRender Mode = iota
	// ModeSketch collects each skin panel and turns a chosen one into a
	// flattened outline drawing handed to the host.
	ModeSketch
	// ModeMesh collects every triangle into a mesh.
	ModeMesh
	// ModeSTL collects non-degenerate triangles into a mesh for export.
	ModeSTL
)

func (m Mode) String() string {
	switch m {
	case ModeRender:
		return "render"
	case ModeSketch:
		return "sketch"
	case ModeMesh:
		return "mesh"
	case ModeSTL:
		return "stl"
	}
	return "unknown"
}

// drawContext carries the output of one top level operation through the
// section and skin builders.
type drawContext struct {
	mode Mode
	ctx  render.Context // ModeRender
	mesh *render.Mesh   // ModeMesh, ModeSTL and the current panel in ModeSketch
	// sketch is set in ModeSketch.
	sketch *sketchJob
	// mirror is the wing's mirror flag. It is ignored in ModeSketch.
	mirror bool
}

func newDrawContext(mode Mode, w *Wing) *drawContext {
	dc := &drawContext{mode: mode, mirror: w.params.Mirror && mode != ModeSketch}
	if mode != ModeRender {
		dc.mesh = &render.Mesh{}
	}
	return dc
}

// skinTriangle draws a triangle of the wing skin and its mirror image.
func (dc *drawContext) skinTriangle(a, b, c r3.Vec) {
	dc.triangle(a, b, c)
	if dc.mirror {
		m := render.Triangle3{a, b, c}.MirrorX()
		dc.triangle(m[0], m[1], m[2])
	}
}

// triangle draws a single triangle.
func (dc *drawContext) triangle(a, b, c r3.Vec) {
	switch dc.mode {
	case ModeRender:
		dc.ctx.DrawTriangle(a, b, c)
	case ModeMesh:
		dc.mesh.Add(a, b, c)
	case ModeSTL, ModeSketch:
		dc.mesh.AddNonDegenerate(a, b, c)
	}
}
