package wing

import (
	"github.com/soypat/wing/curve"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// drawWing draws the skin and end cap of the wing, then the pattern,
// as selected by the flags.
func (w *Wing) drawWing(dc *drawContext, skin, pattern bool) {
	g := w.cached()
	if skin {
		if g.curves[LeadingEdge] == nil || g.curves[TrailingEdge] == nil {
			Logger().Debug("wing needs leading and trailing edges")
		} else {
			for i, span := range g.curves[TrailingEdge].Spans() {
				w.drawSection(dc, span, i)
			}
			w.drawEndFace(dc)
		}
	}
	if pattern {
		w.drawPattern(dc)
	}
}

// drawSection draws the skin panel between the cross sections at both ends
// of a trailing edge span.
func (w *Wing) drawSection(dc *drawContext, span curve.Span, index int) {
	if dc.mode == ModeSketch {
		dc.sketch.beginPanel(dc)
	}
	te := w.cached().curves[TrailingEdge]
	perim := te.Perim()
	if perim < perimTol {
		return
	}
	pts0, ok0 := w.OrderedSectionPoints(te.PointToPerim(span.P) / perim)
	pts1, ok1 := w.OrderedSectionPoints(te.PointToPerim(span.V) / perim)
	if !ok0 || !ok1 {
		Logger().Debug("skipping undefined panel", "span", index)
		return
	}
	n := len(pts0)
	if len(pts1) < n {
		n = len(pts1)
	}
	for i := 1; i < n; i++ {
		prev0, prev1, p0, p1 := pts0[i-1], pts1[i-1], pts0[i], pts1[i]
		dc.skinTriangle(p1, prev0, p0)
		dc.skinTriangle(prev1, prev0, p1)
	}
	if dc.mode == ModeSketch {
		dc.sketch.endPanel(dc, index)
	}
}

// drawEndFace caps the tip section by pairing points from both ends of the
// section towards its middle. An odd point count ends in a single triangle.
func (w *Wing) drawEndFace(dc *drawContext) {
	pts, ok := w.OrderedSectionPoints(1)
	if !ok {
		return
	}
	for _, t := range capIndices(len(pts)) {
		dc.skinTriangle(pts[t[0]], pts[t[1]], pts[t[2]])
	}
}

// capIndices returns the triangles capping an n point section.
func capIndices(n int) [][3]int {
	var tris [][3]int
	end := n - 1
	for i := 0; i+1 < end; i++ {
		tris = append(tris, [3]int{end, i, i + 1})
		if i+1 == end-1 {
			break
		}
		tris = append(tris, [3]int{end - 1, end, i + 1})
		end--
	}
	return tris
}

// drawPattern draws the pattern cells flat at z=0. Cells are never mirrored.
func (w *Wing) drawPattern(dc *drawContext) {
	solid := w.MakeSolid()
	pattern, ok := w.PatternedArea(w.patternOutline(&solid), solid.Bounds())
	if !ok {
		return
	}
	for _, t := range PatternTriangles(pattern) {
		dc.triangle(flat(t[0]), flat(t[1]), flat(t[2]))
	}
}

func flat(p r2.Vec) r3.Vec { return r3.Vec{X: p.X, Y: p.Y} }
