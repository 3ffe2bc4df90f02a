package wing

import (
	"github.com/soypat/wing/area"
	"github.com/soypat/wing/curve"
	"github.com/soypat/wing/internal/d2"
	"github.com/soypat/wing/internal/d3"
	"github.com/soypat/wing/render"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// patternMargin grows the tiled region past the wing box.
	patternMargin = 5.0
	// dividerOverhang extends divider strips past the wing box in y.
	dividerOverhang = 10.0
	// cellWallFactor converts wall thickness into the horizontal loss of a
	// triangular cell, 4/sqrt(3).
	cellWallFactor = 2.309
)

// patternOutline returns the shadow of solid shrunk by the pattern border.
func (w *Wing) patternOutline(solid *render.Mesh) area.Area {
	return solid.Shadow().Offset(-w.params.PatternBorder)
}

// PatternedArea tiles triangular lightening cells over box and keeps the
// parts of them inside outline. Cells are cut by divider strips where the
// wing is split into pieces. It returns false when the cell walls leave no
// room for cells or the steps are not positive.
func (w *Wing) PatternedArea(outline area.Area, box d3.Box) (area.Area, bool) {
	p := w.params
	if p.PatternXStep <= 0 || p.PatternYStep <= 0 || box.Empty() {
		return area.Area{}, false
	}
	tx := p.PatternXStep - p.PatternWall*cellWallFactor
	ty := p.PatternYStep*0.5 - p.PatternWall
	if tx < 0 || ty < 0 {
		Logger().Debug("pattern step too small for wall", "tx", tx, "ty", ty)
		return area.Area{}, false
	}
	tile := d2.Box{Min: d3.ToR2(box.Min), Max: d3.ToR2(box.Max)}.Grow(patternMargin)
	hx, hy := p.PatternXStep*0.5, p.PatternYStep*0.5
	var cells []area.Area
	cell := func(a, b, c r2.Vec) {
		cells = append(cells, area.FromCurves(curve.New(a, b, c, a)))
	}
	for x := tile.Min.X; x < tile.Max.X; x += p.PatternXStep {
		for y := tile.Min.Y; y < tile.Max.Y; y += p.PatternYStep {
			cell(r2.Vec{X: x - tx*0.5, Y: y}, r2.Vec{X: x + tx*0.5, Y: y}, r2.Vec{X: x, Y: y + ty})
			cell(r2.Vec{X: x + hx, Y: y}, r2.Vec{X: x + hx + tx*0.5, Y: y + ty}, r2.Vec{X: x + hx - tx*0.5, Y: y + ty})
			cell(r2.Vec{X: x + hx - tx*0.5, Y: y + hy}, r2.Vec{X: x + hx + tx*0.5, Y: y + hy}, r2.Vec{X: x + hx, Y: y + hy + ty})
			cell(r2.Vec{X: x, Y: y + hy}, r2.Vec{X: x + tx*0.5, Y: y + hy + ty}, r2.Vec{X: x - tx*0.5, Y: y + hy + ty})
		}
	}
	pattern := area.UnionAll(cells)
	if n := p.SplitIntoPieces; n > 1 && p.SplitWallWidth > 0 {
		width := box.Max.X - box.Min.X
		var walls []area.Area
		for i := 1; i < n; i++ {
			x := box.Min.X + width*float64(i)/float64(n)
			walls = append(walls, area.Rect(d2.Box{
				Min: r2.Vec{X: x - p.SplitWallWidth*0.5, Y: box.Min.Y - dividerOverhang},
				Max: r2.Vec{X: x + p.SplitWallWidth*0.5, Y: box.Max.Y + dividerOverhang},
			}))
		}
		pattern = pattern.Subtract(area.UnionAll(walls))
	}
	return outline.Intersect(pattern), true
}

// PatternTriangles fans every ring of a from its first vertex.
func PatternTriangles(a area.Area) [][3]r2.Vec {
	var tris [][3]r2.Vec
	for _, c := range a.Curves() {
		spans := c.Spans()
		pts := make([]r2.Vec, len(spans))
		for i, s := range spans {
			pts[i] = s.P
		}
		for i := 2; i < len(pts); i++ {
			tris = append(tris, [3]r2.Vec{pts[0], pts[i], pts[i-1]})
		}
	}
	return tris
}
