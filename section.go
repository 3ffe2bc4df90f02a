package wing

import (
	"github.com/soypat/wing/curve"
	"github.com/soypat/wing/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// UnitizedSectionPoints returns the airfoil at tipFraction of the span in
// unit chord coordinates. One point is returned per root profile vertex,
// blending the root and tip profiles at the same perimeter fraction.
// Fractions 0 and 1 return the root and tip profiles exactly.
// It returns false if either profile is missing or degenerate.
func (w *Wing) UnitizedSectionPoints(tipFraction float64) ([]r2.Vec, bool) {
	g := w.cached()
	root, tip := g.curves[RootProfile], g.curves[TipProfile]
	if root == nil || tip == nil || !g.rootOK || !g.tipOK {
		return nil, false
	}
	perim := root.Perim()
	if perim <= 0 {
		return nil, false
	}
	straight := w.params.CentreStraight && tipFraction < 0.01
	verts := root.Vertices()
	pts := make([]r2.Vec, 0, len(verts))
	var travelled float64
	for i, v := range verts {
		if i > 0 {
			travelled += r2.Norm(r2.Sub(v, verts[i-1]))
		}
		fraction := travelled / perim
		rp := UnitPoint(root, g.root, fraction, straight)
		tp := UnitPoint(tip, g.tip, fraction, straight)
		pts = append(pts, d2.Lerp(rp, tp, tipFraction))
	}
	return pts, true
}

// leadingEdgePoint returns the leading edge point at the perimeter fraction.
func (g *geometry) leadingEdgePoint(fraction float64) r2.Vec {
	le := g.curves[LeadingEdge]
	return le.PerimToPoint(le.Perim() * fraction)
}

// trailingEdgePoint casts a ray in -y from the leading edge point p and
// returns its nearest intersection with the trailing edge.
func (g *geometry) trailingEdgePoint(p r2.Vec) (r2.Vec, bool) {
	te := g.curves[TrailingEdge]
	bottom := te.Box().Min.Y
	if p.Y < bottom {
		bottom = p.Y
	}
	ray := curve.New(p, r2.Vec{X: p.X, Y: bottom - 1})
	hits := ray.Intersections(te)
	if len(hits) == 0 {
		return r2.Vec{}, false
	}
	return hits[0], true
}

// Angle returns the twist in degrees at the span fraction. It is read off
// the angle graph as the height of the lowest point of the graph at
// fraction of its width, measured from the bottom of the graph. Without an
// angle graph, or when the vertical line misses it, the twist is zero.
func (w *Wing) Angle(fraction float64) float64 {
	graph := w.cached().curves[AngleGraph]
	if graph == nil {
		return 0
	}
	box := graph.Box()
	x := box.Min.X + box.Width()*fraction
	line := curve.New(r2.Vec{X: x, Y: box.Min.Y - 1}, r2.Vec{X: x, Y: box.Max.Y + 1})
	hits := line.Intersections(graph)
	if len(hits) == 0 {
		return 0
	}
	return hits[0].Y - box.Min.Y
}

// OrderedSectionPoints returns the cross section of the wing at the
// perimeter fraction of the trailing edge in world coordinates. The unit
// section is twisted and then laid along the chord running from the
// leading edge to the trailing edge point straight below it. The height
// of each point is its unit y scaled by the chord length.
// It returns false when the section is undefined at fraction.
func (w *Wing) OrderedSectionPoints(fraction float64) ([]r3.Vec, bool) {
	g := w.cached()
	if g.curves[LeadingEdge] == nil || g.curves[TrailingEdge] == nil {
		return nil, false
	}
	le := g.leadingEdgePoint(fraction)
	te, ok := g.trailingEdgePoint(le)
	if !ok {
		Logger().Debug("no trailing edge below leading edge", "fraction", fraction, "x", le.X, "y", le.Y)
		return nil, false
	}
	v := r2.Sub(te, le)
	length := r2.Norm(v)
	unit, ok := w.UnitizedSectionPoints(fraction)
	if !ok {
		return nil, false
	}
	angle := w.Angle(fraction) * degToRad
	pts := make([]r3.Vec, len(unit))
	for i, pt := range unit {
		pt = d2.Rotate(pt, angle)
		h := r2.Add(le, r2.Scale(pt.X, v))
		pts[i] = r3.Vec{X: h.X, Y: h.Y, Z: pt.Y * length}
	}
	return pts, true
}

// LegacyXRatioFraction returns the span fraction of x as its ratio along the
// x extent of the trailing edge. It matches the perimeter fraction only for
// straight trailing edges and is kept for wings laid out with it.
func LegacyXRatioFraction(te *curve.Curve, x float64) float64 {
	box := te.Box()
	if box.Width() <= 0 {
		return 0
	}
	return Clamp((x-box.Min.X)/box.Width(), 0, 1)
}
