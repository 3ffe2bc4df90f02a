// Package area provides the planar region operations the wing pattern and
// outline generation rely on: boolean union, subtraction and intersection,
// offsetting and the shadow a set of triangles casts on the xy plane.
//
// Regions are stored as github.com/ctessum/geom polygons, which perform
// the boolean operations. An Area may hold several outer rings and holes.
package area

import (
	"math"
	"sort"

	"github.com/ctessum/geom"
	"github.com/soypat/wing/curve"
	"github.com/soypat/wing/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// minRingArea is the area under which rings and triangles are considered degenerate.
const minRingArea = 1e-9

// dupTol is the distance under which two ring vertices are the same.
const dupTol = 1e-12

// circleFacets is the number of sides of the polygon approximating a full
// circle when rounding offset corners.
const circleFacets = 16

// Area is a region of the plane bounded by closed rings.
// The zero value is an empty area.
type Area struct {
	poly geom.Polygon
}

// FromCurves returns an area whose rings are the given curves.
// The curves are treated as closed.
func FromCurves(curves ...*curve.Curve) Area {
	var a Area
	for _, c := range curves {
		a.Append(c)
	}
	return a
}

// Append adds the curve as a ring of the area without merging it with the
// existing rings. Rings with fewer than three distinct vertices are ignored.
func (a *Area) Append(c *curve.Curve) {
	if c == nil {
		return
	}
	a.appendRing(c.Vertices())
}

func (a *Area) appendRing(pts []r2.Vec) {
	pts = cleanRing(pts)
	if pts == nil {
		return
	}
	path := make(geom.Path, len(pts))
	for i, p := range pts {
		path[i] = geom.Point{X: p.X, Y: p.Y}
	}
	a.poly = append(a.poly, path)
}

// cleanRing drops repeated and collinear vertices, the closing vertex
// included since geom paths are implicitly closed. It returns nil when
// fewer than three vertices or no area is left.
func cleanRing(pts []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, 0, len(pts))
	for _, p := range pts {
		if len(out) == 0 || !d2.EqualWithin(out[len(out)-1], p, dupTol) {
			out = append(out, p)
		}
	}
	for len(out) > 1 && d2.EqualWithin(out[0], out[len(out)-1], dupTol) {
		out = out[:len(out)-1]
	}
	for removed := true; removed; {
		removed = false
		for i := 0; i < len(out) && len(out) >= 3; i++ {
			prev, next := out[(i+len(out)-1)%len(out)], out[(i+1)%len(out)]
			ab, bc := r2.Sub(out[i], prev), r2.Sub(next, out[i])
			if math.Abs(d2.Cross(ab, bc)) <= 1e-12*r2.Norm(ab)*r2.Norm(bc) {
				out = append(out[:i], out[i+1:]...)
				i--
				removed = true
			}
		}
	}
	if len(out) < 3 || math.Abs(d2.Set(out).SignedArea()) < minRingArea {
		return nil
	}
	return out
}

// Rect returns a rectangular area spanning the box.
func Rect(box d2.Box) Area {
	var a Area
	a.appendRing(box.Vertices())
	return a
}

// Empty returns true if the area has no rings.
func (a Area) Empty() bool { return len(a.poly) == 0 }

// NumRings returns the number of rings in the area, holes included.
func (a Area) NumRings() int { return len(a.poly) }

// Area returns the enclosed area, holes subtracted.
func (a Area) Area() float64 {
	if a.Empty() {
		return 0
	}
	return a.poly.Area()
}

// Box returns the bounding box of the area.
func (a Area) Box() d2.Box {
	box := d2.EmptyBox()
	for _, path := range a.poly {
		for _, p := range path {
			box = box.Include(r2.Vec{X: p.X, Y: p.Y})
		}
	}
	return box
}

// Union returns the region covered by a or b.
func (a Area) Union(b Area) Area {
	switch {
	case a.Empty():
		return b
	case b.Empty():
		return a
	}
	return fromPolygonal(a.poly.Union(b.poly))
}

// Subtract returns the region of a not covered by b.
func (a Area) Subtract(b Area) Area {
	if a.Empty() || b.Empty() {
		return a
	}
	return fromPolygonal(a.poly.Difference(b.poly))
}

// Intersect returns the region covered by both a and b.
func (a Area) Intersect(b Area) Area {
	if a.Empty() || b.Empty() {
		return Area{}
	}
	return fromPolygonal(a.poly.Intersection(b.poly))
}

// fromPolygonal converts a boolean operation result back into an area,
// dropping the closing vertex geom appends to every ring along with any
// collinear or zero area leftovers of the clipping.
func fromPolygonal(p geom.Polygonal) Area {
	var a Area
	for _, poly := range p.Polygons() {
		for _, path := range poly {
			pts := make([]r2.Vec, len(path))
			for i, pt := range path {
				pts[i] = r2.Vec{X: pt.X, Y: pt.Y}
			}
			a.appendRing(pts)
		}
	}
	return a
}

// Offset grows the area outwards by d. Negative d shrinks it.
// Every boundary edge is moved by |d| along its normal. Corners opened up
// by the move are rounded and edges that collapse are removed, so rings
// narrower than 2|d| vanish when shrinking.
func (a Area) Offset(d float64) Area {
	if d == 0 || a.Empty() {
		return a
	}
	rings := a.rings()
	var outer, holes []Area
	for i, ring := range rings {
		hole := isHole(rings, i)
		if (d2.Set(ring).SignedArea() < 0) != hole {
			ring = reversed(ring)
		}
		var moved Area
		moved.appendRing(offsetRing(ring, d))
		if moved.Empty() {
			continue
		}
		if hole {
			holes = append(holes, moved)
		} else {
			outer = append(outer, moved)
		}
	}
	if d < 0 && len(holes) == 0 {
		// Shrunk outer rings stay disjoint.
		var result Area
		for _, o := range outer {
			result.poly = append(result.poly, o.poly...)
		}
		return result
	}
	return UnionAll(outer).Subtract(UnionAll(holes))
}

func (a Area) rings() [][]r2.Vec {
	rings := make([][]r2.Vec, len(a.poly))
	for i, path := range a.poly {
		rings[i] = make([]r2.Vec, len(path))
		for j, p := range path {
			rings[i][j] = r2.Vec{X: p.X, Y: p.Y}
		}
	}
	return rings
}

// isHole reports whether ring i lies inside an odd number of the other rings.
func isHole(rings [][]r2.Vec, i int) bool {
	hole := false
	for j, ring := range rings {
		if j != i && inside(rings[i][0], ring) {
			hole = !hole
		}
	}
	return hole
}

func inside(p r2.Vec, ring []r2.Vec) bool {
	in := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func reversed(ring []r2.Vec) []r2.Vec {
	r := make([]r2.Vec, len(ring))
	for i, p := range ring {
		r[len(ring)-1-i] = p
	}
	return r
}

// offsetEdge is a ring edge together with the line it is moved to.
type offsetEdge struct {
	start, end r2.Vec // original vertices
	u          r2.Vec // unit direction
	line       r2.Vec // point on the moved line
}

// offsetRing moves every edge of ring, whose interior lies to the left of
// its edges, to the right by d. It returns nil when the ring collapses.
func offsetRing(ring []r2.Vec, d float64) []r2.Vec {
	n := len(ring)
	edges := make([]offsetEdge, 0, n)
	for i := range ring {
		p, q := ring[i], ring[(i+1)%n]
		u := r2.Unit(r2.Sub(q, p))
		edges = append(edges, offsetEdge{start: p, end: q, u: u, line: r2.Sub(p, r2.Scale(d, d2.Perp(u)))})
	}
	for {
		n = len(edges)
		if n < 3 {
			return nil
		}
		first := make([]r2.Vec, n) // moved start of each edge
		last := make([]r2.Vec, n)  // moved end of each edge
		round := make([]bool, n)
		arcs := make([][]r2.Vec, n)
		for j := range edges {
			prev, e := &edges[(j+n-1)%n], &edges[j]
			turn := d2.Cross(prev.u, e.u)
			if prev.end == e.start && turn*d > 0 {
				// The corner opens up: join the moved edges around the vertex.
				last[(j+n-1)%n] = r2.Sub(prev.end, r2.Scale(d, d2.Perp(prev.u)))
				first[j] = r2.Sub(e.start, r2.Scale(d, d2.Perp(e.u)))
				arcs[j] = arc(e.start, last[(j+n-1)%n], first[j])
				round[j] = true
				continue
			}
			m, ok := intersectLines(prev.line, prev.u, e.line, e.u)
			if !ok {
				m = r2.Scale(0.5, r2.Add(r2.Sub(prev.end, r2.Scale(d, d2.Perp(prev.u))), e.line))
			}
			last[(j+n-1)%n] = m
			first[j] = m
		}
		kept := edges[:0:0]
		for j, e := range edges {
			if r2.Dot(r2.Sub(last[j], first[j]), e.u) > 0 {
				kept = append(kept, e)
			}
		}
		if len(kept) < n {
			edges = kept
			continue
		}
		var out []r2.Vec
		for j := range edges {
			if round[j] {
				out = append(out, last[(j+n-1)%n])
				out = append(out, arcs[j]...)
			}
			out = append(out, first[j])
		}
		if d2.Set(out).SignedArea()*d2.Set(ring).SignedArea() <= 0 {
			return nil // flipped inside out
		}
		return out
	}
}

// arc returns the points strictly between from and to on the circle about
// center, turning the short way round.
func arc(center, from, to r2.Vec) []r2.Vec {
	a, b := r2.Sub(from, center), r2.Sub(to, center)
	sweep := math.Atan2(d2.Cross(a, b), r2.Dot(a, b))
	steps := int(math.Ceil(math.Abs(sweep)/(2*math.Pi/circleFacets) - 1e-9))
	pts := make([]r2.Vec, 0, steps)
	for k := 1; k < steps; k++ {
		pts = append(pts, r2.Add(center, d2.Rotate(a, sweep*float64(k)/float64(steps))))
	}
	return pts
}

// intersectLines returns the intersection of the lines through p1 and p2
// with directions u1 and u2. It returns false for parallel lines.
func intersectLines(p1, u1, p2, u2 r2.Vec) (r2.Vec, bool) {
	den := d2.Cross(u1, u2)
	if math.Abs(den) < 1e-12 {
		return r2.Vec{}, false
	}
	t := d2.Cross(r2.Sub(p2, p1), u2) / den
	return r2.Add(p1, r2.Scale(t, u1)), true
}

// UnionAll merges all areas pairwise, which keeps the intermediate
// polygons small compared to folding them in one at a time.
func UnionAll(areas []Area) Area {
	for len(areas) > 1 {
		next := make([]Area, 0, (len(areas)+1)/2)
		for i := 0; i < len(areas); i += 2 {
			if i+1 < len(areas) {
				next = append(next, areas[i].Union(areas[i+1]))
			} else {
				next = append(next, areas[i])
			}
		}
		areas = next
	}
	if len(areas) == 0 {
		return Area{}
	}
	return areas[0]
}

// Shadow returns the region covered by the xy projection of the triangles.
// Triangles seen edge-on and repeats of an already seen triangle are skipped.
func Shadow(triangles [][3]r2.Vec) Area {
	pieces := make([]Area, 0, len(triangles))
	seen := make(map[[3]r2.Vec]bool, len(triangles))
	for _, t := range triangles {
		s := d2.Set(t[:])
		signed := s.SignedArea()
		if math.Abs(signed) < minRingArea {
			continue
		}
		key := t
		sort.Slice(key[:], func(i, j int) bool {
			if key[i].X != key[j].X {
				return key[i].X < key[j].X
			}
			return key[i].Y < key[j].Y
		})
		if seen[key] {
			continue
		}
		seen[key] = true
		if signed < 0 {
			s = d2.Set{t[0], t[2], t[1]}
		}
		var a Area
		a.appendRing(s)
		pieces = append(pieces, a)
	}
	return UnionAll(pieces)
}

// Curves returns each ring of the area as a closed curve.
func (a Area) Curves() []*curve.Curve {
	curves := make([]*curve.Curve, 0, len(a.poly))
	for _, path := range a.poly {
		if len(path) < 3 {
			continue
		}
		c := curve.New()
		for _, p := range path {
			c.Append(r2.Vec{X: p.X, Y: p.Y})
		}
		c.Append(r2.Vec{X: path[0].X, Y: path[0].Y})
		curves = append(curves, c)
	}
	return curves
}
