// Package curve implements the open or closed 2D polylines that wing
// profiles are drawn with: leading and trailing edges, root and tip
// airfoil sections and the twist angle graph.
//
// Curves are parameterised by perimeter, the distance travelled along
// the polyline from its first vertex.
package curve

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/soypat/wing/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// Curve is an ordered polyline in the plane. The zero value is an empty curve.
type Curve struct {
	vertex []r2.Vec
}

// Span is the straight line segment between two consecutive vertices.
type Span struct {
	P, V r2.Vec // start and end point
}

// New returns a curve through the given vertices.
func New(vertices ...r2.Vec) *Curve {
	c := &Curve{vertex: make([]r2.Vec, len(vertices))}
	copy(c.vertex, vertices)
	return c
}

// FromLineString converts an orb line string into a curve.
func FromLineString(ls orb.LineString) *Curve {
	c := &Curve{vertex: make([]r2.Vec, len(ls))}
	for i, p := range ls {
		c.vertex[i] = r2.Vec{X: p[0], Y: p[1]}
	}
	return c
}

// Append adds a vertex to the end of the curve.
func (c *Curve) Append(p r2.Vec) {
	c.vertex = append(c.vertex, p)
}

// NumVertices returns the number of vertices of the curve.
func (c *Curve) NumVertices() int { return len(c.vertex) }

// Vertices returns a copy of the curve vertices.
func (c *Curve) Vertices() []r2.Vec {
	v := make([]r2.Vec, len(c.vertex))
	copy(v, c.vertex)
	return v
}

// First returns the first vertex. It panics on an empty curve.
func (c *Curve) First() r2.Vec { return c.vertex[0] }

// Last returns the last vertex. It panics on an empty curve.
func (c *Curve) Last() r2.Vec { return c.vertex[len(c.vertex)-1] }

// Closed returns true if the curve ends where it starts.
func (c *Curve) Closed() bool {
	return len(c.vertex) > 2 && d2.EqualWithin(c.First(), c.Last(), tolerance)
}

// Reverse reverses the vertex order in place.
func (c *Curve) Reverse() {
	for i, j := 0, len(c.vertex)-1; i < j; i, j = i+1, j-1 {
		c.vertex[i], c.vertex[j] = c.vertex[j], c.vertex[i]
	}
}

// Spans returns the segments of the curve in order.
func (c *Curve) Spans() []Span {
	if len(c.vertex) < 2 {
		return nil
	}
	spans := make([]Span, len(c.vertex)-1)
	for i := range spans {
		spans[i] = Span{P: c.vertex[i], V: c.vertex[i+1]}
	}
	return spans
}

// Length returns the length of the span.
func (s Span) Length() float64 { return r2.Norm(r2.Sub(s.V, s.P)) }

// At returns the point a fraction t of the way along the span.
func (s Span) At(t float64) r2.Vec {
	return r2.Add(s.P, r2.Scale(t, r2.Sub(s.V, s.P)))
}

// closest returns the span parameter of the point on s nearest to p.
func (s Span) closest(p r2.Vec) float64 {
	d := r2.Sub(s.V, s.P)
	l2 := r2.Norm2(d)
	if l2 < tolerance*tolerance {
		return 0
	}
	t := r2.Dot(r2.Sub(p, s.P), d) / l2
	return math.Max(0, math.Min(1, t))
}

// Perim returns the total length of the curve.
func (c *Curve) Perim() float64 {
	var sum float64
	for _, s := range c.Spans() {
		sum += s.Length()
	}
	return sum
}

// PerimToPoint returns the point found after travelling perim along the curve.
// Values outside [0, Perim()] are clamped to the curve ends.
func (c *Curve) PerimToPoint(perim float64) r2.Vec {
	if len(c.vertex) == 0 {
		return r2.Vec{}
	}
	if perim <= 0 {
		return c.First()
	}
	var travelled float64
	for _, s := range c.Spans() {
		l := s.Length()
		if travelled+l >= perim {
			if l < tolerance {
				return s.V
			}
			return s.At((perim - travelled) / l)
		}
		travelled += l
	}
	return c.Last()
}

// PointToPerim returns the perimeter position of the point on the curve
// nearest to p.
func (c *Curve) PointToPerim(p r2.Vec) float64 {
	best := math.MaxFloat64
	var bestPerim, travelled float64
	for _, s := range c.Spans() {
		t := s.closest(p)
		l := s.Length()
		if d := r2.Norm2(r2.Sub(s.At(t), p)); d < best {
			best = d
			bestPerim = travelled + t*l
		}
		travelled += l
	}
	return bestPerim
}

// Box returns the bounding box of the curve vertices.
func (c *Curve) Box() d2.Box {
	box := d2.EmptyBox()
	for _, v := range c.vertex {
		box = box.Include(v)
	}
	return box
}

// MinXPoint returns the first vertex with the smallest x coordinate.
func (c *Curve) MinXPoint() r2.Vec {
	minp := c.vertex[0]
	for _, v := range c.vertex[1:] {
		if v.X < minp.X {
			minp = v
		}
	}
	return minp
}

// MaxXPoint returns the first vertex with the largest x coordinate.
func (c *Curve) MaxXPoint() r2.Vec {
	maxp := c.vertex[0]
	for _, v := range c.vertex[1:] {
		if v.X > maxp.X {
			maxp = v
		}
	}
	return maxp
}

// Intersections returns the points where c crosses other, ordered by
// their distance along c.
func (c *Curve) Intersections(other *Curve) []r2.Vec {
	type hit struct {
		p     r2.Vec
		perim float64
	}
	var hits []hit
	var travelled float64
	for _, a := range c.Spans() {
		l := a.Length()
		for _, b := range other.Spans() {
			for _, t := range intersectSpans(a, b) {
				hits = append(hits, hit{p: a.At(t), perim: travelled + t*l})
			}
		}
		travelled += l
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].perim < hits[j].perim })
	var pts []r2.Vec
	for _, h := range hits {
		if n := len(pts); n > 0 && d2.EqualWithin(pts[n-1], h.p, 1e-7) {
			continue // shared vertex of consecutive spans
		}
		pts = append(pts, h.p)
	}
	return pts
}

// intersectSpans returns the parameters along a where a and b meet.
// Collinear overlaps report the overlap end points.
func intersectSpans(a, b Span) []float64 {
	const eps = 1e-9
	r := r2.Sub(a.V, a.P)
	s := r2.Sub(b.V, b.P)
	qp := r2.Sub(b.P, a.P)
	if r2.Norm2(r) < eps*eps || r2.Norm2(s) < eps*eps {
		return nil
	}
	denom := d2.Cross(r, s)
	if math.Abs(denom) < eps*r2.Norm(r)*r2.Norm(s) {
		if math.Abs(d2.Cross(qp, r)) > eps*r2.Norm(r) {
			return nil // parallel, not collinear
		}
		rr := r2.Norm2(r)
		t0 := r2.Dot(qp, r) / rr
		t1 := r2.Dot(r2.Sub(b.V, a.P), r) / rr
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		lo, hi := math.Max(t0, 0), math.Min(t1, 1)
		if lo > hi+eps {
			return nil
		}
		if hi-lo < eps {
			return []float64{lo}
		}
		return []float64{lo, hi}
	}
	t := d2.Cross(qp, s) / denom
	u := d2.Cross(qp, r) / denom
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return nil
	}
	return []float64{math.Max(0, math.Min(1, t))}
}

// LineString returns the curve as an orb line string.
func (c *Curve) LineString() orb.LineString {
	ls := make(orb.LineString, len(c.vertex))
	for i, v := range c.vertex {
		ls[i] = orb.Point{v.X, v.Y}
	}
	return ls
}

// SignedArea returns the area enclosed by the curve, treating it as closed.
// Counter clockwise curves have positive area.
func (c *Curve) SignedArea() float64 {
	if len(c.vertex) < 3 {
		return 0
	}
	return d2.Set(c.vertex).SignedArea()
}

// Area returns the unsigned area enclosed by the curve, treating it as closed.
func (c *Curve) Area() float64 {
	if len(c.vertex) < 3 {
		return 0
	}
	ring := orb.Ring(c.LineString())
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return math.Abs(planar.Area(ring))
}
