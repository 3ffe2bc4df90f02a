package wing

import (
	"github.com/soypat/wing/curve"
	"github.com/soypat/wing/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ChordFrame is the coordinate frame of a profile's chord line, the line
// joining its leftmost and rightmost vertices. In unit coordinates the
// leftmost vertex sits at (0,0) and the rightmost at (1,0).
type ChordFrame struct {
	Origin r2.Vec // leftmost vertex
	XAxis  r2.Vec // unit vector along the chord
	Chord  float64
	inv    d2.Transform
}

// NewChordFrame returns the chord frame of c. It returns false when c is
// nil, has less than two vertices or its chord is shorter than 1e-5.
func NewChordFrame(c *curve.Curve) (ChordFrame, bool) {
	if c == nil || c.NumVertices() < 2 {
		return ChordFrame{}, false
	}
	ps, pe := c.MinXPoint(), c.MaxXPoint()
	vx := r2.Sub(pe, ps)
	chord := r2.Norm(vx)
	if chord < chordTol {
		return ChordFrame{}, false
	}
	vx = r2.Scale(1/chord, vx)
	inv, ok := d2.FrameTransform(ps, vx, d2.Perp(vx)).Inverse()
	if !ok {
		return ChordFrame{}, false
	}
	return ChordFrame{Origin: ps, XAxis: vx, Chord: chord, inv: inv}, true
}

// ToUnit maps p from curve space into unit chord coordinates.
func (f ChordFrame) ToUnit(p r2.Vec) r2.Vec {
	return r2.Scale(1/f.Chord, f.inv.ApplyPos(p))
}

// UnitPoint returns the point of c at the given perimeter fraction in unit
// chord coordinates of frame. centreStraight flattens the result onto the chord.
func UnitPoint(c *curve.Curve, frame ChordFrame, fraction float64, centreStraight bool) r2.Vec {
	pu := frame.ToUnit(c.PerimToPoint(c.Perim() * fraction))
	if centreStraight {
		pu.Y = 0
	}
	return pu
}
