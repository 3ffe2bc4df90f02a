// Package wing lofts a 3D wing solid from 2D profile curves.
//
// A Wing references five curves held by the host: the leading and trailing
// edges seen from above, the root and tip airfoil profiles and an optional
// twist angle graph. Cross sections are built along the trailing edge,
// skinned into triangles and decomposed for manufacture into a lightening
// pattern solid and a set of printable cuboid sections.
//
// A Wing is not safe for concurrent use.
package wing

import (
	"image/color"

	"github.com/soypat/wing/curve"
)

// CurveSlot names one of the curves a Wing is built from.
type CurveSlot int

const (
	LeadingEdge CurveSlot = iota
	TrailingEdge
	RootProfile
	TipProfile
	AngleGraph
	numCurves
)

var slotKeys = [numCurves]string{"LeadingEdge", "TrailingEdge", "RootProfile", "TipProfile", "AngleGraph"}

var slotTitles = [numCurves]string{"leading edge", "trailing edge", "root profile", "tip profile", "angle graph"}

// Key returns the persistence key of the slot.
func (s CurveSlot) Key() string { return slotKeys[s] }

func (s CurveSlot) String() string { return slotTitles[s] }

// CurveSource resolves the host's integer curve ids. Curve returns nil
// when id does not reference a curve.
type CurveSource interface {
	Curve(id int) *curve.Curve
}

// Params are the persisted parameters of a Wing.
type Params struct {
	// Curves holds the host id of each slot's curve. Zero means unset.
	Curves [numCurves]int
	// Mirror adds a copy of the skin reflected about the x=0 plane.
	Mirror bool
	// CentreStraight flattens the profile of the root section onto its chord.
	CentreStraight bool
	RenderWing     bool
	RenderPattern  bool
	// PatternBorder is the inset of the pattern from the wing outline.
	PatternBorder float64
	PatternXStep  float64
	PatternYStep  float64
	PatternWall   float64
	// SplitIntoPieces is the number of cuboid sections the wing is cut into.
	SplitIntoPieces int
	// SplitWallWidth is the width of the pattern-free strip at every cut.
	SplitWallWidth float64
	Color          color.RGBA
}

// DefaultParams returns the parameters of a newly created wing.
func DefaultParams() Params {
	return Params{
		CentreStraight: true,
		RenderWing:     true,
		PatternXStep:   30,
		PatternYStep:   30,
		PatternWall:    2,
		Color:          color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// Wing is the lofted wing entity.
type Wing struct {
	params Params
	src    CurveSource
	geo    geometry
	props  []Property
}

// New returns a wing with default parameters whose curves are resolved by src.
func New(src CurveSource) *Wing {
	return NewWithParams(src, DefaultParams())
}

// NewWithParams returns a wing with the given parameters.
func NewWithParams(src CurveSource, p Params) *Wing {
	w := &Wing{params: p, src: src}
	w.props = w.newProperties()
	return w
}

// Params returns the wing's parameters.
func (w *Wing) Params() Params { return w.params }

// SetParams replaces all parameters and invalidates cached geometry.
func (w *Wing) SetParams(p Params) {
	w.params = p
	w.Recalculate()
}

// SetCurve sets the host id of the curve in slot.
func (w *Wing) SetCurve(slot CurveSlot, id int) {
	w.params.Curves[slot] = id
	w.Recalculate()
}

// CurveID returns the host id of the curve in slot.
func (w *Wing) CurveID(slot CurveSlot) int { return w.params.Curves[slot] }

// SetSource changes the resolver of curve ids.
func (w *Wing) SetSource(src CurveSource) {
	w.src = src
	w.Recalculate()
}

// Color returns the display color of the wing.
func (w *Wing) Color() color.RGBA { return w.params.Color }

// SetColor sets the display color. The material is applied outside the
// cached display list so geometry is kept.
func (w *Wing) SetColor(c color.RGBA) { w.params.Color = c }

// TypeName returns the name the host shows for the object.
func (w *Wing) TypeName() string { return "Wing" }
