package wing

import "fmt"

// PropertyKind is the value type of a Property.
type PropertyKind uint8

const (
	// KindCurveRef is an integer id of a host curve.
	KindCurveRef PropertyKind = iota
	KindBool
	KindFloat
	KindInt
)

func (k PropertyKind) String() string {
	switch k {
	case KindCurveRef:
		return "curve"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	}
	return "unknown"
}

// Property is an editable parameter of a Wing for the host's generic
// property editor. Setting a property recalculates the wing.
type Property struct {
	Kind  PropertyKind
	Name  string // persistence key
	Title string
	w     *Wing
	i     *int
	b     *bool
	f     *float64
}

// Int returns the value of a KindCurveRef or KindInt property.
func (p *Property) Int() int { return *p.i }

// Bool returns the value of a KindBool property.
func (p *Property) Bool() bool { return *p.b }

// Float returns the value of a KindFloat property.
func (p *Property) Float() float64 { return *p.f }

// SetInt sets a KindCurveRef or KindInt property.
func (p *Property) SetInt(v int) {
	*p.i = v
	p.w.Recalculate()
}

// SetBool sets a KindBool property.
func (p *Property) SetBool(v bool) {
	*p.b = v
	p.w.Recalculate()
}

// SetFloat sets a KindFloat property.
func (p *Property) SetFloat(v float64) {
	*p.f = v
	p.w.Recalculate()
}

// String formats the property's value.
func (p *Property) String() string {
	switch p.Kind {
	case KindBool:
		return fmt.Sprint(*p.b)
	case KindFloat:
		return fmt.Sprint(*p.f)
	default:
		return fmt.Sprint(*p.i)
	}
}

func (w *Wing) newProperties() []Property {
	pr := &w.params
	props := make([]Property, 0, int(numCurves)+10)
	for i := range pr.Curves {
		slot := CurveSlot(i)
		props = append(props, Property{Kind: KindCurveRef, Name: slot.Key(), Title: slot.String(), w: w, i: &pr.Curves[i]})
	}
	props = append(props,
		Property{Kind: KindBool, Name: "mirror", Title: "mirror", w: w, b: &pr.Mirror},
		Property{Kind: KindBool, Name: "centre_straight", Title: "centre straight", w: w, b: &pr.CentreStraight},
		Property{Kind: KindBool, Name: "render_wing", Title: "render wing", w: w, b: &pr.RenderWing},
		Property{Kind: KindBool, Name: "render_pattern", Title: "render pattern", w: w, b: &pr.RenderPattern},
		Property{Kind: KindFloat, Name: "pattern_border", Title: "pattern border", w: w, f: &pr.PatternBorder},
		Property{Kind: KindFloat, Name: "pattern_x_step", Title: "pattern x step", w: w, f: &pr.PatternXStep},
		Property{Kind: KindFloat, Name: "pattern_y_step", Title: "pattern y step", w: w, f: &pr.PatternYStep},
		Property{Kind: KindFloat, Name: "pattern_wall", Title: "pattern wall", w: w, f: &pr.PatternWall},
		Property{Kind: KindInt, Name: "split_into_pieces", Title: "split into pieces", w: w, i: &pr.SplitIntoPieces},
		Property{Kind: KindFloat, Name: "split_wall_width", Title: "split wall width", w: w, f: &pr.SplitWallWidth},
	)
	return props
}

// Properties returns the editable parameters of the wing. The returned
// properties stay bound to w.
func (w *Wing) Properties() []*Property {
	ps := make([]*Property, len(w.props))
	for i := range w.props {
		ps[i] = &w.props[i]
	}
	return ps
}

// Property returns the property with the given persistence key.
func (w *Wing) Property(name string) (*Property, bool) {
	for i := range w.props {
		if w.props[i].Name == name {
			return &w.props[i], true
		}
	}
	return nil, false
}
