package wing

import (
	"encoding/xml"
	"image/color"
	"io"
	"strconv"
)

// Record is an ordered set of typed key/value pairs persisted as the
// attributes of a single XML element.
type Record struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
}

// Value returns the raw value stored under key.
func (r *Record) Value(key string) (string, bool) {
	for _, a := range r.Attrs {
		if a.Name.Local == key {
			return a.Value, true
		}
	}
	return "", false
}

// Set stores v under key, replacing a previous value in place.
func (r *Record) Set(key, v string) {
	for i := range r.Attrs {
		if r.Attrs[i].Name.Local == key {
			r.Attrs[i].Value = v
			return
		}
	}
	r.Attrs = append(r.Attrs, xml.Attr{Name: xml.Name{Local: key}, Value: v})
}

// SetInt stores v under key in decimal.
func (r *Record) SetInt(key string, v int) { r.Set(key, strconv.Itoa(v)) }

// SetBool stores v under key as "true" or "false".
func (r *Record) SetBool(key string, v bool) { r.Set(key, strconv.FormatBool(v)) }

// SetFloat stores v under key in the shortest form that parses back to v.
func (r *Record) SetFloat(key string, v float64) { r.Set(key, strconv.FormatFloat(v, 'g', -1, 64)) }

// Int returns the integer under key or def if absent or malformed.
func (r *Record) Int(key string, def int) int {
	s, ok := r.Value(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// Bool returns the boolean under key or def if absent or malformed.
func (r *Record) Bool(key string, def bool) bool {
	s, ok := r.Value(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

// Float returns the number under key or def if absent or malformed.
func (r *Record) Float(key string, def float64) float64 {
	s, ok := r.Value(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// Encode writes the record as an indented XML element.
func (r *Record) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Flush()
}

// DecodeRecord reads a single XML element as a record.
func DecodeRecord(rd io.Reader) (Record, error) {
	var r Record
	err := xml.NewDecoder(rd).Decode(&r)
	return r, err
}

// colorRef packs c as 0x00BBGGRR.
func colorRef(c color.RGBA) int {
	return int(c.R) | int(c.G)<<8 | int(c.B)<<16
}

func colorFromRef(ref int) color.RGBA {
	return color.RGBA{R: uint8(ref), G: uint8(ref >> 8), B: uint8(ref >> 16), A: 255}
}

// Record returns the persisted form of the wing's parameters.
// The color's alpha is not stored.
func (w *Wing) Record() Record {
	p := w.params
	r := Record{XMLName: xml.Name{Local: w.TypeName()}}
	r.SetInt("col", colorRef(p.Color))
	for i, id := range p.Curves {
		r.SetInt(CurveSlot(i).Key(), id)
	}
	r.SetBool("mirror", p.Mirror)
	r.SetBool("centre_straight", p.CentreStraight)
	r.SetBool("render_wing", p.RenderWing)
	r.SetBool("render_pattern", p.RenderPattern)
	r.SetFloat("pattern_border", p.PatternBorder)
	r.SetFloat("pattern_x_step", p.PatternXStep)
	r.SetFloat("pattern_y_step", p.PatternYStep)
	r.SetFloat("pattern_wall", p.PatternWall)
	r.SetInt("split_into_pieces", p.SplitIntoPieces)
	r.SetFloat("split_wall_width", p.SplitWallWidth)
	return r
}

// ParamsFromRecord reads wing parameters from r. Absent keys take the
// defaults of files written by older versions.
func ParamsFromRecord(r Record) Params {
	var p Params
	p.Color = colorFromRef(r.Int("col", colorRef(DefaultParams().Color)))
	for i := range p.Curves {
		p.Curves[i] = r.Int(CurveSlot(i).Key(), 0)
	}
	p.Mirror = r.Bool("mirror", false)
	p.CentreStraight = r.Bool("centre_straight", false)
	p.RenderWing = r.Bool("render_wing", true)
	p.RenderPattern = r.Bool("render_pattern", false)
	p.PatternBorder = r.Float("pattern_border", 10)
	p.PatternXStep = r.Float("pattern_x_step", 20)
	p.PatternYStep = r.Float("pattern_y_step", 30)
	p.PatternWall = r.Float("pattern_wall", 2)
	p.SplitIntoPieces = r.Int("split_into_pieces", 6)
	p.SplitWallWidth = r.Float("split_wall_width", 4)
	return p
}

// ReadRecord replaces the wing's parameters with those in r.
func (w *Wing) ReadRecord(r Record) {
	w.SetParams(ParamsFromRecord(r))
}
