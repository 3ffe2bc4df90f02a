package sketch

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/soypat/wing/curve"
)

// ReadGeoJSON returns the curves held by a GeoJSON feature collection.
// Line strings map to open curves and every polygon ring to a closed one.
func ReadGeoJSON(r io.Reader) ([]*curve.Curve, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, err
	}
	var curves []*curve.Curve
	var visit func(g orb.Geometry)
	visit = func(g orb.Geometry) {
		switch g := g.(type) {
		case orb.LineString:
			curves = append(curves, curve.FromLineString(g))
		case orb.MultiLineString:
			for _, ls := range g {
				visit(ls)
			}
		case orb.Ring:
			curves = append(curves, curve.FromLineString(orb.LineString(g)))
		case orb.Polygon:
			for _, r := range g {
				visit(r)
			}
		case orb.MultiPolygon:
			for _, p := range g {
				visit(p)
			}
		}
	}
	for _, f := range fc.Features {
		visit(f.Geometry)
	}
	return curves, nil
}

// WriteGeoJSON writes curves as a feature collection of line strings.
// Each feature carries its index in curves as the "id" property.
func WriteGeoJSON(w io.Writer, curves []*curve.Curve) error {
	fc := geojson.NewFeatureCollection()
	for i, c := range curves {
		f := geojson.NewFeature(c.LineString())
		f.Properties["id"] = i
		fc.Append(f)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
