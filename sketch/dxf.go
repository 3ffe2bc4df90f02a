// Package sketch moves profile curves in and out of the host's 2D drawings:
// DXF and GeoJSON files, an id indexed curve store and section plots.
package sketch

import (
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
	"github.com/soypat/wing/curve"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

// Layer is the DXF layer outlines are written to.
const Layer = "Outline"

// ReadDXF returns every polyline and lightweight polyline in the DXF
// stream as a curve, in file order. Closed polylines repeat their first
// vertex at the end. Polylines with less than two vertices are skipped.
func ReadDXF(r io.Reader) ([]*curve.Curve, error) {
	doc, err := document.DxfDocumentFromStream(r)
	if err != nil {
		return nil, fmt.Errorf("reading DXF: %w", err)
	}
	var curves []*curve.Curve
	add := func(pts orb.LineString, closed bool) {
		if len(pts) < 2 {
			return
		}
		if closed && pts[0] != pts[len(pts)-1] {
			pts = append(pts, pts[0])
		}
		curves = append(curves, curve.FromLineString(pts))
	}
	visit := func(e any) {
		switch ent := e.(type) {
		case *entities.LWPolyline:
			pts := make(orb.LineString, 0, len(ent.Points))
			for _, p := range ent.Points {
				pts = append(pts, orb.Point{p.Point.X, p.Point.Y})
			}
			add(pts, ent.Closed)
		case *entities.Polyline:
			pts := make(orb.LineString, 0, len(ent.Vertices))
			for _, v := range ent.Vertices {
				pts = append(pts, orb.Point{v.Location.X, v.Location.Y})
			}
			add(pts, false)
		}
	}
	for _, e := range doc.Entities.Entities {
		visit(e)
	}
	for _, block := range doc.Blocks {
		for _, e := range block.Entities {
			visit(e)
		}
	}
	return curves, nil
}

// ReadDXFFile is ReadDXF on the file at path.
func ReadDXFFile(path string) ([]*curve.Curve, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadDXF(fp)
}

// WriteDXF writes each curve as a lightweight polyline on the outline
// layer of a new drawing saved at path.
func WriteDXF(path string, curves []*curve.Curve) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	if _, err := d.AddLayer(Layer, color.Red, dxf.DefaultLineType, true); err != nil {
		return err
	}
	if err := d.ChangeLayer(Layer); err != nil {
		return err
	}
	for _, c := range curves {
		if c.NumVertices() < 2 {
			continue
		}
		verts := c.Vertices()
		lwp := entity.NewLwPolyline(len(verts))
		for j, v := range verts {
			lwp.Vertices[j] = []float64{v.X, v.Y}
		}
		d.AddEntity(lwp)
	}
	return d.SaveAs(path)
}
