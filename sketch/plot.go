package sketch

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is a named polyline to plot.
type Series struct {
	Name   string
	Points []r2.Vec
}

// PlotSections saves a line plot of every series to path. The image
// format follows the extension of path (png, svg, pdf...).
func PlotSections(path, title string, series []Series) error {
	if len(series) == 0 {
		return fmt.Errorf("plot %s: no series", path)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	var args []interface{}
	for _, s := range series {
		pts := make(plotter.XYs, len(s.Points))
		for i, v := range s.Points {
			pts[i].X = v.X
			pts[i].Y = v.Y
		}
		args = append(args, s.Name, pts)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return err
	}
	return p.Save(16*vg.Inch, 6*vg.Inch, path)
}
