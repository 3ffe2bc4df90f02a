package wing

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/soypat/wing/render"
	"github.com/soypat/wing/sketch"
)

// DrawingImporter is the host pathway that turns a DXF file into sketches.
type DrawingImporter interface {
	Import(path string) error
}

// SketchOptions configure MakeSketches.
type SketchOptions struct {
	// SectionIndex is the trailing edge span whose panel is drawn.
	SectionIndex int
	// Inset shrinks the flattened panel outline.
	Inset float64
	// Dir is where DXF files are written. Empty means os.TempDir().
	Dir string
}

// DefaultSketchOptions returns the options used by the "Make Sketches" tool.
func DefaultSketchOptions() SketchOptions {
	return SketchOptions{SectionIndex: 7, Inset: 2}
}

type sketchJob struct {
	opts     SketchOptions
	importer DrawingImporter
	paths    []string
	err      error
}

func (j *sketchJob) beginPanel(dc *drawContext) {
	dc.mesh = &render.Mesh{}
}

// endPanel unfolds the panel just drawn into a flat outline drawing with
// the edges of every triangle and hands it to the importer.
func (j *sketchJob) endPanel(dc *drawContext, index int) {
	if index != j.opts.SectionIndex || j.err != nil {
		return
	}
	flat := dc.mesh.Flatten()
	curves := flat.Shadow().Offset(-j.opts.Inset).Curves()
	curves = append(curves, flat.Outlines()...)
	dir := j.opts.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "wing-panel-"+uuid.NewString()+".dxf")
	if err := sketch.WriteDXF(path, curves); err != nil {
		j.err = &ExportError{Path: path, Err: err}
		return
	}
	Logger().Info("wrote panel sketch", "path", path, "span", index, "curves", len(curves))
	j.paths = append(j.paths, path)
	if j.importer != nil {
		if err := j.importer.Import(path); err != nil {
			j.err = err
		}
	}
}

// MakeSketches draws the wing panel by panel without mirroring and writes
// the flattened outline of the panel at opts.SectionIndex to a DXF file,
// which is passed to imp. It returns the paths of the files written.
func (w *Wing) MakeSketches(imp DrawingImporter, opts SketchOptions) ([]string, error) {
	if opts.SectionIndex < 0 || opts.Inset < 0 {
		return nil, ErrMsg("negative section index or inset")
	}
	dc := newDrawContext(ModeSketch, w)
	dc.sketch = &sketchJob{opts: opts, importer: imp}
	w.drawWing(dc, w.params.RenderWing, false)
	return dc.sketch.paths, dc.sketch.err
}
