package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/wing/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// PreviewConfig sets up the camera and image of a Preview render.
// Zero fields take the default noted next to them.
type PreviewConfig struct {
	Width, Height int // 800x600
	// Supersample renders at this multiple of the image size and
	// downscales the result for antialiasing. Default 2.
	Supersample int
	// Eye is the camera direction from the model's centre. Default (2.4, -2.4, 2.4).
	Eye r3.Vec
	// Up is the camera up direction. Default +z.
	Up         r3.Vec
	Background color.RGBA // #FFF8E3
}

func (cfg *PreviewConfig) defaults() {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 2
	}
	if cfg.Eye == (r3.Vec{}) {
		cfg.Eye = r3.Vec{X: 2.4, Y: -2.4, Z: 2.4}
	}
	if cfg.Up == (r3.Vec{}) {
		cfg.Up = r3.Vec{Z: 1}
	}
	if cfg.Background == (color.RGBA{}) {
		cfg.Background = color.RGBA{R: 0xff, G: 0xf8, B: 0xe3, A: 0xff}
	}
}

type batch struct {
	lit   bool
	color color.RGBA
	tris  []Triangle3
}

type displayList struct {
	batches []batch
}

func (l *displayList) add(lit bool, c color.RGBA, t Triangle3) {
	n := len(l.batches)
	if n == 0 || l.batches[n-1].lit != lit || l.batches[n-1].color != c {
		l.batches = append(l.batches, batch{lit: lit, color: c})
		n++
	}
	l.batches[n-1].tris = append(l.batches[n-1].tris, t)
}

// Preview is a software Context. Display lists are kept in memory and
// every call to CallList or DrawTriangle outside a list adds to the
// frame drawn by Render.
type Preview struct {
	lists     map[ListID]*displayList
	last      ListID
	recording ListID
	frame     displayList
	lighting  bool
	material  color.RGBA
}

var _ Context = (*Preview)(nil)

// NewPreview returns an empty Preview with lighting enabled and a gray material.
func NewPreview() *Preview {
	return &Preview{
		lists:    make(map[ListID]*displayList),
		lighting: true,
		material: color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// NewList starts recording a display list.
func (p *Preview) NewList() ListID {
	p.last++
	p.recording = p.last
	p.lists[p.recording] = &displayList{}
	return p.recording
}

// EndList stops recording the current display list.
func (p *Preview) EndList() { p.recording = 0 }

// CallList adds the contents of list id to the frame.
// Unknown or deleted lists draw nothing.
func (p *Preview) CallList(id ListID) {
	l, ok := p.lists[id]
	if !ok || id == p.recording {
		return
	}
	p.frame.batches = append(p.frame.batches, l.batches...)
}

// DeleteList frees list id.
func (p *Preview) DeleteList(id ListID) { delete(p.lists, id) }

// NumLists returns the number of live display lists.
func (p *Preview) NumLists() int { return len(p.lists) }

func (p *Preview) EnableLighting()  { p.lighting = true }
func (p *Preview) DisableLighting() { p.lighting = false }

func (p *Preview) Material(c color.RGBA) { p.material = c }

// DrawTriangle draws the triangle with the current material and lighting.
func (p *Preview) DrawTriangle(a, b, c r3.Vec) {
	dst := &p.frame
	if p.recording != 0 {
		dst = p.lists[p.recording]
	}
	dst.add(p.lighting, p.material, Triangle3{a, b, c})
}

// Triangles returns every triangle in the current frame.
func (p *Preview) Triangles() []Triangle3 {
	var tris []Triangle3
	for _, b := range p.frame.batches {
		tris = append(tris, b.tris...)
	}
	return tris
}

// Clear empties the frame. Display lists are kept.
func (p *Preview) Clear() { p.frame.batches = nil }

// Render rasterizes the frame. The model is scaled to fit the bi-unit
// cube before the camera is applied.
func (p *Preview) Render(cfg PreviewConfig) image.Image {
	cfg.defaults()
	const (
		fovy = 30
		near = 1
		far  = 10
	)
	w, h := cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample
	ctx := fauxgl.NewContext(w, h)
	ctx.Cull = fauxgl.CullNone
	ctx.ClearColorBufferWith(fauxgl.MakeColor(cfg.Background))

	box := d3.EmptyBox()
	for _, b := range p.frame.batches {
		for _, t := range b.tris {
			box = box.Include(t[0]).Include(t[1]).Include(t[2])
		}
	}
	if box.Empty() {
		return resize.Resize(uint(cfg.Width), uint(cfg.Height), ctx.Image(), resize.Bilinear)
	}
	center := box.Center()
	size := box.Size()
	scale := 2 / math.Max(math.Max(size.X, size.Y), math.Max(size.Z, 1e-9))
	toUnit := func(v r3.Vec) fauxgl.Vector {
		v = r3.Scale(scale, r3.Sub(v, center))
		return fauxgl.V(v.X, v.Y, v.Z)
	}

	eye := r3.Scale(1/math.Max(r3.Norm(cfg.Eye), 1e-9)*4.2, cfg.Eye)
	feye := fauxgl.V(eye.X, eye.Y, eye.Z)
	aspect := float64(w) / float64(h)
	matrix := fauxgl.LookAt(feye, fauxgl.V(0, 0, 0), fauxgl.V(cfg.Up.X, cfg.Up.Y, cfg.Up.Z)).
		Perspective(fovy, aspect, near, far)
	light := fauxgl.V(-0.75, 1, 0.25).Normalize()
	for _, b := range p.frame.batches {
		tris := make([]*fauxgl.Triangle, 0, len(b.tris))
		for _, t := range b.tris {
			tris = append(tris, fauxgl.NewTriangleForPoints(toUnit(t[0]), toUnit(t[1]), toUnit(t[2])))
		}
		col := fauxgl.MakeColor(b.color)
		if b.lit {
			shader := fauxgl.NewPhongShader(matrix, light, feye)
			shader.ObjectColor = col
			ctx.Shader = shader
		} else {
			ctx.Shader = fauxgl.NewSolidColorShader(matrix, col)
		}
		ctx.DrawMesh(fauxgl.NewTriangleMesh(tris))
	}
	return resize.Resize(uint(cfg.Width), uint(cfg.Height), ctx.Image(), resize.Bilinear)
}

// SavePNG renders the frame and writes it to path as a PNG image.
func (p *Preview) SavePNG(path string, cfg PreviewConfig) error {
	return fauxgl.SavePNG(path, p.Render(cfg))
}
