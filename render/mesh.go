package render

import (
	"math"

	"github.com/soypat/wing/area"
	"github.com/soypat/wing/curve"
	"github.com/soypat/wing/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a triangle soup describing a solid.
type Mesh struct {
	Triangles []Triangle3
}

// Add appends the triangle (a, b, c) to the mesh.
func (m *Mesh) Add(a, b, c r3.Vec) {
	m.Triangles = append(m.Triangles, Triangle3{a, b, c})
}

// AddNonDegenerate appends (a, b, c) unless two of its vertices coincide.
// It reports whether the triangle was added.
func (m *Mesh) AddNonDegenerate(a, b, c r3.Vec) bool {
	if a == b || b == c || c == a {
		return false
	}
	m.Add(a, b, c)
	return true
}

// Len returns the number of triangles in the mesh.
func (m Mesh) Len() int { return len(m.Triangles) }

// Bounds returns the bounding box of the mesh. An empty mesh has an empty box.
func (m Mesh) Bounds() d3.Box {
	box := d3.EmptyBox()
	for _, t := range m.Triangles {
		for _, v := range t {
			box = box.Include(v)
		}
	}
	return box
}

// Reader returns a Renderer streaming the triangles of the mesh.
func (m Mesh) Reader() Renderer {
	return &triangle3Buffer{buf: m.Triangles}
}

// projected returns the xy projection of every triangle.
func (m Mesh) projected() [][3]r2.Vec {
	tris := make([][3]r2.Vec, len(m.Triangles))
	for i, t := range m.Triangles {
		tris[i] = [3]r2.Vec{d3.ToR2(t[0]), d3.ToR2(t[1]), d3.ToR2(t[2])}
	}
	return tris
}

// Shadow returns the region the mesh covers when viewed along the z axis.
func (m Mesh) Shadow() area.Area {
	return area.Shadow(m.projected())
}

// Outlines returns the xy projected outline of every triangle as a closed curve.
func (m Mesh) Outlines() []*curve.Curve {
	curves := make([]*curve.Curve, 0, len(m.Triangles))
	for _, t := range m.projected() {
		curves = append(curves, curve.New(t[0], t[1], t[2], t[0]))
	}
	return curves
}

// Flatten unfolds the mesh onto the z=0 plane keeping every triangle's
// edge lengths. Triangles sharing an edge stay joined along it, starting
// from the first triangle and walking outwards across shared edges.
// Disconnected pieces are laid out side by side along x.
func (m Mesh) Flatten() Mesh {
	const weldTol = 1e-6
	type face struct {
		v   [3]int
		pos [3]r2.Vec
		ok  bool
	}
	index := make(map[[3]int64]int)
	var verts []r3.Vec
	vertexID := func(v r3.Vec) int {
		key := [3]int64{
			int64(math.Round(v.X / weldTol)),
			int64(math.Round(v.Y / weldTol)),
			int64(math.Round(v.Z / weldTol)),
		}
		id, ok := index[key]
		if !ok {
			id = len(verts)
			index[key] = id
			verts = append(verts, v)
		}
		return id
	}
	var faces []face
	edges := make(map[[2]int][]int)
	for _, t := range m.Triangles {
		if r3.Norm2(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))) < 1e-18 {
			continue
		}
		f := face{v: [3]int{vertexID(t[0]), vertexID(t[1]), vertexID(t[2])}}
		if f.v[0] == f.v[1] || f.v[1] == f.v[2] || f.v[2] == f.v[0] {
			continue
		}
		for i := 0; i < 3; i++ {
			e := sortPair(f.v[i], f.v[(i+1)%3])
			edges[e] = append(edges[e], len(faces))
		}
		faces = append(faces, f)
	}
	dist := func(a, b int) float64 { return r3.Norm(r3.Sub(verts[a], verts[b])) }

	var out Mesh
	var offsetX float64
	for root := range faces {
		if faces[root].ok {
			continue
		}
		// Place the root triangle with its first edge along +x.
		f := &faces[root]
		ab := dist(f.v[0], f.v[1])
		f.pos[0] = r2.Vec{X: offsetX}
		f.pos[1] = r2.Vec{X: offsetX + ab}
		f.pos[2] = apex(f.pos[0], f.pos[1], dist(f.v[0], f.v[2]), dist(f.v[1], f.v[2]), 1)
		f.ok = true
		queue := []int{root}
		maxX := offsetX
		for len(queue) > 0 {
			cur := &faces[queue[0]]
			queue = queue[1:]
			for i := 0; i < 3; i++ {
				maxX = math.Max(maxX, cur.pos[i].X)
				vi, vj := cur.v[i], cur.v[(i+1)%3]
				opposite := cur.pos[(i+2)%3]
				for _, nb := range edges[sortPair(vi, vj)] {
					n := &faces[nb]
					if n.ok {
						continue
					}
					pi, pj := cur.pos[i], cur.pos[(i+1)%3]
					var k int
					for j := 0; j < 3; j++ {
						switch n.v[j] {
						case vi:
							n.pos[j] = pi
						case vj:
							n.pos[j] = pj
						default:
							k = j
						}
					}
					side := -sign(cross2(r2.Sub(pj, pi), r2.Sub(opposite, pi)))
					n.pos[k] = apex(pi, pj, dist(vi, n.v[k]), dist(vj, n.v[k]), side)
					n.ok = true
					queue = append(queue, nb)
				}
			}
		}
		offsetX = maxX + 1
	}
	for _, f := range faces {
		out.Add(d3.FromR2(f.pos[0], 0), d3.FromR2(f.pos[1], 0), d3.FromR2(f.pos[2], 0))
	}
	return out
}

// apex returns the point at distance da from a and db from b on the given
// side of the directed line a->b.
func apex(a, b r2.Vec, da, db, side float64) r2.Vec {
	e := r2.Sub(b, a)
	l := r2.Norm(e)
	if l == 0 {
		return a
	}
	u := r2.Scale(1/l, e)
	x := (da*da - db*db + l*l) / (2 * l)
	h := math.Sqrt(math.Max(0, da*da-x*x))
	perp := r2.Vec{X: -u.Y, Y: u.X}
	return r2.Add(a, r2.Add(r2.Scale(x, u), r2.Scale(side*h, perp)))
}

func cross2(a, b r2.Vec) float64 { return a.X*b.Y - a.Y*b.X }

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

func sortPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
