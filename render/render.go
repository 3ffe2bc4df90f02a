// Package render holds the triangle meshes the wing is assembled into,
// their STL encoding, and the render context interface triangles are
// pushed to for display.
package render

import (
	"image/color"

	"github.com/soypat/wing/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle. Vertex order defines the facing side.
type Triangle3 [3]r3.Vec

// Normal returns the unit normal of the triangle following the right hand rule.
func (t Triangle3) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	if r3.Norm2(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// Degenerate returns true if two of the triangle's vertices are within tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t[0], t[1], tol) ||
		d3.EqualWithin(t[1], t[2], tol) ||
		d3.EqualWithin(t[2], t[0], tol)
}

// MirrorX reflects the triangle about the x=0 plane. The first two
// vertices swap places so the mirrored triangle keeps facing outwards.
func (t Triangle3) MirrorX() Triangle3 {
	return Triangle3{d3.MirrorX(t[1]), d3.MirrorX(t[0]), d3.MirrorX(t[2])}
}

// Renderer streams triangles, reading at most len(t) at a time.
// It returns io.EOF once all triangles have been read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// ListID identifies a recorded display list within a Context.
// The zero value is never a valid list.
type ListID int

// Context is the graphics context geometry is drawn into for display.
// Triangles drawn between NewList and EndList are recorded in the list
// and drawn each time the list is called.
type Context interface {
	NewList() ListID
	EndList()
	CallList(ListID)
	DeleteList(ListID)
	DrawTriangle(a, b, c r3.Vec)
	EnableLighting()
	DisableLighting()
	Material(c color.RGBA)
}
