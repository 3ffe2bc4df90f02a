// Package matter compensates printed parts for material shrinkage.
package matter

import (
	"github.com/soypat/wing/render"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2} // 0.2% shrinkage
	// PETG shrinks a little more than PLA once cooled.
	PETG = ViscousMaterial{shrink: 0.4e-2}
)

// Lookup returns the material with the given lowercase name.
func Lookup(name string) (ViscousMaterial, bool) {
	switch name {
	case "pla":
		return PLA, true
	case "petg":
		return PETG, true
	}
	return ViscousMaterial{}, false
}

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
}

// ScaleFactor is the uniform scale that makes a part cool down to its
// designed size.
func (m ViscousMaterial) ScaleFactor() float64 {
	return 1 / (1 - m.shrink)
}

// Scale returns a copy of mesh grown about the origin by ScaleFactor.
func (m ViscousMaterial) Scale(mesh render.Mesh) render.Mesh {
	if m.shrink == 0 {
		return mesh
	}
	f := m.ScaleFactor()
	out := render.Mesh{Triangles: make([]render.Triangle3, len(mesh.Triangles))}
	for i, t := range mesh.Triangles {
		for j := range t {
			out.Triangles[i][j] = r3.Scale(f, t[j])
		}
	}
	return out
}
