package wing

import (
	"github.com/soypat/wing/curve"
	"github.com/soypat/wing/internal/d3"
	"github.com/soypat/wing/render"
)

type cacheState uint8

const (
	stale cacheState = iota
	fresh
)

// geometry is derived from a Wing's parameters. It is either stale or
// fully consistent with them.
type geometry struct {
	state  cacheState
	curves [numCurves]*curve.Curve
	root   ChordFrame
	tip    ChordFrame
	rootOK bool
	tipOK  bool
	box    d3.Box

	// Display list recorded by Render and the context that owns it.
	list    render.ListID
	listCtx render.Context
}

// Recalculate drops all cached geometry. It is called by every setter that
// changes the shape; call it after editing curves held by the CurveSource.
func (w *Wing) Recalculate() {
	if w.geo.list != 0 && w.geo.listCtx != nil {
		w.geo.listCtx.DeleteList(w.geo.list)
	}
	w.geo = geometry{}
}

// cached returns the cached geometry, rebuilding it first if stale.
func (w *Wing) cached() *geometry {
	if w.geo.state == fresh {
		return &w.geo
	}
	g := geometry{state: fresh}
	for i := range g.curves {
		g.curves[i] = w.resolve(CurveSlot(i))
	}
	g.root, g.rootOK = NewChordFrame(g.curves[RootProfile])
	g.tip, g.tipOK = NewChordFrame(g.curves[TipProfile])
	g.box = d3.EmptyBox()
	for _, c := range g.curves {
		if c == nil {
			continue
		}
		cb := c.Box()
		g.box = g.box.Include(d3.FromR2(cb.Min, 0)).Include(d3.FromR2(cb.Max, 0))
	}
	if w.params.Mirror && !g.box.Empty() {
		g.box = g.box.Extend(g.box.MirrorX())
	}
	w.geo = g
	return &w.geo
}

// resolve returns the curve in slot oriented so it runs towards +x.
func (w *Wing) resolve(slot CurveSlot) *curve.Curve {
	id := w.params.Curves[slot]
	if id == 0 || w.src == nil {
		return nil
	}
	c := w.src.Curve(id)
	if c == nil || c.NumVertices() < 2 {
		Logger().Debug("unresolved curve", "slot", slot.String(), "id", id)
		return nil
	}
	if c.First().X > c.Last().X {
		c = curve.New(c.Vertices()...)
		c.Reverse()
	}
	return c
}

// Box returns the bounding box of the wing's curves. When mirrored the box
// also covers the reflected half.
func (w *Wing) Box() d3.Box {
	return w.cached().box
}
