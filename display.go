package wing

import "github.com/soypat/wing/render"

// Render draws the wing into ctx. The triangles are recorded into a display
// list the first time and the list is replayed on later calls until the
// wing is recalculated. With noColor set the caller's lighting and
// material are left alone.
func (w *Wing) Render(ctx render.Context, noColor bool) {
	if !noColor {
		ctx.EnableLighting()
		ctx.Material(w.params.Color)
	}
	g := w.cached()
	if g.list == 0 || g.listCtx != ctx {
		if g.list != 0 {
			g.listCtx.DeleteList(g.list)
		}
		g.list, g.listCtx = ctx.NewList(), ctx
		dc := newDrawContext(ModeRender, w)
		dc.ctx = ctx
		w.drawWing(dc, w.params.RenderWing, w.params.RenderPattern)
		ctx.EndList()
	}
	ctx.CallList(g.list)
	if !noColor {
		ctx.DisableLighting()
	}
}
