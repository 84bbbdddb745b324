package render

import (
	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/logging"
)

// DrawTexturedRectangle draws an asset at its natural pixel size with its
// top-left corner at (x, y). Missing or unreadable assets draw nothing.
func (r *Renderer) DrawTexturedRectangle(x, y float64, id string) {
	d, err := r.dims.Get(id)
	if err != nil {
		logging.Logger().Warn("texture dimensions unavailable", "id", id, "err", err)
		return
	}
	if err := r.s.BindTexture(id); err != nil {
		logging.Logger().Warn("texture bind failed", "id", id, "err", err)
		return
	}
	r.DrawTexture(id, x, y, float64(d.W), float64(d.H), colors.PackedWhite)
}

// DrawScaledTexturedRect draws an asset at scale times its natural size,
// scaling about the origin so (x, y) stays the top-left corner.
func (r *Renderer) DrawScaledTexturedRect(x, y, scale float64, id string) {
	if scale <= 0 {
		return
	}
	r.Push()
	r.Scale(scale)
	r.DrawTexturedRectangle(x/scale, y/scale, id)
	r.Pop()
}

// DrawTexture draws an already bound or uploaded texture into the given
// rectangle, tinted by color.
func (r *Renderer) DrawTexture(id string, x, y, w, h float64, tint uint32) {
	if w <= 0 || h <= 0 {
		return
	}
	c := colors.FromARGB(tint)

	r.begin()
	r.vertexUV(x, y, 0, 0, c)
	r.vertexUV(x, y+h, 0, 1, c)
	r.vertexUV(x+w, y, 1, 0, c)
	r.vertexUV(x+w, y, 1, 0, c)
	r.vertexUV(x, y+h, 0, 1, c)
	r.vertexUV(x+w, y+h, 1, 1, c)
	r.flush(core.ModeTriangles, id)
}
