package render

import (
	"math"

	"github.com/hubastard/overlay/engine/core"
)

// EnableScissor clips drawing to the logical rectangle (x1,y1)-(x2,y2).
// The surface's clip origin is bottom-left and in physical pixels, so the
// rectangle is scaled and flipped on the way down.
func (r *Renderer) EnableScissor(x1, y1, x2, y2 int) {
	r.s.EnableScissor(ScissorFor(x1, y1, x2, y2, r.s.ScaleFactor(), r.s.ScaledHeight()))
	r.stats.ScissorChanges++
}

func (r *Renderer) DisableScissor() {
	r.s.DisableScissor()
	r.stats.ScissorChanges++
}

// ScissorFor converts a top-down logical rectangle to a physical bottom-up one.
func ScissorFor(x1, y1, x2, y2 int, scale float64, scaledHeight int) core.ScissorRect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	px := func(v int) int32 { return int32(math.Round(float64(v) * scale)) }
	return core.ScissorRect{
		X: px(x1),
		Y: px(scaledHeight - y2),
		W: px(x2 - x1),
		H: px(y2 - y1),
	}
}
