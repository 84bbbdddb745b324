package main

import (
	"fmt"
	"time"

	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/ui"
)

// LayerStats shows the panel renderer's counters in the bottom-left
// corner. Ctrl+P toggles it.
type LayerStats struct {
	ctx     *ui.Context
	panel   *ui.Screen
	visible bool
	tick    int
}

func (l *LayerStats) OnAttach(e *core.Engine) {}
func (l *LayerStats) OnDetach(e *core.Engine) {}

func (l *LayerStats) OnUpdate(e *core.Engine, dt float64) { l.tick++ }

func (l *LayerStats) OnRender(e *core.Engine, alpha float64) {
	if !l.visible {
		return
	}
	// Counters of the panel frame drawn just before this layer.
	st := l.panel.Context().Renderer.Stats()
	lines := []string{
		fmt.Sprintf("Frame: %d  Uptime: %s", l.tick, e.Uptime().Truncate(time.Second)),
		fmt.Sprintf("Draw Calls: %d", st.DrawCalls),
		fmt.Sprintf("Vertices: %d", st.VertexCount),
		fmt.Sprintf("Textured: %d", st.TexturedDraws),
		fmt.Sprintf("Scissor: %d", st.ScissorChanges),
		fmt.Sprintf("Cached Dims: %d", l.panel.Context().Renderer.Dimensions().Len()),
	}

	r := l.ctx.Renderer
	r.BeginFrame()
	lh := l.ctx.Text.Height() + 2
	y := float64(e.Surface.ScaledHeight()) - lh*float64(len(lines)) - 8
	r.Fill(4, y-4, 200, y+lh*float64(len(lines))+4, colors.ARGB(128, 0, 0, 0))
	for i, s := range lines {
		l.ctx.Text.DrawString(r, s, 8, y+lh*float64(i), colors.PackedWhite, true)
	}
	r.EndFrame()
}

func (l *LayerStats) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventKey); ok && v.Down && !v.Repeat && v.Key == core.KeyP && v.Mods&core.ModCtrl != 0 {
		l.visible = !l.visible
		return true
	}
	return false
}
