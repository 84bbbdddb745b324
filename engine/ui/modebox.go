package ui

import (
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/feature"
)

// ModeBox shows the active mode and cycles through the fixed set on click.
type ModeBox struct {
	widgetBase
	setting *feature.ModeSetting
}

func (m *ModeBox) Setting() *feature.ModeSetting { return m.setting }

func (m *ModeBox) Render(ctx *Context, mouseX, mouseY float64, _ float32) {
	m.background(ctx, mouseX, mouseY)
	x, _, w, _ := m.bounds()
	ty := m.textY()

	ctx.Text.DrawString(ctx.Renderer, m.setting.Name()+":", x+6, ty, ctx.Theme.Text, true)
	mode := m.setting.Mode()
	ctx.Text.DrawString(ctx.Renderer, mode, x+w-6-ctx.Text.Width(mode), ty, ctx.Theme.Accent, true)
}

// MouseClicked advances on left click and steps back on right click.
func (m *ModeBox) MouseClicked(mouseX, mouseY float64, button int) {
	if !m.IsHovered(mouseX, mouseY) {
		return
	}
	switch button {
	case core.MouseLeft:
		m.setting.Cycle()
	case core.MouseRight:
		m.setting.CycleBack()
	}
}

func (m *ModeBox) MouseReleased(float64, float64, int) {}
