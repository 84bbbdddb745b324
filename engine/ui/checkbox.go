package ui

import (
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/feature"
)

// Checkbox edits a boolean setting.
type Checkbox struct {
	widgetBase
	setting *feature.BoolSetting
}

func (c *Checkbox) Setting() *feature.BoolSetting { return c.setting }

func (c *Checkbox) Render(ctx *Context, mouseX, mouseY float64, _ float32) {
	c.background(ctx, mouseX, mouseY)
	x, y, w, h := c.bounds()

	size := h - 8
	bx := x + w - size - 4
	by := y + 4
	ctx.Renderer.RoundedQuad(bx, by, bx+size, by+size, ctx.Theme.CornerRadius/2, ctx.Theme.CornerSamples, ctx.Theme.Indicator)
	if c.setting.Enabled() {
		ctx.Renderer.RoundedQuad(bx+2, by+2, bx+size-2, by+size-2, ctx.Theme.CornerRadius/2, ctx.Theme.CornerSamples, ctx.Theme.Accent)
	}
	ctx.Text.DrawString(ctx.Renderer, c.setting.Name(), x+6, c.textY(), ctx.Theme.Text, true)
}

func (c *Checkbox) MouseClicked(mouseX, mouseY float64, button int) {
	if button == core.MouseLeft && c.IsHovered(mouseX, mouseY) {
		c.setting.Toggle()
	}
}

func (c *Checkbox) MouseReleased(float64, float64, int) {}
