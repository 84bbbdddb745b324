package ui

import (
	"math"
	"strconv"

	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/feature"
)

// Slider edits a numeric setting by dragging across the row. There is no
// motion event, so the drag is sampled on every render.
type Slider struct {
	widgetBase
	setting  *feature.NumberSetting
	dragging bool
}

func (s *Slider) Setting() *feature.NumberSetting { return s.setting }
func (s *Slider) Dragging() bool                  { return s.dragging }

func (s *Slider) Render(ctx *Context, mouseX, mouseY float64, _ float32) {
	if s.dragging {
		s.update(mouseX)
	}
	s.background(ctx, mouseX, mouseY)
	x, y, w, h := s.bounds()

	trackTop := y + h - 4
	ctx.Renderer.Fill(x+1, trackTop, x+w-1, y+h-1, ctx.Theme.Track)
	fillX := x + w*s.fraction()
	ctx.Renderer.Fill(x+1, trackTop, fillX, y+h-1, ctx.Theme.Accent)
	ctx.Renderer.Circle(math.Max(x+3, math.Min(fillX, x+w-3)), trackTop+1.5, 3, ctx.Theme.CircleSamples, ctx.Theme.Text)

	ty := s.textY() - 1
	ctx.Text.DrawString(ctx.Renderer, s.setting.Name()+":", x+6, ty, ctx.Theme.Text, true)
	val := formatValue(s.setting.Value(), s.setting.Step())
	ctx.Text.DrawString(ctx.Renderer, val, x+w-6-ctx.Text.Width(val), ty, ctx.Theme.Text, true)
}

func (s *Slider) MouseClicked(mouseX, mouseY float64, button int) {
	if button == core.MouseLeft && s.IsHovered(mouseX, mouseY) {
		s.dragging = true
		s.update(mouseX)
	}
}

// MouseReleased always ends a drag, wherever the pointer is.
func (s *Slider) MouseReleased(float64, float64, int) { s.dragging = false }

// fraction is the fill proportion (value-min)/(max-min).
func (s *Slider) fraction() float64 {
	span := s.setting.Max() - s.setting.Min()
	if span <= 0 {
		return 0
	}
	return (s.setting.Value() - s.setting.Min()) / span
}

// update maps the pointer's x onto [min, max] across the track.
func (s *Slider) update(mouseX float64) {
	x, _, w, _ := s.bounds()
	frac := 0.0
	if w > 0 {
		frac = math.Max(0, math.Min(1, (mouseX-x)/w))
	}
	s.setting.SetValue(s.setting.Min() + frac*(s.setting.Max()-s.setting.Min()))
}

// formatValue prints v with as many decimals as step has.
func formatValue(v, step float64) string {
	decimals := 0
	for step > 0 && decimals < 6 && math.Abs(step-math.Round(step)) > 1e-9 {
		step *= 10
		decimals++
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
