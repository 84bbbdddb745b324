package ui

import "github.com/hubastard/overlay/engine/feature"

// Widget is an interactive control that renders and edits one setting.
type Widget interface {
	Render(ctx *Context, mouseX, mouseY float64, delta float32)
	MouseClicked(mouseX, mouseY float64, button int)
	MouseReleased(mouseX, mouseY float64, button int)
	// Offset is the vertical position below the owning row's top.
	Offset() int
}

// NewWidget maps a setting's kind to its control. Unknown kinds, or settings
// whose concrete type does not match their kind, yield no widget.
func NewWidget(s feature.Setting, row *Row, offset int) (Widget, bool) {
	b := widgetBase{row: row, offset: offset}
	switch s.Kind() {
	case feature.KindBool:
		if bs, ok := s.(*feature.BoolSetting); ok {
			return &Checkbox{widgetBase: b, setting: bs}, true
		}
	case feature.KindMode:
		if ms, ok := s.(*feature.ModeSetting); ok {
			return &ModeBox{widgetBase: b, setting: ms}, true
		}
	case feature.KindNumber:
		if ns, ok := s.(*feature.NumberSetting); ok {
			return &Slider{widgetBase: b, setting: ns}, true
		}
	}
	return nil, false
}

type widgetBase struct {
	row    *Row
	offset int
}

func (b *widgetBase) Offset() int { return b.offset }

// bounds returns the widget's rectangle in container space.
func (b *widgetBase) bounds() (x, y, w, h float64) {
	c := b.row.parent
	return float64(c.X()), float64(c.Y() + b.row.offset + b.offset), float64(c.Width()), float64(c.RowHeight())
}

func (b *widgetBase) IsHovered(mouseX, mouseY float64) bool {
	x, y, w, h := b.bounds()
	return hit(mouseX, mouseY, x, y, w, h)
}

// background fills the widget's row, highlighted under the pointer.
func (b *widgetBase) background(ctx *Context, mouseX, mouseY float64) {
	x, y, w, h := b.bounds()
	col := ctx.Theme.Setting
	if hit(mouseX, mouseY, x, y, w, h) {
		col = ctx.Theme.SettingHover
	}
	ctx.Renderer.Fill(x, y, x+w, y+h, col)
}

// textY vertically centers a line of text in the widget's row.
func (b *widgetBase) textY() float64 {
	_, y, _, h := b.bounds()
	return y + float64(int(h)/2-b.row.parent.FontHeight()/2)
}
