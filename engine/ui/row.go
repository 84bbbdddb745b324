package ui

import (
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/feature"
)

// Row is the panel entry for one module: a header line plus, when expanded,
// one widget per supported setting.
type Row struct {
	module     *feature.Module
	parent     Container
	offset     int
	expanded   bool
	components []Widget
}

// NewRow builds the widgets for every setting of m. The widget for the
// setting at index i sits rowHeight*(i+1) below the header; settings of an
// unsupported kind leave a gap.
func NewRow(m *feature.Module, parent Container, offset int) *Row {
	r := &Row{module: m, parent: parent, offset: offset}
	h := parent.RowHeight()
	for i, s := range m.Settings() {
		if w, ok := NewWidget(s, r, h*(i+1)); ok {
			r.components = append(r.components, w)
		}
	}
	return r
}

func (r *Row) Module() *feature.Module { return r.module }
func (r *Row) Components() []Widget    { return r.components }
func (r *Row) Offset() int             { return r.offset }
func (r *Row) SetOffset(offset int)    { r.offset = offset }
func (r *Row) Expanded() bool          { return r.expanded }

// Height is the vertical extent of the row including expanded widgets.
func (r *Row) Height() int {
	h := r.parent.RowHeight()
	if !r.expanded {
		return h
	}
	last := 0
	for _, w := range r.components {
		if w.Offset() > last {
			last = w.Offset()
		}
	}
	return last + h
}

func (r *Row) bounds() (x, y, w, h float64) {
	return float64(r.parent.X()), float64(r.parent.Y() + r.offset), float64(r.parent.Width()), float64(r.parent.RowHeight())
}

// IsHovered tests the header line only.
func (r *Row) IsHovered(mouseX, mouseY float64) bool {
	x, y, w, h := r.bounds()
	return hit(mouseX, mouseY, x, y, w, h)
}

func (r *Row) Render(ctx *Context, mouseX, mouseY float64, delta float32) {
	x, y, w, h := r.bounds()
	ctx.Renderer.Fill(x, y, x+w, y+h, ctx.Theme.Panel)
	if r.IsHovered(mouseX, mouseY) {
		ctx.Renderer.Fill(x, y, x+w, y+h, ctx.Theme.PanelHover)
	}

	color := ctx.Theme.Text
	if r.module.Enabled() {
		color = ctx.Theme.TextEnabled
	}
	ty := y + float64(int(h)/2-r.parent.FontHeight()/2)
	ctx.Text.DrawString(ctx.Renderer, r.module.Name(), x+3, ty, color, true)

	if len(r.components) > 0 {
		marker := "+"
		if r.expanded {
			marker = "-"
		}
		ctx.Text.DrawString(ctx.Renderer, marker, x+w-4-ctx.Text.Width(marker), ty, ctx.Theme.Text, true)
	}

	if !r.expanded {
		return
	}
	for _, c := range r.components {
		c.Render(ctx, mouseX, mouseY, delta)
	}
}

// MouseClicked toggles the module on a left click over the header and the
// settings on a right click. Expanded widgets see every click.
func (r *Row) MouseClicked(mouseX, mouseY float64, button int) {
	if r.IsHovered(mouseX, mouseY) {
		switch button {
		case core.MouseLeft:
			r.module.Toggle()
		case core.MouseRight:
			r.expanded = !r.expanded
			r.parent.UpdateButtons()
		}
	}
	if !r.expanded {
		return
	}
	for _, c := range r.components {
		c.MouseClicked(mouseX, mouseY, button)
	}
}

// MouseReleased reaches every widget so a drag ends even if the row
// collapsed while it was held.
func (r *Row) MouseReleased(mouseX, mouseY float64, button int) {
	for _, c := range r.components {
		c.MouseReleased(mouseX, mouseY, button)
	}
}
