package ui

import (
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/feature"
	"github.com/hubastard/overlay/engine/logging"
)

// Frame is a titled, draggable column of module rows. It is the Container
// its rows lay themselves out against.
type Frame struct {
	title      string
	icon       string
	iconWarned bool
	x, y       int
	width      int
	rowHeight  int
	fontHeight int

	rows []*Row
	open bool

	dragging     bool
	dragX, dragY float64
}

// NewFrame creates an open frame with no rows; call Rebuild to populate it.
func NewFrame(title string, x, y, width, rowHeight, fontHeight int) *Frame {
	return &Frame{
		title:      title,
		x:          x,
		y:          y,
		width:      width,
		rowHeight:  rowHeight,
		fontHeight: fontHeight,
		open:       true,
	}
}

func (f *Frame) X() int          { return f.x }
func (f *Frame) Y() int          { return f.y }
func (f *Frame) Width() int      { return f.width }
func (f *Frame) RowHeight() int  { return f.rowHeight }
func (f *Frame) FontHeight() int { return f.fontHeight }
func (f *Frame) Title() string   { return f.title }
func (f *Frame) Rows() []*Row    { return f.rows }
func (f *Frame) Open() bool      { return f.open }
func (f *Frame) Dragging() bool  { return f.dragging }

// SetIcon sets the texture drawn at natural size left of the title.
func (f *Frame) SetIcon(id string) { f.icon, f.iconWarned = id, false }

func (f *Frame) MoveTo(x, y int) { f.x, f.y = x, y }

// Rebuild discards every row and creates fresh ones for mods.
func (f *Frame) Rebuild(mods []*feature.Module) {
	f.rows = f.rows[:0]
	for _, m := range mods {
		f.rows = append(f.rows, NewRow(m, f, 0))
	}
	f.UpdateButtons()
}

// UpdateButtons stacks rows below the title bar, leaving room for the
// widgets of expanded rows.
func (f *Frame) UpdateButtons() {
	offset := f.rowHeight
	for _, r := range f.rows {
		r.SetOffset(offset)
		offset += r.Height()
	}
}

// TotalHeight is the title bar plus, when open, every row.
func (f *Frame) TotalHeight() int {
	total := f.rowHeight
	if !f.open {
		return total
	}
	for _, r := range f.rows {
		total += r.Height()
	}
	return total
}

func (f *Frame) titleHovered(mouseX, mouseY float64) bool {
	return hit(mouseX, mouseY, float64(f.x), float64(f.y), float64(f.width), float64(f.rowHeight))
}

func (f *Frame) Render(ctx *Context, mouseX, mouseY float64, delta float32) {
	if f.dragging {
		f.x = int(mouseX - f.dragX)
		f.y = int(mouseY - f.dragY)
	}
	r := ctx.Renderer
	x, y, w, h := float64(f.x), float64(f.y), float64(f.width), float64(f.rowHeight)
	total := float64(f.TotalHeight())

	r.RoundedQuad(x, y, x+w, y+h, ctx.Theme.CornerRadius, ctx.Theme.CornerSamples, ctx.Theme.Title)

	tx := x + 4
	if f.icon != "" {
		d, err := r.Dimensions().Get(f.icon)
		switch {
		case err == nil:
			r.DrawTexturedRectangle(x+3, y+float64((f.rowHeight-d.H)/2), f.icon)
			tx += float64(d.W) + 3
		case !f.iconWarned:
			// Once per icon; Render runs every frame.
			logging.Logger().Warn("frame icon unavailable", "frame", f.title, "id", f.icon, "err", err)
			f.iconWarned = true
		}
	}
	ty := y + float64(f.rowHeight/2-f.fontHeight/2)
	ctx.Text.DrawString(r, f.title, tx, ty, ctx.Theme.Text, true)

	if !f.open || len(f.rows) == 0 {
		return
	}

	r.EnableScissor(f.x, f.y+f.rowHeight, f.x+f.width, f.y+int(total))
	for _, row := range f.rows {
		row.Render(ctx, mouseX, mouseY, delta)
	}
	r.DisableScissor()
	r.DrawHollowRect(x, y+h, w, total-h, ctx.Theme.Outline, 1)
}

// MouseClicked starts a drag on a left click over the title bar and folds
// the frame on a right click. Otherwise the click goes to the rows.
func (f *Frame) MouseClicked(mouseX, mouseY float64, button int) {
	if f.titleHovered(mouseX, mouseY) {
		switch button {
		case core.MouseLeft:
			f.dragging = true
			f.dragX = mouseX - float64(f.x)
			f.dragY = mouseY - float64(f.y)
		case core.MouseRight:
			f.open = !f.open
		}
		return
	}
	if !f.open {
		return
	}
	for _, r := range f.rows {
		r.MouseClicked(mouseX, mouseY, button)
	}
}

func (f *Frame) MouseReleased(mouseX, mouseY float64, button int) {
	if button == core.MouseLeft {
		f.dragging = false
	}
	for _, r := range f.rows {
		r.MouseReleased(mouseX, mouseY, button)
	}
}
