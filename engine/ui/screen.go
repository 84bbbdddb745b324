package ui

import (
	"math"

	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/feature"
	"github.com/hubastard/overlay/engine/logging"
)

// Layout places category frames left to right.
type Layout struct {
	X, Y      int
	Width     int
	RowHeight int
	Spacing   int
}

func DefaultLayout() Layout {
	return Layout{X: 20, Y: 20, Width: 110, RowHeight: 14, Spacing: 10}
}

// Screen is the overlay layer: one frame per registry category, toggled by
// a key and rebuilt whenever the registry changes.
type Screen struct {
	registry *feature.Registry
	ctx      *Context
	layout   Layout

	frames []*Frame
	icons  map[string]string

	visible   bool
	toggleKey core.Key
	dirty     bool

	mouseX, mouseY float64
	delta          float32
}

func NewScreen(reg *feature.Registry, ctx *Context, layout Layout) *Screen {
	s := &Screen{
		registry:  reg,
		ctx:       ctx,
		layout:    layout,
		icons:     map[string]string{},
		toggleKey: core.KeyRightShift,
		dirty:     true,
	}
	reg.Subscribe(func() { s.dirty = true })
	return s
}

func (s *Screen) SetToggleKey(k core.Key)     { s.toggleKey = k }
func (s *Screen) SetVisible(v bool)           { s.visible = v }
func (s *Screen) Visible() bool               { return s.visible }
func (s *Screen) SetIcon(category, id string) { s.icons[category] = id; s.dirty = true }

// Frames returns the current frames, rebuilding them first if the registry
// changed.
func (s *Screen) Frames() []*Frame {
	if s.dirty {
		s.rebuild()
	}
	return s.frames
}

// rebuild recreates every frame. Frames that survive keep their position
// and folded state.
func (s *Screen) rebuild() {
	prev := make(map[string]*Frame, len(s.frames))
	for _, f := range s.frames {
		prev[f.title] = f
	}

	fontHeight := int(math.Ceil(s.ctx.Text.Height()))
	s.frames = s.frames[:0]
	for i, cat := range s.registry.Categories() {
		x := s.layout.X + i*(s.layout.Width+s.layout.Spacing)
		f := NewFrame(cat, x, s.layout.Y, s.layout.Width, s.layout.RowHeight, fontHeight)
		if old, ok := prev[cat]; ok {
			f.MoveTo(old.x, old.y)
			f.open = old.open
		}
		f.SetIcon(s.icons[cat])
		f.Rebuild(s.registry.InCategory(cat))
		s.frames = append(s.frames, f)
	}
	s.dirty = false
	logging.Logger().Debug("panel rebuilt", "frames", len(s.frames), "modules", len(s.registry.Modules()))
}

func (s *Screen) OnAttach(*core.Engine) { s.rebuild() }
func (s *Screen) OnDetach(*core.Engine) {}

func (s *Screen) OnUpdate(_ *core.Engine, dt float64) { s.delta = float32(dt) }

func (s *Screen) OnRender(*core.Engine, float64) {
	if !s.visible {
		return
	}
	r := s.ctx.Renderer
	r.BeginFrame()
	for _, f := range s.Frames() {
		f.Render(s.ctx, s.mouseX, s.mouseY, s.delta)
	}
	r.EndFrame()
}

// OnEvent consumes pointer events while the panel is visible.
func (s *Screen) OnEvent(_ *core.Engine, ev core.Event) bool {
	switch ev := ev.(type) {
	case core.EventKey:
		if ev.Key == s.toggleKey && ev.Down && !ev.Repeat {
			s.visible = !s.visible
			return true
		}
	case core.EventMouseMove:
		s.mouseX, s.mouseY = ev.X, ev.Y
		return s.visible
	case core.EventMouseButton:
		s.mouseX, s.mouseY = ev.X, ev.Y
		if !s.visible {
			return false
		}
		for _, f := range s.Frames() {
			if ev.Down {
				f.MouseClicked(ev.X, ev.Y, ev.Button)
			} else {
				f.MouseReleased(ev.X, ev.Y, ev.Button)
			}
		}
		return true
	}
	return false
}

// Context is the drawing context the panel renders with.
func (s *Screen) Context() *Context { return s.ctx }
