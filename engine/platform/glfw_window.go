package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/logging"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
// Pointer positions are reported in logical units (framebuffer pixels divided
// by the content scale).
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// NewGLFWWindow must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	logging.Logger().Info("window created", "gl", gl.GoStr(gl.GetString(gl.VERSION)), "scale", contentScale(win))

	gw := &GLFWWindow{w: win}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetContentScaleCallback(func(*glfw.Window, float32, float32) {
		w, h := win.GetFramebufferSize()
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		lx, ly := gw.toLogical(x, y)
		gw.emit(core.EventMouseMove{X: lx, Y: ly})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		lx, ly := gw.toLogical(win.GetCursorPos())
		gw.emit(core.EventMouseButton{Button: int(b), Down: action == glfw.Press, X: lx, Y: ly})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{
			Key:    k,
			Down:   action != glfw.Release,
			Repeat: action == glfw.Repeat,
			Mods:   translateMods(mods),
		})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

// NewWindow adapts NewGLFWWindow to core.Run.
func NewWindow(cfg core.Config) (core.Window, error) {
	w, err := NewGLFWWindow(cfg)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// toLogical converts screen coordinates to framebuffer pixels, then to
// logical units.
func (g *GLFWWindow) toLogical(x, y float64) (float64, float64) {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	if ww > 0 && wh > 0 {
		x *= float64(fw) / float64(ww)
		y *= float64(fh) / float64(wh)
	}
	s := g.ContentScale()
	return x / s, y / s
}

func contentScale(w *glfw.Window) float64 {
	sx, _ := w.GetContentScale()
	if sx <= 0 {
		return 1
	}
	return float64(sx)
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) ContentScale() float64                { return contentScale(g.w) }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// Destroy releases the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

var keyMap = map[glfw.Key]core.Key{
	glfw.KeyEscape:     core.KeyEscape,
	glfw.KeySpace:      core.KeySpace,
	glfw.KeyRightShift: core.KeyRightShift,
	glfw.KeyInsert:     core.KeyInsert,
	glfw.KeyP:          core.KeyP,
}

var modMap = [...]struct {
	from glfw.ModifierKey
	to   core.Mod
}{
	{glfw.ModShift, core.ModShift},
	{glfw.ModControl, core.ModCtrl},
	{glfw.ModAlt, core.ModAlt},
	{glfw.ModSuper, core.ModSuper},
}

func translateKey(k glfw.Key) core.Key {
	if ck, ok := keyMap[k]; ok {
		return ck
	}
	return core.KeyUnknown
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	for _, mm := range modMap {
		if m&mm.from != 0 {
			out |= mm.to
		}
	}
	return out
}
