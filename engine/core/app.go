package core

import (
	"strings"
	"time"

	"github.com/hubastard/overlay/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/surface init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events, before layers
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window  Window
	Surface Backend
	Layers  LayerStack
	Input   *Input
	start   time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	ContentScale() float64
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key    Key
	Down   bool
	Repeat bool
	Mods   Mod
}

func (EventKey) isEvent() {}

// EventMouseMove carries the pointer position in logical (scaled) coordinates.
type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

// EventMouseButton is a press or release. Button 0 is left, 1 is right.
type EventMouseButton struct {
	Button int
	Down   bool
	X, Y   float64
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyRightShift
	KeyInsert
	KeyP
)

var keyNames = map[string]Key{
	"escape":      KeyEscape,
	"space":       KeySpace,
	"right_shift": KeyRightShift,
	"insert":      KeyInsert,
	"p":           KeyP,
}

// ParseKey maps a config key name such as "right_shift" to a Key.
func ParseKey(name string) (Key, bool) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
}
