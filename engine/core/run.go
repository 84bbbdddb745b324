package core

import (
	"runtime"
	"time"

	"github.com/hubastard/overlay/engine/logging"
)

// Run wires the platform window + backend and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newBackend func(Window, Config) (Backend, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	surf, err := newBackend(win, cfg)
	if err != nil {
		return err
	}
	defer surf.Shutdown()

	w, h := win.FramebufferSize()
	surf.Resize(w, h, win.ContentScale())

	eng := &Engine{Window: win, Surface: surf, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw >= 1 && fh >= 1 {
				surf.Resize(fw, fh, win.ContentScale())
			}
		}
		app.OnEvent(eng, ev)
		eng.Layers.Dispatch(eng, ev)
	})

	app.OnStart(eng)
	eng.Layers.ForEach(func(l Layer) { l.OnAttach(eng) })

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		surf.Clear(cfg.ClearColor)
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		win.SwapBuffers()
	}

	eng.Layers.ForEach(func(l Layer) { l.OnDetach(eng) })
	app.OnShutdown(eng)
	logging.Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}
