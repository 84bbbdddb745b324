package main

import (
	"flag"
	"log"

	"github.com/hubastard/overlay/engine/app"
	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
	glbackend "github.com/hubastard/overlay/engine/gfx/gl"
	"github.com/hubastard/overlay/engine/platform"
)

type App struct {
	kit   *app.Kit
	stats *LayerStats
}

func (a *App) OnStart(e *core.Engine) {
	screen := a.kit.Screen(e.Surface)
	screen.SetVisible(true)
	e.Layers.Push(screen)

	a.stats = &LayerStats{ctx: a.kit.Context(e.Surface), panel: screen}
	e.Layers.Push(a.stats)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if _, ok := ev.(core.EventCloseRequested); ok {
		e.Window.RequestClose()
	}
}
func (a *App) OnShutdown(e *core.Engine) { a.kit.Close() }

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	flag.Parse()

	kit, err := app.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	cfg := kit.EngineConfig()
	cfg.ClearColor = colors.DarkGray

	newWindow := platform.NewWindow
	newBackend := func(win core.Window, cfg core.Config) (core.Backend, error) {
		return glbackend.NewSurfaceGL(win, cfg, kit.Assets)
	}

	if err := core.Run(&App{kit: kit}, cfg, newWindow, newBackend); err != nil {
		log.Fatal(err)
	}
}
