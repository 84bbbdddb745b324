// Package app assembles the pieces both binaries share: configuration,
// logging, assets, the module registry and the panel's text face.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hubastard/overlay/engine/assets"
	"github.com/hubastard/overlay/engine/config"
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/feature"
	"github.com/hubastard/overlay/engine/gfx/render"
	"github.com/hubastard/overlay/engine/logging"
	"github.com/hubastard/overlay/engine/text"
	"github.com/hubastard/overlay/engine/ui"
)

type Kit struct {
	Config   config.Config
	Assets   *assets.Loader
	Registry *feature.Registry
	Painter  *text.Painter
}

// Load reads configuration from configPath (may be empty), installs the
// logger and loads the module manifest and font from the asset root.
func Load(configPath string) (*Kit, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.Log.Level),
	})))
	return NewKit(cfg, assets.NewLoader(cfg.Assets.Root))
}

// NewKit builds a kit over an already loaded config and asset loader.
func NewKit(cfg config.Config, loader *assets.Loader) (*Kit, error) {
	reg, err := loadRegistry(loader, cfg.Assets.Manifest)
	if err != nil {
		return nil, err
	}

	face := text.NewBasic()
	if cfg.Assets.Font != "" {
		ttf, err := text.LoadTTF(loader, cfg.Assets.Font, cfg.Assets.FontSize)
		if err != nil {
			logging.Logger().Warn("font unavailable, using built-in face", "font", cfg.Assets.Font, "err", err)
		} else {
			face = ttf
		}
	}

	logging.Logger().Info("modules loaded", "modules", len(reg.Modules()), "categories", len(reg.Categories()))
	return &Kit{Config: cfg, Assets: loader, Registry: reg, Painter: text.NewPainter(face)}, nil
}

func loadRegistry(loader *assets.Loader, manifest string) (*feature.Registry, error) {
	f, err := loader.Open(manifest)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()
	reg, err := feature.LoadManifest(f)
	if err != nil {
		return nil, err
	}
	for _, m := range reg.Modules() {
		m.OnToggle(logToggle)
	}
	return reg, nil
}

func logToggle(m *feature.Module) {
	logging.Logger().Info("module toggled", "module", m.Name(), "enabled", m.Enabled())
}

// EngineConfig maps the window section onto the run loop's config.
func (k *Kit) EngineConfig() core.Config {
	w := k.Config.Window
	return core.Config{Title: w.Title, Width: w.Width, Height: w.Height, VSync: w.VSync}
}

// Context wires a renderer over s to the kit's text face and theme.
func (k *Kit) Context(s core.Surface) *ui.Context {
	theme := ui.DefaultTheme()
	theme.CornerRadius = k.Config.Render.CornerRadius
	theme.CornerSamples = k.Config.Render.CornerSamples
	theme.CircleSamples = k.Config.Render.CircleSamples
	return &ui.Context{Renderer: render.New(s, k.Assets), Text: k.Painter, Theme: theme}
}

func (k *Kit) Layout() ui.Layout {
	p := k.Config.Panel
	return ui.Layout{X: p.X, Y: p.Y, Width: p.Width, RowHeight: p.RowHeight, Spacing: p.Spacing}
}

// Screen builds the panel layer over s.
func (k *Kit) Screen(s core.Surface) *ui.Screen {
	scr := ui.NewScreen(k.Registry, k.Context(s), k.Layout())
	if key, ok := core.ParseKey(k.Config.Panel.ToggleKey); ok {
		scr.SetToggleKey(key)
	} else {
		logging.Logger().Warn("unknown toggle key, keeping right shift", "key", k.Config.Panel.ToggleKey)
	}
	for _, cat := range k.Registry.Categories() {
		if id, ok := k.Config.Panel.Icons[strings.ToLower(cat)]; ok {
			scr.SetIcon(cat, id)
		}
	}
	return scr
}

func (k *Kit) Close() {
	if err := k.Painter.Face().Close(); err != nil {
		logging.Logger().Warn("font close failed", "err", err)
	}
}
