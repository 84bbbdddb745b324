// Command paneldump renders the settings panel without a window and writes
// it to a PNG. Every row is expanded so all widgets show.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hubastard/overlay/engine/app"
	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/gfx/soft"
	"github.com/hubastard/overlay/engine/logging"
	"github.com/hubastard/overlay/engine/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	out := flag.String("o", "", "output PNG (defaults to snapshot.output)")
	collapsed := flag.Bool("collapsed", false, "leave rows collapsed")
	enable := flag.String("enable", "", "comma-separated modules to switch on before rendering")
	flag.Parse()

	kit, err := app.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer kit.Close()

	for _, name := range strings.Split(*enable, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		m, ok := kit.Registry.Find(name)
		if !ok {
			log.Fatalf("unknown module %q", name)
		}
		m.SetEnabled(true)
	}

	snap := kit.Config.Snapshot
	if *out == "" {
		*out = snap.Output
	}

	surf := soft.NewSurface(snap.Width, snap.Height, snap.Scale, kit.Assets)
	defer surf.Shutdown()
	surf.Clear(colors.DarkGray)

	screen := kit.Screen(surf)
	screen.OnAttach(nil)
	screen.SetVisible(true)
	if !*collapsed {
		expandAll(screen)
	}
	screen.OnRender(nil, 0)

	if err := surf.SavePNG(*out); err != nil {
		log.Fatal(err)
	}
	st := screen.Context().Renderer.Stats()
	logging.Logger().Info("snapshot written", "path", *out, "draws", st.DrawCalls, "vertices", st.VertexCount)
}

// expandAll right-clicks every row header the way a user would.
func expandAll(s *ui.Screen) {
	for _, f := range s.Frames() {
		for _, r := range f.Rows() {
			if len(r.Components()) == 0 || r.Expanded() {
				continue
			}
			x := float64(f.X() + 1)
			y := float64(f.Y()+r.Offset()) + 1
			r.MouseClicked(x, y, core.MouseRight)
		}
	}
}
