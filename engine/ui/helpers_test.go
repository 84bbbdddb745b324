package ui

import (
	"github.com/hubastard/overlay/engine/feature"
	"github.com/hubastard/overlay/engine/gfx/headless"
	"github.com/hubastard/overlay/engine/gfx/render"
)

type stubText struct{ drawn []string }

func (t *stubText) DrawString(_ *render.Renderer, s string, _, _ float64, _ uint32, _ bool) {
	t.drawn = append(t.drawn, s)
}
func (t *stubText) Width(s string) float64 { return float64(6 * len(s)) }
func (t *stubText) Height() float64        { return 9 }

type stubContainer struct {
	x, y, width, rowHeight int
	updates                int
}

func (c *stubContainer) X() int          { return c.x }
func (c *stubContainer) Y() int          { return c.y }
func (c *stubContainer) Width() int      { return c.width }
func (c *stubContainer) RowHeight() int  { return c.rowHeight }
func (c *stubContainer) FontHeight() int { return 9 }
func (c *stubContainer) UpdateButtons()  { c.updates++ }

// colorSetting is a kind the panel has no widget for.
type colorSetting struct{}

func (colorSetting) Name() string       { return "Tint" }
func (colorSetting) Kind() feature.Kind { return feature.Kind(99) }

func newTestContext() (*Context, *headless.Recorder, *stubText) {
	rec := headless.NewRecorder(600, 1)
	txt := &stubText{}
	return &Context{Renderer: render.New(rec, nil), Text: txt, Theme: DefaultTheme()}, rec, txt
}

func speedModule() *feature.Module {
	return feature.NewModule("Speed", "Movement",
		feature.NewBool("Enabled", true),
		feature.NewNumber("Multiplier", 2, 1, 5, 0.5),
	)
}
