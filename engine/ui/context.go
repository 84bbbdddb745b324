// Package ui builds the overlay settings panel: one expandable row per
// module and one widget per setting, drawn with the primitive renderer.
package ui

import (
	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/gfx/render"
)

// TextDrawer measures and draws strings. The host supplies it.
type TextDrawer interface {
	DrawString(r *render.Renderer, s string, x, y float64, color uint32, shadow bool)
	Width(s string) float64
	Height() float64
}

// Container supplies geometry to rows and widgets and is told when a row's
// visible height changes.
type Container interface {
	X() int
	Y() int
	Width() int
	RowHeight() int
	FontHeight() int
	UpdateButtons()
}

// Theme holds the packed ARGB colors and tessellation settings of the panel.
type Theme struct {
	Panel        uint32
	PanelHover   uint32
	Setting      uint32
	SettingHover uint32
	Title        uint32
	Outline      uint32
	Accent       uint32
	Track        uint32
	Indicator    uint32
	Text         uint32
	TextEnabled  uint32

	CornerRadius  float64
	CornerSamples int
	CircleSamples int
}

func DefaultTheme() Theme {
	return Theme{
		Panel:         colors.PackedPanel,
		PanelHover:    colors.PackedPanelHot,
		Setting:       colors.ARGB(200, 20, 20, 20),
		SettingHover:  colors.ARGB(200, 34, 34, 34),
		Title:         colors.PackedTitle,
		Outline:       colors.PackedShadow,
		Accent:        colors.PackedAccent,
		Track:         colors.PackedTrack,
		Indicator:     colors.PackedIndicator,
		Text:          colors.PackedWhite,
		TextEnabled:   colors.PackedRed,
		CornerRadius:  4,
		CornerSamples: 8,
		CircleSamples: 24,
	}
}

// Context is passed to every render call; nothing in this package reaches
// for a global renderer.
type Context struct {
	Renderer *render.Renderer
	Text     TextDrawer
	Theme    Theme
}

// hit reports whether (px, py) lies in the half-open rectangle [x, x+w) x [y, y+h).
func hit(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
