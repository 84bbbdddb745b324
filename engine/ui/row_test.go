package ui

import (
	"strings"
	"testing"

	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/feature"
	"github.com/stretchr/testify/require"
)

func TestRowWidgetOffsetsFollowSettingIndex(t *testing.T) {
	c := &stubContainer{x: 10, y: 10, width: 100, rowHeight: 14}
	m := feature.NewModule("Mixed", "Misc",
		feature.NewBool("A", false),
		colorSetting{},
		feature.NewMode("B", "x", "x", "y"),
		colorSetting{},
		feature.NewNumber("C", 1, 0, 2, 1),
	)
	r := NewRow(m, c, 14)

	ws := r.Components()
	require.Len(t, ws, 3)
	require.IsType(t, &Checkbox{}, ws[0])
	require.IsType(t, &ModeBox{}, ws[1])
	require.IsType(t, &Slider{}, ws[2])
	require.Equal(t, []int{14, 42, 70}, []int{ws[0].Offset(), ws[1].Offset(), ws[2].Offset()})
}

func TestManifestUnknownTypeLeavesGap(t *testing.T) {
	reg, err := feature.LoadManifest(strings.NewReader(`
modules:
  - name: Esp
    category: Render
    settings:
      - {type: bool, name: Names, value: true}
      - {type: color, name: Tint}
      - {type: number, name: Range, value: 3, min: 1, max: 6, step: 1}
`))
	require.NoError(t, err)
	esp, ok := reg.Find("Esp")
	require.True(t, ok)

	r := NewRow(esp, &stubContainer{width: 100, rowHeight: 14}, 14)
	ws := r.Components()
	require.Len(t, ws, 2)
	require.IsType(t, &Checkbox{}, ws[0])
	require.IsType(t, &Slider{}, ws[1])
	require.Equal(t, []int{14, 42}, []int{ws[0].Offset(), ws[1].Offset()})
}

func TestNewWidgetSkipsMismatchedSetting(t *testing.T) {
	c := &stubContainer{rowHeight: 14}
	r := NewRow(feature.NewModule("Empty", "Misc"), c, 0)
	_, ok := NewWidget(colorSetting{}, r, 14)
	require.False(t, ok)
}

func TestSpeedScenario(t *testing.T) {
	c := &stubContainer{x: 0, y: 0, width: 100, rowHeight: 14}
	m := speedModule()
	r := NewRow(m, c, 14)

	// Right click on the header expands and relayouts once.
	r.MouseClicked(5, 20, core.MouseRight)
	require.True(t, r.Expanded())
	require.Equal(t, 1, c.updates)

	ws := r.Components()
	require.Len(t, ws, 2)
	require.Equal(t, 14, ws[0].Offset())
	require.Equal(t, 28, ws[1].Offset())

	// Checkbox row spans y in [28, 42).
	r.MouseClicked(50, 30, core.MouseLeft)
	enabled, _ := m.Setting("Enabled")
	require.False(t, enabled.(*feature.BoolSetting).Enabled())

	// Slider row spans y in [42, 56); 73% of the track.
	r.MouseClicked(73, 45, core.MouseLeft)
	r.MouseReleased(73, 45, core.MouseLeft)
	mult, _ := m.Setting("Multiplier")
	require.InDelta(t, 4.0, mult.(*feature.NumberSetting).Value(), 1e-9)

	// A second right click collapses and relayouts again.
	r.MouseClicked(5, 20, core.MouseRight)
	require.False(t, r.Expanded())
	require.Equal(t, 2, c.updates)
}

func TestRowLeftClickTogglesModule(t *testing.T) {
	c := &stubContainer{width: 100, rowHeight: 14}
	m := speedModule()
	r := NewRow(m, c, 0)

	r.MouseClicked(1, 1, core.MouseLeft)
	require.True(t, m.Enabled())
	r.MouseClicked(1, 1, core.MouseLeft)
	require.False(t, m.Enabled())

	// Edges: the rectangle is half-open.
	r.MouseClicked(100, 1, core.MouseLeft)
	r.MouseClicked(1, 14, core.MouseLeft)
	require.False(t, m.Enabled())
	require.Equal(t, 0, c.updates)
}

func TestCollapsedRowDoesNotRenderOrForward(t *testing.T) {
	ctx, rec, txt := newTestContext()
	c := &stubContainer{width: 100, rowHeight: 14}
	m := speedModule()
	r := NewRow(m, c, 0)

	r.Render(ctx, -1, -1, 0)
	require.Len(t, rec.Draws(), 1)
	require.Equal(t, []string{"Speed", "+"}, txt.drawn)

	// Clicks where the checkbox would be do nothing while collapsed.
	r.MouseClicked(50, 20, core.MouseLeft)
	enabled, _ := m.Setting("Enabled")
	require.True(t, enabled.(*feature.BoolSetting).Enabled())

	rec.Reset()
	txt.drawn = nil
	r.MouseClicked(1, 1, core.MouseRight)
	r.Render(ctx, -1, -1, 0)
	require.Greater(t, len(rec.Draws()), 1)
	require.Contains(t, txt.drawn, "Enabled")
	require.Contains(t, txt.drawn, "Multiplier:")
	require.Equal(t, 42, r.Height())
}

func TestRowHoverHighlight(t *testing.T) {
	ctx, rec, _ := newTestContext()
	c := &stubContainer{width: 100, rowHeight: 14}
	r := NewRow(speedModule(), c, 0)

	r.Render(ctx, 10, 5, 0)
	draws := rec.Draws()
	require.Len(t, draws, 2)
	require.NotEqual(t, draws[0].Vertices[0].Color, draws[1].Vertices[0].Color)
}
