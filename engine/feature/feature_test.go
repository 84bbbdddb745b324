package feature

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeCycleIsCyclicPermutation(t *testing.T) {
	modes := []string{"Vanilla", "Strafe", "Bhop", "Ground"}
	for start := range modes {
		s := NewMode("Mode", modes[start], modes...)
		seen := map[string]bool{}
		for i := 0; i < len(modes); i++ {
			seen[s.Mode()] = true
			s.Cycle()
		}
		require.Equal(t, modes[start], s.Mode())
		require.Len(t, seen, len(modes))
	}
}

func TestModeCycleBackAndSet(t *testing.T) {
	s := NewMode("Mode", "A", "A", "B", "C")
	s.CycleBack()
	require.Equal(t, "C", s.Mode())
	s.Cycle()
	require.Equal(t, "A", s.Mode())

	require.False(t, s.SetMode("Z"))
	require.True(t, s.SetMode("B"))
	require.Equal(t, 1, s.Index())
	require.Equal(t, "B", s.Mode())
}

func TestNumberSnapsAndClamps(t *testing.T) {
	n := NewNumber("Multiplier", 2.0, 1, 5, 0.5)
	require.Equal(t, 2.0, n.Value())

	for _, tc := range []struct{ in, want float64 }{
		{3.92, 4.0},
		{3.74, 3.5},
		{3.75, 4.0},
		{-100, 1},
		{100, 5},
		{math.NaN(), 1},
	} {
		n.SetValue(tc.in)
		require.Equal(t, tc.want, n.Value(), "in=%v", tc.in)
	}

	tenth := NewNumber("Range", 0.3, 0, 1, 0.1)
	require.Equal(t, 0.3, tenth.Value())

	swapped := NewNumber("Swapped", 0, 10, 2, 1)
	require.Equal(t, 2.0, swapped.Min())
	require.Equal(t, 10.0, swapped.Max())
	require.Equal(t, 2.0, swapped.Value())
}

func TestModuleToggleHooks(t *testing.T) {
	m := NewModule("Speed", "Movement", NewBool("Enabled", true))
	var calls []bool
	m.OnToggle(func(m *Module) { calls = append(calls, m.Enabled()) })

	m.Toggle()
	m.SetEnabled(true) // no change, no hook
	m.Toggle()
	require.Equal(t, []bool{true, false}, calls)

	s, ok := m.Setting("Enabled")
	require.True(t, ok)
	require.Equal(t, KindBool, s.Kind())
	_, ok = m.Setting("Nope")
	require.False(t, ok)
}

func TestRegistryCategoriesAndSubscribe(t *testing.T) {
	reg := NewRegistry(
		NewModule("Speed", "Movement"),
		NewModule("Aura", "Combat"),
		NewModule("Fly", "Movement"),
	)
	require.Equal(t, []string{"Movement", "Combat"}, reg.Categories())
	require.Len(t, reg.InCategory("Movement"), 2)

	changes := 0
	reg.Subscribe(func() { changes++ })
	reg.Add(NewModule("Esp", "Render"))
	require.Equal(t, 1, changes)
	require.Equal(t, []string{"Movement", "Combat", "Render"}, reg.Categories())

	m, ok := reg.Find("Fly")
	require.True(t, ok)
	require.Equal(t, "Movement", m.Category())
}

const manifest = `
modules:
  - name: Speed
    category: Movement
    settings:
      - {type: bool, name: Enabled, value: true}
      - {type: number, name: Multiplier, value: 2, min: 1, max: 5, step: 0.5}
      - {type: mode, name: Mode, value: Strafe, modes: [Vanilla, Strafe]}
  - name: Aura
    category: Combat
    enabled: true
`

func TestLoadManifest(t *testing.T) {
	reg, err := LoadManifest(strings.NewReader(manifest))
	require.NoError(t, err)
	require.Len(t, reg.Modules(), 2)

	speed, ok := reg.Find("Speed")
	require.True(t, ok)
	require.False(t, speed.Enabled())
	require.Len(t, speed.Settings(), 3)

	require.True(t, speed.Settings()[0].(*BoolSetting).Enabled())
	mult := speed.Settings()[1].(*NumberSetting)
	require.Equal(t, 2.0, mult.Value())
	require.Equal(t, 0.5, mult.Step())
	require.Equal(t, "Strafe", speed.Settings()[2].(*ModeSetting).Mode())

	aura, _ := reg.Find("Aura")
	require.True(t, aura.Enabled())
}

func TestLoadManifestKeepsUnknownTypesAsOpaque(t *testing.T) {
	reg, err := LoadManifest(strings.NewReader(`
modules:
  - name: Esp
    settings:
      - {type: bool, name: Names, value: true}
      - {type: color, name: Tint}
      - {type: number, name: Range, value: 3, min: 1, max: 6, step: 1}
`))
	require.NoError(t, err)

	esp, ok := reg.Find("Esp")
	require.True(t, ok)
	ss := esp.Settings()
	require.Len(t, ss, 3)
	require.Equal(t, KindOpaque, ss[1].Kind())
	require.Equal(t, "opaque", ss[1].Kind().String())
	require.Equal(t, "color", ss[1].(*OpaqueSetting).DeclaredType())
	require.Equal(t, KindNumber, ss[2].Kind())
}

func TestLoadManifestRejectsMalformedModules(t *testing.T) {
	_, err := LoadManifest(strings.NewReader("modules:\n  - category: X\n"))
	require.Error(t, err)

	reg, err := LoadManifest(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, reg.Modules())
}
