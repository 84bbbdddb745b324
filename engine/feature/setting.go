// Package feature models toggleable modules and their typed settings.
package feature

import "math"

// Kind discriminates the closed set of setting variants.
type Kind int

const (
	KindBool Kind = iota
	KindMode
	KindNumber
	// KindOpaque marks a setting whose declared type this build has no
	// model for. The panel shows no control for it.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindMode:
		return "mode"
	case KindNumber:
		return "number"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Setting is one named, typed configuration value owned by a Module.
type Setting interface {
	Name() string
	Kind() Kind
}

// ===== Bool =====

type BoolSetting struct {
	name    string
	enabled bool
}

func NewBool(name string, enabled bool) *BoolSetting {
	return &BoolSetting{name: name, enabled: enabled}
}

func (s *BoolSetting) Name() string      { return s.name }
func (s *BoolSetting) Kind() Kind        { return KindBool }
func (s *BoolSetting) Enabled() bool     { return s.enabled }
func (s *BoolSetting) SetEnabled(v bool) { s.enabled = v }
func (s *BoolSetting) Toggle()           { s.enabled = !s.enabled }

// ===== Mode =====

// ModeSetting holds one active choice among a fixed, ordered set of modes.
type ModeSetting struct {
	name  string
	modes []string
	index int
}

// NewMode panics if modes is empty; a mode setting without choices is a
// programming error.
func NewMode(name, initial string, modes ...string) *ModeSetting {
	if len(modes) == 0 {
		panic("feature: mode setting " + name + " has no modes")
	}
	s := &ModeSetting{name: name, modes: append([]string(nil), modes...)}
	s.SetMode(initial)
	return s
}

func (s *ModeSetting) Name() string { return s.name }
func (s *ModeSetting) Kind() Kind   { return KindMode }
func (s *ModeSetting) Index() int   { return s.index }
func (s *ModeSetting) Mode() string { return s.modes[s.index] }

// Modes returns a copy of the ordered choices.
func (s *ModeSetting) Modes() []string { return append([]string(nil), s.modes...) }

// SetMode selects mode by name and reports whether it exists.
func (s *ModeSetting) SetMode(mode string) bool {
	for i, m := range s.modes {
		if m == mode {
			s.index = i
			return true
		}
	}
	return false
}

// Cycle advances to the next mode, wrapping from last to first.
func (s *ModeSetting) Cycle() { s.index = (s.index + 1) % len(s.modes) }

// CycleBack steps to the previous mode, wrapping from first to last.
func (s *ModeSetting) CycleBack() { s.index = (s.index - 1 + len(s.modes)) % len(s.modes) }

// ===== Number =====

// NumberSetting is a bounded scalar that only holds multiples of its step.
type NumberSetting struct {
	name           string
	min, max, step float64
	value          float64
}

func NewNumber(name string, value, min, max, step float64) *NumberSetting {
	if max < min {
		min, max = max, min
	}
	s := &NumberSetting{name: name, min: min, max: max, step: step}
	s.SetValue(value)
	return s
}

func (s *NumberSetting) Name() string   { return s.name }
func (s *NumberSetting) Kind() Kind     { return KindNumber }
func (s *NumberSetting) Value() float64 { return s.value }
func (s *NumberSetting) Min() float64   { return s.min }
func (s *NumberSetting) Max() float64   { return s.max }
func (s *NumberSetting) Step() float64  { return s.step }

// SetValue snaps v to the nearest multiple of step and clamps it into [min, max].
func (s *NumberSetting) SetValue(v float64) {
	s.value = Snap(v, s.min, s.max, s.step)
}

// Snap rounds v to the nearest multiple of step, then clamps into [min, max].
// A non-positive step disables snapping.
func Snap(v, min, max, step float64) float64 {
	if math.IsNaN(v) {
		v = min
	}
	if step > 0 {
		v = math.Round(v/step) * step
		// Trim float noise such as 0.30000000000000004.
		v = math.Round(v*1e9) / 1e9
	}
	return math.Max(min, math.Min(max, v))
}

// ===== Opaque =====

// OpaqueSetting keeps an unrecognized setting in its declared position so
// the settings after it keep their indices.
type OpaqueSetting struct {
	name string
	typ  string
}

func NewOpaque(name, declaredType string) *OpaqueSetting {
	return &OpaqueSetting{name: name, typ: declaredType}
}

func (s *OpaqueSetting) Name() string { return s.name }
func (s *OpaqueSetting) Kind() Kind   { return KindOpaque }

// DeclaredType is the type name the setting was declared with.
func (s *OpaqueSetting) DeclaredType() string { return s.typ }
