package feature

// Module is a toggleable feature with an ordered, fixed list of settings.
type Module struct {
	name     string
	category string
	enabled  bool
	settings []Setting

	onToggle []func(*Module)
}

func NewModule(name, category string, settings ...Setting) *Module {
	return &Module{name: name, category: category, settings: settings}
}

func (m *Module) Name() string     { return m.name }
func (m *Module) Category() string { return m.category }
func (m *Module) Enabled() bool    { return m.enabled }

// Settings returns the settings in display order. Callers must not modify the slice.
func (m *Module) Settings() []Setting { return m.settings }

// OnToggle registers fn to run after the enabled flag changes.
func (m *Module) OnToggle(fn func(*Module)) { m.onToggle = append(m.onToggle, fn) }

func (m *Module) Toggle() { m.SetEnabled(!m.enabled) }

func (m *Module) SetEnabled(v bool) {
	if m.enabled == v {
		return
	}
	m.enabled = v
	for _, fn := range m.onToggle {
		fn(m)
	}
}

// Setting finds a setting by name.
func (m *Module) Setting(name string) (Setting, bool) {
	for _, s := range m.settings {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
