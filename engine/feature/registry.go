package feature

// Registry owns the ordered module list. Subscribers are told whenever the
// list changes so panels can rebuild.
type Registry struct {
	modules    []*Module
	categories []string
	subs       []func()
}

func NewRegistry(mods ...*Module) *Registry {
	r := &Registry{}
	for _, m := range mods {
		r.add(m)
	}
	return r
}

func (r *Registry) add(m *Module) {
	seen := false
	for _, c := range r.categories {
		if c == m.category {
			seen = true
			break
		}
	}
	if !seen {
		r.categories = append(r.categories, m.category)
	}
	r.modules = append(r.modules, m)
}

// Add appends modules and notifies subscribers.
func (r *Registry) Add(mods ...*Module) {
	for _, m := range mods {
		r.add(m)
	}
	r.changed()
}

func (r *Registry) Modules() []*Module { return r.modules }

// Categories returns categories in first-seen order.
func (r *Registry) Categories() []string { return r.categories }

// InCategory returns the modules of one category in registration order.
func (r *Registry) InCategory(category string) []*Module {
	var out []*Module
	for _, m := range r.modules {
		if m.category == category {
			out = append(out, m)
		}
	}
	return out
}

func (r *Registry) Find(name string) (*Module, bool) {
	for _, m := range r.modules {
		if m.name == name {
			return m, true
		}
	}
	return nil, false
}

// Subscribe registers fn to run after the module list changes.
func (r *Registry) Subscribe(fn func()) { r.subs = append(r.subs, fn) }

func (r *Registry) changed() {
	for _, fn := range r.subs {
		fn()
	}
}
