package feature

import (
	"errors"
	"fmt"
	"io"

	"github.com/hubastard/overlay/engine/logging"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML description of a module list.
type Manifest struct {
	Modules []ModuleSpec `yaml:"modules"`
}

type ModuleSpec struct {
	Name     string        `yaml:"name"`
	Category string        `yaml:"category"`
	Enabled  bool          `yaml:"enabled"`
	Settings []SettingSpec `yaml:"settings"`
}

type SettingSpec struct {
	Type  string   `yaml:"type"`
	Name  string   `yaml:"name"`
	Value any      `yaml:"value"`
	Modes []string `yaml:"modes,omitempty"`
	Min   float64  `yaml:"min,omitempty"`
	Max   float64  `yaml:"max,omitempty"`
	Step  float64  `yaml:"step,omitempty"`
}

// LoadManifest decodes a YAML manifest into a registry. Settings of an
// unknown type are kept as OpaqueSetting so later indices are unchanged.
func LoadManifest(r io.Reader) (*Registry, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	reg := NewRegistry()
	for _, ms := range m.Modules {
		if ms.Name == "" {
			return nil, errors.New("manifest: module without name")
		}
		settings := make([]Setting, 0, len(ms.Settings))
		for _, ss := range ms.Settings {
			s, err := ss.build()
			if err != nil {
				return nil, fmt.Errorf("module %q: %w", ms.Name, err)
			}
			settings = append(settings, s)
		}
		mod := NewModule(ms.Name, ms.Category, settings...)
		mod.enabled = ms.Enabled
		reg.add(mod)
	}
	return reg, nil
}

func (ss SettingSpec) build() (Setting, error) {
	switch ss.Type {
	case "bool", "boolean":
		v, _ := ss.Value.(bool)
		return NewBool(ss.Name, v), nil
	case "mode":
		if len(ss.Modes) == 0 {
			return nil, fmt.Errorf("setting %q: mode setting needs modes", ss.Name)
		}
		v, _ := ss.Value.(string)
		return NewMode(ss.Name, v, ss.Modes...), nil
	case "number", "numeric":
		var v float64
		switch n := ss.Value.(type) {
		case int:
			v = float64(n)
		case float64:
			v = n
		case nil:
			v = ss.Min
		default:
			return nil, fmt.Errorf("setting %q: value %v is not a number", ss.Name, ss.Value)
		}
		return NewNumber(ss.Name, v, ss.Min, ss.Max, ss.Step), nil
	default:
		logging.Logger().Warn("unknown setting type kept as opaque", "setting", ss.Name, "type", ss.Type)
		return NewOpaque(ss.Name, ss.Type), nil
	}
}
