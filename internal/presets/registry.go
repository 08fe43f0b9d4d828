package presets

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned when a preset ID is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Registry holds loaded presets and provides lookup utilities.
type Registry struct {
	presets map[string]*Preset
	all     []Preset
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []Preset) *Registry {
	registry := &Registry{
		presets: make(map[string]*Preset),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets), nil
}

// LoadRegistryFile loads a registry from a presets file on disk.
func LoadRegistryFile(path string) (*Registry, error) {
	file, err := LoadFile[PresetsFile](path)
	if err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("no presets loaded from %s", path)
	}
	return NewRegistry(file.Presets), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Preset {
	return r.presets[id]
}

// Lookup returns the preset with the given ID. An empty ID selects the
// default preset, falling back to the first one registered.
func (r *Registry) Lookup(id string) (*Preset, error) {
	if id == "" {
		return r.Default(), nil
	}
	if p := r.presets[id]; p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
}

// Default returns the classic preset, or the first registered preset.
func (r *Registry) Default() *Preset {
	if p := r.presets[DefaultID]; p != nil {
		return p
	}
	return &r.all[0]
}

// All returns all preset definitions.
func (r *Registry) All() []Preset {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
