package exercise

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition describes one timed exercise: parallel phase durations and
// labels, cyclic or finite.
type Definition struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Pattern     []int    `yaml:"pattern"`
	Labels      []string `yaml:"labels"`
	Cyclic      bool     `yaml:"cyclic"`
}

// Engine instantiates a fresh session for this definition.
func (d Definition) Engine() *Engine {
	mode := Finite
	if d.Cyclic {
		mode = Cyclic
	}
	return New(mode, d.Pattern, d.Labels)
}

// Builtin returns the stock timed exercises. Grounding and progressive
// relaxation have their own machine shapes and are not pattern definitions.
func Builtin() []Definition {
	return []Definition{
		{
			Name:        "4-7-8 Breathing",
			Description: "The natural tranquilizer for the nervous system.",
			Pattern:     []int{4, 7, 8},
			Labels:      []string{"Inhale", "Hold", "Exhale"},
			Cyclic:      true,
		},
		{
			Name:        "Box Breathing",
			Description: "Tactical focus tool used by elite performers.",
			Pattern:     []int{4, 4, 4, 4},
			Labels:      []string{"Inhale", "Hold", "Exhale", "Hold"},
			Cyclic:      true,
		},
		{
			Name:        "5-Minute Energy Boost",
			Description: "Wake the body up one minute at a time.",
			Pattern:     []int{60, 60, 60, 60, 60},
			Labels:      []string{"Stretch tall", "Shake it out", "Power breaths", "Move lightly", "Stand strong"},
			Cyclic:      false,
		},
	}
}

// LoadCatalog merges the builtins with an optional YAML file. File entries
// override builtins of the same name; new names are appended. An empty path
// returns the builtins unchanged.
func LoadCatalog(path string) ([]Definition, error) {
	defs := Builtin()
	if path == "" {
		return defs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exercise catalog: %w", err)
	}
	var extra []Definition
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse exercise catalog: %w", err)
	}

	for _, d := range extra {
		if len(d.Pattern) == 0 || len(d.Pattern) != len(d.Labels) {
			return nil, fmt.Errorf("exercise catalog: bad definition %q", d.Name)
		}
		replaced := false
		for i := range defs {
			if defs[i].Name == d.Name {
				defs[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			defs = append(defs, d)
		}
	}
	return defs, nil
}
