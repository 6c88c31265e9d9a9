package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/specialistvlad/stepadapter/internal/adapter"
)

// Model is the unified, format-agnostic representation of every step's
// adapting recipes.
type Model struct {
	Steps map[string]*Step
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Steps: make(map[string]*Step)}
}

// Step holds the recipes that build the arguments of one downstream step.
type Step struct {
	Name        string
	Description string
	// Recipes maps each argument name to the recipe that builds it.
	Recipes map[string]adapter.Recipe
	// Source is where the step was declared, used in error messages.
	Source string
}

// AddStep registers a step, refusing duplicates.
func (m *Model) AddStep(s *Step) error {
	if prev, exists := m.Steps[s.Name]; exists {
		return fmt.Errorf("step '%s' declared at %s was already declared at %s", s.Name, s.Source, prev.Source)
	}
	m.Steps[s.Name] = s
	return nil
}

// StepNames returns the declared step names in sorted order.
func (m *Model) StepNames() []string {
	return slices.Sorted(maps.Keys(m.Steps))
}

// Adapter builds the adapter for the named step.
func (m *Model) Adapter(name string) (*adapter.Adapter, error) {
	s, ok := m.Steps[name]
	if !ok {
		return nil, fmt.Errorf("unknown step '%s' (known steps: %v)", name, m.StepNames())
	}
	return adapter.New(s.Recipes), nil
}
