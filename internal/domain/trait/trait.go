// Package trait holds the authoring model for traits, their selectable options and the
// modifiers attached to either.
package trait

import (
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/shared"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// Trait is an authored rules element that may expose options and modifiers
type Trait struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name"`
	DisplayOrder int          `json:"display_order"`
	Scope        shared.Scope `json:"scope"`
	Description  string       `json:"description"`
	HasOptions   bool         `json:"has_options"`
	Options      []Option     `json:"options"`
	HasModifiers bool         `json:"has_modifiers"`
	Modifiers    []Modifier   `json:"modifiers"`

	// Owned by the species context, injected when a specific trait is saved
	SpeciesID   *string `json:"species_id,omitempty"`
	SpeciesName *string `json:"species_name,omitempty"`
}

// PrerequisiteRef is a weak reference to an option on another trait
type PrerequisiteRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// New returns an empty trait ready for editing
func New(name string, scope shared.Scope) *Trait {
	return &Trait{
		Name:      name,
		Scope:     scope,
		Options:   []Option{},
		Modifiers: []Modifier{},
	}
}

// Option returns a pointer to the option at index so nested modifiers can be edited in place
func (t *Trait) Option(index int) (*Option, error) {
	if index < 0 || index >= len(t.Options) {
		return nil, dnderr.IndexOutOfRange(index, len(t.Options)).WithMeta("list", "options")
	}
	return &t.Options[index], nil
}

// SetHasModifiers toggles the trait-level modifier list. Disabling discards the list.
func (t *Trait) SetHasModifiers(enabled bool) {
	t.HasModifiers = enabled
	if !enabled {
		t.Modifiers = []Modifier{}
	}
}

// SetHasOptions toggles the option list. Disabling discards every option.
func (t *Trait) SetHasOptions(enabled bool) {
	t.HasOptions = enabled
	if !enabled {
		t.Options = []Option{}
	}
}

// SetSpecies injects the owning species pair
func (t *Trait) SetSpecies(id, name string) {
	t.SpeciesID = &id
	t.SpeciesName = &name
}

// ClearSpecies removes the species pair
func (t *Trait) ClearSpecies() {
	t.SpeciesID = nil
	t.SpeciesName = nil
}

// Normalize replaces nil lists with empty ones so a saved payload always carries arrays
func (t *Trait) Normalize() {
	if t.Options == nil {
		t.Options = []Option{}
	}
	if t.Modifiers == nil {
		t.Modifiers = []Modifier{}
	}
	for i := range t.Options {
		if t.Options[i].Modifiers == nil {
			t.Options[i].Modifiers = []Modifier{}
		}
	}
}

// Clone returns a deep copy
func (t *Trait) Clone() *Trait {
	if t == nil {
		return nil
	}

	out := *t
	out.SpeciesID = cloneString(t.SpeciesID)
	out.SpeciesName = cloneString(t.SpeciesName)
	out.Modifiers = cloneModifiers(t.Modifiers)
	if t.Options != nil {
		out.Options = make([]Option, len(t.Options))
		for i := range t.Options {
			out.Options[i] = t.Options[i].clone()
		}
	}
	return &out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
