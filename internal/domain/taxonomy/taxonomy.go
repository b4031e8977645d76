// Package taxonomy wraps the externally managed modifier-type vocabulary.
// The vocabulary is fetched once per authoring session and treated as closed.
package taxonomy

import (
	"slices"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// Targets a modifier type may declare it applies to
const (
	TargetItem       = "item"
	TargetMagicItem  = "magic_item"
	TargetBackground = "background"
	TargetSpell      = "spell"
	TargetMonster    = "monster"
	TargetFeat       = "feat"
	TargetSpecies    = "species"
	TargetSubclass   = "subclass"
	TargetClass      = "class"
	TargetTrait      = "trait"
)

// Subtype is one allowed refinement of a modifier type
type Subtype struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ModifierType is one entry of the vocabulary
type ModifierType struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Subtypes  []Subtype `json:"subtypes"`
	Public    bool      `json:"public,omitempty"`
	TargetFor []string  `json:"target_for,omitempty"`
}

// AppliesTo reports whether the type targets target. An empty target list applies everywhere.
func (m ModifierType) AppliesTo(target string) bool {
	return len(m.TargetFor) == 0 || slices.Contains(m.TargetFor, target)
}

// HasSubtype reports whether slug is one of the type's subtypes
func (m ModifierType) HasSubtype(slug string) bool {
	return slices.ContainsFunc(m.Subtypes, func(s Subtype) bool { return s.Slug == slug })
}

// Taxonomy is an immutable lookup over a fetched vocabulary
type Taxonomy struct {
	types  []ModifierType
	bySlug map[string]int
}

// New indexes types by slug. Later duplicates of a slug are ignored.
func New(types []ModifierType) *Taxonomy {
	t := &Taxonomy{
		types:  slices.Clone(types),
		bySlug: make(map[string]int, len(types)),
	}
	for i, mt := range t.types {
		if _, exists := t.bySlug[mt.Slug]; !exists {
			t.bySlug[mt.Slug] = i
		}
	}
	return t
}

// Types returns the vocabulary in fetch order
func (t *Taxonomy) Types() []ModifierType {
	return slices.Clone(t.types)
}

// ForTarget returns only the types that apply to target
func (t *Taxonomy) ForTarget(target string) []ModifierType {
	out := make([]ModifierType, 0, len(t.types))
	for _, mt := range t.types {
		if mt.AppliesTo(target) {
			out = append(out, mt)
		}
	}
	return out
}

func (t *Taxonomy) Lookup(slug string) (ModifierType, bool) {
	i, ok := t.bySlug[slug]
	if !ok {
		return ModifierType{}, false
	}
	return t.types[i], true
}

// SubtypesFor returns the subtype choices for the currently selected type
func (t *Taxonomy) SubtypesFor(slug string) []Subtype {
	mt, ok := t.Lookup(slug)
	if !ok {
		return nil
	}
	return slices.Clone(mt.Subtypes)
}

// ValidateModifier checks type and subtype membership. Empty values are allowed.
func (t *Taxonomy) ValidateModifier(m trait.Modifier) error {
	if m.ModifierType == "" {
		if m.ModifierSubtype != "" {
			return dnderr.Validation("modifier_subtype requires a modifier_type").
				WithMeta("field", "modifier_subtype")
		}
		return nil
	}

	mt, ok := t.Lookup(m.ModifierType)
	if !ok {
		return dnderr.Validationf("unknown modifier type %q", m.ModifierType).
			WithMeta("field", "modifier_type")
	}
	if m.ModifierSubtype != "" && !mt.HasSubtype(m.ModifierSubtype) {
		return dnderr.Validationf("modifier subtype %q does not belong to %q", m.ModifierSubtype, m.ModifierType).
			WithMeta("field", "modifier_subtype")
	}
	return nil
}

// ValidateTrait checks every trait-level and option-level modifier
func (t *Taxonomy) ValidateTrait(tr *trait.Trait) error {
	for i, m := range tr.Modifiers {
		if err := t.ValidateModifier(m); err != nil {
			return dnderr.Wrapf(err, "modifiers[%d]", i)
		}
	}
	for i, opt := range tr.Options {
		for j, m := range opt.Modifiers {
			if err := t.ValidateModifier(m); err != nil {
				return dnderr.Wrapf(err, "options[%d].modifiers[%d]", i, j)
			}
		}
	}
	return nil
}
