package trait

import (
	"fmt"
	"strings"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

type validationConfig struct {
	strictDice bool
}

// ValidationOption tightens validation beyond the minimum rules
type ValidationOption func(*validationConfig)

// WithStrictDice requires dice_count and die_type to be set together
func WithStrictDice() ValidationOption {
	return func(c *validationConfig) {
		c.strictDice = true
	}
}

// Validate checks the trait before it is sent for persistence
func (t *Trait) Validate(opts ...ValidationOption) error {
	if t == nil {
		return dnderr.Validation("trait cannot be nil")
	}

	cfg := &validationConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if strings.TrimSpace(t.Name) == "" {
		return invalid("name", "trait name is required")
	}
	if !t.Scope.IsValid() {
		return invalid("scope", fmt.Sprintf("scope %q is not generic or specific", t.Scope))
	}
	if !t.HasOptions && len(t.Options) > 0 {
		return invalid("options", "options must be empty when has_options is false")
	}
	if !t.HasModifiers && len(t.Modifiers) > 0 {
		return invalid("modifiers", "modifiers must be empty when has_modifiers is false")
	}
	if (t.SpeciesID == nil) != (t.SpeciesName == nil) {
		return invalid("species_id", "species id and name must be set together")
	}

	for i, m := range t.Modifiers {
		if err := m.validate(fmt.Sprintf("modifiers[%d]", i), cfg); err != nil {
			return err
		}
	}

	for i := range t.Options {
		if err := t.Options[i].validate(fmt.Sprintf("options[%d]", i), cfg); err != nil {
			return err
		}
	}

	return nil
}

func (o *Option) validate(path string, cfg *validationConfig) error {
	if strings.TrimSpace(o.Name) == "" {
		return invalid(path+".name", "option name is required")
	}
	if err := checkRequiredLevel(o.RequiredLevel); err != nil {
		return dnderr.Wrap(err, "invalid option").WithMeta("field", path+".required_level")
	}
	if (o.PrerequisiteID == nil) != (o.PrerequisiteName == nil) {
		return invalid(path+".prerequisite_id", "prerequisite id and name must be set together")
	}
	if !o.HasModifiers && len(o.Modifiers) > 0 {
		return invalid(path+".modifiers", "modifiers must be empty when has_modifiers is false")
	}

	for i, m := range o.Modifiers {
		if err := m.validate(fmt.Sprintf("%s.modifiers[%d]", path, i), cfg); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single modifier
func (m Modifier) Validate(opts ...ValidationOption) error {
	cfg := &validationConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return m.validate("modifier", cfg)
}

func (m Modifier) validate(path string, cfg *validationConfig) error {
	if !m.AbilityScore.IsValid() {
		return invalid(path+".ability_score", fmt.Sprintf("unknown ability score %q", m.AbilityScore))
	}
	if !m.DieType.IsValid() {
		return invalid(path+".die_type", fmt.Sprintf("unknown die type %q", m.DieType))
	}
	if !m.DurationUnit.IsValid() {
		return invalid(path+".duration_unit", fmt.Sprintf("unknown duration unit %q", m.DurationUnit))
	}
	if m.DiceCount != nil && *m.DiceCount < 0 {
		return invalid(path+".dice_count", "dice_count cannot be negative")
	}
	if m.DurationValue != nil && *m.DurationValue < 0 {
		return invalid(path+".duration_value", "duration_value cannot be negative")
	}
	if m.ModifierSubtype != "" && m.ModifierType == "" {
		return invalid(path+".modifier_subtype", "modifier_subtype requires a modifier_type")
	}
	if cfg.strictDice && (m.DiceCount == nil) != (m.DieType == "") {
		return invalid(path+".dice_count", "dice_count and die_type must be set together")
	}
	return nil
}

func invalid(field, message string) *dnderr.Error {
	return dnderr.Validation(message).WithMeta("field", field)
}
