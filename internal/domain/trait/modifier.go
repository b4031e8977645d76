package trait

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/shared"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// Modifier is a structured bonus attached to a trait or to one option.
// No field is required; an all-empty modifier is a legal record.
type Modifier struct {
	ModifierType         string              `json:"modifier_type"`
	ModifierSubtype      string              `json:"modifier_subtype"`
	AbilityScore         shared.AbilityScore `json:"ability_score"`
	DiceCount            *int                `json:"dice_count"`
	DieType              shared.DieType      `json:"die_type"`
	FixedValue           *float64            `json:"fixed_value"`
	AdditionalBonusTypes string              `json:"additional_bonus_types"`
	Details              string              `json:"details"`
	DurationValue        *int                `json:"duration_value"`
	DurationUnit         shared.DurationUnit `json:"duration_unit"`
}

// ModifierField names a modifier field settable from a form value
type ModifierField string

const (
	ModifierFieldType                 ModifierField = "modifier_type"
	ModifierFieldSubtype              ModifierField = "modifier_subtype"
	ModifierFieldAbilityScore         ModifierField = "ability_score"
	ModifierFieldDiceCount            ModifierField = "dice_count"
	ModifierFieldDieType              ModifierField = "die_type"
	ModifierFieldFixedValue           ModifierField = "fixed_value"
	ModifierFieldAdditionalBonusTypes ModifierField = "additional_bonus_types"
	ModifierFieldDetails              ModifierField = "details"
	ModifierFieldDurationValue        ModifierField = "duration_value"
	ModifierFieldDurationUnit         ModifierField = "duration_unit"
)

// AddModifier returns mods with an empty modifier appended. The input is left untouched.
func AddModifier(mods []Modifier) []Modifier {
	return append(slices.Clip(mods), Modifier{})
}

// UpdateModifierField returns a copy of mods with one field of mods[index] replaced.
// An empty value clears optional fields. Changing the type clears the subtype.
func UpdateModifierField(mods []Modifier, index int, field ModifierField, value string) ([]Modifier, error) {
	if index < 0 || index >= len(mods) {
		return nil, dnderr.IndexOutOfRange(index, len(mods)).WithMeta("list", "modifiers")
	}

	m := mods[index]
	if err := m.set(field, value); err != nil {
		return nil, err
	}

	out := slices.Clone(mods)
	out[index] = m
	return out, nil
}

// RemoveModifier returns a copy of mods without mods[index], order preserved
func RemoveModifier(mods []Modifier, index int) ([]Modifier, error) {
	if index < 0 || index >= len(mods) {
		return nil, dnderr.IndexOutOfRange(index, len(mods)).WithMeta("list", "modifiers")
	}

	out := make([]Modifier, 0, len(mods)-1)
	out = append(out, mods[:index]...)
	return append(out, mods[index+1:]...), nil
}

func (m *Modifier) set(field ModifierField, value string) error {
	switch field {
	case ModifierFieldType:
		if value != m.ModifierType {
			m.ModifierSubtype = ""
		}
		m.ModifierType = value
	case ModifierFieldSubtype:
		m.ModifierSubtype = value
	case ModifierFieldAbilityScore:
		a, err := shared.ParseAbilityScore(value)
		if err != nil {
			return err
		}
		m.AbilityScore = a
	case ModifierFieldDiceCount:
		n, err := parseNonNegative(field, value)
		if err != nil {
			return err
		}
		m.DiceCount = n
	case ModifierFieldDieType:
		d, err := shared.ParseDieType(value)
		if err != nil {
			return err
		}
		m.DieType = d
	case ModifierFieldFixedValue:
		f, err := parseFixedValue(value)
		if err != nil {
			return err
		}
		m.FixedValue = f
	case ModifierFieldAdditionalBonusTypes:
		m.AdditionalBonusTypes = value
	case ModifierFieldDetails:
		m.Details = value
	case ModifierFieldDurationValue:
		n, err := parseNonNegative(field, value)
		if err != nil {
			return err
		}
		m.DurationValue = n
	case ModifierFieldDurationUnit:
		u, err := shared.ParseDurationUnit(value)
		if err != nil {
			return err
		}
		m.DurationUnit = u
	default:
		return dnderr.InvalidArgumentf("unknown modifier field %q", field).
			WithMeta("field", string(field))
	}

	return nil
}

func parseNonNegative(field ModifierField, value string) (*int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, dnderr.Validationf("%s %q is not a whole number", field, value).
			WithMeta("field", string(field))
	}
	if n < 0 {
		return nil, dnderr.Validationf("%s cannot be negative", field).
			WithMeta("field", string(field))
	}
	return &n, nil
}

func parseFixedValue(value string) (*float64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, dnderr.Validationf("fixed_value %q is not a number", value).
			WithMeta("field", string(ModifierFieldFixedValue))
	}
	return &f, nil
}

// Formula renders a short summary such as "2d6+3 STR (1 minutes)"
func (m Modifier) Formula() string {
	var roll string
	switch {
	case m.DiceCount != nil && m.DieType != shared.DieNone:
		roll = fmt.Sprintf("%d%s", *m.DiceCount, m.DieType)
	case m.DiceCount != nil:
		roll = fmt.Sprintf("%dd?", *m.DiceCount)
	case m.DieType != shared.DieNone:
		roll = string(m.DieType)
	}

	if m.FixedValue != nil {
		fixed := strconv.FormatFloat(*m.FixedValue, 'f', -1, 64)
		if roll != "" && *m.FixedValue >= 0 {
			fixed = "+" + fixed
		}
		roll += fixed
	}

	parts := make([]string, 0, 3)
	if roll != "" {
		parts = append(parts, roll)
	}
	if m.AbilityScore != shared.AbilityScoreNone {
		parts = append(parts, string(m.AbilityScore))
	}

	switch {
	case m.DurationValue != nil && m.DurationUnit != shared.DurationNone:
		parts = append(parts, fmt.Sprintf("(%d %s)", *m.DurationValue, m.DurationUnit))
	case m.DurationValue != nil:
		parts = append(parts, fmt.Sprintf("(%d)", *m.DurationValue))
	case m.DurationUnit != shared.DurationNone:
		parts = append(parts, fmt.Sprintf("(%s)", m.DurationUnit))
	}

	return strings.Join(parts, " ")
}

func (t *Trait) AddModifier() {
	t.Modifiers = AddModifier(t.Modifiers)
}

func (t *Trait) UpdateModifierField(index int, field ModifierField, value string) error {
	mods, err := UpdateModifierField(t.Modifiers, index, field, value)
	if err != nil {
		return err
	}
	t.Modifiers = mods
	return nil
}

func (t *Trait) RemoveModifier(index int) error {
	mods, err := RemoveModifier(t.Modifiers, index)
	if err != nil {
		return err
	}
	t.Modifiers = mods
	return nil
}

func cloneModifiers(mods []Modifier) []Modifier {
	if mods == nil {
		return nil
	}

	out := make([]Modifier, len(mods))
	for i, m := range mods {
		if m.DiceCount != nil {
			v := *m.DiceCount
			m.DiceCount = &v
		}
		if m.FixedValue != nil {
			v := *m.FixedValue
			m.FixedValue = &v
		}
		if m.DurationValue != nil {
			v := *m.DurationValue
			m.DurationValue = &v
		}
		out[i] = m
	}
	return out
}
