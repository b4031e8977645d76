package trait_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/shared"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, elementalAffinity().Validate())
	assert.NoError(t, trait.New("Darkvision", shared.ScopeGeneric).Validate())

	tests := []struct {
		name  string
		edit  func(*trait.Trait)
		field string
	}{
		{"empty name", func(tr *trait.Trait) { tr.Name = "  " }, "name"},
		{"bad scope", func(tr *trait.Trait) { tr.Scope = "global" }, "scope"},
		{"options without flag", func(tr *trait.Trait) { tr.HasOptions = false }, "options"},
		{"modifiers without flag", func(tr *trait.Trait) { tr.Modifiers = []trait.Modifier{{}} }, "modifiers"},
		{"half species", func(tr *trait.Trait) { tr.SpeciesID = ptr("s1") }, "species_id"},
		{"empty option name", func(tr *trait.Trait) { tr.Options[1].Name = "" }, "options[1].name"},
		{"level too high", func(tr *trait.Trait) { tr.Options[0].RequiredLevel = 21 }, "options[0].required_level"},
		{"level negative", func(tr *trait.Trait) { tr.Options[0].RequiredLevel = -1 }, "options[0].required_level"},
		{"half prerequisite", func(tr *trait.Trait) { tr.Options[2].PrerequisiteID = ptr("x") }, "options[2].prerequisite_id"},
		{"option modifiers without flag", func(tr *trait.Trait) {
			tr.Options[0].Modifiers = []trait.Modifier{{}}
		}, "options[0].modifiers"},
		{"negative dice", func(tr *trait.Trait) {
			tr.Options[0].HasModifiers = true
			tr.Options[0].Modifiers = []trait.Modifier{{DiceCount: ptr(-2)}}
		}, "options[0].modifiers[0].dice_count"},
		{"subtype without type", func(tr *trait.Trait) {
			tr.HasModifiers = true
			tr.Modifiers = []trait.Modifier{{ModifierSubtype: "fire"}}
		}, "modifiers[0].modifier_subtype"},
		{"unknown die", func(tr *trait.Trait) {
			tr.HasModifiers = true
			tr.Modifiers = []trait.Modifier{{DieType: "d100"}}
		}, "modifiers[0].die_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := elementalAffinity()
			tt.edit(tr)

			err := tr.Validate()
			assert.True(t, dnderr.IsValidation(err), "expected validation error, got %v", err)
			assert.Equal(t, tt.field, dnderr.GetMeta(err)["field"])
		})
	}
}

func TestValidateEmptyModifierIsLegal(t *testing.T) {
	tr := elementalAffinity()
	tr.HasModifiers = true
	tr.AddModifier()

	assert.NoError(t, tr.Validate())
}

func TestValidateStrictDice(t *testing.T) {
	m := trait.Modifier{DiceCount: ptr(2)}

	assert.NoError(t, m.Validate())
	assert.True(t, dnderr.IsValidation(m.Validate(trait.WithStrictDice())))

	m.DieType = shared.DieD6
	assert.NoError(t, m.Validate(trait.WithStrictDice()))

	tr := elementalAffinity()
	tr.HasModifiers = true
	tr.Modifiers = []trait.Modifier{{DieType: shared.DieD4}}
	assert.NoError(t, tr.Validate())
	assert.Error(t, tr.Validate(trait.WithStrictDice()))
}
