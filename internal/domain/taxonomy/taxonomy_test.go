package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/taxonomy"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

func fixture() *taxonomy.Taxonomy {
	return taxonomy.New([]taxonomy.ModifierType{
		{Name: "Resistance", Slug: "resistance", Subtypes: []taxonomy.Subtype{
			{Name: "Fire", Slug: "fire"},
			{Name: "Cold", Slug: "cold"},
		}, TargetFor: []string{taxonomy.TargetTrait, taxonomy.TargetItem}},
		{Name: "Ability Bonus", Slug: "ability-bonus", TargetFor: []string{taxonomy.TargetClass}},
		{Name: "Speed", Slug: "speed"},
	})
}

func TestLookup(t *testing.T) {
	tax := fixture()

	mt, ok := tax.Lookup("resistance")
	require.True(t, ok)
	assert.Equal(t, "Resistance", mt.Name)

	_, ok = tax.Lookup("missing")
	assert.False(t, ok)

	assert.Len(t, tax.SubtypesFor("resistance"), 2)
	assert.Empty(t, tax.SubtypesFor("speed"))
	assert.Nil(t, tax.SubtypesFor("missing"))
}

func TestForTarget(t *testing.T) {
	got := fixture().ForTarget(taxonomy.TargetTrait)

	slugs := make([]string, 0, len(got))
	for _, mt := range got {
		slugs = append(slugs, mt.Slug)
	}
	assert.Equal(t, []string{"resistance", "speed"}, slugs)
}

func TestValidateModifier(t *testing.T) {
	tax := fixture()

	assert.NoError(t, tax.ValidateModifier(trait.Modifier{}))
	assert.NoError(t, tax.ValidateModifier(trait.Modifier{ModifierType: "resistance", ModifierSubtype: "fire"}))
	assert.NoError(t, tax.ValidateModifier(trait.Modifier{ModifierType: "speed"}))

	err := tax.ValidateModifier(trait.Modifier{ModifierType: "flying"})
	assert.True(t, dnderr.IsValidation(err))

	err = tax.ValidateModifier(trait.Modifier{ModifierType: "resistance", ModifierSubtype: "acid"})
	assert.True(t, dnderr.IsValidation(err))

	err = tax.ValidateModifier(trait.Modifier{ModifierSubtype: "fire"})
	assert.True(t, dnderr.IsValidation(err))
}

func TestValidateTrait(t *testing.T) {
	tr := &trait.Trait{
		HasOptions: true,
		Options: []trait.Option{{
			Name:         "Fire",
			HasModifiers: true,
			Modifiers:    []trait.Modifier{{ModifierType: "resistance", ModifierSubtype: "cold"}, {ModifierType: "nope"}},
		}},
	}

	err := fixture().ValidateTrait(tr)
	require.Error(t, err)
	assert.True(t, dnderr.IsValidation(err))
	assert.Contains(t, err.Error(), "options[0].modifiers[1]")
}

func TestNewIgnoresDuplicateSlugs(t *testing.T) {
	tax := taxonomy.New([]taxonomy.ModifierType{
		{Name: "First", Slug: "dup"},
		{Name: "Second", Slug: "dup"},
	})

	mt, ok := tax.Lookup("dup")
	require.True(t, ok)
	assert.Equal(t, "First", mt.Name)
	assert.Len(t, tax.Types(), 2)
}
