package trait_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/shared"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

func ptr[T any](v T) *T {
	return &v
}

func elementalAffinity() *trait.Trait {
	t := trait.New("Elemental Affinity", shared.ScopeGeneric)
	t.ID = "trait-ea"
	t.HasOptions = true
	t.Options = []trait.Option{
		{Name: "Fire", Modifiers: []trait.Modifier{}},
		{Name: "Frost", RequiredLevel: 5, Modifiers: []trait.Modifier{},
			PrerequisiteID: ptr("trait-ea"), PrerequisiteName: ptr("Fire")},
		{Name: "Storm", RequiredLevel: 10, Modifiers: []trait.Modifier{}},
	}
	return t
}

func TestAddOption(t *testing.T) {
	tr := trait.New("Darkvision", shared.ScopeGeneric)

	idx := tr.AddOption()
	require.Equal(t, 0, idx)

	opt := tr.Options[0]
	assert.Equal(t, "", opt.Name)
	assert.Equal(t, "", opt.Description)
	assert.Nil(t, opt.PrerequisiteID)
	assert.Nil(t, opt.PrerequisiteName)
	assert.Equal(t, 0, opt.RequiredLevel)
	assert.False(t, opt.HasModifiers)
	assert.NotNil(t, opt.Modifiers)
	assert.Empty(t, opt.Modifiers)
}

func TestRemoveOption(t *testing.T) {
	t.Run("shifts later options down without touching them", func(t *testing.T) {
		tr := elementalAffinity()
		before := tr.Clone()

		require.NoError(t, tr.RemoveOption(0))

		require.Len(t, tr.Options, 2)
		assert.Equal(t, before.Options[1], tr.Options[0])
		assert.Equal(t, before.Options[2], tr.Options[1])
	})

	t.Run("leaves dangling prerequisite references", func(t *testing.T) {
		tr := elementalAffinity()

		require.NoError(t, tr.RemoveOption(0))

		ref, ok := tr.Options[0].Prerequisite()
		require.True(t, ok)
		assert.Equal(t, "Fire", ref.Name)
	})

	t.Run("rejects out of range", func(t *testing.T) {
		tr := elementalAffinity()

		err := tr.RemoveOption(3)
		assert.True(t, dnderr.IsIndexOutOfRange(err))
		err = tr.RemoveOption(-1)
		assert.True(t, dnderr.IsIndexOutOfRange(err))
		assert.Len(t, tr.Options, 3)
	})
}

func TestUpdateOption(t *testing.T) {
	tr := elementalAffinity()

	require.NoError(t, tr.UpdateOption(0, trait.OptionFieldName, "Flame"))
	require.NoError(t, tr.UpdateOption(0, trait.OptionFieldDescription, "burns"))
	assert.Equal(t, "Flame", tr.Options[0].Name)
	assert.Equal(t, "burns", tr.Options[0].Description)

	t.Run("required level boundary", func(t *testing.T) {
		for _, level := range []string{"0", "20"} {
			assert.NoError(t, tr.UpdateOption(0, trait.OptionFieldRequiredLevel, level))
		}
		assert.Equal(t, 20, tr.Options[0].RequiredLevel)

		for _, level := range []string{"-1", "21", "five"} {
			err := tr.UpdateOption(0, trait.OptionFieldRequiredLevel, level)
			assert.True(t, dnderr.IsValidation(err), level)
		}
		assert.Equal(t, 20, tr.Options[0].RequiredLevel)
	})

	t.Run("prerequisite halves cannot be set alone", func(t *testing.T) {
		err := tr.UpdateOption(0, trait.OptionFieldPrerequisiteID, "trait-x")
		assert.True(t, dnderr.IsInvalidArgument(err))
		err = tr.UpdateOption(0, trait.OptionFieldPrerequisiteName, "Fire")
		assert.True(t, dnderr.IsInvalidArgument(err))
		assert.Nil(t, tr.Options[0].PrerequisiteID)
	})

	t.Run("out of range", func(t *testing.T) {
		err := tr.UpdateOption(9, trait.OptionFieldName, "x")
		assert.True(t, dnderr.IsIndexOutOfRange(err))
	})
}

func TestSetOptionPrerequisite(t *testing.T) {
	tr := elementalAffinity()

	require.NoError(t, tr.SetOptionPrerequisite(2, &trait.PrerequisiteRef{ID: "trait-other", Name: "Keen Eye"}))
	ref, ok := tr.Options[2].Prerequisite()
	require.True(t, ok)
	assert.Equal(t, trait.PrerequisiteRef{ID: "trait-other", Name: "Keen Eye"}, ref)

	require.NoError(t, tr.SetOptionPrerequisite(2, nil))
	assert.Nil(t, tr.Options[2].PrerequisiteID)
	assert.Nil(t, tr.Options[2].PrerequisiteName)

	err := tr.SetOptionPrerequisite(2, &trait.PrerequisiteRef{ID: "trait-other"})
	assert.True(t, dnderr.IsInvalidArgument(err))
	assert.Nil(t, tr.Options[2].PrerequisiteID)
}

func TestToggles(t *testing.T) {
	t.Run("option modifiers clear and stay cleared", func(t *testing.T) {
		tr := elementalAffinity()
		require.NoError(t, tr.ToggleOptionModifiers(0, true))
		opt, err := tr.Option(0)
		require.NoError(t, err)
		opt.AddModifier()
		require.NoError(t, opt.UpdateModifierField(0, trait.ModifierFieldDetails, "fire resistance"))
		require.Len(t, tr.Options[0].Modifiers, 1)

		require.NoError(t, tr.ToggleOptionModifiers(0, false))
		assert.Equal(t, []trait.Modifier{}, tr.Options[0].Modifiers)

		require.NoError(t, tr.ToggleOptionModifiers(0, false))
		assert.Equal(t, []trait.Modifier{}, tr.Options[0].Modifiers)
		assert.False(t, tr.Options[0].HasModifiers)
	})

	t.Run("trait toggles are destructive", func(t *testing.T) {
		tr := elementalAffinity()
		tr.SetHasModifiers(true)
		tr.AddModifier()

		tr.SetHasModifiers(false)
		tr.SetHasOptions(false)

		assert.Equal(t, []trait.Modifier{}, tr.Modifiers)
		assert.Equal(t, []trait.Option{}, tr.Options)

		tr.SetHasOptions(true)
		assert.Empty(t, tr.Options)
	})

	t.Run("out of range", func(t *testing.T) {
		tr := elementalAffinity()
		assert.True(t, dnderr.IsIndexOutOfRange(tr.ToggleOptionModifiers(5, false)))
	})
}

func TestJSONRoundTrip(t *testing.T) {
	tr := elementalAffinity()
	tr.DisplayOrder = 3
	tr.Description = "<p>Attuned to the elements</p>"
	tr.SetSpecies("species-1", "Genasi")
	tr.HasModifiers = true
	tr.Modifiers = []trait.Modifier{{
		ModifierType:         "resistance",
		ModifierSubtype:      "fire",
		AbilityScore:         shared.AbilityScoreConstitution,
		DiceCount:            ptr(0),
		DieType:              shared.DieD6,
		FixedValue:           ptr(1.5),
		AdditionalBonusTypes: "Damage, Proficiency",
		Details:              "half damage",
		DurationValue:        ptr(10),
		DurationUnit:         shared.DurationMinutes,
	}, {}}
	tr.Options[0].HasModifiers = true
	tr.Options[0].Modifiers = []trait.Modifier{{ModifierType: "ability-bonus"}}

	data, err := json.Marshal(tr)
	require.NoError(t, err)

	var decoded trait.Trait
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tr, &decoded)

	t.Run("wire names", func(t *testing.T) {
		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		for _, key := range []string{"id", "name", "display_order", "scope", "description", "has_options",
			"options", "has_modifiers", "modifiers", "species_id", "species_name"} {
			assert.Contains(t, raw, key)
		}

		opt := raw["options"].([]any)[0].(map[string]any)
		assert.Contains(t, opt, "prerequisite_id")
		assert.Nil(t, opt["prerequisite_id"])
	})
}

func TestNormalize(t *testing.T) {
	tr := &trait.Trait{Name: "Darkvision", Scope: shared.ScopeGeneric}
	tr.Options = append(tr.Options, trait.Option{Name: "x"})
	tr.Options[0].Modifiers = nil

	tr.Normalize()

	assert.NotNil(t, tr.Modifiers)
	assert.NotNil(t, tr.Options[0].Modifiers)

	data, err := json.Marshal(&trait.Trait{Name: "Darkvision", Scope: shared.ScopeGeneric, Options: []trait.Option{}, Modifiers: []trait.Modifier{}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"options":[]`)
}

func TestClone(t *testing.T) {
	tr := elementalAffinity()
	tr.Modifiers = []trait.Modifier{{DiceCount: ptr(2)}}
	tr.HasModifiers = true

	cp := tr.Clone()
	*cp.Options[1].PrerequisiteName = "Changed"
	*cp.Modifiers[0].DiceCount = 9
	cp.Options[0].Name = "Changed"

	assert.Equal(t, "Fire", *tr.Options[1].PrerequisiteName)
	assert.Equal(t, 2, *tr.Modifiers[0].DiceCount)
	assert.Equal(t, "Fire", tr.Options[0].Name)
}
