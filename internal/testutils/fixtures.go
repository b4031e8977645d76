package testutils

import (
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/incumbency"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/shared"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	"github.com/KirkDiggler/rpg-content-admin/internal/repositories/drafts"
)

// CreateTestTrait creates a generic trait with the given options, each without modifiers
func CreateTestTrait(id, name string, optionNames ...string) *trait.Trait {
	t := trait.New(name, shared.ScopeGeneric)
	t.ID = id
	if len(optionNames) > 0 {
		t.SetHasOptions(true)
		for _, optionName := range optionNames {
			t.Options = append(t.Options, trait.Option{
				Name:      optionName,
				Modifiers: []trait.Modifier{},
			})
		}
	}
	return t
}

// CreateTestSpecificTrait creates a trait owned by a species
func CreateTestSpecificTrait(id, name, speciesID, speciesName string) *trait.Trait {
	t := trait.New(name, shared.ScopeSpecific)
	t.ID = id
	t.SetSpecies(speciesID, speciesName)
	return t
}

// CreateTestIncumbency creates one stored version of an incumbency with a basic ability
func CreateTestIncumbency(id, key, name string, version int) *incumbency.Incumbency {
	inc := incumbency.New()
	inc.ID = id
	inc.Key = key
	inc.Name = name
	inc.Version = version
	inc.Role = incumbency.RoleTank
	inc.HPScale = 1.5
	inc.Abilities = append(inc.Abilities, incumbency.NewAbility(incumbency.AbilityTypeBasic))
	return inc
}

// CreateTestDraft creates a draft whose payload is the encoded value
func CreateTestDraft(id, ownerID string, kind drafts.Kind, payload any) *drafts.Draft {
	d := &drafts.Draft{
		ID:      id,
		OwnerID: ownerID,
		Kind:    kind,
	}
	if err := d.Encode(payload); err != nil {
		panic(err)
	}
	return d
}
