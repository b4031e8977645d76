package incumbency

import "slices"

// AbilityType is the category an ability slot belongs to; each may be used once
type AbilityType string

var AbilityTypes = []AbilityType{
	AbilityTypeBasic, AbilityTypeSkill, AbilityTypeTalent,
	AbilityTypeUltimate, AbilityTypePassive, AbilityTypeTechnique,
}

const (
	AbilityTypeBasic     AbilityType = "Basic"
	AbilityTypeSkill     AbilityType = "Skill"
	AbilityTypeTalent    AbilityType = "Talent"
	AbilityTypeUltimate  AbilityType = "Ultimate"
	AbilityTypePassive   AbilityType = "Passive"
	AbilityTypeTechnique AbilityType = "Technique"
)

func (t AbilityType) IsValid() bool {
	return slices.Contains(AbilityTypes, t)
}

// DefaultAbilityCost is the action cost a new ability starts with
const DefaultAbilityCost = "Action"

// Ability is one entry of an incumbency's ability list
type Ability struct {
	Visibility     bool        `json:"visibility"`
	Type           AbilityType `json:"type"`
	Name           string      `json:"name"`
	Cost           string      `json:"cost"`
	AdditionalCost string      `json:"additional_cost"`
	TypeAbility    []string    `json:"type_ability"`
	Image          string      `json:"image"`
	Description    string      `json:"description"`
}

// NewAbility returns a visible ability of the given type with default cost
func NewAbility(t AbilityType) Ability {
	return Ability{
		Visibility:  true,
		Type:        t,
		Cost:        DefaultAbilityCost,
		TypeAbility: []string{},
	}
}

func (a Ability) kind() AbilityType {
	return a.Type
}
