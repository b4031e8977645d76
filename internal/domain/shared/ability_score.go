package shared

import (
	"strings"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// AbilityScore names the attribute a modifier keys off of
type AbilityScore string

var AbilityScores = []AbilityScore{AbilityScoreStrength, AbilityScoreDexterity, AbilityScoreConstitution, AbilityScoreIntelligence, AbilityScoreWisdom, AbilityScoreCharisma}

const (
	AbilityScoreNone         AbilityScore = ""
	AbilityScoreStrength     AbilityScore = "STR"
	AbilityScoreDexterity    AbilityScore = "DEX"
	AbilityScoreConstitution AbilityScore = "CON"
	AbilityScoreIntelligence AbilityScore = "INT"
	AbilityScoreWisdom       AbilityScore = "WIS"
	AbilityScoreCharisma     AbilityScore = "CHA"
)

// IsValid reports whether a is one of the six scores or unset
func (a AbilityScore) IsValid() bool {
	if a == AbilityScoreNone {
		return true
	}
	for _, s := range AbilityScores {
		if a == s {
			return true
		}
	}
	return false
}

// ParseAbilityScore accepts any casing. The console's "-" placeholder means unset.
func ParseAbilityScore(value string) (AbilityScore, error) {
	v := strings.TrimSpace(value)
	if v == "" || v == "-" {
		return AbilityScoreNone, nil
	}

	a := AbilityScore(strings.ToUpper(v))
	if !a.IsValid() {
		return AbilityScoreNone, dnderr.Validationf("unknown ability score %q", value).
			WithMeta("field", "ability_score")
	}
	return a, nil
}
