package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/shared"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

func TestParseAbilityScore(t *testing.T) {
	tests := []struct {
		in   string
		want shared.AbilityScore
	}{
		{"STR", shared.AbilityScoreStrength},
		{"dex", shared.AbilityScoreDexterity},
		{" Cha ", shared.AbilityScoreCharisma},
		{"", shared.AbilityScoreNone},
		{"-", shared.AbilityScoreNone},
	}
	for _, tt := range tests {
		got, err := shared.ParseAbilityScore(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := shared.ParseAbilityScore("LUCK")
	assert.True(t, dnderr.IsValidation(err))
}

func TestParseDieType(t *testing.T) {
	got, err := shared.ParseDieType("D8")
	require.NoError(t, err)
	assert.Equal(t, shared.DieD8, got)
	assert.Equal(t, 8, got.Sides())

	got, err = shared.ParseDieType("12")
	require.NoError(t, err)
	assert.Equal(t, shared.DieD12, got)

	got, err = shared.ParseDieType("")
	require.NoError(t, err)
	assert.Equal(t, shared.DieNone, got)
	assert.Equal(t, 0, got.Sides())

	_, err = shared.ParseDieType("d7")
	assert.True(t, dnderr.IsValidation(err))
}

func TestParseDurationUnit(t *testing.T) {
	got, err := shared.ParseDurationUnit("Minutes")
	require.NoError(t, err)
	assert.Equal(t, shared.DurationMinutes, got)

	_, err = shared.ParseDurationUnit("fortnights")
	assert.True(t, dnderr.IsValidation(err))
}

func TestParseScope(t *testing.T) {
	got, err := shared.ParseScope("specific")
	require.NoError(t, err)
	assert.Equal(t, shared.ScopeSpecific, got)

	_, err = shared.ParseScope("")
	assert.True(t, dnderr.IsValidation(err))
}
