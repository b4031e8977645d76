package versioning_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/versioning"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Warrior":                "warrior",
		"Shadow  Blade":          "shadow_blade",
		"Tab\tand\nNewline":      "tab_and_newline",
		" padded ":               "_padded_",
		"":                       "",
		"Élan Vital":             "élan_vital",
		"already_slugged_up":     "already_slugged_up",
		"Shadow\u00a0Blade":      "shadow_blade",
		"Ideographic\u3000Space": "ideographic_space",
		"Thin\u2009\u00a0 Mix":   "thin_mix",
		"\ufeffBom":              "_bom",
		"Line\u2028Break":        "line_break",
		"Vertical\vTab":          "vertical_tab",
	}
	for in, want := range tests {
		assert.Equal(t, want, versioning.Slugify(in), in)
	}
}

func TestResolveKey(t *testing.T) {
	assert.Equal(t, "custom", versioning.ResolveKey("custom", "Warrior"))
	assert.Equal(t, "dark_knight", versioning.ResolveKey("", "Dark Knight"))
}

func TestDecide(t *testing.T) {
	warriorV1 := []versioning.StoredVersion{{ID: "row-1", Version: 1}}

	t.Run("duplicate with unchanged version updates the original", func(t *testing.T) {
		s, draftVersion := versioning.NewDuplicateSession("row-1", 1)
		require.Equal(t, 2, draftVersion)

		d, err := versioning.Decide(s, "warrior", 1, warriorV1)
		require.NoError(t, err)
		assert.Equal(t, versioning.ModeEdit, d.EffectiveMode)
		assert.Equal(t, versioning.VerbUpdate, d.Verb)
		assert.Equal(t, "row-1", d.TargetID)
		assert.True(t, d.Collapsed())
	})

	t.Run("duplicate saved at the proposed version updates the original", func(t *testing.T) {
		s, draftVersion := versioning.NewDuplicateSession("row-1", 1)

		d, err := versioning.Decide(s, "warrior", draftVersion, warriorV1)
		require.NoError(t, err)
		assert.Equal(t, versioning.ModeEdit, d.EffectiveMode)
		assert.Equal(t, versioning.VerbUpdate, d.Verb)
		assert.Equal(t, "row-1", d.TargetID)
		assert.Nil(t, d.Match)
		assert.True(t, d.Collapsed())
	})

	t.Run("duplicate with a new version inserts", func(t *testing.T) {
		s, _ := versioning.NewDuplicateSession("row-1", 1)

		d, err := versioning.Decide(s, "warrior", 3, warriorV1)
		require.NoError(t, err)
		assert.Equal(t, versioning.ModeDuplicate, d.EffectiveMode)
		assert.Equal(t, versioning.VerbInsert, d.Verb)
		assert.Empty(t, d.TargetID)
		assert.Nil(t, d.Match)
		assert.False(t, d.Collapsed())
	})

	t.Run("duplicate landing on another stored version updates it", func(t *testing.T) {
		s, _ := versioning.NewDuplicateSession("row-1", 1)
		existing := append(warriorV1, versioning.StoredVersion{ID: "row-3", Version: 3})

		d, err := versioning.Decide(s, "warrior", 3, existing)
		require.NoError(t, err)
		assert.Equal(t, versioning.ModeDuplicate, d.EffectiveMode)
		assert.Equal(t, versioning.VerbUpdate, d.Verb)
		assert.Equal(t, "row-3", d.TargetID)
	})

	t.Run("create colliding with stored version updates", func(t *testing.T) {
		d, err := versioning.Decide(versioning.NewCreateSession(), "warrior", 1, warriorV1)
		require.NoError(t, err)
		assert.Equal(t, versioning.VerbUpdate, d.Verb)
		assert.Equal(t, "row-1", d.TargetID)
	})

	t.Run("create with no versions inserts", func(t *testing.T) {
		d, err := versioning.Decide(versioning.NewCreateSession(), "warrior", 1, nil)
		require.NoError(t, err)
		assert.Equal(t, versioning.VerbInsert, d.Verb)
	})

	t.Run("edit without match falls back to loaded id", func(t *testing.T) {
		d, err := versioning.Decide(versioning.NewEditSession("row-1"), "warrior", 4, warriorV1)
		require.NoError(t, err)
		assert.Equal(t, versioning.VerbUpdate, d.Verb)
		assert.Equal(t, "row-1", d.TargetID)
		assert.Nil(t, d.Match)
	})

	t.Run("edit prefers matched row", func(t *testing.T) {
		existing := []versioning.StoredVersion{{ID: "row-1", Version: 1}, {ID: "row-2", Version: 2}}
		d, err := versioning.Decide(versioning.NewEditSession("row-1"), "warrior", 2, existing)
		require.NoError(t, err)
		assert.Equal(t, "row-2", d.TargetID)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := versioning.Decide(nil, "warrior", 1, nil)
		assert.True(t, dnderr.IsInvalidArgument(err))

		_, err = versioning.Decide(versioning.NewCreateSession(), "", 1, nil)
		assert.True(t, dnderr.IsValidation(err))

		_, err = versioning.Decide(versioning.NewCreateSession(), "warrior", 0, nil)
		assert.True(t, dnderr.IsValidation(err))

		_, err = versioning.Decide(versioning.NewEditSession(""), "warrior", 1, nil)
		assert.True(t, dnderr.IsInvalidArgument(err))
	})

	t.Run("closed session cannot save again", func(t *testing.T) {
		s := versioning.NewCreateSession()
		s.Close()

		_, err := versioning.Decide(s, "warrior", 1, nil)
		assert.True(t, dnderr.IsInvalidArgument(err))
	})
}

func TestSessionJSON(t *testing.T) {
	s, _ := versioning.NewDuplicateSession("row-1", 4)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded versioning.Session
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, &decoded)
	assert.Equal(t, 4, *decoded.BaseVersion)
	assert.Equal(t, 5, *decoded.DraftVersion)
}
