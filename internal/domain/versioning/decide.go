package versioning

import (
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// StoredVersion is the part of a stored row the decision needs
type StoredVersion struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
}

// Decision is the outcome of resolving a save
type Decision struct {
	Key           string         `json:"key"`
	Version       int            `json:"version"`
	DeclaredMode  Mode           `json:"declared_mode"`
	EffectiveMode Mode           `json:"effective_mode"`
	Verb          Verb           `json:"verb"`
	TargetID      string         `json:"target_id,omitempty"`
	Match         *StoredVersion `json:"match,omitempty"`
}

// Collapsed reports whether a duplicate was turned into an in-place edit
func (d Decision) Collapsed() bool {
	return d.DeclaredMode == ModeDuplicate && d.EffectiveMode == ModeEdit
}

// Decide resolves the verb and target for saving key at formVersion, given every version
// already stored under key.
//
// A duplicate whose version was left at the base version, or at the version the draft was
// opened with, is an edit of the loaded record. Any save that lands on a
// stored version updates that row, so (key, version) never gets a second row.
func Decide(s *Session, key string, formVersion int, existing []StoredVersion) (Decision, error) {
	if err := s.Validate(); err != nil {
		return Decision{}, err
	}
	if key == "" {
		return Decision{}, dnderr.Validation("key is required").WithMeta("field", "key")
	}
	if formVersion < 1 {
		return Decision{}, dnderr.Validationf("version must be at least 1, got %d", formVersion).
			WithMeta("field", "version")
	}

	d := Decision{
		Key:           key,
		Version:       formVersion,
		DeclaredMode:  s.Mode,
		EffectiveMode: s.Mode,
	}

	for i := range existing {
		if existing[i].Version == formVersion {
			match := existing[i]
			d.Match = &match
			break
		}
	}

	if s.Mode == ModeDuplicate && s.unchanged(formVersion) {
		d.EffectiveMode = ModeEdit
	}

	if d.EffectiveMode != ModeEdit && d.Match == nil {
		d.Verb = VerbInsert
		return d, nil
	}

	d.Verb = VerbUpdate
	switch {
	case d.Match != nil:
		d.TargetID = d.Match.ID
	case s.LoadedID != "":
		d.TargetID = s.LoadedID
	default:
		return Decision{}, dnderr.Internalf("no record to update for %s version %d", key, formVersion).
			WithMeta("key", key).
			WithMeta("version", formVersion)
	}

	return d, nil
}
