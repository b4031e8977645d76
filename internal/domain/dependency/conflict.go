package dependency

import (
	"fmt"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// Reason classifies why a prerequisite reference does not resolve
type Reason string

const (
	ReasonMissingTrait  Reason = "missing_trait"
	ReasonMissingOption Reason = "missing_option"
	ReasonSelfReference Reason = "self_reference"
)

// Conflict is a stale or invalid prerequisite reference on one option
type Conflict struct {
	OptionIndex int                   `json:"option_index"`
	OptionName  string                `json:"option_name"`
	Reference   trait.PrerequisiteRef `json:"reference"`
	Reason      Reason                `json:"reason"`
}

func (c Conflict) String() string {
	return fmt.Sprintf("option %q requires %q on trait %s: %s",
		c.OptionName, c.Reference.Name, c.Reference.ID, c.Reason)
}

// Err converts the conflict into a dependency_conflict error
func (c Conflict) Err() error {
	return dnderr.DependencyConflictf("prerequisite for option %q does not resolve: %s", c.OptionName, c.Reason).
		WithMeta("option_index", c.OptionIndex).
		WithMeta("prerequisite_id", c.Reference.ID).
		WithMeta("prerequisite_name", c.Reference.Name).
		WithMeta("reason", string(c.Reason))
}

// Conflicts checks every option prerequisite on subject against library.
// subject itself is resolved from its own in-memory state so self references are caught
// even before it is saved.
func Conflicts(library []trait.Trait, subject *trait.Trait) []Conflict {
	if subject == nil {
		return nil
	}

	byID := make(map[string]*trait.Trait, len(library))
	for i := range library {
		byID[library[i].ID] = &library[i]
	}

	var conflicts []Conflict
	for i := range subject.Options {
		ref, ok := subject.Options[i].Prerequisite()
		if !ok {
			continue
		}

		c := Conflict{OptionIndex: i, OptionName: subject.Options[i].Name, Reference: ref}
		switch {
		case subject.ID != "" && ref.ID == subject.ID:
			c.Reason = ReasonSelfReference
		case byID[ref.ID] == nil:
			c.Reason = ReasonMissingTrait
		case !hasOption(byID[ref.ID], ref.Name):
			c.Reason = ReasonMissingOption
		default:
			continue
		}
		conflicts = append(conflicts, c)
	}

	return conflicts
}

// Check returns the first conflict as an error, or nil
func Check(library []trait.Trait, subject *trait.Trait) error {
	if conflicts := Conflicts(library, subject); len(conflicts) > 0 {
		return conflicts[0].Err()
	}
	return nil
}

func hasOption(t *trait.Trait, name string) bool {
	for _, opt := range t.Options {
		if opt.Name == name {
			return true
		}
	}
	return false
}
