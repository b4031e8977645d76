// Package dependency resolves prerequisite choices between trait options and reports
// references that no longer resolve.
package dependency

import (
	"iter"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
)

// Candidate is one selectable prerequisite target
type Candidate struct {
	Label string                `json:"label"`
	Value trait.PrerequisiteRef `json:"value"`
}

// LabelSeparator joins trait and option names in a candidate label
const LabelSeparator = " — "

// Label formats the display label for an option of a trait
func Label(traitName, optionName string) string {
	return traitName + LabelSeparator + optionName
}

// Candidates yields one candidate per option of every trait other than currentTraitID.
// An empty currentTraitID excludes nothing. The sequence can be ranged over repeatedly.
func Candidates(traits []trait.Trait, currentTraitID string) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for i := range traits {
			t := &traits[i]
			if currentTraitID != "" && t.ID == currentTraitID {
				continue
			}
			for _, opt := range t.Options {
				c := Candidate{
					Label: Label(t.Name, opt.Name),
					Value: trait.PrerequisiteRef{ID: t.ID, Name: opt.Name},
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// CandidateList collects Candidates into a slice
func CandidateList(traits []trait.Trait, currentTraitID string) []Candidate {
	out := make([]Candidate, 0)
	for c := range Candidates(traits, currentTraitID) {
		out = append(out, c)
	}
	return out
}
