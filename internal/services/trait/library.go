package trait

import (
	"github.com/KirkDiggler/rpg-content-admin/internal/clients/content"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/dependency"
	traitdomain "github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
)

// Library is the trait set linked to one species, as loaded for an editing session
type Library struct {
	Species *content.Species
	Traits  []traitdomain.Trait

	// Revision changes whenever Traits changes
	Revision uint64

	memo *dependency.Memo
}

func newLibrary(species *content.Species, traits []traitdomain.Trait) *Library {
	if traits == nil {
		traits = []traitdomain.Trait{}
	}
	return &Library{
		Species:  species,
		Traits:   traits,
		Revision: 1,
		memo:     dependency.NewMemo(),
	}
}

// Find returns the trait with id
func (l *Library) Find(id string) (*traitdomain.Trait, bool) {
	for i := range l.Traits {
		if l.Traits[i].ID == id {
			return &l.Traits[i], true
		}
	}
	return nil, false
}

// Put inserts or replaces a stored trait
func (l *Library) Put(t *traitdomain.Trait) {
	if t == nil || t.ID == "" {
		return
	}

	next := make([]traitdomain.Trait, 0, len(l.Traits)+1)
	replaced := false
	for _, existing := range l.Traits {
		if existing.ID == t.ID {
			next = append(next, *t.Clone())
			replaced = true
			continue
		}
		next = append(next, existing)
	}
	if !replaced {
		next = append(next, *t.Clone())
	}

	l.Traits = next
	l.Revision++
}

// Remove drops the trait with id if present
func (l *Library) Remove(id string) {
	next := make([]traitdomain.Trait, 0, len(l.Traits))
	for _, existing := range l.Traits {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	if len(next) != len(l.Traits) {
		l.Traits = next
		l.Revision++
	}
}

func (l *Library) candidates(currentTraitID string) []dependency.Candidate {
	if l.memo == nil {
		return dependency.CandidateList(l.Traits, currentTraitID)
	}
	return l.memo.Get(l.Revision, l.Traits, currentTraitID)
}
