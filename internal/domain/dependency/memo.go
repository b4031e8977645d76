package dependency

import (
	"sync"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
)

type memoKey struct {
	revision       uint64
	currentTraitID string
}

// Memo caches candidate lists keyed on a library revision and the trait under edit.
// Callers bump the revision whenever the library changes.
type Memo struct {
	mu      sync.Mutex
	entries map[memoKey][]Candidate
}

func NewMemo() *Memo {
	return &Memo{entries: make(map[memoKey][]Candidate)}
}

// Get returns the cached list or computes and stores it
func (m *Memo) Get(revision uint64, traits []trait.Trait, currentTraitID string) []Candidate {
	key := memoKey{revision: revision, currentTraitID: currentTraitID}

	m.mu.Lock()
	defer m.mu.Unlock()

	if cached, ok := m.entries[key]; ok {
		return cached
	}

	// older revisions are never asked for again
	for k := range m.entries {
		if k.revision != revision {
			delete(m.entries, k)
		}
	}

	list := CandidateList(traits, currentTraitID)
	m.entries[key] = list
	return list
}
