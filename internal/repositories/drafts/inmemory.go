package drafts

import (
	"context"
	"slices"
	"sync"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
	"github.com/KirkDiggler/rpg-content-admin/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the draft repository
type InMemoryRepository struct {
	mu            sync.RWMutex
	drafts        map[string]*Draft
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewInMemoryRepository creates a new in-memory draft repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		drafts:        make(map[string]*Draft),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  RealTimeProvider(),
	}
}

// Create stores a new draft
func (r *InMemoryRepository) Create(ctx context.Context, draft *Draft) error {
	if err := validate(draft); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if draft.ID == "" {
		draft.ID = r.uuidGenerator.New()
	}
	if _, exists := r.drafts[draft.ID]; exists {
		return dnderr.AlreadyExistsf("draft with ID '%s' already exists", draft.ID).
			WithMeta("draft_id", draft.ID)
	}

	now := r.timeProvider.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	r.drafts[draft.ID] = copyDraft(draft)

	return nil
}

// Get retrieves a draft by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Draft, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("draft ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, exists := r.drafts[id]
	if !exists {
		return nil, dnderr.NotFoundf("draft with ID '%s' not found", id).
			WithMeta("draft_id", id)
	}

	return copyDraft(draft), nil
}

// Update replaces an existing draft
func (r *InMemoryRepository) Update(ctx context.Context, draft *Draft) error {
	if err := validate(draft); err != nil {
		return err
	}
	if draft.ID == "" {
		return dnderr.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.drafts[draft.ID]
	if !exists {
		return dnderr.NotFoundf("draft with ID '%s' not found", draft.ID).
			WithMeta("draft_id", draft.ID)
	}

	draft.CreatedAt = existing.CreatedAt
	draft.UpdatedAt = r.timeProvider.Now()
	r.drafts[draft.ID] = copyDraft(draft)

	return nil
}

// Delete removes a draft
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[id]; !exists {
		return dnderr.NotFoundf("draft with ID '%s' not found", id).
			WithMeta("draft_id", id)
	}

	delete(r.drafts, id)
	return nil
}

// ListByOwner returns the owner's drafts, oldest first
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Draft, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Draft, 0)
	for _, draft := range r.drafts {
		if draft.OwnerID == ownerID {
			out = append(out, copyDraft(draft))
		}
	}
	sortDrafts(out)

	return out, nil
}

func copyDraft(d *Draft) *Draft {
	out := *d
	out.Payload = slices.Clone(d.Payload)
	return &out
}

func sortDrafts(list []*Draft) {
	slices.SortFunc(list, func(a, b *Draft) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
}
