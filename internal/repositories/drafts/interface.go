package drafts

//go:generate mockgen -destination=mock/mock.go -package=mockdrafts -source=interface.go

import (
	"context"
)

// Repository defines the interface for author draft persistence
type Repository interface {
	// Create stores a new draft, assigning an ID when empty
	Create(ctx context.Context, draft *Draft) error

	// Get retrieves a draft by ID
	Get(ctx context.Context, id string) (*Draft, error)

	// Update replaces an existing draft
	Update(ctx context.Context, draft *Draft) error

	// Delete removes a draft
	Delete(ctx context.Context, id string) error

	// ListByOwner returns every draft an author has open
	ListByOwner(ctx context.Context, ownerID string) ([]*Draft, error)
}
