package content

//go:generate mockgen -destination=mock/mock_client.go -package=mockcontent . Client

import (
	"context"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/incumbency"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/taxonomy"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
)

// Client talks to the admin content API that owns storage for traits, species,
// the modifier taxonomy and incumbency versions
type Client interface {
	GetSpeciesBySlug(ctx context.Context, slug string) (*Species, error)

	ListTraitsByIDs(ctx context.Context, ids []string) ([]trait.Trait, error)
	CreateTrait(ctx context.Context, t *trait.Trait) (*trait.Trait, error)
	UpdateTrait(ctx context.Context, t *trait.Trait) (*trait.Trait, error)
	DeleteTrait(ctx context.Context, id string) error

	ListModifierTypes(ctx context.Context) ([]taxonomy.ModifierType, error)

	ListIncumbencies(ctx context.Context) ([]*incumbency.Incumbency, error)
	GetIncumbency(ctx context.Context, id string) (*incumbency.Incumbency, error)
	// ListIncumbencyVersions returns every stored version sharing key
	ListIncumbencyVersions(ctx context.Context, key string) ([]*incumbency.Incumbency, error)
	CreateIncumbency(ctx context.Context, inc *incumbency.Incumbency) (*incumbency.Incumbency, error)
	UpdateIncumbency(ctx context.Context, id string, inc *incumbency.Incumbency) (*incumbency.Incumbency, error)
	DeleteIncumbency(ctx context.Context, id string) error
}

// Species is the part of a species record trait editing needs
type Species struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Slug   string            `json:"slug"`
	Traits []SpeciesTraitRef `json:"traits"`
}

// SpeciesTraitRef links a species to one of its traits
type SpeciesTraitRef struct {
	TraitID string `json:"trait_id"`
}

// TraitIDs returns the linked trait ids in order
func (s *Species) TraitIDs() []string {
	ids := make([]string, 0, len(s.Traits))
	for _, ref := range s.Traits {
		if ref.TraitID != "" {
			ids = append(ids, ref.TraitID)
		}
	}
	return ids
}
