package trait

//go:generate mockgen -destination=mock/mock_service.go -package=mocktrait -source=service.go

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-content-admin/internal/clients/content"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/dependency"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/shared"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/taxonomy"
	traitdomain "github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
	"github.com/KirkDiggler/rpg-content-admin/internal/logging"
	"github.com/KirkDiggler/rpg-content-admin/internal/repositories/drafts"
)

// Service defines trait authoring operations
type Service interface {
	// LoadLibrary fetches a species and every trait it links to
	LoadLibrary(ctx context.Context, speciesSlug string) (*Library, error)

	// PrerequisiteChoices lists the options a trait under edit may depend on
	PrerequisiteChoices(library *Library, currentTraitID string) []dependency.Candidate

	// CheckPrerequisites reports prerequisite references on subject that do not resolve
	CheckPrerequisites(library *Library, subject *traitdomain.Trait) []dependency.Conflict

	// ModifierTaxonomy returns the cached modifier vocabulary, fetching it on first use
	ModifierTaxonomy(ctx context.Context) (*taxonomy.Taxonomy, error)

	// RefreshTaxonomy refetches the modifier vocabulary
	RefreshTaxonomy(ctx context.Context) (*taxonomy.Taxonomy, error)

	// SaveTrait validates and stores a trait, creating it when it has no ID
	SaveTrait(ctx context.Context, input *SaveTraitInput) (*traitdomain.Trait, error)

	// DeleteTrait removes a stored trait. Species trait links are left untouched.
	DeleteTrait(ctx context.Context, id string) error

	// SaveDraft stores an unsaved form and returns the draft
	SaveDraft(ctx context.Context, ownerID, draftID string, t *traitdomain.Trait) (*drafts.Draft, error)

	// LoadDraft returns the form kept in a trait draft
	LoadDraft(ctx context.Context, draftID string) (*traitdomain.Trait, error)
}

// SaveTraitInput contains data for saving a trait
type SaveTraitInput struct {
	Trait *traitdomain.Trait

	// Species owning a specific trait. Falls back to Library.Species.
	Species *content.Species

	// Library receives the stored trait and is checked when RejectConflicts is set
	Library *Library

	StrictDice      bool
	RejectConflicts bool
}

type service struct {
	client content.Client
	drafts drafts.Repository
	logger *zap.Logger

	mu       sync.Mutex
	taxonomy *taxonomy.Taxonomy
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client content.Client    // Required
	Drafts drafts.Repository // Optional, in-memory when nil
	Logger *zap.Logger       // Optional
}

// NewService creates a new trait service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Client == nil {
		panic("content client is required")
	}

	svc := &service{
		client: cfg.Client,
		drafts: cfg.Drafts,
		logger: logging.OrNop(cfg.Logger).Named("trait"),
	}
	if svc.drafts == nil {
		svc.drafts = drafts.NewInMemoryRepository()
	}

	return svc
}

func (s *service) LoadLibrary(ctx context.Context, speciesSlug string) (*Library, error) {
	speciesSlug = strings.TrimSpace(speciesSlug)
	if speciesSlug == "" {
		return nil, dnderr.InvalidArgument("species slug is required")
	}

	species, err := s.client.GetSpeciesBySlug(ctx, speciesSlug)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load species %s", speciesSlug).
			WithMeta("species_slug", speciesSlug)
	}

	traits, err := s.client.ListTraitsByIDs(ctx, species.TraitIDs())
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load traits for species %s", speciesSlug).
			WithMeta("species_slug", speciesSlug)
	}

	s.logger.Debug("loaded trait library",
		zap.String("species_slug", speciesSlug),
		zap.String("species_id", species.ID),
		zap.Int("traits", len(traits)))

	return newLibrary(species, traits), nil
}

func (s *service) PrerequisiteChoices(library *Library, currentTraitID string) []dependency.Candidate {
	if library == nil {
		return []dependency.Candidate{}
	}
	return library.candidates(currentTraitID)
}

func (s *service) CheckPrerequisites(library *Library, subject *traitdomain.Trait) []dependency.Conflict {
	if library == nil {
		return dependency.Conflicts(nil, subject)
	}
	return dependency.Conflicts(library.Traits, subject)
}

func (s *service) ModifierTaxonomy(ctx context.Context) (*taxonomy.Taxonomy, error) {
	s.mu.Lock()
	cached := s.taxonomy
	s.mu.Unlock()

	if cached != nil {
		return cached, nil
	}
	return s.RefreshTaxonomy(ctx)
}

func (s *service) RefreshTaxonomy(ctx context.Context) (*taxonomy.Taxonomy, error) {
	types, err := s.client.ListModifierTypes(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load modifier taxonomy")
	}

	tax := taxonomy.New(types)

	s.mu.Lock()
	s.taxonomy = tax
	s.mu.Unlock()

	s.logger.Debug("loaded modifier taxonomy", zap.Int("types", len(types)))
	return tax, nil
}

func (s *service) SaveTrait(ctx context.Context, input *SaveTraitInput) (*traitdomain.Trait, error) {
	if input == nil || input.Trait == nil {
		return nil, dnderr.InvalidArgument("trait is required")
	}

	t := input.Trait.Clone()
	t.Normalize()

	species := input.Species
	if species == nil && input.Library != nil {
		species = input.Library.Species
	}
	if species != nil {
		t.SetSpecies(species.ID, species.Name)
	}

	var opts []traitdomain.ValidationOption
	if input.StrictDice {
		opts = append(opts, traitdomain.WithStrictDice())
	}
	if err := t.Validate(opts...); err != nil {
		return nil, err
	}
	if t.Scope == shared.ScopeSpecific && t.SpeciesID == nil {
		return nil, dnderr.Validation("specific traits need a species").WithMeta("field", "species_id")
	}

	if input.RejectConflicts {
		var library []traitdomain.Trait
		if input.Library != nil {
			library = input.Library.Traits
		}
		if err := dependency.Check(library, t); err != nil {
			return nil, err
		}
	}

	tax, err := s.ModifierTaxonomy(ctx)
	if err != nil {
		return nil, err
	}
	if err := tax.ValidateTrait(t); err != nil {
		return nil, err
	}

	var saved *traitdomain.Trait
	if t.ID == "" {
		saved, err = s.client.CreateTrait(ctx, t)
	} else {
		saved, err = s.client.UpdateTrait(ctx, t)
	}
	if err != nil {
		s.logger.Warn("trait save failed",
			zap.String("trait_id", t.ID),
			zap.String("name", t.Name),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("trait saved",
		zap.String("trait_id", saved.ID),
		zap.String("name", saved.Name),
		zap.Bool("created", t.ID == ""))

	if input.Library != nil {
		input.Library.Put(saved)
	}

	return saved, nil
}

func (s *service) DeleteTrait(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("trait ID is required")
	}

	if err := s.client.DeleteTrait(ctx, id); err != nil {
		return err
	}

	s.logger.Info("trait deleted", zap.String("trait_id", id))
	return nil
}

func (s *service) SaveDraft(ctx context.Context, ownerID, draftID string, t *traitdomain.Trait) (*drafts.Draft, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if t == nil {
		return nil, dnderr.InvalidArgument("trait is required")
	}

	if draftID == "" {
		draft := &drafts.Draft{OwnerID: ownerID, Kind: drafts.KindTrait}
		if err := draft.Encode(t); err != nil {
			return nil, err
		}
		if err := s.drafts.Create(ctx, draft); err != nil {
			return nil, dnderr.Wrap(err, "failed to create trait draft")
		}
		return draft, nil
	}

	draft, err := s.traitDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.OwnerID != ownerID {
		return nil, dnderr.PermissionDeniedf("draft %s belongs to another author", draftID).
			WithMeta("draft_id", draftID)
	}
	if err := draft.Encode(t); err != nil {
		return nil, err
	}
	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to update trait draft")
	}

	return draft, nil
}

func (s *service) LoadDraft(ctx context.Context, draftID string) (*traitdomain.Trait, error) {
	draft, err := s.traitDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	var t traitdomain.Trait
	if err := draft.Decode(&t); err != nil {
		return nil, err
	}
	t.Normalize()

	return &t, nil
}

func (s *service) traitDraft(ctx context.Context, draftID string) (*drafts.Draft, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Kind != drafts.KindTrait {
		return nil, dnderr.InvalidArgumentf("draft %s holds a %s, not a trait", draftID, draft.Kind).
			WithMeta("draft_id", draftID)
	}
	return draft, nil
}
