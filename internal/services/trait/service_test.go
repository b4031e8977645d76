package trait_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-content-admin/internal/clients/content"
	mockcontent "github.com/KirkDiggler/rpg-content-admin/internal/clients/content/mock"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/dependency"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/shared"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/taxonomy"
	traitdomain "github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
	"github.com/KirkDiggler/rpg-content-admin/internal/repositories/drafts"
	traitservice "github.com/KirkDiggler/rpg-content-admin/internal/services/trait"
	"github.com/KirkDiggler/rpg-content-admin/internal/testutils"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	client  *mockcontent.MockClient
	drafts  drafts.Repository
	service traitservice.Service
	species *content.Species
	types   []taxonomy.ModifierType
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.client = mockcontent.NewMockClient(s.ctrl)
	s.drafts = drafts.NewInMemoryRepository()
	s.service = traitservice.NewService(&traitservice.ServiceConfig{
		Client: s.client,
		Drafts: s.drafts,
	})
	s.species = &content.Species{
		ID:   "sp-elf",
		Name: "Elf",
		Slug: "elf",
		Traits: []content.SpeciesTraitRef{
			{TraitID: "t-senses"},
			{TraitID: "t-trance"},
		},
	}
	s.types = []taxonomy.ModifierType{
		{Name: "Ability Score", Slug: "ability_score", Subtypes: []taxonomy.Subtype{{Name: "Increase", Slug: "increase"}}},
		{Name: "Resistance", Slug: "resistance"},
	}
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) library() *traitservice.Library {
	s.client.EXPECT().GetSpeciesBySlug(s.ctx, "elf").Return(s.species, nil)
	s.client.EXPECT().ListTraitsByIDs(s.ctx, []string{"t-senses", "t-trance"}).Return([]traitdomain.Trait{
		*testutils.CreateTestTrait("t-senses", "Keen Senses", "Sight", "Smell"),
		*testutils.CreateTestTrait("t-trance", "Trance"),
	}, nil)

	lib, err := s.service.LoadLibrary(s.ctx, "elf")
	s.Require().NoError(err)
	return lib
}

func (s *ServiceTestSuite) TestLoadLibrary() {
	lib := s.library()

	s.Equal("sp-elf", lib.Species.ID)
	s.Len(lib.Traits, 2)
	s.Equal(uint64(1), lib.Revision)
}

func (s *ServiceTestSuite) TestLoadLibraryErrors() {
	_, err := s.service.LoadLibrary(s.ctx, "  ")
	s.True(dnderr.IsInvalidArgument(err))

	s.client.EXPECT().GetSpeciesBySlug(s.ctx, "orc").Return(nil, dnderr.NotFound("species not found"))
	_, err = s.service.LoadLibrary(s.ctx, "orc")
	s.True(dnderr.IsNotFound(err))
	s.Equal("orc", dnderr.GetMeta(err)["species_slug"])

	s.client.EXPECT().GetSpeciesBySlug(s.ctx, "elf").Return(s.species, nil)
	s.client.EXPECT().ListTraitsByIDs(s.ctx, gomock.Any()).Return(nil, dnderr.RemoteFailuref("boom"))
	_, err = s.service.LoadLibrary(s.ctx, "elf")
	s.True(dnderr.IsRemoteFailure(err))
}

func (s *ServiceTestSuite) TestPrerequisiteChoices() {
	lib := s.library()

	choices := s.service.PrerequisiteChoices(lib, "t-trance")
	s.Equal([]dependency.Candidate{
		{Label: "Keen Senses — Sight", Value: traitdomain.PrerequisiteRef{ID: "t-senses", Name: "Sight"}},
		{Label: "Keen Senses — Smell", Value: traitdomain.PrerequisiteRef{ID: "t-senses", Name: "Smell"}},
	}, choices)

	s.Empty(s.service.PrerequisiteChoices(lib, "t-senses"))
	s.Empty(s.service.PrerequisiteChoices(nil, ""))
}

func (s *ServiceTestSuite) TestPrerequisiteChoicesFollowLibraryChanges() {
	lib := s.library()
	s.Len(s.service.PrerequisiteChoices(lib, ""), 2)

	updated := testutils.CreateTestTrait("t-trance", "Trance", "Meditate")
	lib.Put(updated)
	s.Equal(uint64(2), lib.Revision)
	s.Len(s.service.PrerequisiteChoices(lib, ""), 3)

	lib.Remove("t-senses")
	s.Len(s.service.PrerequisiteChoices(lib, ""), 1)
}

func (s *ServiceTestSuite) TestCheckPrerequisites() {
	lib := s.library()

	subject := testutils.CreateTestTrait("t-new", "Mask of the Wild", "Hide")
	s.Require().NoError(subject.SetOptionPrerequisite(0, &traitdomain.PrerequisiteRef{ID: "t-senses", Name: "Taste"}))

	conflicts := s.service.CheckPrerequisites(lib, subject)
	s.Require().Len(conflicts, 1)
	s.Equal(dependency.ReasonMissingOption, conflicts[0].Reason)

	s.Require().NoError(subject.SetOptionPrerequisite(0, &traitdomain.PrerequisiteRef{ID: "t-senses", Name: "Sight"}))
	s.Empty(s.service.CheckPrerequisites(lib, subject))
}

func (s *ServiceTestSuite) TestModifierTaxonomyIsCached() {
	s.client.EXPECT().ListModifierTypes(s.ctx).Return(s.types, nil).Times(1)

	first, err := s.service.ModifierTaxonomy(s.ctx)
	s.Require().NoError(err)
	second, err := s.service.ModifierTaxonomy(s.ctx)
	s.Require().NoError(err)
	s.Same(first, second)

	s.client.EXPECT().ListModifierTypes(s.ctx).Return(s.types[:1], nil)
	refreshed, err := s.service.RefreshTaxonomy(s.ctx)
	s.Require().NoError(err)
	s.Len(refreshed.Types(), 1)
}

func (s *ServiceTestSuite) TestSaveTraitCreatesGeneric() {
	t := testutils.CreateTestTrait("", "Darkvision")
	t.SetHasModifiers(true)
	t.AddModifier()
	s.Require().NoError(t.UpdateModifierField(0, traitdomain.ModifierFieldType, "resistance"))

	s.client.EXPECT().ListModifierTypes(s.ctx).Return(s.types, nil)
	s.client.EXPECT().CreateTrait(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sent *traitdomain.Trait) (*traitdomain.Trait, error) {
			s.Nil(sent.SpeciesID)
			s.NotNil(sent.Options)
			out := sent.Clone()
			out.ID = "t-dark"
			return out, nil
		})

	saved, err := s.service.SaveTrait(s.ctx, &traitservice.SaveTraitInput{Trait: t})
	s.Require().NoError(err)
	s.Equal("t-dark", saved.ID)
	s.Empty(t.ID, "input is not mutated")
}

func (s *ServiceTestSuite) TestSaveTraitUpdatesSpecificIntoLibrary() {
	lib := s.library()
	existing, ok := lib.Find("t-trance")
	s.Require().True(ok)

	edited := existing.Clone()
	edited.Scope = shared.ScopeSpecific
	edited.Description = "Elves do not sleep."

	s.client.EXPECT().ListModifierTypes(s.ctx).Return(s.types, nil)
	s.client.EXPECT().UpdateTrait(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sent *traitdomain.Trait) (*traitdomain.Trait, error) {
			s.Require().NotNil(sent.SpeciesID)
			s.Equal("sp-elf", *sent.SpeciesID)
			s.Equal("Elf", *sent.SpeciesName)
			return sent.Clone(), nil
		})

	saved, err := s.service.SaveTrait(s.ctx, &traitservice.SaveTraitInput{Trait: edited, Library: lib})
	s.Require().NoError(err)
	s.Equal("Elves do not sleep.", saved.Description)

	stored, ok := lib.Find("t-trance")
	s.Require().True(ok)
	s.Equal("Elves do not sleep.", stored.Description)
	s.Equal(uint64(2), lib.Revision)
}

func (s *ServiceTestSuite) TestSaveTraitValidationBeforeNetwork() {
	_, err := s.service.SaveTrait(s.ctx, &traitservice.SaveTraitInput{Trait: testutils.CreateTestTrait("", " ")})
	s.True(dnderr.IsValidation(err))

	specific := traitdomain.New("Fey Ancestry", shared.ScopeSpecific)
	_, err = s.service.SaveTrait(s.ctx, &traitservice.SaveTraitInput{Trait: specific})
	s.True(dnderr.IsValidation(err))
	s.Equal("species_id", dnderr.GetMeta(err)["field"])

	strict := testutils.CreateTestTrait("", "Breath Weapon")
	strict.SetHasModifiers(true)
	strict.AddModifier()
	s.Require().NoError(strict.UpdateModifierField(0, traitdomain.ModifierFieldDiceCount, "2"))
	_, err = s.service.SaveTrait(s.ctx, &traitservice.SaveTraitInput{Trait: strict, StrictDice: true})
	s.True(dnderr.IsValidation(err))

	_, err = s.service.SaveTrait(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestSaveTraitUnknownModifierType() {
	t := testutils.CreateTestTrait("", "Odd")
	t.SetHasModifiers(true)
	t.AddModifier()
	s.Require().NoError(t.UpdateModifierField(0, traitdomain.ModifierFieldType, "teleport"))

	s.client.EXPECT().ListModifierTypes(s.ctx).Return(s.types, nil)

	_, err := s.service.SaveTrait(s.ctx, &traitservice.SaveTraitInput{Trait: t})
	s.True(dnderr.IsValidation(err))
}

func (s *ServiceTestSuite) TestSaveTraitRejectConflicts() {
	lib := s.library()

	t := testutils.CreateTestTrait("", "Elf Weapon Training", "Longsword")
	s.Require().NoError(t.SetOptionPrerequisite(0, &traitdomain.PrerequisiteRef{ID: "t-gone", Name: "Sight"}))

	_, err := s.service.SaveTrait(s.ctx, &traitservice.SaveTraitInput{Trait: t, Library: lib, RejectConflicts: true})
	s.True(dnderr.IsDependencyConflict(err))
	s.Equal(string(dependency.ReasonMissingTrait), dnderr.GetMeta(err)["reason"])

	s.client.EXPECT().ListModifierTypes(s.ctx).Return(s.types, nil)
	s.client.EXPECT().CreateTrait(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sent *traitdomain.Trait) (*traitdomain.Trait, error) {
			out := sent.Clone()
			out.ID = "t-weapons"
			return out, nil
		})

	_, err = s.service.SaveTrait(s.ctx, &traitservice.SaveTraitInput{Trait: t, Library: lib})
	s.NoError(err, "conflicts only block when asked")
}

func (s *ServiceTestSuite) TestSaveTraitRemoteFailure() {
	s.client.EXPECT().ListModifierTypes(s.ctx).Return(s.types, nil)
	s.client.EXPECT().CreateTrait(s.ctx, gomock.Any()).Return(nil, dnderr.RemoteFailure(errors.New("503"), "unavailable"))

	_, err := s.service.SaveTrait(s.ctx, &traitservice.SaveTraitInput{Trait: testutils.CreateTestTrait("", "Rage")})
	s.True(dnderr.IsRemoteFailure(err))
}

func (s *ServiceTestSuite) TestDeleteTrait() {
	s.client.EXPECT().DeleteTrait(s.ctx, "t-trance").Return(nil)
	s.NoError(s.service.DeleteTrait(s.ctx, "t-trance"))

	s.True(dnderr.IsInvalidArgument(s.service.DeleteTrait(s.ctx, "")))

	s.client.EXPECT().DeleteTrait(s.ctx, "t-x").Return(dnderr.PermissionDeniedf("forbidden"))
	s.True(dnderr.IsAuthFailure(s.service.DeleteTrait(s.ctx, "t-x")))
}

func (s *ServiceTestSuite) TestDrafts() {
	form := testutils.CreateTestTrait("", "Half-finished", "One")

	draft, err := s.service.SaveDraft(s.ctx, "author-1", "", form)
	s.Require().NoError(err)
	s.NotEmpty(draft.ID)

	form.Description = "more words"
	_, err = s.service.SaveDraft(s.ctx, "author-1", draft.ID, form)
	s.Require().NoError(err)

	loaded, err := s.service.LoadDraft(s.ctx, draft.ID)
	s.Require().NoError(err)
	s.Equal("more words", loaded.Description)
	s.Len(loaded.Options, 1)

	_, err = s.service.SaveDraft(s.ctx, "author-2", draft.ID, form)
	s.True(dnderr.IsAuthFailure(err))

	other := testutils.CreateTestDraft("inc-draft", "author-1", drafts.KindIncumbency, map[string]any{"name": "Warden"})
	s.Require().NoError(s.drafts.Create(s.ctx, other))
	_, err = s.service.LoadDraft(s.ctx, "inc-draft")
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.LoadDraft(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))
}
