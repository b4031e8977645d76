package incumbency

//go:generate mockgen -destination=mock/mock_service.go -package=mockincumbency -source=service.go

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-content-admin/internal/clients/content"
	incdomain "github.com/KirkDiggler/rpg-content-admin/internal/domain/incumbency"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/versioning"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
	"github.com/KirkDiggler/rpg-content-admin/internal/logging"
	"github.com/KirkDiggler/rpg-content-admin/internal/repositories/drafts"
)

// Service defines incumbency authoring operations
type Service interface {
	// StartCreate opens a session over a blank form
	StartCreate(ctx context.Context, ownerID string) (*EditSession, error)

	// StartEdit opens a session that saves back onto the stored record
	StartEdit(ctx context.Context, ownerID, id string) (*EditSession, error)

	// StartDuplicate opens a session whose form is the stored record at the next version
	StartDuplicate(ctx context.Context, ownerID, id string) (*EditSession, error)

	// GetSession returns an open session
	GetSession(ctx context.Context, sessionID string) (*EditSession, error)

	// UpdateForm applies fn to the session form and persists the result
	UpdateForm(ctx context.Context, sessionID string, fn func(*incdomain.Incumbency) error) (*EditSession, error)

	// Save resolves and performs the write for an open session, then closes it
	Save(ctx context.Context, sessionID string) (*SaveResult, error)

	// SaveDirect runs the save algorithm for a session that is not kept in draft storage
	SaveDirect(ctx context.Context, session *versioning.Session, form *incdomain.Incumbency) (*SaveResult, error)

	// ListVersions returns every stored version of key, lowest version first
	ListVersions(ctx context.Context, key string) ([]*incdomain.Incumbency, error)
}

// EditSession is a versioning session together with the form it edits
type EditSession struct {
	ID      string                `json:"id"`
	OwnerID string                `json:"owner_id"`
	Session *versioning.Session   `json:"session"`
	Form    *incdomain.Incumbency `json:"form"`
}

// SaveResult is the stored record and how the save was resolved
type SaveResult struct {
	Record   *incdomain.Incumbency `json:"record"`
	Decision versioning.Decision   `json:"decision"`
}

type service struct {
	client content.Client
	drafts drafts.Repository
	logger *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client content.Client    // Required
	Drafts drafts.Repository // Optional, in-memory when nil
	Logger *zap.Logger       // Optional
}

// NewService creates a new incumbency service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Client == nil {
		panic("content client is required")
	}

	svc := &service{
		client: cfg.Client,
		drafts: cfg.Drafts,
		logger: logging.OrNop(cfg.Logger).Named("incumbency"),
	}
	if svc.drafts == nil {
		svc.drafts = drafts.NewInMemoryRepository()
	}

	return svc
}

func (s *service) StartCreate(ctx context.Context, ownerID string) (*EditSession, error) {
	return s.open(ctx, ownerID, versioning.NewCreateSession(), incdomain.New())
}

func (s *service) StartEdit(ctx context.Context, ownerID, id string) (*EditSession, error) {
	loaded, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, ownerID, versioning.NewEditSession(loaded.ID), loaded.Clone())
}

func (s *service) StartDuplicate(ctx context.Context, ownerID, id string) (*EditSession, error) {
	loaded, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session, next := versioning.NewDuplicateSession(loaded.ID, loaded.Version)
	form := loaded.Clone()
	form.ID = ""
	form.Key = loaded.ResolvedKey()
	form.Version = next

	return s.open(ctx, ownerID, session, form)
}

func (s *service) GetSession(ctx context.Context, sessionID string) (*EditSession, error) {
	_, es, err := s.session(ctx, sessionID)
	return es, err
}

func (s *service) UpdateForm(ctx context.Context, sessionID string, fn func(*incdomain.Incumbency) error) (*EditSession, error) {
	if fn == nil {
		return nil, dnderr.InvalidArgument("update function is required")
	}

	draft, es, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	form := es.Form.Clone()
	if err := fn(form); err != nil {
		return nil, err
	}
	es.Form = form

	if err := s.persist(ctx, draft, es); err != nil {
		return nil, err
	}
	return es, nil
}

func (s *service) Save(ctx context.Context, sessionID string) (*SaveResult, error) {
	_, es, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.SaveDirect(ctx, es.Session, es.Form)
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, sessionID); err != nil && !dnderr.IsNotFound(err) {
		s.logger.Warn("failed to discard saved session draft",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}

	return result, nil
}

func (s *service) SaveDirect(ctx context.Context, session *versioning.Session, form *incdomain.Incumbency) (*SaveResult, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	key := form.ResolvedKey()
	existing, err := s.versions(ctx, key)
	if err != nil {
		s.logger.Warn("version check failed, nothing written",
			zap.String("key", key),
			zap.Error(err))
		return nil, err
	}

	decision, err := versioning.Decide(session, key, form.Version, incdomain.StoredVersions(existing))
	if err != nil {
		return nil, err
	}

	payload := form.Clone()
	payload.Key = key
	payload.ID = ""

	var record *incdomain.Incumbency
	switch decision.Verb {
	case versioning.VerbInsert:
		record, err = s.client.CreateIncumbency(ctx, payload)
	default:
		payload.ID = decision.TargetID
		record, err = s.client.UpdateIncumbency(ctx, decision.TargetID, payload)
	}
	if err != nil {
		s.logger.Warn("incumbency save failed",
			zap.String("key", key),
			zap.Int("version", decision.Version),
			zap.String("verb", string(decision.Verb)),
			zap.Error(err))
		return nil, err
	}

	session.Close()

	s.logger.Info("incumbency saved",
		zap.String("key", key),
		zap.Int("version", decision.Version),
		zap.String("declared_mode", string(decision.DeclaredMode)),
		zap.String("effective_mode", string(decision.EffectiveMode)),
		zap.String("verb", string(decision.Verb)),
		zap.String("target_id", decision.TargetID),
		zap.Bool("collapsed", decision.Collapsed()))

	return &SaveResult{Record: record, Decision: decision}, nil
}

func (s *service) ListVersions(ctx context.Context, key string) ([]*incdomain.Incumbency, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, dnderr.InvalidArgument("key is required")
	}

	records, err := s.versions(ctx, key)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(records, func(a, b *incdomain.Incumbency) int {
		return a.Version - b.Version
	})
	return records, nil
}

// versions treats a missing key as having no stored versions
func (s *service) versions(ctx context.Context, key string) ([]*incdomain.Incumbency, error) {
	records, err := s.client.ListIncumbencyVersions(ctx, key)
	if dnderr.IsNotFound(err) {
		return []*incdomain.Incumbency{}, nil
	}
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list versions of %s", key).WithMeta("key", key)
	}
	if records == nil {
		records = []*incdomain.Incumbency{}
	}
	return records, nil
}

func (s *service) load(ctx context.Context, id string) (*incdomain.Incumbency, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("incumbency ID is required")
	}

	loaded, err := s.client.GetIncumbency(ctx, id)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load incumbency %s", id).WithMeta("incumbency_id", id)
	}
	if loaded.Abilities == nil {
		loaded.Abilities = []incdomain.Ability{}
	}
	return loaded, nil
}

func (s *service) open(ctx context.Context, ownerID string, session *versioning.Session, form *incdomain.Incumbency) (*EditSession, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	es := &EditSession{
		OwnerID: ownerID,
		Session: session,
		Form:    form,
	}

	draft := &drafts.Draft{OwnerID: ownerID, Kind: drafts.KindIncumbency}
	if err := draft.Encode(es); err != nil {
		return nil, err
	}
	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to store edit session")
	}
	es.ID = draft.ID

	s.logger.Debug("edit session opened",
		zap.String("session_id", es.ID),
		zap.String("owner_id", ownerID),
		zap.String("mode", string(session.Mode)),
		zap.String("loaded_id", session.LoadedID))

	return es, nil
}

func (s *service) session(ctx context.Context, sessionID string) (*drafts.Draft, *EditSession, error) {
	if sessionID == "" {
		return nil, nil, dnderr.InvalidArgument("session ID is required")
	}

	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if draft.Kind != drafts.KindIncumbency {
		return nil, nil, dnderr.InvalidArgumentf("draft %s is not an incumbency session", sessionID).
			WithMeta("session_id", sessionID)
	}

	var es EditSession
	if err := draft.Decode(&es); err != nil {
		return nil, nil, err
	}
	es.ID = draft.ID
	es.OwnerID = draft.OwnerID
	if es.Form == nil {
		es.Form = incdomain.New()
	}

	return draft, &es, nil
}

func (s *service) persist(ctx context.Context, draft *drafts.Draft, es *EditSession) error {
	if err := draft.Encode(es); err != nil {
		return err
	}
	if err := s.drafts.Update(ctx, draft); err != nil {
		return dnderr.Wrap(err, "failed to store edit session")
	}
	return nil
}
